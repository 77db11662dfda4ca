package service

import (
	"context"
	"log"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/enum"
	"github.com/fiadopro/fiado-api/internal/domain/repository"
	"github.com/fiadopro/fiado-api/pkg/pagination"
	"github.com/google/uuid"
)

// AuditService records and lists audit trail events.
type AuditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record appends an event to the audit trail. It is best-effort: a storage
// failure is logged and discarded so that recording can never abort the
// business operation that triggered it. Actor and request context are
// passed in explicitly by the caller.
func (s *AuditService) Record(ctx context.Context, actorID *uuid.UUID, action enum.AuditAction, description string, reqCtx entity.RequestContext) {
	reqCtx = reqCtx.Truncate()

	event := &entity.AuditEvent{
		ActorID:     actorID,
		Action:      action,
		Description: description,
		Path:        reqCtx.Path,
		Method:      reqCtx.Method,
		IP:          reqCtx.IP,
		UserAgent:   reqCtx.UserAgent,
		Extra:       reqCtx.Extra,
	}

	if err := s.auditRepo.Create(ctx, event); err != nil {
		log.Printf("audit: failed to record %s event: %v", action, err)
	}
}

// ListEvents returns the actor's audit trail, most recent first
func (s *AuditService) ListEvents(ctx context.Context, actorID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.AuditEvent], error) {
	events, total, err := s.auditRepo.List(ctx, actorID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(events, pag), nil
}
