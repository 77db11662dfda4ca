package repository

import (
	"context"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/pkg/pagination"
	"github.com/google/uuid"
)

// AuditRepository defines the interface for the append-only audit trail.
// There is deliberately no update or delete.
type AuditRepository interface {
	Create(ctx context.Context, event *entity.AuditEvent) error
	// List returns the actor's events most-recent-first (created_at DESC,
	// id DESC) with page-based pagination and description search.
	List(ctx context.Context, actorID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.AuditEvent, int64, error)
}
