package repository

import (
	"context"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	domainRepo "github.com/fiadopro/fiado-api/internal/domain/repository"
	"github.com/fiadopro/fiado-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) domainRepo.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, event *entity.AuditEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *auditRepository) List(ctx context.Context, actorID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.AuditEvent, int64, error) {
	var events []entity.AuditEvent
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.AuditEvent{}).
		Where("actor_id = ?", actorID)

	if search != "" {
		query = query.Where("description ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC, id DESC").
		Find(&events).Error

	return events, total, err
}
