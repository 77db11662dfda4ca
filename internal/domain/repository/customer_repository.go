package repository

import (
	"context"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data operations.
// All lookups are scoped by the owning merchant.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	// List returns customers with page-based pagination and name/phone search.
	List(ctx context.Context, ownerID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// ListWithCursor returns customers using cursor-based pagination.
	ListWithCursor(ctx context.Context, ownerID uuid.UUID, params *pagination.CursorParams, search string) ([]entity.Customer, error)
}
