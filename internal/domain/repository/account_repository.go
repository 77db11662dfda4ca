package repository

import (
	"context"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/enum"
	"github.com/google/uuid"
)

// AccountRepository defines the interface for account data operations.
//
// Every lookup is scoped by the owning merchant: an account belonging to a
// different owner behaves exactly like a missing one. Mutating operations
// that touch child records (items, payments) are atomic units covering the
// child write, the balance recompute and the derived-column save.
type AccountRepository interface {
	// Create persists a new account together with its initial line items
	// and recomputed totals in one transaction.
	Create(ctx context.Context, account *entity.Account, items []entity.LineItem) error
	// GetByID returns the account or nil when not found / not owned.
	GetByID(ctx context.Context, ownerID, id uuid.UUID, includeDeleted bool) (*entity.Account, error)
	// GetWithChildren loads the account with its customer, items and payments.
	GetWithChildren(ctx context.Context, ownerID, id uuid.UUID, includeDeleted bool) (*entity.Account, error)
	// List returns active accounts, optionally filtered by status and
	// customer-name search, ordered by due date.
	List(ctx context.Context, ownerID uuid.UUID, status *enum.AccountStatus, search string) ([]entity.Account, error)
	// ListDeleted returns soft-deleted accounts ordered by deletion time
	// descending.
	ListDeleted(ctx context.Context, ownerID uuid.UUID, search string) ([]entity.Account, error)
	// AddItem creates the line item and recomputes the account atomically.
	AddItem(ctx context.Context, account *entity.Account, item *entity.LineItem) error
	// RemoveItem deletes the line item and recomputes the account
	// atomically. Returns entity not-found semantics (nil row change)
	// as gorm.ErrRecordNotFound.
	RemoveItem(ctx context.Context, account *entity.Account, itemID uuid.UUID) error
	// UpdateDeletion persists only the soft-delete columns
	// (is_deleted, deleted_at, deleted_reason, deleted_by_id).
	UpdateDeletion(ctx context.Context, account *entity.Account) error
}

// PaymentRepository defines the interface for payment data operations.
// Create and Delete are atomic with the owning account's recompute.
type PaymentRepository interface {
	Create(ctx context.Context, account *entity.Account, payment *entity.Payment) error
	Delete(ctx context.Context, account *entity.Account, paymentID uuid.UUID) error
	// GetByID returns the payment with its account and customer preloaded,
	// or nil when not found or the account is not owned by ownerID.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Payment, error)
}
