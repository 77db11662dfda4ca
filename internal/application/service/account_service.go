package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/enum"
	"github.com/fiadopro/fiado-api/internal/domain/repository"
	"github.com/fiadopro/fiado-api/pkg/apperror"
	"github.com/fiadopro/fiado-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountService handles account (tab) operations: opening accounts,
// mutating line items, and the soft-delete/restore lifecycle.
type AccountService struct {
	accountRepo  repository.AccountRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo repository.AccountRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

// LineItemInput represents one product line when opening an account or
// adding an item
type LineItemInput struct {
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (in *LineItemInput) validate() error {
	if strings.TrimSpace(in.Product) == "" {
		return apperror.NewBadRequestError("Item product is required")
	}
	if in.Quantity < 1 {
		return apperror.NewBadRequestError("Item quantity must be at least 1")
	}
	if in.UnitPrice.Sign() < 0 {
		return apperror.NewBadRequestError("Item unit price cannot be negative")
	}
	return nil
}

// CreateAccountInput represents the open-account input
type CreateAccountInput struct {
	OwnerID    uuid.UUID
	CustomerID uuid.UUID
	DueDate    *time.Time
	Items      []LineItemInput
}

// CreateAccount opens a new tab for a customer. The account, its initial
// items and the first recompute are persisted in one transaction.
func (s *AccountService) CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.Account, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.OwnerID, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	items := make([]entity.LineItem, 0, len(input.Items))
	for i := range input.Items {
		if err := input.Items[i].validate(); err != nil {
			return nil, err
		}
		items = append(items, entity.LineItem{
			Product:   strings.TrimSpace(input.Items[i].Product),
			Quantity:  input.Items[i].Quantity,
			UnitPrice: input.Items[i].UnitPrice,
		})
	}

	account := &entity.Account{
		OwnerID:    input.OwnerID,
		CustomerID: input.CustomerID,
		DueDate:    input.DueDate,
	}

	if err := s.accountRepo.Create(ctx, account, items); err != nil {
		return nil, err
	}

	return s.accountRepo.GetWithChildren(ctx, input.OwnerID, account.ID, false)
}

// GetAccount retrieves an account with its customer, items and payments.
// Deleted accounts are included so historical receipts stay reachable.
func (s *AccountService) GetAccount(ctx context.Context, ownerID, id uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.GetWithChildren(ctx, ownerID, id, true)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}
	return account, nil
}

// Dashboard groups a merchant's active accounts by status
type Dashboard struct {
	Overdue []entity.Account `json:"overdue"`
	Open    []entity.Account `json:"open"`
	Paid    []entity.Account `json:"paid"`
}

// GetDashboard returns the merchant's active accounts grouped by status,
// optionally filtered by customer name
func (s *AccountService) GetDashboard(ctx context.Context, ownerID uuid.UUID, search string) (*Dashboard, error) {
	dashboard := &Dashboard{}

	for _, group := range []struct {
		status enum.AccountStatus
		dest   *[]entity.Account
	}{
		{enum.AccountStatusOverdue, &dashboard.Overdue},
		{enum.AccountStatusOpen, &dashboard.Open},
		{enum.AccountStatusPaid, &dashboard.Paid},
	} {
		status := group.status
		accounts, err := s.accountRepo.List(ctx, ownerID, &status, search)
		if err != nil {
			return nil, err
		}
		*group.dest = accounts
	}

	return dashboard, nil
}

// ListDeleted returns the merchant's soft-deleted accounts, most recently
// deleted first
func (s *AccountService) ListDeleted(ctx context.Context, ownerID uuid.UUID, search string) ([]entity.Account, error) {
	return s.accountRepo.ListDeleted(ctx, ownerID, search)
}

// AddItemInput represents the add-line-item input
type AddItemInput struct {
	OwnerID   uuid.UUID
	AccountID uuid.UUID
	Item      LineItemInput
}

// AddItem appends a line item to an active account and recomputes its
// totals in the same transaction
func (s *AccountService) AddItem(ctx context.Context, input *AddItemInput) (*entity.Account, error) {
	if err := input.Item.validate(); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, input.OwnerID, input.AccountID, false)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}

	item := &entity.LineItem{
		Product:   strings.TrimSpace(input.Item.Product),
		Quantity:  input.Item.Quantity,
		UnitPrice: input.Item.UnitPrice,
	}
	if err := s.accountRepo.AddItem(ctx, account, item); err != nil {
		return nil, err
	}

	return account, nil
}

// RemoveItem deletes a line item from an active account and recomputes its
// totals in the same transaction
func (s *AccountService) RemoveItem(ctx context.Context, ownerID, accountID, itemID uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, ownerID, accountID, false)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}

	if err := s.accountRepo.RemoveItem(ctx, account, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Item")
		}
		return nil, err
	}

	return account, nil
}

// DeleteAccountInput represents the soft-delete request
type DeleteAccountInput struct {
	OwnerID   uuid.UUID
	AccountID uuid.UUID
	Reason    string
	Password  string
}

// DeleteAccount marks an active account as deleted. The transition
// requires a non-empty reason and re-authentication of the acting
// merchant's password; on any failure nothing changes. Totals and balance
// are left untouched so a later restore returns the account to its exact
// pre-delete state.
func (s *AccountService) DeleteAccount(ctx context.Context, input *DeleteAccountInput) (*entity.Account, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, apperror.NewBadRequestError("Provide a reason and your password")
	}

	account, err := s.accountRepo.GetByID(ctx, input.OwnerID, input.AccountID, false)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}

	if err := s.checkPassword(ctx, input.OwnerID, input.Password); err != nil {
		return nil, err
	}

	now := time.Now()
	account.IsDeleted = true
	account.DeletedAt = &now
	account.DeletedReason = reason
	account.DeletedByID = &input.OwnerID

	if err := s.accountRepo.UpdateDeletion(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccountInput represents the restore request
type RestoreAccountInput struct {
	OwnerID   uuid.UUID
	AccountID uuid.UUID
	Password  string
}

// RestoreAccount clears the soft-delete state of an account. Restoring an
// account that is not deleted is a no-op: the second return value reports
// whether a restore actually happened.
func (s *AccountService) RestoreAccount(ctx context.Context, input *RestoreAccountInput) (*entity.Account, bool, error) {
	account, err := s.accountRepo.GetByID(ctx, input.OwnerID, input.AccountID, true)
	if err != nil {
		return nil, false, err
	}
	if account == nil {
		return nil, false, apperror.NewNotFoundError("Account")
	}

	if !account.IsDeleted {
		return account, false, nil
	}

	if err := s.checkPassword(ctx, input.OwnerID, input.Password); err != nil {
		return nil, false, err
	}

	account.IsDeleted = false
	account.DeletedAt = nil
	account.DeletedReason = ""
	account.DeletedByID = nil

	if err := s.accountRepo.UpdateDeletion(ctx, account); err != nil {
		return nil, false, err
	}

	return account, true, nil
}

// checkPassword re-authenticates the acting merchant against their stored
// credential
func (s *AccountService) checkPassword(ctx context.Context, userID uuid.UUID, password string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrIncorrectPassword
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return apperror.ErrIncorrectPassword
	}
	return nil
}
