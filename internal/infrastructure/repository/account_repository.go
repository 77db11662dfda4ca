package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/enum"
	domainRepo "github.com/fiadopro/fiado-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domainRepo.AccountRepository {
	return &accountRepository{db: db}
}

// recomputeAndSave reloads the account's children inside tx, invokes the
// balance recompute and persists the derived columns. Called by every
// mutating operation so the child write and the recompute always commit
// (or roll back) together.
func recomputeAndSave(tx *gorm.DB, account *entity.Account) error {
	if err := tx.Where("account_id = ?", account.ID).Find(&account.Items).Error; err != nil {
		return err
	}
	if err := tx.Where("account_id = ?", account.ID).Find(&account.Payments).Error; err != nil {
		return err
	}

	account.Recompute(time.Now())

	return tx.Model(&entity.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"total":   account.Total,
			"balance": account.Balance,
			"status":  account.Status,
		}).Error
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account, items []entity.LineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].AccountID = account.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return recomputeAndSave(tx, account)
	})
}

func (r *accountRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID, includeDeleted bool) (*entity.Account, error) {
	var account entity.Account
	query := r.db.WithContext(ctx).Scopes(OwnedBy(ownerID))
	if !includeDeleted {
		query = query.Scopes(ActiveAccounts)
	}
	err := query.First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) GetWithChildren(ctx context.Context, ownerID, id uuid.UUID, includeDeleted bool) (*entity.Account, error) {
	var account entity.Account
	query := r.db.WithContext(ctx).
		Scopes(OwnedBy(ownerID)).
		Preload("Customer").
		Preload("Items").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("effective_at ASC, created_at ASC")
		})
	if !includeDeleted {
		query = query.Scopes(ActiveAccounts)
	}
	err := query.First(&account, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &account, err
}

func (r *accountRepository) List(ctx context.Context, ownerID uuid.UUID, status *enum.AccountStatus, search string) ([]entity.Account, error) {
	var accounts []entity.Account

	query := r.db.WithContext(ctx).
		Model(&entity.Account{}).
		Scopes(OwnedBy(ownerID), ActiveAccounts).
		Preload("Customer")

	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if search != "" {
		query = query.Joins("JOIN customers ON customers.id = accounts.customer_id").
			Where("customers.name ILIKE ?", "%"+search+"%")
	}

	err := query.Order("due_date ASC NULLS LAST, accounts.created_at ASC").
		Find(&accounts).Error
	return accounts, err
}

func (r *accountRepository) ListDeleted(ctx context.Context, ownerID uuid.UUID, search string) ([]entity.Account, error) {
	var accounts []entity.Account

	query := r.db.WithContext(ctx).
		Model(&entity.Account{}).
		Scopes(OwnedBy(ownerID), DeletedAccounts).
		Preload("Customer")

	if search != "" {
		query = query.Joins("JOIN customers ON customers.id = accounts.customer_id").
			Where("customers.name ILIKE ?", "%"+search+"%")
	}

	err := query.Order("deleted_at DESC, accounts.id DESC").
		Find(&accounts).Error
	return accounts, err
}

func (r *accountRepository) AddItem(ctx context.Context, account *entity.Account, item *entity.LineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item.AccountID = account.ID
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return recomputeAndSave(tx, account)
	})
}

func (r *accountRepository) RemoveItem(ctx context.Context, account *entity.Account, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND account_id = ?", itemID, account.ID).
			Delete(&entity.LineItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return recomputeAndSave(tx, account)
	})
}

func (r *accountRepository) UpdateDeletion(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Model(&entity.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"is_deleted":     account.IsDeleted,
			"deleted_at":     account.DeletedAt,
			"deleted_reason": account.DeletedReason,
			"deleted_by_id":  account.DeletedByID,
		}).Error
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, account *entity.Account, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		payment.AccountID = account.ID
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return recomputeAndSave(tx, account)
	})
}

func (r *paymentRepository) Delete(ctx context.Context, account *entity.Account, paymentID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND account_id = ?", paymentID, account.ID).
			Delete(&entity.Payment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return recomputeAndSave(tx, account)
	})
}

func (r *paymentRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Account").
		Preload("Account.Customer").
		Joins("JOIN accounts ON accounts.id = payments.account_id").
		Where("payments.id = ? AND accounts.owner_id = ?", id, ownerID).
		First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}
