package service

import (
	"context"
	"errors"
	"time"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/repository"
	"github.com/fiadopro/fiado-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentService handles recording and removing payments against accounts
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	accountRepo repository.AccountRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	accountRepo repository.AccountRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
	}
}

// RecordPaymentInput represents the record-payment input. EffectiveAt is
// the moment the customer actually paid; it defaults to now.
type RecordPaymentInput struct {
	OwnerID     uuid.UUID
	AccountID   uuid.UUID
	Amount      decimal.Decimal
	EffectiveAt *time.Time
	Note        string
}

// RecordPayment applies a payment to an active account. The payment write
// and the balance recompute commit in one transaction.
func (s *PaymentService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Payment, error) {
	if input.Amount.Sign() <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be greater than zero")
	}

	account, err := s.accountRepo.GetByID(ctx, input.OwnerID, input.AccountID, false)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}

	payment := &entity.Payment{
		Amount: input.Amount,
		Note:   input.Note,
	}
	if input.EffectiveAt != nil {
		payment.EffectiveAt = *input.EffectiveAt
	}

	if err := s.paymentRepo.Create(ctx, account, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// RemovePayment deletes a payment from an active account and recomputes
// its totals in the same transaction
func (s *PaymentService) RemovePayment(ctx context.Context, ownerID, accountID, paymentID uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, ownerID, accountID, false)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}

	if err := s.paymentRepo.Delete(ctx, account, paymentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Payment")
		}
		return nil, err
	}

	return account, nil
}

// GetPayment retrieves a payment with its account and customer. Ownership
// is enforced through the owning account; a payment on another merchant's
// account behaves like a missing one.
func (s *PaymentService) GetPayment(ctx context.Context, ownerID, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}
