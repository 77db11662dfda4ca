package service

import (
	"context"
	"testing"
	"time"

	"github.com/fiadopro/fiado-api/internal/domain/enum"
	"github.com/fiadopro/fiado-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	*accountFixture
	svc *PaymentService
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	accounts := newAccountFixture(t)
	return &paymentFixture{
		accountFixture: accounts,
		svc:            NewPaymentService(newFakePaymentRepo(accounts.accountRepo), accounts.accountRepo),
	}
}

func TestRecordPayment(t *testing.T) {
	t.Run("partial payment keeps account open", func(t *testing.T) {
		f := newPaymentFixture(t)
		account := f.openAccount(t) // 10.00 tab

		payment, err := f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
			OwnerID:   f.owner.ID,
			AccountID: account.ID,
			Amount:    decimal.RequireFromString("4.00"),
			Note:      "first installment",
		})
		require.NoError(t, err)
		assert.Equal(t, "4.00", payment.Amount.StringFixed(2))
		assert.False(t, payment.EffectiveAt.IsZero())

		stored, err := f.accountFixture.svc.GetAccount(context.Background(), f.owner.ID, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "6.00", stored.Balance.StringFixed(2))
		assert.Equal(t, enum.AccountStatusOpen, stored.Status)
	})

	t.Run("exact payoff settles the account", func(t *testing.T) {
		f := newPaymentFixture(t)
		account := f.openAccount(t)

		_, err := f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
			OwnerID:   f.owner.ID,
			AccountID: account.ID,
			Amount:    decimal.RequireFromString("10.00"),
		})
		require.NoError(t, err)

		stored, err := f.accountFixture.svc.GetAccount(context.Background(), f.owner.ID, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "0.00", stored.Balance.StringFixed(2))
		assert.Equal(t, enum.AccountStatusPaid, stored.Status)
	})

	t.Run("honors an explicit effective date", func(t *testing.T) {
		f := newPaymentFixture(t)
		account := f.openAccount(t)

		paidAt := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.Local)
		payment, err := f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
			OwnerID:     f.owner.ID,
			AccountID:   account.ID,
			Amount:      decimal.RequireFromString("2.00"),
			EffectiveAt: &paidAt,
		})
		require.NoError(t, err)
		assert.True(t, payment.EffectiveAt.Equal(paidAt))
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		f := newPaymentFixture(t)
		account := f.openAccount(t)

		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.RequireFromString("-1.00")} {
			_, err := f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
				OwnerID:   f.owner.ID,
				AccountID: account.ID,
				Amount:    amount,
			})
			require.Error(t, err)
			assert.Equal(t, 400, apperror.GetAppError(err).Code)
		}
	})

	t.Run("deleted account rejects payments", func(t *testing.T) {
		f := newPaymentFixture(t)
		account := f.openAccount(t)
		f.deleteAccount(t, account.ID)

		_, err := f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
			OwnerID:   f.owner.ID,
			AccountID: account.ID,
			Amount:    decimal.RequireFromString("5.00"),
		})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestRemovePayment(t *testing.T) {
	t.Run("reopens a settled account", func(t *testing.T) {
		f := newPaymentFixture(t)
		account := f.openAccount(t)

		payment, err := f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
			OwnerID:   f.owner.ID,
			AccountID: account.ID,
			Amount:    decimal.RequireFromString("10.00"),
		})
		require.NoError(t, err)

		updated, err := f.svc.RemovePayment(context.Background(), f.owner.ID, account.ID, payment.ID)
		require.NoError(t, err)
		assert.Equal(t, "10.00", updated.Balance.StringFixed(2))
		assert.Equal(t, enum.AccountStatusOpen, updated.Status)
	})

	t.Run("missing payment is not found", func(t *testing.T) {
		f := newPaymentFixture(t)
		account := f.openAccount(t)

		_, err := f.svc.RemovePayment(context.Background(), f.owner.ID, account.ID, uuid.New())
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestGetPayment(t *testing.T) {
	f := newPaymentFixture(t)
	account := f.openAccount(t)

	payment, err := f.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		OwnerID:   f.owner.ID,
		AccountID: account.ID,
		Amount:    decimal.RequireFromString("3.50"),
	})
	require.NoError(t, err)

	t.Run("returns the payment with its account", func(t *testing.T) {
		got, err := f.svc.GetPayment(context.Background(), f.owner.ID, payment.ID)
		require.NoError(t, err)
		assert.Equal(t, payment.ID, got.ID)
		assert.Equal(t, account.ID, got.Account.ID)
	})

	t.Run("another merchant cannot see it", func(t *testing.T) {
		_, err := f.svc.GetPayment(context.Background(), uuid.New(), payment.ID)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}
