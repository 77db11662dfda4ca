package service

import (
	"context"
	"testing"
	"time"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/enum"
	"github.com/fiadopro/fiado-api/pkg/apperror"
	"github.com/fiadopro/fiado-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "super-secret"

type accountFixture struct {
	svc          *AccountService
	accountRepo  *fakeAccountRepo
	customerRepo *fakeCustomerRepo
	userRepo     *fakeUserRepo
	owner        *entity.User
	customer     *entity.Customer
}

func newAccountFixture(t *testing.T) *accountFixture {
	t.Helper()

	userRepo := newFakeUserRepo()
	customerRepo := newFakeCustomerRepo()
	accountRepo := newFakeAccountRepo(customerRepo)

	hash, err := utils.HashPassword(testPassword)
	require.NoError(t, err)

	owner := &entity.User{FirstName: "Maria", LastName: "Silva", Email: "maria@example.com", Password: hash}
	require.NoError(t, userRepo.Create(context.Background(), owner))

	customer := &entity.Customer{OwnerID: owner.ID, Name: "Joao"}
	require.NoError(t, customerRepo.Create(context.Background(), customer))

	return &accountFixture{
		svc:          NewAccountService(accountRepo, customerRepo, userRepo),
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		owner:        owner,
		customer:     customer,
	}
}

func (f *accountFixture) openAccount(t *testing.T, items ...LineItemInput) *entity.Account {
	t.Helper()

	if len(items) == 0 {
		items = []LineItemInput{{Product: "Cafe", Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")}}
	}
	account, err := f.svc.CreateAccount(context.Background(), &CreateAccountInput{
		OwnerID:    f.owner.ID,
		CustomerID: f.customer.ID,
		Items:      items,
	})
	require.NoError(t, err)
	return account
}

func TestCreateAccount(t *testing.T) {
	t.Run("computes totals on open", func(t *testing.T) {
		f := newAccountFixture(t)

		account := f.openAccount(t,
			LineItemInput{Product: "Cafe", Quantity: 2, UnitPrice: decimal.RequireFromString("5.50")},
			LineItemInput{Product: "Pao", Quantity: 3, UnitPrice: decimal.RequireFromString("1.50")},
		)

		assert.Equal(t, "15.50", account.Total.StringFixed(2))
		assert.Equal(t, "15.50", account.Balance.StringFixed(2))
		assert.Equal(t, enum.AccountStatusOpen, account.Status)
	})

	t.Run("rejects unknown customer", func(t *testing.T) {
		f := newAccountFixture(t)

		_, err := f.svc.CreateAccount(context.Background(), &CreateAccountInput{
			OwnerID:    f.owner.ID,
			CustomerID: uuid.New(),
			Items:      []LineItemInput{{Product: "Cafe", Quantity: 1, UnitPrice: decimal.New(5, 0)}},
		})

		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("rejects another merchant's customer", func(t *testing.T) {
		f := newAccountFixture(t)

		stranger := &entity.Customer{OwnerID: uuid.New(), Name: "Outro"}
		require.NoError(t, f.customerRepo.Create(context.Background(), stranger))

		_, err := f.svc.CreateAccount(context.Background(), &CreateAccountInput{
			OwnerID:    f.owner.ID,
			CustomerID: stranger.ID,
			Items:      []LineItemInput{{Product: "Cafe", Quantity: 1, UnitPrice: decimal.New(5, 0)}},
		})

		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("rejects invalid items", func(t *testing.T) {
		f := newAccountFixture(t)

		cases := []LineItemInput{
			{Product: "  ", Quantity: 1, UnitPrice: decimal.New(5, 0)},
			{Product: "Cafe", Quantity: 0, UnitPrice: decimal.New(5, 0)},
			{Product: "Cafe", Quantity: 1, UnitPrice: decimal.New(-5, 0)},
		}
		for _, item := range cases {
			_, err := f.svc.CreateAccount(context.Background(), &CreateAccountInput{
				OwnerID:    f.owner.ID,
				CustomerID: f.customer.ID,
				Items:      []LineItemInput{item},
			})
			require.Error(t, err)
			assert.Equal(t, 400, apperror.GetAppError(err).Code)
		}
	})
}

func TestItemMutations(t *testing.T) {
	t.Run("add item recomputes", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.openAccount(t)

		updated, err := f.svc.AddItem(context.Background(), &AddItemInput{
			OwnerID:   f.owner.ID,
			AccountID: account.ID,
			Item:      LineItemInput{Product: "Leite", Quantity: 1, UnitPrice: decimal.RequireFromString("7.50")},
		})
		require.NoError(t, err)

		assert.Equal(t, "17.50", updated.Total.StringFixed(2))
		assert.Equal(t, "17.50", updated.Balance.StringFixed(2))
	})

	t.Run("remove item recomputes", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.openAccount(t,
			LineItemInput{Product: "Cafe", Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
			LineItemInput{Product: "Pao", Quantity: 1, UnitPrice: decimal.RequireFromString("3.00")},
		)

		updated, err := f.svc.RemoveItem(context.Background(), f.owner.ID, account.ID, account.Items[1].ID)
		require.NoError(t, err)

		assert.Equal(t, "5.00", updated.Total.StringFixed(2))
	})

	t.Run("remove missing item is not found", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.openAccount(t)

		_, err := f.svc.RemoveItem(context.Background(), f.owner.ID, account.ID, uuid.New())
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("deleted account rejects item changes", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.openAccount(t)
		f.deleteAccount(t, account.ID)

		_, err := f.svc.AddItem(context.Background(), &AddItemInput{
			OwnerID:   f.owner.ID,
			AccountID: account.ID,
			Item:      LineItemInput{Product: "Leite", Quantity: 1, UnitPrice: decimal.New(7, 0)},
		})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func (f *accountFixture) deleteAccount(t *testing.T, accountID uuid.UUID) *entity.Account {
	t.Helper()

	account, err := f.svc.DeleteAccount(context.Background(), &DeleteAccountInput{
		OwnerID:   f.owner.ID,
		AccountID: accountID,
		Reason:    "wrong customer",
		Password:  testPassword,
	})
	require.NoError(t, err)
	return account
}

func TestDeleteAccount(t *testing.T) {
	t.Run("marks deleted with metadata", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.openAccount(t)

		deleted := f.deleteAccount(t, account.ID)

		assert.True(t, deleted.IsDeleted)
		assert.NotNil(t, deleted.DeletedAt)
		assert.Equal(t, "wrong customer", deleted.DeletedReason)
		require.NotNil(t, deleted.DeletedByID)
		assert.Equal(t, f.owner.ID, *deleted.DeletedByID)

		// Totals are untouched so a restore is exact
		assert.Equal(t, "10.00", deleted.Total.StringFixed(2))
	})

	t.Run("requires a reason", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.openAccount(t)

		_, err := f.svc.DeleteAccount(context.Background(), &DeleteAccountInput{
			OwnerID:   f.owner.ID,
			AccountID: account.ID,
			Reason:    "   ",
			Password:  testPassword,
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("wrong password leaves account active", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.openAccount(t)

		_, err := f.svc.DeleteAccount(context.Background(), &DeleteAccountInput{
			OwnerID:   f.owner.ID,
			AccountID: account.ID,
			Reason:    "typo",
			Password:  "not-the-password",
		})
		require.ErrorIs(t, err, apperror.ErrIncorrectPassword)

		stored, err := f.svc.GetAccount(context.Background(), f.owner.ID, account.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsDeleted)
	})

	t.Run("cross owner behaves like missing", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.openAccount(t)

		_, err := f.svc.DeleteAccount(context.Background(), &DeleteAccountInput{
			OwnerID:   uuid.New(),
			AccountID: account.ID,
			Reason:    "theirs",
			Password:  testPassword,
		})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})
}

func TestRestoreAccount(t *testing.T) {
	t.Run("clears delete metadata", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.openAccount(t)
		f.deleteAccount(t, account.ID)

		restored, changed, err := f.svc.RestoreAccount(context.Background(), &RestoreAccountInput{
			OwnerID:   f.owner.ID,
			AccountID: account.ID,
			Password:  testPassword,
		})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.False(t, restored.IsDeleted)
		assert.Nil(t, restored.DeletedAt)
		assert.Empty(t, restored.DeletedReason)
		assert.Nil(t, restored.DeletedByID)
	})

	t.Run("restoring an active account is a no-op without password check", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.openAccount(t)

		restored, changed, err := f.svc.RestoreAccount(context.Background(), &RestoreAccountInput{
			OwnerID:   f.owner.ID,
			AccountID: account.ID,
			Password:  "whatever",
		})
		require.NoError(t, err)
		assert.False(t, changed)
		assert.False(t, restored.IsDeleted)
	})

	t.Run("wrong password leaves account deleted", func(t *testing.T) {
		f := newAccountFixture(t)
		account := f.openAccount(t)
		f.deleteAccount(t, account.ID)

		_, _, err := f.svc.RestoreAccount(context.Background(), &RestoreAccountInput{
			OwnerID:   f.owner.ID,
			AccountID: account.ID,
			Password:  "not-the-password",
		})
		require.ErrorIs(t, err, apperror.ErrIncorrectPassword)

		stored, err := f.svc.GetAccount(context.Background(), f.owner.ID, account.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsDeleted)
	})
}

func TestDashboard(t *testing.T) {
	f := newAccountFixture(t)

	paid := f.openAccount(t)
	_, err := NewPaymentService(newFakePaymentRepo(f.accountRepo), f.accountRepo).
		RecordPayment(context.Background(), &RecordPaymentInput{
			OwnerID:   f.owner.ID,
			AccountID: paid.ID,
			Amount:    decimal.RequireFromString("10.00"),
		})
	require.NoError(t, err)

	open := f.openAccount(t)

	overdue, err := f.svc.CreateAccount(context.Background(), &CreateAccountInput{
		OwnerID:    f.owner.ID,
		CustomerID: f.customer.ID,
		DueDate:    datePtr(2020, time.January, 2),
		Items:      []LineItemInput{{Product: "Farinha", Quantity: 1, UnitPrice: decimal.New(8, 0)}},
	})
	require.NoError(t, err)

	deleted := f.openAccount(t)
	f.deleteAccount(t, deleted.ID)

	dashboard, err := f.svc.GetDashboard(context.Background(), f.owner.ID, "")
	require.NoError(t, err)

	require.Len(t, dashboard.Paid, 1)
	assert.Equal(t, paid.ID, dashboard.Paid[0].ID)
	require.Len(t, dashboard.Open, 1)
	assert.Equal(t, open.ID, dashboard.Open[0].ID)
	require.Len(t, dashboard.Overdue, 1)
	assert.Equal(t, overdue.ID, dashboard.Overdue[0].ID)

	deletedList, err := f.svc.ListDeleted(context.Background(), f.owner.ID, "")
	require.NoError(t, err)
	require.Len(t, deletedList, 1)
	assert.Equal(t, deleted.ID, deletedList[0].ID)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}
