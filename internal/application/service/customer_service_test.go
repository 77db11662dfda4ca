package service

import (
	"context"
	"testing"

	"github.com/fiadopro/fiado-api/pkg/apperror"
	"github.com/fiadopro/fiado-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerCRUD(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())
	ownerID := uuid.New()

	phone := "+55 11 98888-7777"
	customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		OwnerID: ownerID,
		Name:    "Joao",
		Phone:   &phone,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, customer.ID)

	t.Run("get scoped to owner", func(t *testing.T) {
		got, err := svc.GetCustomer(context.Background(), ownerID, customer.ID)
		require.NoError(t, err)
		assert.Equal(t, "Joao", got.Name)

		_, err = svc.GetCustomer(context.Background(), uuid.New(), customer.ID)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("partial update", func(t *testing.T) {
		name := "Joao Pedro"
		updated, err := svc.UpdateCustomer(context.Background(), &UpdateCustomerInput{
			OwnerID: ownerID,
			ID:      customer.ID,
			Name:    &name,
		})
		require.NoError(t, err)
		assert.Equal(t, "Joao Pedro", updated.Name)
		require.NotNil(t, updated.Phone)
		assert.Equal(t, phone, *updated.Phone)
	})

	t.Run("list with search", func(t *testing.T) {
		_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{OwnerID: ownerID, Name: "Ana"})
		require.NoError(t, err)

		result, err := svc.ListCustomers(context.Background(), ownerID, &pagination.PaginationParams{Page: 1, PerPage: 10}, "ana")
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Ana", result.Items[0].Name)
		assert.Equal(t, int64(1), result.Pagination.Total)
	})
}
