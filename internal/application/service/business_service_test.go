package service

import (
	"context"
	"testing"

	"github.com/fiadopro/fiado-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveBusiness(t *testing.T) {
	svc := NewBusinessService(newFakeBusinessRepo())
	ownerID := uuid.New()

	t.Run("creates then updates the profile", func(t *testing.T) {
		created, err := svc.SaveBusiness(context.Background(), ownerID, &BusinessInput{
			Name:  "  Mercearia do Ze  ",
			TaxID: "12.345.678/0001-99",
		})
		require.NoError(t, err)
		assert.Equal(t, "Mercearia do Ze", created.Name)

		updated, err := svc.SaveBusiness(context.Background(), ownerID, &BusinessInput{
			Name:  "Mercearia Nova",
			Phone: "+55 11 99999-0000",
		})
		require.NoError(t, err)

		stored, err := svc.GetBusiness(context.Background(), ownerID)
		require.NoError(t, err)
		assert.Equal(t, updated.Name, stored.Name)
		assert.Equal(t, "+55 11 99999-0000", stored.Phone)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := svc.SaveBusiness(context.Background(), ownerID, &BusinessInput{Name: "   "})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})
}

func TestGetBusinessMissing(t *testing.T) {
	svc := NewBusinessService(newFakeBusinessRepo())

	business, err := svc.GetBusiness(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, business)
}
