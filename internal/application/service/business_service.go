package service

import (
	"context"
	"strings"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/repository"
	"github.com/fiadopro/fiado-api/pkg/apperror"
	"github.com/google/uuid"
)

// BusinessService manages the merchant's business profile
type BusinessService struct {
	businessRepo repository.BusinessRepository
}

// NewBusinessService creates a new business service
func NewBusinessService(businessRepo repository.BusinessRepository) *BusinessService {
	return &BusinessService{businessRepo: businessRepo}
}

// GetBusiness returns the business profile for the merchant, or nil when
// none has been saved yet
func (s *BusinessService) GetBusiness(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	return s.businessRepo.GetByOwner(ctx, ownerID)
}

// BusinessInput represents the business profile input
type BusinessInput struct {
	Name    string
	TaxID   string
	Phone   string
	Address string
}

// SaveBusiness creates or updates the merchant's business profile
func (s *BusinessService) SaveBusiness(ctx context.Context, ownerID uuid.UUID, input *BusinessInput) (*entity.Business, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewBadRequestError("Business name is required")
	}

	business := &entity.Business{
		OwnerID: ownerID,
		Name:    name,
		TaxID:   strings.TrimSpace(input.TaxID),
		Phone:   strings.TrimSpace(input.Phone),
		Address: strings.TrimSpace(input.Address),
	}

	if err := s.businessRepo.Upsert(ctx, business); err != nil {
		return nil, err
	}

	return business, nil
}
