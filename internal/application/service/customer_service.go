package service

import (
	"context"
	"time"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/repository"
	"github.com/fiadopro/fiado-api/pkg/apperror"
	"github.com/fiadopro/fiado-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerService handles customer-related operations. Customers are never
// deleted because accounts reference them.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	OwnerID   uuid.UUID
	Name      string
	TaxID     *string
	Phone     *string
	Email     *string
	Address   *string
	BirthDate *time.Time
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		OwnerID:   input.OwnerID,
		Name:      input.Name,
		TaxID:     input.TaxID,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		BirthDate: input.BirthDate,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, ownerID, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	OwnerID   uuid.UUID
	ID        uuid.UUID
	Name      *string
	TaxID     *string
	Phone     *string
	Email     *string
	Address   *string
	BirthDate *time.Time
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil && *input.Name != "" {
		customer.Name = *input.Name
	}
	if input.TaxID != nil {
		customer.TaxID = input.TaxID
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.BirthDate != nil {
		customer.BirthDate = input.BirthDate
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// ListCustomers lists customers with page-based pagination
func (s *CustomerService) ListCustomers(ctx context.Context, ownerID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, ownerID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// ListCustomersWithCursor lists customers with cursor-based pagination
func (s *CustomerService) ListCustomersWithCursor(ctx context.Context, ownerID uuid.UUID, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Customer], error) {
	customers, err := s.customerRepo.ListWithCursor(ctx, ownerID, params, search)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(customers, params.Limit,
		func(c entity.Customer) string { return c.ID.String() },
		func(c entity.Customer) time.Time { return c.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}
