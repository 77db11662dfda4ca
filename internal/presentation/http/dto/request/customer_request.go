package request

// CreateCustomerRequest represents the create customer request
type CreateCustomerRequest struct {
	Name      string  `json:"name" binding:"required,min=2,max=255"`
	TaxID     *string `json:"tax_id" binding:"omitempty,max=20"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Address   *string `json:"address" binding:"omitempty,max=255"`
	BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateCustomerRequest represents the update customer request
type UpdateCustomerRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=255"`
	TaxID     *string `json:"tax_id" binding:"omitempty,max=20"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Address   *string `json:"address" binding:"omitempty,max=255"`
	BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

// BusinessRequest represents the save business profile request
type BusinessRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	TaxID   string `json:"tax_id" binding:"omitempty,max=20"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Address string `json:"address" binding:"omitempty,max=255"`
}
