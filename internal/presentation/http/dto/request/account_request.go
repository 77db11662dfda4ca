package request

import "github.com/shopspring/decimal"

// LineItemRequest represents one product line on a tab
type LineItemRequest struct {
	Product   string          `json:"product" binding:"required,max=120"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateAccountRequest represents the open-tab request. DueDate uses the
// YYYY-MM-DD format.
type CreateAccountRequest struct {
	CustomerID string            `json:"customer_id" binding:"required,uuid"`
	DueDate    *string           `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Items      []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// AddItemRequest represents the add-line-item request
type AddItemRequest struct {
	Product   string          `json:"product" binding:"required,max=120"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// DeleteAccountRequest represents the soft-delete request. Both fields are
// bound loosely so the service can answer with a single message when
// either is missing.
type DeleteAccountRequest struct {
	Reason   string `json:"reason"`
	Password string `json:"password"`
}

// RestoreAccountRequest represents the restore request
type RestoreAccountRequest struct {
	Password string `json:"password"`
}

// RecordPaymentRequest represents the record-payment request. EffectiveAt
// uses the YYYY-MM-DD format and defaults to today.
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	EffectiveAt *string         `json:"effective_at" binding:"omitempty,datetime=2006-01-02"`
	Note        string          `json:"note" binding:"omitempty,max=200"`
}
