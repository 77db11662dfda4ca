package entity

import (
	"encoding/json"
	"time"

	"github.com/fiadopro/fiado-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents a merchant's running credit tab for one customer.
//
// Total, Balance and Status are derived columns: they are recomputed from
// the account's line items and payments by Recompute and persisted in the
// same transaction as the child-record change that triggered them.
type Account struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"owner_id"`
	CustomerID uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	DueDate    *time.Time         `gorm:"type:date" json:"due_date,omitempty"`
	Total      decimal.Decimal    `gorm:"type:numeric(12,2);not null;default:0" json:"-"`
	Balance    decimal.Decimal    `gorm:"type:numeric(12,2);not null;default:0" json:"-"`
	Status     enum.AccountStatus `gorm:"default:0;index" json:"status"`

	// Soft delete. Accounts are never physically removed; a deleted
	// account stays addressable for restore and historical receipts.
	IsDeleted     bool       `gorm:"default:false;index" json:"is_deleted"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
	DeletedReason string     `gorm:"size:255" json:"deleted_reason,omitempty"`
	DeletedByID   *uuid.UUID `gorm:"type:uuid" json:"deleted_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Owner    User       `gorm:"foreignKey:OwnerID" json:"-"`
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []LineItem `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payments []Payment  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

// MarshalJSON renders the monetary columns with two decimal places
func (a Account) MarshalJSON() ([]byte, error) {
	type Alias Account
	return json.Marshal(&struct {
		Alias
		Total   string `json:"total"`
		Balance string `json:"balance"`
	}{
		Alias:   Alias(a),
		Total:   a.Total.StringFixed(2),
		Balance: a.Balance.StringFixed(2),
	})
}

// BeforeCreate generates a UUID before creating a new account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}

// Recompute derives (total, balance, status) from the loaded Items and
// Payments. It is pure with respect to its inputs and idempotent: calling
// it twice without an intervening child change yields identical results.
//
//	total   = sum of item subtotals
//	balance = max(total - sum of payments, 0)
//	status  = PAID when balance is zero, OVERDUE when a due date exists
//	          and is strictly before now's calendar date, OPEN otherwise
//
// The overdue boundary uses the server-local calendar date of now.
func (a *Account) Recompute(now time.Time) {
	total := decimal.Zero
	for _, item := range a.Items {
		total = total.Add(item.Subtotal())
	}

	paid := decimal.Zero
	for _, payment := range a.Payments {
		paid = paid.Add(payment.Amount)
	}

	balance := total.Sub(paid)
	switch {
	case balance.Sign() <= 0:
		balance = decimal.Zero
		a.Status = enum.AccountStatusPaid
	case a.DueDate != nil && beforeDate(*a.DueDate, now):
		a.Status = enum.AccountStatusOverdue
	default:
		a.Status = enum.AccountStatusOpen
	}

	a.Total = total
	a.Balance = balance
}

// beforeDate reports whether due falls on a calendar date strictly before
// now's local date. Time-of-day is ignored on both sides.
func beforeDate(due, now time.Time) bool {
	dy, dm, dd := due.Date()
	ny, nm, nd := now.Date()
	if dy != ny {
		return dy < ny
	}
	if dm != nm {
		return dm < nm
	}
	return dd < nd
}

// LineItem is one product line within an account. Its identity is
// immutable once created; there is no edit flow, only create and remove.
type LineItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Product   string          `gorm:"size:120;not null" json:"product"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"-"`
	CreatedAt time.Time       `json:"created_at"`

	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// MarshalJSON renders unit price and subtotal with two decimal places
func (li LineItem) MarshalJSON() ([]byte, error) {
	type Alias LineItem
	return json.Marshal(&struct {
		Alias
		UnitPrice string `json:"unit_price"`
		Subtotal  string `json:"subtotal"`
	}{
		Alias:     Alias(li),
		UnitPrice: li.UnitPrice.StringFixed(2),
		Subtotal:  li.Subtotal().StringFixed(2),
	})
}

// Subtotal returns quantity times unit price
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// BeforeCreate generates a UUID before creating a new line item
func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}

// Payment is a monetary amount applied against one account. EffectiveAt is
// the moment the customer actually paid; CreatedAt is when the record was
// entered. The two are kept distinct for audit fidelity.
type Payment struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"-"`
	EffectiveAt time.Time       `gorm:"not null;index" json:"effective_at"`
	Note        string          `gorm:"size:200" json:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`

	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// MarshalJSON renders the amount with two decimal places
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount string `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: p.Amount.StringFixed(2),
	})
}

// BeforeCreate generates a UUID and defaults the effective payment time
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.EffectiveAt.IsZero() {
		p.EffectiveAt = time.Now()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
