package entity

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fiadopro/fiado-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(product string, qty int, price string) LineItem {
	return LineItem{Product: product, Quantity: qty, UnitPrice: dec(price)}
}

func payment(amount string) Payment {
	return Payment{Amount: dec(amount)}
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func TestRecompute(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local)

	t.Run("no items no payments is paid at zero", func(t *testing.T) {
		a := &Account{}
		a.Recompute(now)

		assert.True(t, a.Total.IsZero())
		assert.True(t, a.Balance.IsZero())
		assert.Equal(t, enum.AccountStatusPaid, a.Status)
	})

	t.Run("open with outstanding balance", func(t *testing.T) {
		a := &Account{
			Items:    []LineItem{item("Cafe", 2, "5.50"), item("Pao", 1, "4.00")},
			Payments: []Payment{payment("5.00")},
		}
		a.Recompute(now)

		assert.Equal(t, "15.00", a.Total.StringFixed(2))
		assert.Equal(t, "10.00", a.Balance.StringFixed(2))
		assert.Equal(t, enum.AccountStatusOpen, a.Status)
	})

	t.Run("exact payoff is paid", func(t *testing.T) {
		a := &Account{
			Items:    []LineItem{item("Cerveja", 3, "8.33")},
			Payments: []Payment{payment("24.99")},
		}
		a.Recompute(now)

		assert.Equal(t, "24.99", a.Total.StringFixed(2))
		assert.True(t, a.Balance.IsZero())
		assert.Equal(t, enum.AccountStatusPaid, a.Status)
	})

	t.Run("overpayment clamps balance to zero", func(t *testing.T) {
		a := &Account{
			Items:    []LineItem{item("Leite", 1, "7.50")},
			Payments: []Payment{payment("10.00")},
		}
		a.Recompute(now)

		assert.True(t, a.Balance.IsZero())
		assert.Equal(t, enum.AccountStatusPaid, a.Status)
	})

	t.Run("decimal sums stay exact", func(t *testing.T) {
		a := &Account{Items: []LineItem{item("Bala", 10, "0.10")}}
		a.Recompute(now)

		assert.Equal(t, "1.00", a.Total.StringFixed(2))
		assert.Equal(t, "1.00", a.Balance.StringFixed(2))
	})

	t.Run("past due date with balance is overdue", func(t *testing.T) {
		a := &Account{
			DueDate: date(2026, time.March, 14),
			Items:   []LineItem{item("Arroz", 1, "20.00")},
		}
		a.Recompute(now)

		assert.Equal(t, enum.AccountStatusOverdue, a.Status)
	})

	t.Run("due today is still open", func(t *testing.T) {
		a := &Account{
			DueDate: date(2026, time.March, 15),
			Items:   []LineItem{item("Arroz", 1, "20.00")},
		}
		a.Recompute(now)

		assert.Equal(t, enum.AccountStatusOpen, a.Status)
	})

	t.Run("time of day does not affect the overdue boundary", func(t *testing.T) {
		due := time.Date(2026, time.March, 15, 23, 59, 0, 0, time.Local)
		a := &Account{
			DueDate: &due,
			Items:   []LineItem{item("Arroz", 1, "20.00")},
		}
		a.Recompute(time.Date(2026, time.March, 15, 0, 0, 1, 0, time.Local))

		assert.Equal(t, enum.AccountStatusOpen, a.Status)
	})

	t.Run("paid wins over overdue", func(t *testing.T) {
		a := &Account{
			DueDate:  date(2020, time.January, 1),
			Items:    []LineItem{item("Feijao", 1, "12.00")},
			Payments: []Payment{payment("12.00")},
		}
		a.Recompute(now)

		assert.Equal(t, enum.AccountStatusPaid, a.Status)
	})

	t.Run("no due date never goes overdue", func(t *testing.T) {
		a := &Account{Items: []LineItem{item("Oleo", 1, "9.00")}}
		a.Recompute(now)

		assert.Equal(t, enum.AccountStatusOpen, a.Status)
	})

	t.Run("idempotent", func(t *testing.T) {
		a := &Account{
			DueDate:  date(2026, time.March, 1),
			Items:    []LineItem{item("Acucar", 2, "6.25")},
			Payments: []Payment{payment("4.00")},
		}
		a.Recompute(now)
		total, balance, status := a.Total, a.Balance, a.Status

		a.Recompute(now)

		assert.True(t, a.Total.Equal(total))
		assert.True(t, a.Balance.Equal(balance))
		assert.Equal(t, status, a.Status)
	})
}

func TestAccountMarshalJSON(t *testing.T) {
	a := Account{
		Total:   dec("25"),
		Balance: dec("10.5"),
	}

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "25.00", out["total"])
	assert.Equal(t, "10.50", out["balance"])
}

func TestLineItemSubtotal(t *testing.T) {
	li := item("Farinha", 4, "3.75")
	assert.Equal(t, "15.00", li.Subtotal().StringFixed(2))
}

func TestRequestContextTruncate(t *testing.T) {
	rc := RequestContext{
		Path:      "/" + strings.Repeat("p", 300),
		Method:    "PROPPATCHX",
		IP:        "203.0.113.9",
		UserAgent: strings.Repeat("u", 600),
	}

	truncated := rc.Truncate()

	assert.Len(t, truncated.Path, AuditPathMaxLen)
	assert.Len(t, truncated.Method, AuditMethodMaxLen)
	assert.Len(t, truncated.UserAgent, AuditUserAgentMaxLen)
	assert.Equal(t, "203.0.113.9", truncated.IP)

	// Already-short values pass through unchanged
	short := RequestContext{Path: "/accounts", Method: "GET"}.Truncate()
	assert.Equal(t, "/accounts", short.Path)
	assert.Equal(t, "GET", short.Method)
}
