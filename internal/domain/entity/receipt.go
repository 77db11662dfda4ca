package entity

// ReceiptHeader holds the merchant details printed at the top of a receipt.
type ReceiptHeader struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	TaxID        string `json:"tax_id,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

// ReceiptPayment represents one recorded payment on an account receipt.
type ReceiptPayment struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// Receipt is a value object representing a printable tab receipt. It is
// NOT a database entity; it is composed from account/payment data at
// receipt time. Monetary fields are preformatted two-decimal strings.
type Receipt struct {
	Header    ReceiptHeader    `json:"header"`
	Reference string           `json:"reference"`
	Date      string           `json:"date"`
	Customer  string           `json:"customer,omitempty"`
	Status    string           `json:"status"`
	Items     []ReceiptItem    `json:"items,omitempty"`
	Payments  []ReceiptPayment `json:"payments,omitempty"`
	Total     string           `json:"total"`
	Paid      string           `json:"paid"`
	Balance   string           `json:"balance"`
}
