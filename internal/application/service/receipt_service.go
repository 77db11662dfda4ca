package service

import (
	"context"
	"fmt"
	"log"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/repository"
	"github.com/fiadopro/fiado-api/pkg/apperror"
	"github.com/fiadopro/fiado-api/pkg/printer"
	"github.com/google/uuid"
)

// ReceiptService composes tab and payment receipts and sends them to the
// thermal printer.
type ReceiptService struct {
	printer      printer.Printer
	accountRepo  repository.AccountRepository
	paymentRepo  repository.PaymentRepository
	businessRepo repository.BusinessRepository
	printerType  string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	p printer.Printer,
	accountRepo repository.AccountRepository,
	paymentRepo repository.PaymentRepository,
	businessRepo repository.BusinessRepository,
	printerType string,
) *ReceiptService {
	return &ReceiptService{
		printer:      p,
		accountRepo:  accountRepo,
		paymentRepo:  paymentRepo,
		businessRepo: businessRepo,
		printerType:  printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *ReceiptService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// AccountReceipt builds the receipt for a tab, deleted tabs included so
// the merchant can still reprint history.
func (s *ReceiptService) AccountReceipt(ctx context.Context, ownerID, accountID uuid.UUID) (*entity.Receipt, error) {
	account, err := s.accountRepo.GetWithChildren(ctx, ownerID, accountID, true)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}

	receipt := &entity.Receipt{
		Header:    s.header(ctx, ownerID),
		Reference: shortReference(account.ID),
		Date:      account.CreatedAt.Format("02/01/2006 15:04"),
		Status:    account.Status.String(),
		Total:     account.Total.StringFixed(2),
		Paid:      account.Total.Sub(account.Balance).StringFixed(2),
		Balance:   account.Balance.StringFixed(2),
	}

	if account.Customer != nil {
		receipt.Customer = account.Customer.Name
	}

	for _, item := range account.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Subtotal:  item.Subtotal().StringFixed(2),
		})
	}

	for _, payment := range account.Payments {
		rp := entity.ReceiptPayment{
			Date:   payment.EffectiveAt.Format("02/01/2006"),
			Amount: payment.Amount.StringFixed(2),
			Note:   payment.Note,
		}
		receipt.Payments = append(receipt.Payments, rp)
	}

	return receipt, nil
}

// PrintAccountReceipt builds an account receipt and sends it to the printer.
// The receipt is returned either way so the handler can fall back to JSON.
func (s *ReceiptService) PrintAccountReceipt(ctx context.Context, ownerID, accountID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.AccountReceipt(ctx, ownerID, accountID)
	if err != nil {
		return nil, err
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (account %s): %v", accountID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// PaymentReceipt builds the receipt for a single payment.
func (s *ReceiptService) PaymentReceipt(ctx context.Context, ownerID, paymentID uuid.UUID) (*entity.Receipt, error) {
	payment, err := s.paymentRepo.GetByID(ctx, ownerID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}

	account, err := s.accountRepo.GetWithChildren(ctx, ownerID, payment.AccountID, true)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperror.NewNotFoundError("Account")
	}

	receipt := &entity.Receipt{
		Header:    s.header(ctx, ownerID),
		Reference: shortReference(payment.ID),
		Date:      payment.EffectiveAt.Format("02/01/2006 15:04"),
		Status:    account.Status.String(),
		Total:     account.Total.StringFixed(2),
		Paid:      payment.Amount.StringFixed(2),
		Balance:   account.Balance.StringFixed(2),
	}

	if account.Customer != nil {
		receipt.Customer = account.Customer.Name
	}

	receipt.Payments = append(receipt.Payments, entity.ReceiptPayment{
		Date:   payment.EffectiveAt.Format("02/01/2006"),
		Amount: payment.Amount.StringFixed(2),
		Note:   payment.Note,
	})

	return receipt, nil
}

// PrintPaymentReceipt builds a payment receipt and sends it to the printer.
func (s *ReceiptService) PrintPaymentReceipt(ctx context.Context, ownerID, paymentID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.PaymentReceipt(ctx, ownerID, paymentID)
	if err != nil {
		return nil, err
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (payment %s): %v", paymentID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

func (s *ReceiptService) header(ctx context.Context, ownerID uuid.UUID) entity.ReceiptHeader {
	header := entity.ReceiptHeader{BusinessName: "Fiado Pro"}

	business, err := s.businessRepo.GetByOwner(ctx, ownerID)
	if err != nil || business == nil {
		return header
	}

	header.BusinessName = business.Name
	header.Address = business.Address
	header.Phone = business.Phone
	header.TaxID = business.TaxID
	return header
}

func shortReference(id uuid.UUID) string {
	return id.String()[:8]
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.BusinessName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("CNPJ: %s", r.Header.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Tab info
	doc.KeyValue("Ref:", r.Reference).
		KeyValue("Date:", r.Date)

	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	doc.KeyValue("Status:", r.Status)

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, item.Subtotal)
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", item.UnitPrice)
		}
	}

	if len(r.Payments) > 0 {
		doc.Separator('-')
		for _, payment := range r.Payments {
			label := "Payment " + payment.Date
			doc.KeyValue(label, "R$ "+payment.Amount)
			if payment.Note != "" {
				doc.TextF("  %s", payment.Note)
			}
		}
	}

	doc.Separator('-')

	// Totals
	doc.SetBold(true).
		KeyValue("TOTAL:", "R$ "+r.Total).
		SetBold(false).
		KeyValue("PAID:", "R$ "+r.Paid).
		SetBold(true).
		KeyValue("BALANCE:", "R$ "+r.Balance).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
