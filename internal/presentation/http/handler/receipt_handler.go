package handler

import (
	"fmt"

	"github.com/fiadopro/fiado-api/internal/application/service"
	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/enum"
	"github.com/fiadopro/fiado-api/internal/presentation/http/dto/response"
	"github.com/fiadopro/fiado-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles receipt viewing and printing HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
	auditService   *service.AuditService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService, auditService *service.AuditService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService, auditService: auditService}
}

// AccountReceipt returns the receipt for a tab as JSON
// @Summary Account Receipt
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} response.APIResponse
// @Router /accounts/{id}/receipt [get]
func (h *ReceiptHandler) AccountReceipt(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	accountID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	receipt, err := h.receiptService.AccountReceipt(c.Request.Context(), *userID, accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Record(c.Request.Context(), userID, enum.AuditActionAccountReceiptViewed,
		fmt.Sprintf("Receipt for account %s viewed", accountID),
		requestContext(c, entity.JSONMap{"account_id": accountID.String()}))

	response.OK(c, "Receipt retrieved", receipt)
}

// PrintAccountReceipt sends the tab receipt to the thermal printer
// @Summary Print Account Receipt
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} response.APIResponse
// @Router /accounts/{id}/receipt/print [post]
func (h *ReceiptHandler) PrintAccountReceipt(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	accountID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	receipt, err := h.receiptService.PrintAccountReceipt(c.Request.Context(), *userID, accountID)
	if err != nil {
		if receipt != nil {
			// Receipt built but the printer failed; return it as JSON
			response.OK(c, "Printer unavailable, receipt returned as JSON", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	h.auditService.Record(c.Request.Context(), userID, enum.AuditActionAccountReceiptPrinted,
		fmt.Sprintf("Receipt for account %s printed", accountID),
		requestContext(c, entity.JSONMap{"account_id": accountID.String()}))

	response.OK(c, "Receipt printed", receipt)
}

// PaymentReceipt returns the receipt for a single payment as JSON
// @Summary Payment Receipt
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.APIResponse
// @Router /payments/{id}/receipt [get]
func (h *ReceiptHandler) PaymentReceipt(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	paymentID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	receipt, err := h.receiptService.PaymentReceipt(c.Request.Context(), *userID, paymentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Record(c.Request.Context(), userID, enum.AuditActionPaymentReceiptViewed,
		fmt.Sprintf("Receipt for payment %s viewed", paymentID),
		requestContext(c, entity.JSONMap{"payment_id": paymentID.String()}))

	response.OK(c, "Receipt retrieved", receipt)
}

// PrintPaymentReceipt sends a payment receipt to the thermal printer
// @Summary Print Payment Receipt
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.APIResponse
// @Router /payments/{id}/receipt/print [post]
func (h *ReceiptHandler) PrintPaymentReceipt(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	paymentID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	receipt, err := h.receiptService.PrintPaymentReceipt(c.Request.Context(), *userID, paymentID)
	if err != nil {
		if receipt != nil {
			response.OK(c, "Printer unavailable, receipt returned as JSON", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	h.auditService.Record(c.Request.Context(), userID, enum.AuditActionPaymentReceiptPrinted,
		fmt.Sprintf("Receipt for payment %s printed", paymentID),
		requestContext(c, entity.JSONMap{"payment_id": paymentID.String()}))

	response.OK(c, "Receipt printed", receipt)
}

// PrinterStatus returns printer connection status
// @Summary Printer Status
// @Tags receipts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/status [get]
func (h *ReceiptHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status", h.receiptService.GetStatus())
}
