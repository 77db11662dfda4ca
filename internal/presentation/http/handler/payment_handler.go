package handler

import (
	"fmt"

	"github.com/fiadopro/fiado-api/internal/application/service"
	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/enum"
	"github.com/fiadopro/fiado-api/internal/presentation/http/dto/request"
	"github.com/fiadopro/fiado-api/internal/presentation/http/dto/response"
	"github.com/fiadopro/fiado-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
	auditService   *service.AuditService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService, auditService *service.AuditService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, auditService: auditService}
}

// Record applies a payment to an account
// @Summary Record Payment
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body request.RecordPaymentRequest true "Payment data"
// @Success 201 {object} response.APIResponse
// @Router /accounts/{id}/payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
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

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		OwnerID:     *userID,
		AccountID:   accountID,
		Amount:      req.Amount,
		EffectiveAt: parseDate(req.EffectiveAt),
		Note:        req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Record(c.Request.Context(), userID, enum.AuditActionPaymentRecorded,
		fmt.Sprintf("Payment of %s recorded on account %s", payment.Amount.StringFixed(2), accountID),
		requestContext(c, entity.JSONMap{
			"account_id": accountID.String(),
			"payment_id": payment.ID.String(),
			"amount":     payment.Amount.StringFixed(2),
		}))

	response.Created(c, "Payment recorded", payment)
}

// Remove deletes a payment from an account
// @Summary Remove Payment
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID"
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} response.APIResponse
// @Router /accounts/{id}/payments/{payment_id} [delete]
func (h *PaymentHandler) Remove(c *gin.Context) {
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

	paymentID, err := utils.ParseUUID(c.Param("payment_id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	account, err := h.paymentService.RemovePayment(c.Request.Context(), *userID, accountID, paymentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment removed", account)
}
