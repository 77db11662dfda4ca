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

// AccountHandler handles tab account HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
	auditService   *service.AuditService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *service.AccountService, auditService *service.AuditService) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// Dashboard returns the merchant's active accounts grouped by status
// @Summary Dashboard
// @Description Active accounts grouped into overdue, open and paid
// @Tags accounts
// @Security BearerAuth
// @Produce json
// @Param search query string false "Customer name filter"
// @Success 200 {object} response.APIResponse
// @Router /accounts [get]
func (h *AccountHandler) Dashboard(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	dashboard, err := h.accountService.GetDashboard(c.Request.Context(), *userID, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Accounts retrieved", dashboard)
}

// Create opens a new tab
// @Summary Create Account
// @Tags accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateAccountRequest true "Account data"
// @Success 201 {object} response.APIResponse
// @Router /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customerID, err := utils.ParseUUID(req.CustomerID)
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	items := make([]service.LineItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.LineItemInput{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), &service.CreateAccountInput{
		OwnerID:    *userID,
		CustomerID: customerID,
		DueDate:    parseDate(req.DueDate),
		Items:      items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Record(c.Request.Context(), userID, enum.AuditActionAccountCreated,
		fmt.Sprintf("Account %s created", account.ID),
		requestContext(c, entity.JSONMap{"account_id": account.ID.String()}))

	response.Created(c, "Account created", account)
}

// Get retrieves a single account with items and payments
// @Summary Get Account
// @Tags accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} response.APIResponse
// @Router /accounts/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
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

	account, err := h.accountService.GetAccount(c.Request.Context(), *userID, accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Account retrieved", account)
}

// ListDeleted returns the merchant's soft-deleted accounts
// @Summary List Deleted Accounts
// @Tags accounts
// @Security BearerAuth
// @Produce json
// @Param search query string false "Customer name filter"
// @Success 200 {object} response.APIResponse
// @Router /accounts/deleted [get]
func (h *AccountHandler) ListDeleted(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	accounts, err := h.accountService.ListDeleted(c.Request.Context(), *userID, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deleted accounts retrieved", accounts)
}

// AddItem appends a line item to an account
// @Summary Add Item
// @Tags accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body request.AddItemRequest true "Item data"
// @Success 200 {object} response.APIResponse
// @Router /accounts/{id}/items [post]
func (h *AccountHandler) AddItem(c *gin.Context) {
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

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.accountService.AddItem(c.Request.Context(), &service.AddItemInput{
		OwnerID:   *userID,
		AccountID: accountID,
		Item: service.LineItemInput{
			Product:   req.Product,
			Quantity:  req.Quantity,
			UnitPrice: req.UnitPrice,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", account)
}

// RemoveItem deletes a line item from an account
// @Summary Remove Item
// @Tags accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID"
// @Param item_id path string true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /accounts/{id}/items/{item_id} [delete]
func (h *AccountHandler) RemoveItem(c *gin.Context) {
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

	itemID, err := utils.ParseUUID(c.Param("item_id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	account, err := h.accountService.RemoveItem(c.Request.Context(), *userID, accountID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed", account)
}

// Delete soft-deletes an account. Requires a reason and the merchant's
// password.
// @Summary Delete Account
// @Tags accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body request.DeleteAccountRequest true "Reason and password"
// @Success 200 {object} response.APIResponse
// @Router /accounts/{id}/delete [post]
func (h *AccountHandler) Delete(c *gin.Context) {
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

	var req request.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, err := h.accountService.DeleteAccount(c.Request.Context(), &service.DeleteAccountInput{
		OwnerID:   *userID,
		AccountID: accountID,
		Reason:    req.Reason,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.auditService.Record(c.Request.Context(), userID, enum.AuditActionAccountDeleted,
		fmt.Sprintf("Account %s deleted", account.ID),
		requestContext(c, entity.JSONMap{
			"account_id": account.ID.String(),
			"reason":     account.DeletedReason,
		}))

	response.OK(c, "Account deleted", account)
}

// Restore clears the soft-delete state of an account. Restoring an active
// account succeeds without changes.
// @Summary Restore Account
// @Tags accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body request.RestoreAccountRequest true "Password"
// @Success 200 {object} response.APIResponse
// @Router /accounts/{id}/restore [post]
func (h *AccountHandler) Restore(c *gin.Context) {
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

	var req request.RestoreAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	account, restored, err := h.accountService.RestoreAccount(c.Request.Context(), &service.RestoreAccountInput{
		OwnerID:   *userID,
		AccountID: accountID,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if !restored {
		response.OK(c, "Account is already active", account)
		return
	}

	h.auditService.Record(c.Request.Context(), userID, enum.AuditActionAccountRestored,
		fmt.Sprintf("Account %s restored", account.ID),
		requestContext(c, entity.JSONMap{"account_id": account.ID.String()}))

	response.OK(c, "Account restored", account)
}
