package handler

import (
	"strconv"

	"github.com/fiadopro/fiado-api/internal/application/service"
	"github.com/fiadopro/fiado-api/internal/presentation/http/dto/response"
	"github.com/fiadopro/fiado-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// AuditHandler handles audit trail HTTP requests
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List returns the merchant's audit trail, most recent first
// @Summary List Audit Events
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Description filter"
// @Success 200 {object} response.APIResponse
// @Router /audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	result, err := h.auditService.ListEvents(c.Request.Context(), *userID, params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Audit events retrieved", result)
}
