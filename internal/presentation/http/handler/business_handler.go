package handler

import (
	"github.com/fiadopro/fiado-api/internal/application/service"
	"github.com/fiadopro/fiado-api/internal/presentation/http/dto/request"
	"github.com/fiadopro/fiado-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// BusinessHandler handles business profile HTTP requests
type BusinessHandler struct {
	businessService *service.BusinessService
}

// NewBusinessHandler creates a new business handler
func NewBusinessHandler(businessService *service.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

// Get returns the merchant's business profile
// @Summary Get Business
// @Tags business
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /business [get]
func (h *BusinessHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	business, err := h.businessService.GetBusiness(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if business == nil {
		response.NotFound(c, "Business profile not found")
		return
	}

	response.OK(c, "Business retrieved", business)
}

// Save creates or updates the merchant's business profile
// @Summary Save Business
// @Tags business
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.BusinessRequest true "Business data"
// @Success 200 {object} response.APIResponse
// @Router /business [put]
func (h *BusinessHandler) Save(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.BusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	business, err := h.businessService.SaveBusiness(c.Request.Context(), *userID, &service.BusinessInput{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Business saved", business)
}
