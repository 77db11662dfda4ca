package handler

import (
	"strconv"

	"github.com/fiadopro/fiado-api/internal/application/service"
	"github.com/fiadopro/fiado-api/internal/presentation/http/dto/request"
	"github.com/fiadopro/fiado-api/internal/presentation/http/dto/response"
	"github.com/fiadopro/fiado-api/pkg/pagination"
	"github.com/fiadopro/fiado-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer HTTP requests. Customers have no delete
// endpoint because accounts reference them.
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List handles listing customers with pagination
// @Summary List Customers
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param cursor query string false "Cursor for keyset pagination"
// @Param search query string false "Search query"
// @Success 200 {object} response.APIResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	search := c.Query("search")

	// Cursor pagination when a cursor or limit is supplied
	if c.Query("cursor") != "" || c.Query("limit") != "" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
		params := &pagination.CursorParams{
			Cursor: c.Query("cursor"),
			Limit:  limit,
		}
		params.Validate()

		result, err := h.customerService.ListCustomersWithCursor(c.Request.Context(), *userID, params, search)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.OK(c, "Customers retrieved", result)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	result, err := h.customerService.ListCustomers(c.Request.Context(), *userID, params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved", result)
}

// Create handles customer creation
// @Summary Create Customer
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateCustomerRequest true "Customer data"
// @Success 201 {object} response.APIResponse
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		OwnerID:   *userID,
		Name:      req.Name,
		TaxID:     req.TaxID,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		BirthDate: parseDate(req.BirthDate),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created", customer)
}

// Get retrieves a single customer
// @Summary Get Customer
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.APIResponse
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	customerID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), *userID, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved", customer)
}

// Update handles customer updates
// @Summary Update Customer
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body request.UpdateCustomerRequest true "Customer data"
// @Success 200 {object} response.APIResponse
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	customerID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		OwnerID:   *userID,
		ID:        customerID,
		Name:      req.Name,
		TaxID:     req.TaxID,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		BirthDate: parseDate(req.BirthDate),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated", customer)
}
