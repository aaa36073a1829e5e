package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
	"github.com/dukaanbook/dukaanbook_backend/internal/dto"
	"github.com/dukaanbook/dukaanbook_backend/internal/middleware"
)

// customerHandler handles HTTP requests for customers
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs}
}

// registerCustomerRoutes registers customer management routes
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	customerGroup := rg.Group("/customers")
	{
		customerGroup.POST("", h.createCustomer)
		customerGroup.GET("", h.listCustomers)
		customerGroup.GET("/:customer_id", h.getCustomer)
	}
}

// createCustomer godoc
// @Summary Register a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer to register"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid customer payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !authorizeShop(c, req.ShopID) {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// getCustomer godoc
// @Summary Get a customer by ID
// @Tags customers
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} map[string]string "Not found"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /customers/{customer_id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	if !authorizeShop(c, customer.ShopID) {
		return
	}
	c.JSON(http.StatusOK, customer)
}

// listCustomers godoc
// @Summary List a shop's customers
// @Tags customers
// @Produce json
// @Param shopId query string false "Shop ID (defaults to the caller's shop)"
// @Success 200 {array} domain.Customer
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, ok := resolveScope(c)
	if !ok {
		return
	}
	shopID, ok := scope.ShopID()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Listing customers requires a single shop"})
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), shopID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}
