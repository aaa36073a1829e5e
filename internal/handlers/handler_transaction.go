package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
	"github.com/dukaanbook/dukaanbook_backend/internal/dto"
	"github.com/dukaanbook/dukaanbook_backend/internal/middleware"
)

// transactionHandler handles HTTP requests for ledger entries
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers transaction CRUD routes
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	txnGroup := rg.Group("/transactions")
	{
		txnGroup.POST("", h.createTransaction)
		txnGroup.GET("", h.listTransactions)
		txnGroup.GET("/:transaction_id", h.getTransaction)
		txnGroup.PUT("/:transaction_id", h.updateTransaction)
		txnGroup.DELETE("/:transaction_id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a ledger entry
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction to record"
// @Success 201 {object} domain.Transaction
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid transaction payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !authorizeShop(c, req.ShopID) {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// getTransaction godoc
// @Summary Get a ledger entry by ID
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} domain.Transaction
// @Failure 404 {object} map[string]string "Not found"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	if !authorizeShop(c, txn.ShopID) {
		return
	}
	c.JSON(http.StatusOK, txn)
}

// listTransactions godoc
// @Summary List ledger entries
// @Tags transactions
// @Produce json
// @Param shopId query string false "Shop ID, or 'all' for superadmins"
// @Param customerId query string false "Restrict to one customer"
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {array} domain.Transaction
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	scope, ok := resolveScope(c)
	if !ok {
		return
	}

	txns, err := h.transactionService.ListTransactions(
		c.Request.Context(),
		scope,
		c.Query("customerId"),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

// updateTransaction godoc
// @Summary Update a ledger entry
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} domain.Transaction
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	if !authorizeShop(c, existing.ShopID) {
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("transaction_id"), req, userID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, txn)
}

// deleteTransaction godoc
// @Summary Delete a ledger entry
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	existing, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	if !authorizeShop(c, existing.ShopID) {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("transaction_id"), userID); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
