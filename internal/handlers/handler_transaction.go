package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles ledger transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: transactionService}

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:transaction_id", h.getTransaction)
		txns.PUT("/:transaction_id", h.updateTransaction)
		txns.DELETE("/:transaction_id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param body body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Building not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Newest first. Pass nextToken from the previous page to continue.
// @Tags transactions
// @Produce json
// @Param buildingId query string false "Building ID"
// @Param category query string false "REVENUE or EXPENSE"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if !bindQuery(c, &params) {
		return
	}
	txns, nextToken, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	logger.Debug("Listed transactions", slog.Int("count", len(txns)), slog.Bool("has_more", nextToken != ""))
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, nextToken))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	txn, err := h.transactionService.GetTransaction(c.Request.Context(), userID, c.Param("transaction_id"))
	if err != nil {
		respondError(c, err, "Failed to get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Param body body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, c.Param("transaction_id"), req)
	if err != nil {
		respondError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param transaction_id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, c.Param("transaction_id")); err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
