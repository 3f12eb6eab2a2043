package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Yeizermarrugo/BankSystem/internal/core/ports/services"
	"github.com/Yeizermarrugo/BankSystem/internal/dto"
	"github.com/Yeizermarrugo/BankSystem/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to the ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("/:id", h.getTransaction)
	}

	// Listing hangs off the owning account.
	rg.GET("/accounts/:id/transactions", h.listAccountTransactions)
}

// createTransaction records a transaction; transfers produce two ledger rows.
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	transactions, err := h.transactionService.RecordTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondList(c, http.StatusCreated, "Transaction recorded", len(transactions), dto.ToTransactionResponses(transactions))
}

// getTransaction retrieves a single ledger row.
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Transaction retrieved", dto.ToTransactionResponse(txn))
}

// listAccountTransactions retrieves a page of transactions for one account.
func (h *transactionHandler) listAccountTransactions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	page, err := h.transactionService.ListTransactionsByAccount(c.Request.Context(), c.Param("id"), userID, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondList(c, http.StatusOK, "Transactions retrieved", len(page.Transactions), page)
}
