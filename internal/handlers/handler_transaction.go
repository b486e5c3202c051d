package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles staff requests on journal entries.
type transactionHandler struct {
	bankService portssvc.BankSvcFacade
}

func newTransactionHandler(bs portssvc.BankSvcFacade) *transactionHandler {
	return &transactionHandler{bankService: bs}
}

// registerTransactionRoutes registers routes related to journal entries.
func registerTransactionRoutes(bank *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newTransactionHandler(bankService)

	transactions := bank.Group("/transactions")
	{
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.POST("/:transactionID/revert", h.revertTransaction)
	}
}

// getTransaction godoc
// @Summary Get transaction
// @Description Retrieves one journal entry recorded under the bank.
// @Tags transactions
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	txn, err := h.bankService.GetTransaction(c.Request.Context(), c.Param("bankID"), p.ID, c.Param("transactionID"))
	if err != nil {
		respondWithError(c, err, "retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(*txn))
}

// revertTransaction godoc
// @Summary Revert transfer
// @Description Pays a transfer back from its payee to its payer and returns the two reversal entries.
// @Tags transactions
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param transactionID path string true "Transaction ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Not a transfer or payee cannot cover it"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/transactions/{transactionID}/revert [post]
func (h *transactionHandler) revertTransaction(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	transactionID := c.Param("transactionID")
	legs, err := h.bankService.RevertTransaction(c.Request.Context(), c.Param("bankID"), p.ID, transactionID)
	if err != nil {
		respondWithError(c, err, "revert transaction")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction reverted", slog.String("transaction_id", transactionID))
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(legs))
}
