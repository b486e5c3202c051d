package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles staff requests on customer accounts.
type accountHandler struct {
	bankService portssvc.BankSvcFacade
}

func newAccountHandler(bs portssvc.BankSvcFacade) *accountHandler {
	return &accountHandler{bankService: bs}
}

// registerAccountRoutes registers routes related to customer accounts.
func registerAccountRoutes(bank *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newAccountHandler(bankService)

	accounts := bank.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("/:accountID", h.getAccount)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.DELETE("/:accountID", h.deleteAccount)
		accounts.GET("/:accountID/transactions", h.listAccountTransactions)
		accounts.GET("/:accountID/reconcile", h.reconcileAccount)
	}
}

// createAccount godoc
// @Summary Open account
// @Description Opens a customer account credited with the opening balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	account, err := h.bankService.AddAccount(c.Request.Context(), c.Param("bankID"), p.ID, req)
	if err != nil {
		respondWithError(c, err, "create account")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account opened", slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get account
// @Description Retrieves a customer account of the bank.
// @Tags accounts
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.bankService.GetAccount(c.Request.Context(), c.Param("bankID"), c.Param("accountID"))
	if err != nil {
		respondWithError(c, err, "retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update account
// @Description Changes a customer account's name, pin or type.
// @Tags accounts
// @Accept json
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param accountID path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/accounts/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	account, err := h.bankService.UpdateAccount(c.Request.Context(), c.Param("bankID"), p.ID, c.Param("accountID"), req)
	if err != nil {
		respondWithError(c, err, "update account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Close account
// @Description Deactivates a customer account. Its journal is kept.
// @Tags accounts
// @Param bankID path string true "Bank ID"
// @Param accountID path string true "Account ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/accounts/{accountID} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	if err := h.bankService.DeleteAccount(c.Request.Context(), c.Param("bankID"), p.ID, c.Param("accountID")); err != nil {
		respondWithError(c, err, "delete account")
		return
	}
	c.Status(http.StatusNoContent)
}

// listAccountTransactions godoc
// @Summary List account transactions
// @Description Pages through a customer account's journal in date order.
// @Tags accounts
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param accountID path string true "Account ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/accounts/{accountID}/transactions [get]
func (h *accountHandler) listAccountTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	page, err := h.bankService.ListTransactions(c.Request.Context(), c.Param("bankID"), c.Param("accountID"), params)
	if err != nil {
		respondWithError(c, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}

// reconcileAccount godoc
// @Summary Reconcile account
// @Description Replays the account's journal and compares it with the stored balance.
// @Tags accounts
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/accounts/{accountID}/reconcile [get]
func (h *accountHandler) reconcileAccount(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	report, err := h.bankService.ReconcileAccount(c.Request.Context(), c.Param("bankID"), p.ID, c.Param("accountID"))
	if err != nil {
		respondWithError(c, err, "reconcile account")
		return
	}
	c.JSON(http.StatusOK, report)
}
