package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler serves account holders acting on their own account.
// The account is always taken from the token, never from the path.
type customerHandler struct {
	bankService portssvc.BankCustomerSvc
}

func newCustomerHandler(bs portssvc.BankCustomerSvc) *customerHandler {
	return &customerHandler{bankService: bs}
}

// registerCustomerRoutes registers the self-service routes.
func registerCustomerRoutes(me *gin.RouterGroup, bankService portssvc.BankCustomerSvc) {
	h := newCustomerHandler(bankService)

	me.GET("", h.getAccount)
	me.GET("/balance", h.getBalance)
	me.GET("/transactions", h.listTransactions)
	me.POST("/deposit", h.deposit)
	me.POST("/withdraw", h.withdraw)
	me.POST("/transfer", h.transfer)
}

// getAccount godoc
// @Summary Get own account
// @Tags me
// @Produce json
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *customerHandler) getAccount(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	account, err := h.bankService.GetAccount(c.Request.Context(), p.BankID, p.ID)
	if err != nil {
		respondWithError(c, err, "retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getBalance godoc
// @Summary Get own balance
// @Description Returns the balance in the bank's base currency.
// @Tags me
// @Produce json
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/balance [get]
func (h *customerHandler) getBalance(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	balance, err := h.bankService.GetBalance(c.Request.Context(), p.BankID, p.ID)
	if err != nil {
		respondWithError(c, err, "retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.AccountBalanceResponse{AccountID: p.ID, Balance: balance, Currency: domain.BaseCurrency})
}

// listTransactions godoc
// @Summary List own transactions
// @Description Pages through the caller's journal in date order.
// @Tags me
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/transactions [get]
func (h *customerHandler) listTransactions(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	page, err := h.bankService.ListTransactions(c.Request.Context(), p.BankID, p.ID, params)
	if err != nil {
		respondWithError(c, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, page)
}

// deposit godoc
// @Summary Deposit
// @Description Credits the caller's account. The amount is converted from the given currency into the base currency.
// @Tags me
// @Accept json
// @Produce json
// @Param deposit body dto.DepositRequest true "Deposit details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown currency"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/deposit [post]
func (h *customerHandler) deposit(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	txn, err := h.bankService.Deposit(c.Request.Context(), p.BankID, p.ID, req.Currency, req.Amount)
	if err != nil {
		respondWithError(c, err, "deposit")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Deposit recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// withdraw godoc
// @Summary Withdraw
// @Description Debits the caller's account in the base currency.
// @Tags me
// @Accept json
// @Produce json
// @Param withdraw body dto.WithdrawRequest true "Withdrawal amount"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or insufficient balance"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/withdraw [post]
func (h *customerHandler) withdraw(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	txn, err := h.bankService.Withdraw(c.Request.Context(), p.BankID, p.ID, req.Amount)
	if err != nil {
		respondWithError(c, err, "withdraw")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Withdrawal recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// transfer godoc
// @Summary Transfer
// @Description Moves base units from the caller's account to another account, possibly at another bank. Returns the debit entry.
// @Tags me
// @Accept json
// @Produce json
// @Param transfer body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount, insufficient balance or unknown payee"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /me/transfer [post]
func (h *customerHandler) transfer(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	txn, err := h.bankService.Transfer(c.Request.Context(), p.BankID, p.ID, req.ToBankID, req.ToAccountID, req.Amount)
	if err != nil {
		respondWithError(c, err, "transfer")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transfer recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("to_bank_id", req.ToBankID),
		slog.String("to_account_id", req.ToAccountID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}
