package dto

import (
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DepositRequest credits the caller's account. Currency defaults to the
// bank's base currency.
type DepositRequest struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

// WithdrawRequest debits the caller's account in base units.
type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TransferRequest moves base units to another account, possibly at another bank.
type TransferRequest struct {
	ToBankID    string          `json:"toBankID" binding:"required"`
	ToAccountID string          `json:"toAccountID" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

// ListTransactionsParams defines query parameters for paging an account history.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=0,max=200"`
	NextToken string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID   string                      `json:"transactionID"`
	BankID          string                      `json:"bankID"`
	AccountID       string                      `json:"accountID"`
	FromBankID      string                      `json:"fromBankID"`
	FromAccountID   string                      `json:"fromAccountID"`
	ToBankID        *string                     `json:"toBankID,omitempty"`
	ToAccountID     *string                     `json:"toAccountID,omitempty"`
	ReferenceID     *string                     `json:"referenceID,omitempty"`
	TransactionType domain.TransactionType      `json:"transactionType"`
	Narrative       domain.TransactionNarrative `json:"narrative"`
	Amount          decimal.Decimal             `json:"amount"`
	TransactionDate time.Time                   `json:"transactionDate"`
}

// ListTransactionsResponse is one page of an account history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		BankID:          t.BankID,
		AccountID:       t.AccountID,
		FromBankID:      t.FromBankID,
		FromAccountID:   t.FromAccountID,
		ToBankID:        t.ToBankID,
		ToAccountID:     t.ToAccountID,
		ReferenceID:     t.ReferenceID,
		TransactionType: t.TransactionType,
		Narrative:       t.Narrative,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(t)
	}
	return res
}

// ReconciliationResponse compares an account's stored balance with the
// balance replayed from its journal.
type ReconciliationResponse struct {
	AccountID      string          `json:"accountID"`
	StoredBalance  decimal.Decimal `json:"storedBalance"`
	JournalBalance decimal.Decimal `json:"journalBalance"`
	Transactions   int             `json:"transactions"`
	Consistent     bool            `json:"consistent"`
}
