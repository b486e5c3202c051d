package dto

import (
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a customer account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	Username    string             `json:"username" binding:"required"`
	Pin         string             `json:"pin" binding:"required,numeric"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=SAVINGS CURRENT"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// A nil Pin keeps the stored credential.
type UpdateAccountRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=1"`
	Pin         *string             `json:"pin" binding:"omitempty,numeric"`
	AccountType *domain.AccountType `json:"accountType" binding:"omitempty,oneof=SAVINGS CURRENT"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	BankID      string             `json:"bankID"`
	Username    string             `json:"username"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	Balance     decimal.Decimal    `json:"balance"`
	IsActive    bool               `json:"isActive"`
	CreatedOn   time.Time          `json:"createdOn"`
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		BankID:      acc.BankID,
		Username:    acc.Username,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		Balance:     acc.Balance,
		IsActive:    acc.IsActive,
		CreatedOn:   acc.CreatedOn,
	}
}
