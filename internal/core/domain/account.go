package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType represents the kind of customer account.
type AccountType string

const (
	Savings AccountType = "SAVINGS"
	Current AccountType = "CURRENT"
)

// OpeningBalance is credited to every new account.
var OpeningBalance = decimal.NewFromInt(1500)

// ParseAccountType validates a raw account type.
func ParseAccountType(raw string) (AccountType, error) {
	switch t := AccountType(raw); t {
	case Savings, Current:
		return t, nil
	default:
		return "", fmt.Errorf("unknown account type %q", raw)
	}
}

// Account is a customer account held at a bank. Balance is always the
// running sum of credits minus debits recorded against it.
type Account struct {
	AccountID   string          `json:"accountID"`
	BankID      string          `json:"bankID"`
	Username    string          `json:"username"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	PinHash     string          `json:"-"`
	Balance     decimal.Decimal `json:"balance"`
	SoftDeleteFields
}

// CanDebit reports whether amount can be taken from the account.
func (a Account) CanDebit(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.LessThanOrEqual(a.Balance)
}

// AccountRef addresses an account across banks.
type AccountRef struct {
	BankID    string `json:"bankID"`
	AccountID string `json:"accountID"`
}

// Ref returns the account's address.
func (a Account) Ref() AccountRef {
	return AccountRef{BankID: a.BankID, AccountID: a.AccountID}
}
