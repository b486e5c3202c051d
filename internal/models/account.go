package models

import "github.com/shopspring/decimal"

// Account is the persisted form of a customer account.
type Account struct {
	AccountID   string          `db:"account_id"`
	BankID      string          `db:"bank_id"`
	Username    string          `db:"username"`
	Name        string          `db:"name"`
	AccountType string          `db:"account_type"`
	PinHash     string          `db:"pin_hash"`
	Balance     decimal.Decimal `db:"balance"`
	SoftDeleteFields
}
