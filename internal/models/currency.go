package models

import "github.com/shopspring/decimal"

// Currency is the persisted form of a bank currency.
type Currency struct {
	BankID       string          `db:"bank_id"`
	Name         string          `db:"name"`
	ExchangeRate decimal.Decimal `db:"exchange_rate"`
}
