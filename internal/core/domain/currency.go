package domain

import "github.com/shopspring/decimal"

// BaseCurrency is seeded into every bank at rate 1.
const BaseCurrency = "INR"

// Currency is a bank-scoped unit with an exchange rate into the bank's base
// currency. Names are unique per bank.
type Currency struct {
	BankID       string          `json:"bankID"`
	Name         string          `json:"name"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// ToBase converts an amount in this currency to base units, rounded to
// AmountScale places.
func (c Currency) ToBase(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.ExchangeRate).Round(AmountScale)
}

// IsBase reports whether c is the bank's base currency.
func (c Currency) IsBase() bool {
	return c.Name == BaseCurrency
}
