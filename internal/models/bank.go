package models

import "github.com/shopspring/decimal"

// Bank is the persisted form of a bank.
type Bank struct {
	BankID string          `db:"bank_id"`
	Name   string          `db:"name"`
	IMPS   decimal.Decimal `db:"imps"`
	RTGS   decimal.Decimal `db:"rtgs"`
	OIMPS  decimal.Decimal `db:"oimps"`
	ORTGS  decimal.Decimal `db:"ortgs"`
	SoftDeleteFields
}
