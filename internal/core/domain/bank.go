package domain

import "github.com/shopspring/decimal"

// Bank is the root of a tenant. Every account, employee, currency and
// transaction belongs to exactly one bank.
type Bank struct {
	BankID string          `json:"bankID"`
	Name   string          `json:"name"`
	IMPS   decimal.Decimal `json:"imps"`  // same-bank IMPS charge
	RTGS   decimal.Decimal `json:"rtgs"`  // same-bank RTGS charge
	OIMPS  decimal.Decimal `json:"oimps"` // other-bank IMPS charge
	ORTGS  decimal.Decimal `json:"ortgs"` // other-bank RTGS charge
	SoftDeleteFields
}

// Default transfer charges for a new bank, in percent.
var (
	DefaultIMPS  = decimal.NewFromInt(5)
	DefaultRTGS  = decimal.Zero
	DefaultOIMPS = decimal.NewFromInt(6)
	DefaultORTGS = decimal.NewFromInt(2)
)
