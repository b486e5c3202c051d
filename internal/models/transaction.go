package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted form of a ledger entry.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	BankID          string          `db:"bank_id"`
	AccountID       string          `db:"account_id"`
	FromBankID      string          `db:"from_bank_id"`
	FromAccountID   string          `db:"from_account_id"`
	ToBankID        *string         `db:"to_bank_id"`
	ToAccountID     *string         `db:"to_account_id"`
	ReferenceID     *string         `db:"reference_id"`
	TransactionType string          `db:"transaction_type"`
	Narrative       string          `db:"narrative"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionDate time.Time       `db:"transaction_date"`
}
