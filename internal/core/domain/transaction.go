package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction credits or debits its account.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// TransactionNarrative records why a transaction happened.
type TransactionNarrative string

const (
	NarrativeAccountCreation   TransactionNarrative = "ACCOUNT_CREATION"
	NarrativeDeposit           TransactionNarrative = "DEPOSIT"
	NarrativeWithdraw          TransactionNarrative = "WITHDRAW"
	NarrativeTransfer          TransactionNarrative = "TRANSFER"
	NarrativeRevertTransaction TransactionNarrative = "REVERT_TRANSACTION"
)

// AmountScale is the number of decimal places a stored amount may carry.
const AmountScale int32 = 4

// Transaction is one immutable ledger entry against a single account.
// Transfers produce two entries, a DEBIT on the payer and a CREDIT on the
// payee, both pointing at the payee through ToBankID/ToAccountID. Both legs
// share a ReferenceID, and the legs of a revert carry the ReferenceID of the
// transfer they undo.
type Transaction struct {
	TransactionID   string               `json:"transactionID"`
	BankID          string               `json:"bankID"`
	AccountID       string               `json:"accountID"`
	FromBankID      string               `json:"fromBankID"`
	FromAccountID   string               `json:"fromAccountID"`
	ToBankID        *string              `json:"toBankID,omitempty"`
	ToAccountID     *string              `json:"toAccountID,omitempty"`
	ReferenceID     *string              `json:"referenceID,omitempty"`
	TransactionType TransactionType      `json:"transactionType"`
	Narrative       TransactionNarrative `json:"narrative"`
	Amount          decimal.Decimal      `json:"amount"`
	TransactionDate time.Time            `json:"transactionDate"`
}

// IsTransfer reports whether the entry is one leg of a transfer.
func (t Transaction) IsTransfer() bool {
	return t.Narrative == NarrativeTransfer && t.ToBankID != nil && t.ToAccountID != nil
}

// TransferKey identifies the transfer an entry belongs to. Entries without a
// ReferenceID are their own transfer.
func (t Transaction) TransferKey() string {
	if t.ReferenceID != nil {
		return *t.ReferenceID
	}
	return t.TransactionID
}

// ValidAmount reports whether amount is positive and fits AmountScale.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Truncate(AmountScale))
}

// Validate checks the structural rules every persisted entry must satisfy.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return errors.New("transaction amount must be positive")
	}
	if !ValidAmount(t.Amount) {
		return errors.New("transaction amount has too many decimal places")
	}
	if t.TransactionType != Debit && t.TransactionType != Credit {
		return errors.New("transaction type must be DEBIT or CREDIT")
	}
	if (t.ToBankID == nil) != (t.ToAccountID == nil) {
		return errors.New("transfer counterparty must name both bank and account")
	}
	if t.Narrative == NarrativeTransfer && t.ToBankID == nil {
		return errors.New("transfer entry must name its counterparty")
	}
	return nil
}

// Payer returns the account that paid into this entry.
func (t Transaction) Payer() AccountRef {
	return AccountRef{BankID: t.FromBankID, AccountID: t.FromAccountID}
}

// Payee returns the transfer counterparty. ok is false for entries without one.
func (t Transaction) Payee() (ref AccountRef, ok bool) {
	if t.ToBankID == nil || t.ToAccountID == nil {
		return AccountRef{}, false
	}
	return AccountRef{BankID: *t.ToBankID, AccountID: *t.ToAccountID}, true
}
