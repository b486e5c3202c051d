package accounting

import (
	"fmt"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the balance sign to a ledger entry: credits
// increase a customer balance and debits decrease it.
func CalculateSignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	switch txn.TransactionType {
	case domain.Credit:
		return txn.Amount, nil
	case domain.Debit:
		return txn.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type %q on %s", txn.TransactionType, txn.TransactionID)
	}
}

// ReplayBalance folds an account history into the balance it implies.
func ReplayBalance(history []domain.Transaction) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, txn := range history {
		signed, err := CalculateSignedAmount(txn)
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(signed)
	}
	return balance, nil
}

// Discrepancy is the difference between a stored balance and its journal.
type Discrepancy struct {
	AccountID string
	Stored    decimal.Decimal
	Journaled decimal.Decimal
}

func (d Discrepancy) Error() string {
	return fmt.Sprintf("account %s balance %s does not match journal total %s", d.AccountID, d.Stored, d.Journaled)
}

// Reconcile checks that account's stored balance equals the signed sum of
// its history. It returns a Discrepancy error when they differ.
func Reconcile(account domain.Account, history []domain.Transaction) error {
	journaled, err := ReplayBalance(history)
	if err != nil {
		return err
	}
	if !journaled.Equal(account.Balance) {
		return Discrepancy{AccountID: account.AccountID, Stored: account.Balance, Journaled: journaled}
	}
	return nil
}
