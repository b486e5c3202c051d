package mapping

import (
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		BankID:          d.BankID,
		AccountID:       d.AccountID,
		FromBankID:      d.FromBankID,
		FromAccountID:   d.FromAccountID,
		ToBankID:        d.ToBankID,
		ToAccountID:     d.ToAccountID,
		ReferenceID:     d.ReferenceID,
		TransactionType: string(d.TransactionType),
		Narrative:       string(d.Narrative),
		Amount:          d.Amount,
		TransactionDate: d.TransactionDate,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		BankID:          m.BankID,
		AccountID:       m.AccountID,
		FromBankID:      m.FromBankID,
		FromAccountID:   m.FromAccountID,
		ToBankID:        m.ToBankID,
		ToAccountID:     m.ToAccountID,
		ReferenceID:     m.ReferenceID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Narrative:       domain.TransactionNarrative(m.Narrative),
		Amount:          m.Amount,
		TransactionDate: m.TransactionDate,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	return mapSlice(ms, ToDomainTransaction)
}
