package services

import (
	"context"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// JournalReaderSvc defines read operations for the transaction journal
type JournalReaderSvc interface {
	// GetTransactionByID retrieves one entry, failing with ErrTransactionNotFound.
	GetTransactionByID(ctx context.Context, bankID, transactionID string) (*domain.Transaction, error)

	// GetTransactions retrieves an account's full history ordered by date,
	// failing with ErrNoTransactions when it is empty.
	GetTransactions(ctx context.Context, bankID, accountID string) ([]domain.Transaction, error)

	// ListTransactions retrieves one page of an account's history.
	ListTransactions(ctx context.Context, bankID, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// HasReversal reports whether the transfer identified by transferKey has
	// already been reverted.
	HasReversal(ctx context.Context, transferKey string) (bool, error)
}

// JournalWriterSvc defines write operations for the transaction journal
type JournalWriterSvc interface {
	// CreateTransaction builds an entry with a fresh id and timestamp. Nothing is persisted.
	CreateTransaction(bankID, accountID string, amount decimal.Decimal, txnType domain.TransactionType,
		narrative domain.TransactionNarrative, from domain.AccountRef, to *domain.AccountRef) domain.Transaction

	// AddTransaction stamps bankID and accountID onto txn and appends it.
	AddTransaction(ctx context.Context, bankID, accountID string, txn domain.Transaction) error
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
