package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// TransactionReader defines read operations for ledger entries
type TransactionReader interface {
	// FindTransactionByID retrieves one entry recorded under a bank.
	FindTransactionByID(ctx context.Context, bankID, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves an account's entries ordered by
	// transaction date, then id.
	ListTransactionsByAccount(ctx context.Context, bankID, accountID string) ([]domain.Transaction, error)

	// ListTransactionsByAccountPage retrieves up to limit entries strictly after
	// the (afterDate, afterID) cursor. A nil afterDate starts from the beginning.
	ListTransactionsByAccountPage(ctx context.Context, bankID, accountID string, limit int, afterDate *time.Time, afterID string) ([]domain.Transaction, error)

	// ExistsReversal reports whether any REVERT_TRANSACTION entry carries
	// referenceID, in any bank.
	ExistsReversal(ctx context.Context, referenceID string) (bool, error)
}

// TransactionWriter defines write operations for ledger entries. Entries are
// append-only.
type TransactionWriter interface {
	// SaveTransaction appends one entry.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all ledger-entry repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
