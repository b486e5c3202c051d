package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves an active account of a bank.
	FindAccountByID(ctx context.Context, bankID, accountID string) (*domain.Account, error)

	// FindAccountByUsername retrieves an active account by username within a bank.
	FindAccountByUsername(ctx context.Context, bankID, username string) (*domain.Account, error)

	// FindAccountRecord retrieves an account regardless of its active state.
	FindAccountRecord(ctx context.Context, bankID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the active accounts of a bank.
	ListAccounts(ctx context.Context, bankID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an account's profile fields and pin hash.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountBalance sets the stored balance of an account.
	UpdateAccountBalance(ctx context.Context, bankID, accountID string, balance decimal.Decimal, now time.Time) error

	// DeactivateAccount soft-deletes one account.
	DeactivateAccount(ctx context.Context, bankID, accountID string, now time.Time) error

	// DeactivateAccountsByBank soft-deletes every active account of a bank.
	DeactivateAccountsByBank(ctx context.Context, bankID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
