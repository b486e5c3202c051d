package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// BankReader defines read operations for bank data
type BankReader interface {
	// FindBankByID retrieves an active bank by its identifier.
	FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error)

	// FindBankByName retrieves an active bank by its exact name.
	FindBankByName(ctx context.Context, name string) (*domain.Bank, error)

	// FindBankRecord retrieves a bank regardless of its active state.
	FindBankRecord(ctx context.Context, bankID string) (*domain.Bank, error)

	// ListBanks retrieves every active bank ordered by name.
	ListBanks(ctx context.Context) ([]domain.Bank, error)
}

// BankWriter defines write operations for bank data
type BankWriter interface {
	// SaveBank persists a new bank.
	SaveBank(ctx context.Context, bank domain.Bank) error

	// UpdateBank updates the name and charges of an active bank.
	UpdateBank(ctx context.Context, bank domain.Bank) error

	// DeactivateBank soft-deletes a bank.
	DeactivateBank(ctx context.Context, bankID string, now time.Time) error
}

// BankRepositoryFacade combines all bank-related repository interfaces
type BankRepositoryFacade interface {
	BankReader
	BankWriter
}
