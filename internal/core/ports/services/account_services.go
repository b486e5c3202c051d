package services

import (
	"context"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves an active account, failing with ErrUserNotFound.
	GetAccount(ctx context.Context, bankID, accountID string) (*domain.Account, error)

	// CheckAccountExistence fails with ErrUserNotFound unless an active account
	// with the username exists in the bank.
	CheckAccountExistence(ctx context.Context, bankID, username string) error

	// GetBalance returns an account's balance in base units.
	GetBalance(ctx context.Context, bankID, accountID string) (decimal.Decimal, error)

	// Authenticate reports whether pin matches the account's credential.
	Authenticate(ctx context.Context, bankID, accountID, pin string) (bool, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount validates the request and builds an account with the
	// opening balance. Nothing is persisted.
	CreateAccount(ctx context.Context, bankID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// AddAccount persists a built account, failing with ErrUsernameAlreadyExists.
	AddAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount applies the non-nil fields of req.
	UpdateAccount(ctx context.Context, bankID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount soft-deletes an account.
	DeleteAccount(ctx context.Context, bankID, accountID string) error

	// DeactivateBankAccounts soft-deletes every account of a bank.
	DeactivateBankAccounts(ctx context.Context, bankID string) error
}

// AccountLedgerSvc defines the balance mutations. Callers are responsible for
// journaling each mutation inside the same unit of work.
type AccountLedgerSvc interface {
	// Deposit converts amount from currency into base units and credits it.
	// It returns the credited base amount.
	Deposit(ctx context.Context, bankID, accountID, currency string, amount decimal.Decimal) (decimal.Decimal, error)

	// Withdraw debits amount in base units.
	Withdraw(ctx context.Context, bankID, accountID string, amount decimal.Decimal) error

	// Transfer debits the source and credits the destination by amount in base units.
	Transfer(ctx context.Context, from, to domain.AccountRef, amount decimal.Decimal) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountLedgerSvc
}
