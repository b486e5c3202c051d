package services

import (
	"context"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// BankReaderSvc defines unauthenticated bank lookups
type BankReaderSvc interface {
	// GetBank retrieves an active bank, failing with ErrBankDoesNotExist.
	GetBank(ctx context.Context, bankID string) (*domain.Bank, error)

	// ListBanks retrieves every active bank.
	ListBanks(ctx context.Context) ([]domain.Bank, error)

	// CheckBankExistence fails with ErrBankDoesNotExist unless the bank is active.
	CheckBankExistence(ctx context.Context, bankID string) error

	// ValidateBankName fails with ErrBankNameAlreadyExists if an active bank has the name.
	ValidateBankName(ctx context.Context, name string) error

	// ListCurrencies retrieves the currencies a bank accepts.
	ListCurrencies(ctx context.Context, bankID string) ([]domain.Currency, error)
}

// BankAdminSvc defines operations restricted to admins of the bank. Each
// records one audit entry attributed to employeeID.
type BankAdminSvc interface {
	// CreateBank opens a bank with its first admin and the base currency.
	CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, *domain.Employee, error)

	// UpdateBank applies the non-nil fields of req.
	UpdateBank(ctx context.Context, bankID, employeeID string, req dto.UpdateBankRequest) (*domain.Bank, error)

	// DeleteBank soft-deletes the bank with its employees and accounts and removes its currencies.
	DeleteBank(ctx context.Context, bankID, employeeID string) error

	// AddEmployee creates an employee.
	AddEmployee(ctx context.Context, bankID, employeeID string, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee updates another employee.
	UpdateEmployee(ctx context.Context, bankID, employeeID, targetEmployeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeleteEmployee soft-deletes another employee.
	DeleteEmployee(ctx context.Context, bankID, employeeID, targetEmployeeID string) error

	// AddCurrency registers a currency.
	AddCurrency(ctx context.Context, bankID, employeeID string, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// UpdateCurrency replaces a currency's exchange rate.
	UpdateCurrency(ctx context.Context, bankID, employeeID, name string, req dto.UpdateCurrencyRequest) (*domain.Currency, error)

	// DeleteCurrency removes a currency.
	DeleteCurrency(ctx context.Context, bankID, employeeID, name string) error
}

// BankStaffSvc defines operations open to any active employee of the bank.
// Mutations record one audit entry attributed to employeeID.
type BankStaffSvc interface {
	// ListEmployees retrieves the active employees of the bank.
	ListEmployees(ctx context.Context, bankID, employeeID string) ([]domain.Employee, error)

	// AddAccount opens a customer account with its opening credit.
	AddAccount(ctx context.Context, bankID, employeeID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates a customer account.
	UpdateAccount(ctx context.Context, bankID, employeeID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount soft-deletes a customer account.
	DeleteAccount(ctx context.Context, bankID, employeeID, accountID string) error

	// RevertTransaction pays a transfer back from its payee to its payer.
	// It returns the two reversal entries.
	RevertTransaction(ctx context.Context, bankID, employeeID, transactionID string) ([]domain.Transaction, error)

	// GetTransaction retrieves one entry recorded under the bank.
	GetTransaction(ctx context.Context, bankID, employeeID, transactionID string) (*domain.Transaction, error)

	// ReconcileAccount replays the journal of an account against its stored balance.
	ReconcileAccount(ctx context.Context, bankID, employeeID, accountID string) (*dto.ReconciliationResponse, error)
}

// BankCustomerSvc defines self-service operations on one account. They are
// journaled but not audited.
type BankCustomerSvc interface {
	// GetAccount retrieves an active account.
	GetAccount(ctx context.Context, bankID, accountID string) (*domain.Account, error)

	// GetBalance returns the account balance in base units.
	GetBalance(ctx context.Context, bankID, accountID string) (decimal.Decimal, error)

	// Deposit credits amount converted from currency. An empty currency means the base currency.
	Deposit(ctx context.Context, bankID, accountID, currency string, amount decimal.Decimal) (*domain.Transaction, error)

	// Withdraw debits amount in base units.
	Withdraw(ctx context.Context, bankID, accountID string, amount decimal.Decimal) (*domain.Transaction, error)

	// Transfer moves amount to another account. It returns the debit entry.
	Transfer(ctx context.Context, bankID, accountID, toBankID, toAccountID string, amount decimal.Decimal) (*domain.Transaction, error)

	// GetTransactions retrieves the full history, failing with ErrNoTransactions when empty.
	GetTransactions(ctx context.Context, bankID, accountID string) ([]domain.Transaction, error)

	// ListTransactions retrieves one page of the history.
	ListTransactions(ctx context.Context, bankID, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// BankAuthSvc authenticates the two kinds of principals.
type BankAuthSvc interface {
	// AuthenticateEmployee returns the employee, failing with ErrAuthenticationFailed.
	AuthenticateEmployee(ctx context.Context, bankID, employeeID, password string) (*domain.Employee, error)

	// AuthenticateAccount returns the account, failing with ErrAuthenticationFailed.
	AuthenticateAccount(ctx context.Context, bankID, accountID, pin string) (*domain.Account, error)
}

// BankSvcFacade is the full bank-scoped operation set.
type BankSvcFacade interface {
	BankReaderSvc
	BankAdminSvc
	BankStaffSvc
	BankCustomerSvc
	BankAuthSvc
}
