package repositories

import (
	"context"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByName retrieves a bank's currency by name.
	FindCurrencyByName(ctx context.Context, bankID, name string) (*domain.Currency, error)

	// ListCurrencies retrieves a bank's currencies ordered by name.
	ListCurrencies(ctx context.Context, bankID string) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency for a bank.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// UpdateCurrency changes the exchange rate of an existing currency.
	UpdateCurrency(ctx context.Context, currency domain.Currency) error

	// DeleteCurrency removes one currency.
	DeleteCurrency(ctx context.Context, bankID, name string) error

	// DeleteCurrenciesByBank removes every currency of a bank.
	DeleteCurrenciesByBank(ctx context.Context, bankID string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
