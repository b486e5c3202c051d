package services

import (
	"context"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for a bank's currency registry
type CurrencyReaderSvc interface {
	// GetCurrencyByName retrieves a currency, failing with ErrCurrencyDoesNotExist.
	GetCurrencyByName(ctx context.Context, bankID, name string) (*domain.Currency, error)

	// ListCurrencies retrieves every currency registered with a bank.
	ListCurrencies(ctx context.Context, bankID string) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for a bank's currency registry
type CurrencyWriterSvc interface {
	// CreateCurrency builds a currency value without persisting it.
	CreateCurrency(name string, rate decimal.Decimal) (domain.Currency, error)

	// AddCurrency registers a currency, failing with ErrCurrencyAlreadyExists.
	AddCurrency(ctx context.Context, bankID string, currency domain.Currency) error

	// UpdateCurrency replaces the exchange rate of an existing currency.
	UpdateCurrency(ctx context.Context, bankID, name string, rate decimal.Decimal) (*domain.Currency, error)

	// DeleteCurrency removes a currency, failing with ErrCurrencyDoesNotExist.
	DeleteCurrency(ctx context.Context, bankID, name string) error

	// DeleteBankCurrencies removes every currency of a bank.
	DeleteBankCurrencies(ctx context.Context, bankID string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
