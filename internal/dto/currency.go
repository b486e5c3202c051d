package dto

import (
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to register a currency with a bank.
type CreateCurrencyRequest struct {
	Name         string          `json:"name" binding:"required,alpha,min=3,max=5"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// UpdateCurrencyRequest replaces a currency's exchange rate.
type UpdateCurrencyRequest struct {
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Name         string          `json:"name"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{Name: c.Name, ExchangeRate: c.ExchangeRate}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(c)
	}
	return res
}
