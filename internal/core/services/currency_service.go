package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// currencyService manages the per-bank currency registry.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(repo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: repo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func normalizeCurrencyName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// CreateCurrency builds an unsaved currency after validating its rate.
func (s *currencyService) CreateCurrency(name string, rate decimal.Decimal) (domain.Currency, error) {
	name = normalizeCurrencyName(name)
	if name == "" {
		return domain.Currency{}, fmt.Errorf("%w: currency name cannot be empty", apperrors.ErrValidation)
	}
	if !rate.IsPositive() {
		return domain.Currency{}, apperrors.ErrInvalidExchangeRate
	}
	return domain.Currency{Name: name, ExchangeRate: rate}, nil
}

func (s *currencyService) AddCurrency(ctx context.Context, bankID string, currency domain.Currency) error {
	currency.BankID = bankID
	currency.Name = normalizeCurrencyName(currency.Name)
	if !currency.ExchangeRate.IsPositive() {
		return apperrors.ErrInvalidExchangeRate
	}

	_, err := s.currencyRepo.FindCurrencyByName(ctx, bankID, currency.Name)
	if err == nil {
		s.LogWarn(ctx, "Currency already registered",
			slog.String("bank_id", bankID),
			slog.String("currency", currency.Name))
		return apperrors.ErrCurrencyAlreadyExists
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up currency", slog.String("currency", currency.Name))
		return err
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return apperrors.ErrCurrencyAlreadyExists
		}
		s.LogError(ctx, err, "Failed to save currency", slog.String("currency", currency.Name))
		return err
	}
	s.LogDebug(ctx, "Currency added", slog.String("bank_id", bankID), slog.String("currency", currency.Name))
	return nil
}

func (s *currencyService) GetCurrencyByName(ctx context.Context, bankID, name string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByName(ctx, bankID, normalizeCurrencyName(name))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrCurrencyDoesNotExist
		}
		s.LogError(ctx, err, "Failed to find currency", slog.String("currency", name))
		return nil, err
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context, bankID string) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, bankID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies", slog.String("bank_id", bankID))
		return nil, fmt.Errorf("failed to list currencies for bank %s: %w", bankID, err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// UpdateCurrency replaces the exchange rate of a registered currency.
func (s *currencyService) UpdateCurrency(ctx context.Context, bankID, name string, rate decimal.Decimal) (*domain.Currency, error) {
	if !rate.IsPositive() {
		return nil, apperrors.ErrInvalidExchangeRate
	}
	currency, err := s.GetCurrencyByName(ctx, bankID, name)
	if err != nil {
		return nil, err
	}
	if currency.IsBase() {
		return nil, apperrors.ErrBaseCurrencyLocked
	}

	currency.ExchangeRate = rate
	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrCurrencyDoesNotExist
		}
		s.LogError(ctx, err, "Failed to update currency", slog.String("currency", currency.Name))
		return nil, err
	}
	return currency, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, bankID, name string) error {
	currency, err := s.GetCurrencyByName(ctx, bankID, name)
	if err != nil {
		return err
	}
	if currency.IsBase() {
		return apperrors.ErrBaseCurrencyLocked
	}
	if err := s.currencyRepo.DeleteCurrency(ctx, bankID, currency.Name); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrCurrencyDoesNotExist
		}
		s.LogError(ctx, err, "Failed to delete currency", slog.String("currency", currency.Name))
		return err
	}
	return nil
}

// DeleteBankCurrencies removes every registration of a bank, base currency included.
func (s *currencyService) DeleteBankCurrencies(ctx context.Context, bankID string) error {
	if err := s.currencyRepo.DeleteCurrenciesByBank(ctx, bankID); err != nil {
		s.LogError(ctx, err, "Failed to delete bank currencies", slog.String("bank_id", bankID))
		return err
	}
	return nil
}
