package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/models"
	"github.com/SscSPs/bank_ledger/internal/utils/mapping"
)

func (s *Store) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byName, ok := s.currencies[currency.BankID]
	if !ok {
		byName = make(map[string]models.Currency)
		s.currencies[currency.BankID] = byName
	}
	if _, exists := byName[currency.Name]; exists {
		return apperrors.ErrDuplicate
	}
	byName[currency.Name] = mapping.ToModelCurrency(currency)
	return nil
}

func (s *Store) FindCurrencyByName(ctx context.Context, bankID, name string) (*domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.currencies[bankID][name]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	d := mapping.ToDomainCurrency(c)
	return &d, nil
}

func (s *Store) ListCurrencies(ctx context.Context, bankID string) ([]domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Currency, 0, len(s.currencies[bankID]))
	for _, c := range s.currencies[bankID] {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return mapping.ToDomainCurrencySlice(out), nil
}

func (s *Store) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.currencies[currency.BankID][currency.Name]; !ok {
		return apperrors.ErrNotFound
	}
	s.currencies[currency.BankID][currency.Name] = mapping.ToModelCurrency(currency)
	return nil
}

func (s *Store) DeleteCurrency(ctx context.Context, bankID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.currencies[bankID][name]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.currencies[bankID], name)
	return nil
}

func (s *Store) DeleteCurrenciesByBank(ctx context.Context, bankID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.currencies, bankID)
	return nil
}
