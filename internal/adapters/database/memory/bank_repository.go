package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/models"
	"github.com/SscSPs/bank_ledger/internal/utils/mapping"
)

func (s *Store) SaveBank(ctx context.Context, bank domain.Bank) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.banks[bank.BankID]; exists {
		return apperrors.ErrDuplicate
	}
	for _, b := range s.banks {
		if b.IsActive && b.Name == bank.Name {
			return apperrors.ErrDuplicate
		}
	}
	s.banks[bank.BankID] = mapping.ToModelBank(bank)
	return nil
}

func (s *Store) FindBankByID(ctx context.Context, bankID string) (*domain.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.banks[bankID]
	if !ok || !b.IsActive {
		return nil, apperrors.ErrNotFound
	}
	d := mapping.ToDomainBank(b)
	return &d, nil
}

func (s *Store) FindBankByName(ctx context.Context, name string) (*domain.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.banks {
		if b.IsActive && b.Name == name {
			d := mapping.ToDomainBank(b)
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) FindBankRecord(ctx context.Context, bankID string) (*domain.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.banks[bankID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	d := mapping.ToDomainBank(b)
	return &d, nil
}

func (s *Store) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]models.Bank, 0, len(s.banks))
	for _, b := range s.banks {
		if b.IsActive {
			active = append(active, b)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Name < active[j].Name })
	return mapping.ToDomainBankSlice(active), nil
}

func (s *Store) UpdateBank(ctx context.Context, bank domain.Bank) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.banks[bank.BankID]
	if !ok || !current.IsActive {
		return apperrors.ErrNotFound
	}
	for id, b := range s.banks {
		if id != bank.BankID && b.IsActive && b.Name == bank.Name {
			return apperrors.ErrDuplicate
		}
	}
	updated := mapping.ToModelBank(bank)
	updated.SoftDeleteFields.CreatedOn = current.CreatedOn
	s.banks[bank.BankID] = updated
	return nil
}

func (s *Store) DeactivateBank(ctx context.Context, bankID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.banks[bankID]
	if !ok || !b.IsActive {
		return apperrors.ErrNotFound
	}
	b.IsActive = false
	b.UpdatedOn = &now
	b.DeletedOn = &now
	s.banks[bankID] = b
	return nil
}
