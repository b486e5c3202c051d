package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/models"
	"github.com/SscSPs/bank_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.AccountID]; exists {
		return apperrors.ErrDuplicate
	}
	for _, a := range s.accounts {
		if a.IsActive && a.BankID == account.BankID && a.Username == account.Username {
			return apperrors.ErrDuplicate
		}
	}
	s.accounts[account.AccountID] = mapping.ToModelAccount(account)
	return nil
}

func (s *Store) activeAccount(bankID, accountID string) (models.Account, bool) {
	a, ok := s.accounts[accountID]
	if !ok || !a.IsActive || a.BankID != bankID {
		return models.Account{}, false
	}
	return a, true
}

func (s *Store) FindAccountByID(ctx context.Context, bankID, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activeAccount(bankID, accountID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	d := mapping.ToDomainAccount(a)
	return &d, nil
}

func (s *Store) FindAccountByUsername(ctx context.Context, bankID, username string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.IsActive && a.BankID == bankID && a.Username == username {
			d := mapping.ToDomainAccount(a)
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) FindAccountRecord(ctx context.Context, bankID, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[accountID]
	if !ok || a.BankID != bankID {
		return nil, apperrors.ErrNotFound
	}
	d := mapping.ToDomainAccount(a)
	return &d, nil
}

func (s *Store) ListAccounts(ctx context.Context, bankID string) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Account
	for _, a := range s.accounts {
		if a.IsActive && a.BankID == bankID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return mapping.ToDomainAccountSlice(out), nil
}

func (s *Store) UpdateAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.activeAccount(account.BankID, account.AccountID)
	if !ok {
		return apperrors.ErrNotFound
	}
	current.Name = account.Name
	current.AccountType = string(account.AccountType)
	current.PinHash = account.PinHash
	current.UpdatedOn = account.UpdatedOn
	s.accounts[account.AccountID] = current
	return nil
}

func (s *Store) UpdateAccountBalance(ctx context.Context, bankID, accountID string, balance decimal.Decimal, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.activeAccount(bankID, accountID)
	if !ok {
		return apperrors.ErrNotFound
	}
	current.Balance = balance
	current.UpdatedOn = &now
	s.accounts[accountID] = current
	return nil
}

func (s *Store) DeactivateAccount(ctx context.Context, bankID, accountID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.activeAccount(bankID, accountID)
	if !ok {
		return apperrors.ErrNotFound
	}
	s.accounts[accountID] = deactivatedAccount(current, now)
	return nil
}

func (s *Store) DeactivateAccountsByBank(ctx context.Context, bankID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, a := range s.accounts {
		if a.IsActive && a.BankID == bankID {
			s.accounts[id] = deactivatedAccount(a, now)
		}
	}
	return nil
}

func deactivatedAccount(a models.Account, now time.Time) models.Account {
	a.IsActive = false
	a.UpdatedOn = &now
	a.DeletedOn = &now
	return a
}
