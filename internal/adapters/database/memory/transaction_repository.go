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

func (s *Store) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.transactions {
		if t.TransactionID == txn.TransactionID {
			return apperrors.ErrDuplicate
		}
	}
	s.transactions = append(s.transactions, mapping.ToModelTransaction(txn))
	return nil
}

func (s *Store) FindTransactionByID(ctx context.Context, bankID, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.transactions {
		if t.BankID == bankID && t.TransactionID == transactionID {
			d := mapping.ToDomainTransaction(t)
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ExistsReversal(ctx context.Context, referenceID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.transactions {
		if t.Narrative == string(domain.NarrativeRevertTransaction) && t.ReferenceID != nil && *t.ReferenceID == referenceID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) history(bankID, accountID string) []models.Transaction {
	var out []models.Transaction
	for _, t := range s.transactions {
		if t.BankID == bankID && t.AccountID == accountID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return before(out[i], out[j].TransactionDate, out[j].TransactionID) })
	return out
}

// before reports whether t sorts ahead of the (date, id) position.
func before(t models.Transaction, date time.Time, id string) bool {
	if !t.TransactionDate.Equal(date) {
		return t.TransactionDate.Before(date)
	}
	return t.TransactionID < id
}

func (s *Store) ListTransactionsByAccount(ctx context.Context, bankID, accountID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return mapping.ToDomainTransactionSlice(s.history(bankID, accountID)), nil
}

func (s *Store) ListTransactionsByAccountPage(ctx context.Context, bankID, accountID string, limit int, afterDate *time.Time, afterID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page := make([]models.Transaction, 0, limit)
	for _, t := range s.history(bankID, accountID) {
		if len(page) == limit {
			break
		}
		if afterDate != nil && !afterCursor(t, *afterDate, afterID) {
			continue
		}
		page = append(page, t)
	}
	return mapping.ToDomainTransactionSlice(page), nil
}

func afterCursor(t models.Transaction, date time.Time, id string) bool {
	if !t.TransactionDate.Equal(date) {
		return t.TransactionDate.After(date)
	}
	return t.TransactionID > id
}
