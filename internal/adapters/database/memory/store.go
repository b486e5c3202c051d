// Package memory is an in-process implementation of the repository ports.
// It backs tests and STORAGE_DRIVER=memory deployments.
package memory

import (
	"context"
	"maps"
	"sync"

	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger/internal/models"
)

type txCtxKey struct{}

// Store keeps every collection in maps guarded by one lock. Records are held
// in their persisted (models) form so callers never share memory with it.
type Store struct {
	mu sync.RWMutex
	// txMu serialises units of work.
	txMu sync.Mutex

	banks        map[string]models.Bank
	accounts     map[string]models.Account
	employees    map[string]models.Employee
	currencies   map[string]map[string]models.Currency
	transactions []models.Transaction
	actions      []models.EmployeeAction
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		banks:      make(map[string]models.Bank),
		accounts:   make(map[string]models.Account),
		employees:  make(map[string]models.Employee),
		currencies: make(map[string]map[string]models.Currency),
	}
}

// NewRepositoryProvider exposes one store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BankRepo:           store,
		AccountRepo:        store,
		EmployeeRepo:       store,
		CurrencyRepo:       store,
		TransactionRepo:    store,
		EmployeeActionRepo: store,
		TxManager:          store,
	}
}

var (
	_ portsrepo.BankRepositoryFacade        = (*Store)(nil)
	_ portsrepo.AccountRepositoryFacade     = (*Store)(nil)
	_ portsrepo.EmployeeRepositoryFacade    = (*Store)(nil)
	_ portsrepo.CurrencyRepositoryFacade    = (*Store)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.EmployeeActionRepository    = (*Store)(nil)
	_ portsrepo.TransactionManager          = (*Store)(nil)
)

type snapshot struct {
	banks        map[string]models.Bank
	accounts     map[string]models.Account
	employees    map[string]models.Employee
	currencies   map[string]map[string]models.Currency
	transactions int
	actions      int
}

// WithinTransaction runs fn as one unit. Writes made by fn are discarded if it
// returns an error. Nested calls join the enclosing unit.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txCtxKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txCtxKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	currencies := make(map[string]map[string]models.Currency, len(s.currencies))
	for bankID, byName := range s.currencies {
		currencies[bankID] = maps.Clone(byName)
	}
	return snapshot{
		banks:        maps.Clone(s.banks),
		accounts:     maps.Clone(s.accounts),
		employees:    maps.Clone(s.employees),
		currencies:   currencies,
		transactions: len(s.transactions),
		actions:      len(s.actions),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.banks = snap.banks
	s.accounts = snap.accounts
	s.employees = snap.employees
	s.currencies = snap.currencies
	// journal and audit are append-only, so truncating undoes the unit
	s.transactions = s.transactions[:snap.transactions]
	s.actions = s.actions[:snap.actions]
}
