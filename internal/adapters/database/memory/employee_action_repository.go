package memory

import (
	"context"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/utils/mapping"
)

func (s *Store) SaveEmployeeAction(ctx context.Context, action domain.EmployeeAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.actions = append(s.actions, mapping.ToModelEmployeeAction(action))
	return nil
}

// EmployeeActions returns the audit trail of a bank in append order.
func (s *Store) EmployeeActions(bankID string) []domain.EmployeeAction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.EmployeeAction
	for _, a := range s.actions {
		if a.BankID == bankID {
			out = append(out, mapping.ToDomainEmployeeAction(a))
		}
	}
	return out
}
