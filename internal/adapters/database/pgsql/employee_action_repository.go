package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger/internal/utils/mapping"
)

type PgxEmployeeActionRepository struct {
	BaseRepository
}

var _ portsrepo.EmployeeActionRepository = (*PgxEmployeeActionRepository)(nil)

// SaveEmployeeAction appends an audit entry.
func (r *PgxEmployeeActionRepository) SaveEmployeeAction(ctx context.Context, action domain.EmployeeAction) error {
	m := mapping.ToModelEmployeeAction(action)
	query := `
		INSERT INTO employee_actions (action_id, bank_id, employee_id, action_type, target_id, related_transaction_id, action_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db(ctx).Exec(ctx, query,
		m.ActionID, m.BankID, m.EmployeeID, m.ActionType, m.TargetID, m.RelatedTransactionID, m.ActionTime,
	)
	if err != nil {
		return fmt.Errorf("failed to save employee action %s: %w", m.ActionID, mapError(err))
	}
	return nil
}
