package repositories

import (
	"context"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// EmployeeActionRepository appends audit entries. Entries have no
// update or delete path.
type EmployeeActionRepository interface {
	// SaveEmployeeAction appends one audit entry.
	SaveEmployeeAction(ctx context.Context, action domain.EmployeeAction) error
}
