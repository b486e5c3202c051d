package services

import (
	"context"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// EmployeeActionSvc records the audit trail of privileged changes.
type EmployeeActionSvc interface {
	// CreateEmployeeAction builds an audit entry. Nothing is persisted.
	CreateEmployeeAction(bankID, employeeID string, actionType domain.EmployeeActionType, targetID string, relatedTransactionID *string) domain.EmployeeAction

	// AddEmployeeAction stamps bankID and employeeID onto action and appends it.
	AddEmployeeAction(ctx context.Context, bankID, employeeID string, action domain.EmployeeAction) error
}
