package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/google/uuid"
)

type employeeActionService struct {
	BaseService
	actionRepo portsrepo.EmployeeActionRepository
}

// NewEmployeeActionService creates the write-once audit service.
func NewEmployeeActionService(repo portsrepo.EmployeeActionRepository) portssvc.EmployeeActionSvc {
	return &employeeActionService{actionRepo: repo}
}

var _ portssvc.EmployeeActionSvc = (*employeeActionService)(nil)

func (s *employeeActionService) CreateEmployeeAction(bankID, employeeID string, actionType domain.EmployeeActionType,
	targetID string, relatedTransactionID *string) domain.EmployeeAction {
	return domain.EmployeeAction{
		ActionID:             uuid.NewString(),
		BankID:               bankID,
		EmployeeID:           employeeID,
		ActionType:           actionType,
		TargetID:             targetID,
		RelatedTransactionID: relatedTransactionID,
		Timestamp:            time.Now().UTC(),
	}
}

func (s *employeeActionService) AddEmployeeAction(ctx context.Context, bankID, employeeID string, action domain.EmployeeAction) error {
	action.BankID = bankID
	action.EmployeeID = employeeID
	if action.ActionID == "" {
		action.ActionID = uuid.NewString()
	}
	if action.Timestamp.IsZero() {
		action.Timestamp = time.Now().UTC()
	}

	if err := s.actionRepo.SaveEmployeeAction(ctx, action); err != nil {
		s.LogError(ctx, err, "Failed to save employee action",
			slog.String("action_type", string(action.ActionType)),
			slog.String("employee_id", employeeID))
		return err
	}
	s.LogInfo(ctx, "Employee action recorded",
		slog.String("action_type", string(action.ActionType)),
		slog.String("employee_id", employeeID),
		slog.String("target_id", action.TargetID))
	return nil
}
