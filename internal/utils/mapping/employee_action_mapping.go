package mapping

import (
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/models"
)

// ToModelEmployeeAction converts a domain EmployeeAction to a model EmployeeAction
func ToModelEmployeeAction(d domain.EmployeeAction) models.EmployeeAction {
	return models.EmployeeAction{
		ActionID:             d.ActionID,
		BankID:               d.BankID,
		EmployeeID:           d.EmployeeID,
		ActionType:           string(d.ActionType),
		TargetID:             d.TargetID,
		RelatedTransactionID: d.RelatedTransactionID,
		ActionTime:           d.Timestamp,
	}
}

// ToDomainEmployeeAction converts a model EmployeeAction to a domain EmployeeAction
func ToDomainEmployeeAction(m models.EmployeeAction) domain.EmployeeAction {
	return domain.EmployeeAction{
		ActionID:             m.ActionID,
		BankID:               m.BankID,
		EmployeeID:           m.EmployeeID,
		ActionType:           domain.EmployeeActionType(m.ActionType),
		TargetID:             m.TargetID,
		RelatedTransactionID: m.RelatedTransactionID,
		Timestamp:            m.ActionTime,
	}
}
