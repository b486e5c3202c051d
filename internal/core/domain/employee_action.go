package domain

import "time"

// EmployeeActionType names an administrative change recorded in the audit trail.
type EmployeeActionType string

const (
	ActionNewBank           EmployeeActionType = "NEW_BANK"
	ActionUpdateBank        EmployeeActionType = "UPDATE_BANK"
	ActionDeleteBank        EmployeeActionType = "DELETE_BANK"
	ActionNewEmployee       EmployeeActionType = "NEW_EMPLOYEE"
	ActionUpdateEmployee    EmployeeActionType = "UPDATE_EMPLOYEE"
	ActionDeleteEmployee    EmployeeActionType = "DELETE_EMPLOYEE"
	ActionNewAccount        EmployeeActionType = "NEW_ACCOUNT"
	ActionUpdateAccount     EmployeeActionType = "UPDATE_ACCOUNT"
	ActionDeleteAccount     EmployeeActionType = "DELETE_ACCOUNT"
	ActionAddCurrency       EmployeeActionType = "ADD_CURRENCY"
	ActionUpdateCurrency    EmployeeActionType = "UPDATE_CURRENCY"
	ActionDeleteCurrency    EmployeeActionType = "DELETE_CURRENCY"
	ActionRevertTransaction EmployeeActionType = "REVERT_TRANSACTION"
)

// EmployeeAction is an append-only audit entry. Entries are never updated
// or deleted once written.
type EmployeeAction struct {
	ActionID             string             `json:"actionID"`
	BankID               string             `json:"bankID"`
	EmployeeID           string             `json:"employeeID"`
	ActionType           EmployeeActionType `json:"actionType"`
	TargetID             string             `json:"targetID"`
	RelatedTransactionID *string            `json:"relatedTransactionID,omitempty"`
	Timestamp            time.Time          `json:"timestamp"`
}
