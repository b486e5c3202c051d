package models

import "time"

// EmployeeAction is the persisted form of an audit entry.
type EmployeeAction struct {
	ActionID             string    `db:"action_id"`
	BankID               string    `db:"bank_id"`
	EmployeeID           string    `db:"employee_id"`
	ActionType           string    `db:"action_type"`
	TargetID             string    `db:"target_id"`
	RelatedTransactionID *string   `db:"related_transaction_id"`
	ActionTime           time.Time `db:"action_time"`
}
