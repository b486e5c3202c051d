package models

// Employee is the persisted form of a bank employee.
type Employee struct {
	EmployeeID   string `db:"employee_id"`
	BankID       string `db:"bank_id"`
	Username     string `db:"username"`
	Name         string `db:"name"`
	EmployeeType string `db:"employee_type"`
	PasswordHash string `db:"password_hash"`
	SoftDeleteFields
}
