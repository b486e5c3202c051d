package domain

import "fmt"

// EmployeeType is the role an employee holds inside their bank.
type EmployeeType string

const (
	Admin   EmployeeType = "ADMIN"
	Regular EmployeeType = "REGULAR"
)

// ParseEmployeeType validates a raw employee type.
func ParseEmployeeType(raw string) (EmployeeType, error) {
	switch t := EmployeeType(raw); t {
	case Admin, Regular:
		return t, nil
	default:
		return "", fmt.Errorf("unknown employee type %q", raw)
	}
}

// Employee is a bank staff member. Admins may manage employees, currencies
// and the bank itself.
type Employee struct {
	EmployeeID   string       `json:"employeeID"`
	BankID       string       `json:"bankID"`
	Username     string       `json:"username"`
	Name         string       `json:"name"`
	EmployeeType EmployeeType `json:"employeeType"`
	PasswordHash string       `json:"-"`
	SoftDeleteFields
}

// IsAdmin reports whether the employee is an active admin.
func (e Employee) IsAdmin() bool {
	return e.IsActive && e.EmployeeType == Admin
}
