package dto

import (
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to create a new employee.
type CreateEmployeeRequest struct {
	Name         string              `json:"name" binding:"required"`
	Username     string              `json:"username" binding:"required"`
	Password     string              `json:"password" binding:"required"`
	EmployeeType domain.EmployeeType `json:"employeeType" binding:"required,oneof=ADMIN REGULAR"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// A nil Password keeps the stored credential.
type UpdateEmployeeRequest struct {
	Name         *string              `json:"name" binding:"omitempty,min=1"`
	Password     *string              `json:"password" binding:"omitempty,min=1"`
	EmployeeType *domain.EmployeeType `json:"employeeType" binding:"omitempty,oneof=ADMIN REGULAR"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID   string              `json:"employeeID"`
	BankID       string              `json:"bankID"`
	Username     string              `json:"username"`
	Name         string              `json:"name"`
	EmployeeType domain.EmployeeType `json:"employeeType"`
	IsActive     bool                `json:"isActive"`
	CreatedOn    time.Time           `json:"createdOn"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:   e.EmployeeID,
		BankID:       e.BankID,
		Username:     e.Username,
		Name:         e.Name,
		EmployeeType: e.EmployeeType,
		IsActive:     e.IsActive,
		CreatedOn:    e.CreatedOn,
	}
}
