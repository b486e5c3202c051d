package services

import (
	"context"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	// GetEmployee retrieves an active employee, failing with ErrUserNotFound.
	GetEmployee(ctx context.Context, bankID, employeeID string) (*domain.Employee, error)

	// GetEmployeeByUsername retrieves an active employee by username.
	GetEmployeeByUsername(ctx context.Context, bankID, username string) (*domain.Employee, error)

	// ListEmployees retrieves the active employees of a bank.
	ListEmployees(ctx context.Context, bankID string) ([]domain.Employee, error)

	// IsEmployeeAdmin reports whether employeeID is an active admin of the bank.
	IsEmployeeAdmin(ctx context.Context, bankID, employeeID string) (bool, error)

	// Authenticate reports whether password matches the employee's credential.
	Authenticate(ctx context.Context, bankID, employeeID, password string) (bool, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// CreateEmployee validates the request and builds an employee. Nothing is persisted.
	CreateEmployee(ctx context.Context, bankID string, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// AddEmployee persists a built employee, failing with ErrUsernameAlreadyExists.
	AddEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee applies the non-nil fields of req.
	UpdateEmployee(ctx context.Context, bankID, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeleteEmployee soft-deletes an employee.
	DeleteEmployee(ctx context.Context, bankID, employeeID string) error

	// DeactivateBankEmployees soft-deletes every employee of a bank.
	DeactivateBankEmployees(ctx context.Context, bankID string) error
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
