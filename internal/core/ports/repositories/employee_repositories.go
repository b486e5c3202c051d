package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves an active employee of a bank.
	FindEmployeeByID(ctx context.Context, bankID, employeeID string) (*domain.Employee, error)

	// FindEmployeeByUsername retrieves an active employee by username within a bank.
	FindEmployeeByUsername(ctx context.Context, bankID, username string) (*domain.Employee, error)

	// FindEmployeeRecord retrieves an employee regardless of its active state.
	FindEmployeeRecord(ctx context.Context, bankID, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves the active employees of a bank.
	ListEmployees(ctx context.Context, bankID string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates an employee's profile fields, role and password hash.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeactivateEmployee soft-deletes one employee.
	DeactivateEmployee(ctx context.Context, bankID, employeeID string, now time.Time) error

	// DeactivateEmployeesByBank soft-deletes every active employee of a bank.
	DeactivateEmployeesByBank(ctx context.Context, bankID string, now time.Time) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
