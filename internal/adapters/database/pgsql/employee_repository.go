package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger/internal/models"
	"github.com/SscSPs/bank_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `employee_id, bank_id, username, name, employee_type, password_hash, is_active, created_on, updated_on, deleted_on`

type PgxEmployeeRepository struct {
	BaseRepository
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `INSERT INTO employees (` + employeeColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db(ctx).Exec(ctx, query,
		m.EmployeeID, m.BankID, m.Username, m.Name, m.EmployeeType, m.PasswordHash,
		m.IsActive, m.CreatedOn, m.UpdatedOn, m.DeletedOn,
	)
	if err != nil {
		return fmt.Errorf("failed to save employee %s: %w", m.EmployeeID, mapError(err))
	}
	return nil
}

func (r *PgxEmployeeRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Employee, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+employeeColumns+` FROM employees WHERE `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		return nil, mapError(err)
	}
	d := mapping.ToDomainEmployee(m)
	return &d, nil
}

// FindEmployeeByID retrieves an active employee of a bank.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, bankID, employeeID string) (*domain.Employee, error) {
	return r.findOne(ctx, `bank_id = $1 AND employee_id = $2 AND is_active`, bankID, employeeID)
}

// FindEmployeeByUsername retrieves an active employee by username.
func (r *PgxEmployeeRepository) FindEmployeeByUsername(ctx context.Context, bankID, username string) (*domain.Employee, error) {
	return r.findOne(ctx, `bank_id = $1 AND username = $2 AND is_active`, bankID, username)
}

// FindEmployeeRecord retrieves an employee whether or not it is active.
func (r *PgxEmployeeRepository) FindEmployeeRecord(ctx context.Context, bankID, employeeID string) (*domain.Employee, error) {
	return r.findOne(ctx, `bank_id = $1 AND employee_id = $2`, bankID, employeeID)
}

// ListEmployees retrieves the active employees of a bank.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, bankID string) ([]domain.Employee, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+employeeColumns+` FROM employees WHERE bank_id = $1 AND is_active ORDER BY employee_id`, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	return mapping.ToDomainEmployeeSlice(ms), nil
}

// UpdateEmployee updates profile fields, role and password hash.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		UPDATE employees SET name = $3, employee_type = $4, password_hash = $5, updated_on = $6
		WHERE bank_id = $1 AND employee_id = $2 AND is_active`
	return expectOne(r.db(ctx).Exec(ctx, query, m.BankID, m.EmployeeID, m.Name, m.EmployeeType, m.PasswordHash, m.UpdatedOn))
}

// DeactivateEmployee soft-deletes one employee.
func (r *PgxEmployeeRepository) DeactivateEmployee(ctx context.Context, bankID, employeeID string, now time.Time) error {
	query := `UPDATE employees SET is_active = FALSE, updated_on = $3, deleted_on = $3 WHERE bank_id = $1 AND employee_id = $2 AND is_active`
	return expectOne(r.db(ctx).Exec(ctx, query, bankID, employeeID, now))
}

// DeactivateEmployeesByBank soft-deletes every active employee of a bank.
func (r *PgxEmployeeRepository) DeactivateEmployeesByBank(ctx context.Context, bankID string, now time.Time) error {
	query := `UPDATE employees SET is_active = FALSE, updated_on = $2, deleted_on = $2 WHERE bank_id = $1 AND is_active`
	if _, err := r.db(ctx).Exec(ctx, query, bankID, now); err != nil {
		return fmt.Errorf("failed to deactivate employees of bank %s: %w", bankID, err)
	}
	return nil
}
