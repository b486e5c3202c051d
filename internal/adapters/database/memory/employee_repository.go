package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/models"
	"github.com/SscSPs/bank_ledger/internal/utils/mapping"
)

func (s *Store) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.employees[employee.EmployeeID]; exists {
		return apperrors.ErrDuplicate
	}
	for _, e := range s.employees {
		if e.IsActive && e.BankID == employee.BankID && e.Username == employee.Username {
			return apperrors.ErrDuplicate
		}
	}
	s.employees[employee.EmployeeID] = mapping.ToModelEmployee(employee)
	return nil
}

func (s *Store) activeEmployee(bankID, employeeID string) (models.Employee, bool) {
	e, ok := s.employees[employeeID]
	if !ok || !e.IsActive || e.BankID != bankID {
		return models.Employee{}, false
	}
	return e, true
}

func (s *Store) FindEmployeeByID(ctx context.Context, bankID, employeeID string) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.activeEmployee(bankID, employeeID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	d := mapping.ToDomainEmployee(e)
	return &d, nil
}

func (s *Store) FindEmployeeByUsername(ctx context.Context, bankID, username string) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.IsActive && e.BankID == bankID && e.Username == username {
			d := mapping.ToDomainEmployee(e)
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) FindEmployeeRecord(ctx context.Context, bankID, employeeID string) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.employees[employeeID]
	if !ok || e.BankID != bankID {
		return nil, apperrors.ErrNotFound
	}
	d := mapping.ToDomainEmployee(e)
	return &d, nil
}

func (s *Store) ListEmployees(ctx context.Context, bankID string) ([]domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Employee
	for _, e := range s.employees {
		if e.IsActive && e.BankID == bankID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return mapping.ToDomainEmployeeSlice(out), nil
}

func (s *Store) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.activeEmployee(employee.BankID, employee.EmployeeID)
	if !ok {
		return apperrors.ErrNotFound
	}
	current.Name = employee.Name
	current.EmployeeType = string(employee.EmployeeType)
	current.PasswordHash = employee.PasswordHash
	current.UpdatedOn = employee.UpdatedOn
	s.employees[employee.EmployeeID] = current
	return nil
}

func (s *Store) DeactivateEmployee(ctx context.Context, bankID, employeeID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.activeEmployee(bankID, employeeID)
	if !ok {
		return apperrors.ErrNotFound
	}
	s.employees[employeeID] = deactivatedEmployee(current, now)
	return nil
}

func (s *Store) DeactivateEmployeesByBank(ctx context.Context, bankID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.employees {
		if e.IsActive && e.BankID == bankID {
			s.employees[id] = deactivatedEmployee(e, now)
		}
	}
	return nil
}

func deactivatedEmployee(e models.Employee, now time.Time) models.Employee {
	e.IsActive = false
	e.UpdatedOn = &now
	e.DeletedOn = &now
	return e
}
