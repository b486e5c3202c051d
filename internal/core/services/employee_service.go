package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	credentials  portssvc.CredentialSvc
	idGen        portssvc.IDGeneratorSvc
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, credentials portssvc.CredentialSvc, idGen portssvc.IDGeneratorSvc) portssvc.EmployeeSvcFacade {
	return &employeeService{
		employeeRepo: repo,
		credentials:  credentials,
		idGen:        idGen,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) GetEmployee(ctx context.Context, bankID, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, bankID, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.LogError(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) GetEmployeeByUsername(ctx context.Context, bankID, username string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByUsername(ctx, bankID, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.LogError(ctx, err, "Failed to find employee by username", slog.String("username", username))
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, bankID string) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, bankID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees", slog.String("bank_id", bankID))
		return nil, fmt.Errorf("failed to list employees for bank %s: %w", bankID, err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

// IsEmployeeAdmin reports whether employeeID is an active admin of bankID.
// An unknown employee is simply not an admin.
func (s *employeeService) IsEmployeeAdmin(ctx context.Context, bankID, employeeID string) (bool, error) {
	employee, err := s.GetEmployee(ctx, bankID, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return employee.IsAdmin(), nil
}

// Authenticate never fails for a wrong password; it returns false instead.
func (s *employeeService) Authenticate(ctx context.Context, bankID, employeeID, password string) (bool, error) {
	employee, err := s.GetEmployee(ctx, bankID, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.credentials.Verify(employee.PasswordHash, password), nil
}

// CreateEmployee validates req and builds an unsaved employee.
func (s *employeeService) CreateEmployee(ctx context.Context, bankID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	if err := requestValidator.Struct(req); err != nil {
		s.LogWarn(ctx, "Invalid employee data", slog.String("reason", err.Error()))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidEmployeeData, err)
	}
	employeeType, err := domain.ParseEmployeeType(string(req.EmployeeType))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidEmployeeData, err)
	}
	if err := s.ensureUsernameFree(ctx, bankID, req.Username); err != nil {
		return nil, err
	}

	passwordHash, err := s.credentials.Hash(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash employee password")
		return nil, fmt.Errorf("%w: failed to hash password: %w", apperrors.ErrInternal, err)
	}

	return &domain.Employee{
		EmployeeID:       s.idGen.GenID(req.Name),
		BankID:           bankID,
		Username:         req.Username,
		Name:             req.Name,
		EmployeeType:     employeeType,
		PasswordHash:     passwordHash,
		SoftDeleteFields: domain.NewSoftDeleteFields(time.Now().UTC()),
	}, nil
}

func (s *employeeService) ensureUsernameFree(ctx context.Context, bankID, username string) error {
	_, err := s.employeeRepo.FindEmployeeByUsername(ctx, bankID, username)
	if err == nil {
		s.LogWarn(ctx, "Employee username already taken",
			slog.String("bank_id", bankID),
			slog.String("username", username))
		return apperrors.ErrUsernameAlreadyExists
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check employee username", slog.String("username", username))
		return err
	}
	return nil
}

func (s *employeeService) AddEmployee(ctx context.Context, employee domain.Employee) error {
	if err := s.ensureUsernameFree(ctx, employee.BankID, employee.Username); err != nil {
		return err
	}
	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return apperrors.ErrUsernameAlreadyExists
		}
		s.LogError(ctx, err, "Failed to save employee", slog.String("employee_id", employee.EmployeeID))
		return err
	}
	return nil
}

// UpdateEmployee applies the non-nil fields of req.
func (s *employeeService) UpdateEmployee(ctx context.Context, bankID, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if err := requestValidator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidEmployeeData, err)
	}
	employee, err := s.GetEmployee(ctx, bankID, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be blank", apperrors.ErrInvalidEmployeeData)
		}
		employee.Name = name
	}
	if req.EmployeeType != nil {
		employeeType, err := domain.ParseEmployeeType(string(*req.EmployeeType))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidEmployeeData, err)
		}
		employee.EmployeeType = employeeType
	}
	if req.Password != nil {
		passwordHash, err := s.credentials.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to hash password: %w", apperrors.ErrInternal, err)
		}
		employee.PasswordHash = passwordHash
	}
	employee.Touch(time.Now().UTC())

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee soft-deletes an active employee.
func (s *employeeService) DeleteEmployee(ctx context.Context, bankID, employeeID string) error {
	err := s.employeeRepo.DeactivateEmployee(ctx, bankID, employeeID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return err
	}
	return nil
}

func (s *employeeService) DeactivateBankEmployees(ctx context.Context, bankID string) error {
	if err := s.employeeRepo.DeactivateEmployeesByBank(ctx, bankID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate bank employees", slog.String("bank_id", bankID))
		return err
	}
	return nil
}
