package mapping

import (
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:       d.EmployeeID,
		BankID:           d.BankID,
		Username:         d.Username,
		Name:             d.Name,
		EmployeeType:     string(d.EmployeeType),
		PasswordHash:     d.PasswordHash,
		SoftDeleteFields: ToModelSoftDeleteFields(d.SoftDeleteFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:       m.EmployeeID,
		BankID:           m.BankID,
		Username:         m.Username,
		Name:             m.Name,
		EmployeeType:     domain.EmployeeType(m.EmployeeType),
		PasswordHash:     m.PasswordHash,
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	return mapSlice(ms, ToDomainEmployee)
}
