package mapping

import (
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:        d.AccountID,
		BankID:           d.BankID,
		Username:         d.Username,
		Name:             d.Name,
		AccountType:      string(d.AccountType),
		PinHash:          d.PinHash,
		Balance:          d.Balance,
		SoftDeleteFields: ToModelSoftDeleteFields(d.SoftDeleteFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:        m.AccountID,
		BankID:           m.BankID,
		Username:         m.Username,
		Name:             m.Name,
		AccountType:      domain.AccountType(m.AccountType),
		PinHash:          m.PinHash,
		Balance:          m.Balance,
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	return mapSlice(ms, ToDomainAccount)
}
