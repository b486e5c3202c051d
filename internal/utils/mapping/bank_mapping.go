package mapping

import (
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/models"
)

// ToModelBank converts a domain Bank to a model Bank
func ToModelBank(d domain.Bank) models.Bank {
	return models.Bank{
		BankID:           d.BankID,
		Name:             d.Name,
		IMPS:             d.IMPS,
		RTGS:             d.RTGS,
		OIMPS:            d.OIMPS,
		ORTGS:            d.ORTGS,
		SoftDeleteFields: ToModelSoftDeleteFields(d.SoftDeleteFields),
	}
}

// ToDomainBank converts a model Bank to a domain Bank
func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{
		BankID:           m.BankID,
		Name:             m.Name,
		IMPS:             m.IMPS,
		RTGS:             m.RTGS,
		OIMPS:            m.OIMPS,
		ORTGS:            m.ORTGS,
		SoftDeleteFields: ToDomainSoftDeleteFields(m.SoftDeleteFields),
	}
}

// ToDomainBankSlice converts a slice of model Banks to domain Banks
func ToDomainBankSlice(ms []models.Bank) []domain.Bank {
	return mapSlice(ms, ToDomainBank)
}
