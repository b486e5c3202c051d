package mapping

import (
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/SscSPs/bank_ledger/internal/models"
)

// ToModelSoftDeleteFields converts domain lifecycle fields to their model form
func ToModelSoftDeleteFields(d domain.SoftDeleteFields) models.SoftDeleteFields {
	return models.SoftDeleteFields{
		IsActive:  d.IsActive,
		CreatedOn: d.CreatedOn,
		UpdatedOn: d.UpdatedOn,
		DeletedOn: d.DeletedOn,
	}
}

// ToDomainSoftDeleteFields converts model lifecycle fields to their domain form
func ToDomainSoftDeleteFields(m models.SoftDeleteFields) domain.SoftDeleteFields {
	return domain.SoftDeleteFields{
		IsActive:  m.IsActive,
		CreatedOn: m.CreatedOn,
		UpdatedOn: m.UpdatedOn,
		DeletedOn: m.DeletedOn,
	}
}

func mapSlice[M, D any](in []M, fn func(M) D) []D {
	out := make([]D, len(in))
	for i, m := range in {
		out[i] = fn(m)
	}
	return out
}
