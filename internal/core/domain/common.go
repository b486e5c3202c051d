package domain

import "time"

// SoftDeleteFields holds lifecycle metadata shared by banks, accounts and employees.
// A deleted record keeps its row; IsActive flips to false and DeletedOn is set.
type SoftDeleteFields struct {
	IsActive  bool       `json:"isActive"`
	CreatedOn time.Time  `json:"createdOn"`
	UpdatedOn *time.Time `json:"updatedOn,omitempty"`
	DeletedOn *time.Time `json:"deletedOn,omitempty"`
}

// NewSoftDeleteFields returns lifecycle metadata for a freshly created record.
func NewSoftDeleteFields(now time.Time) SoftDeleteFields {
	return SoftDeleteFields{IsActive: true, CreatedOn: now}
}

// Touch stamps UpdatedOn.
func (f *SoftDeleteFields) Touch(now time.Time) {
	f.UpdatedOn = &now
}

// MarkDeleted deactivates the record and stamps DeletedOn.
func (f *SoftDeleteFields) MarkDeleted(now time.Time) {
	f.IsActive = false
	f.DeletedOn = &now
}
