package models

import "time"

// SoftDeleteFields mirrors the lifecycle columns shared by banks, accounts and employees.
type SoftDeleteFields struct {
	IsActive  bool       `db:"is_active"`
	CreatedOn time.Time  `db:"created_on"`
	UpdatedOn *time.Time `db:"updated_on"`
	DeletedOn *time.Time `db:"deleted_on"`
}
