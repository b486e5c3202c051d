package dto

import (
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankRequest defines the data needed to open a new bank together with
// its first admin employee.
type CreateBankRequest struct {
	Name  string               `json:"name"`
	Admin CreateEmployeeRequest `json:"admin"`
}

// UpdateBankRequest defines the data allowed for updating a bank.
// Nil fields are left unchanged.
type UpdateBankRequest struct {
	Name  *string          `json:"name" binding:"omitempty,min=1"`
	IMPS  *decimal.Decimal `json:"imps"`
	RTGS  *decimal.Decimal `json:"rtgs"`
	OIMPS *decimal.Decimal `json:"oimps"`
	ORTGS *decimal.Decimal `json:"ortgs"`
}

// BankResponse defines the data returned for a bank.
type BankResponse struct {
	BankID    string          `json:"bankID"`
	Name      string          `json:"name"`
	IMPS      decimal.Decimal `json:"imps"`
	RTGS      decimal.Decimal `json:"rtgs"`
	OIMPS     decimal.Decimal `json:"oimps"`
	ORTGS     decimal.Decimal `json:"ortgs"`
	IsActive  bool            `json:"isActive"`
	CreatedOn time.Time       `json:"createdOn"`
}

// CreateBankResponse is returned once a bank is opened.
type CreateBankResponse struct {
	Bank  BankResponse     `json:"bank"`
	Admin EmployeeResponse `json:"admin"`
}

// BankSummary pairs a bank id with its name for listings.
type BankSummary struct {
	BankID string `json:"bankID"`
	Name   string `json:"name"`
}

// ToBankResponse converts a domain.Bank to BankResponse DTO
func ToBankResponse(b *domain.Bank) BankResponse {
	return BankResponse{
		BankID:    b.BankID,
		Name:      b.Name,
		IMPS:      b.IMPS,
		RTGS:      b.RTGS,
		OIMPS:     b.OIMPS,
		ORTGS:     b.ORTGS,
		IsActive:  b.IsActive,
		CreatedOn: b.CreatedOn,
	}
}

// ToBankSummaries converts banks to their listing form.
func ToBankSummaries(banks []domain.Bank) []BankSummary {
	res := make([]BankSummary, len(banks))
	for i, b := range banks {
		res[i] = BankSummary{BankID: b.BankID, Name: b.Name}
	}
	return res
}
