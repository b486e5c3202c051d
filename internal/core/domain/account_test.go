package domain_test

import (
	"testing"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_CanDebit(t *testing.T) {
	acc := domain.Account{Balance: decimal.NewFromInt(100)}

	assert.True(t, acc.CanDebit(decimal.NewFromInt(100)))
	assert.True(t, acc.CanDebit(decimal.NewFromFloat(0.01)))
	assert.False(t, acc.CanDebit(decimal.NewFromInt(101)))
	assert.False(t, acc.CanDebit(decimal.Zero))
	assert.False(t, acc.CanDebit(decimal.NewFromInt(-5)))
}

func TestParseAccountType(t *testing.T) {
	got, err := domain.ParseAccountType("SAVINGS")
	require.NoError(t, err)
	assert.Equal(t, domain.Savings, got)

	_, err = domain.ParseAccountType("savings")
	assert.Error(t, err)
}

func TestParseEmployeeType(t *testing.T) {
	got, err := domain.ParseEmployeeType("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, domain.Admin, got)

	_, err = domain.ParseEmployeeType("OWNER")
	assert.Error(t, err)
}

func TestEmployee_IsAdmin(t *testing.T) {
	admin := domain.Employee{EmployeeType: domain.Admin, SoftDeleteFields: domain.SoftDeleteFields{IsActive: true}}
	assert.True(t, admin.IsAdmin())

	admin.IsActive = false
	assert.False(t, admin.IsAdmin())

	regular := domain.Employee{EmployeeType: domain.Regular, SoftDeleteFields: domain.SoftDeleteFields{IsActive: true}}
	assert.False(t, regular.IsAdmin())
}

func TestCurrency_ToBase(t *testing.T) {
	usd := domain.Currency{Name: "USD", ExchangeRate: decimal.NewFromInt(80)}
	assert.True(t, decimal.NewFromInt(800).Equal(usd.ToBase(decimal.NewFromInt(10))))
	assert.False(t, usd.IsBase())
	assert.True(t, domain.Currency{Name: domain.BaseCurrency}.IsBase())

	jpy := domain.Currency{Name: "JPY", ExchangeRate: decimal.RequireFromString("0.55555555")}
	assert.Equal(t, "5.5556", jpy.ToBase(decimal.NewFromInt(10)).String())

	inr := domain.Currency{Name: domain.BaseCurrency, ExchangeRate: decimal.NewFromInt(1)}
	assert.True(t, inr.ToBase(decimal.RequireFromString("0.00004")).IsZero())
}

func TestValidAmount(t *testing.T) {
	assert.True(t, domain.ValidAmount(decimal.RequireFromString("0.0001")))
	assert.True(t, domain.ValidAmount(decimal.RequireFromString("12.50000")))
	assert.False(t, domain.ValidAmount(decimal.RequireFromString("0.00004")))
	assert.False(t, domain.ValidAmount(decimal.Zero))
	assert.False(t, domain.ValidAmount(decimal.NewFromInt(-3)))
}
