package services

import (
	"context"
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
)

// TokenSvcFacade issues bearer tokens for authenticated principals.
type TokenSvcFacade interface {
	// IssueEmployeeToken returns a signed token for an employee and its expiry.
	IssueEmployeeToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error)

	// IssueAccountToken returns a signed token for a customer account and its expiry.
	IssueAccountToken(ctx context.Context, account *domain.Account) (string, time.Time, error)
}
