package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/SscSPs/bank_ledger/internal/platform/config"
	"github.com/SscSPs/bank_ledger/internal/utils"
)

// tokenService issues bank-scoped JWT access tokens for employees and account holders.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) IssueEmployeeToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error) {
	return s.issue(ctx, employee.EmployeeID, employee.BankID, middleware.PrincipalEmployee)
}

func (s *tokenService) IssueAccountToken(ctx context.Context, account *domain.Account) (string, time.Time, error) {
	return s.issue(ctx, account.AccountID, account.BankID, middleware.PrincipalAccount)
}

func (s *tokenService) issue(ctx context.Context, subject, bankID string, kind middleware.PrincipalKind) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(subject, bankID, string(kind), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token",
			slog.String("subject", subject),
			slog.String("kind", string(kind)))
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
