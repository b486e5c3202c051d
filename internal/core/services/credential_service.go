package services

import (
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"golang.org/x/crypto/bcrypt"
)

type credentialService struct {
	cost int
}

// CredentialOption configures the credential service
type CredentialOption func(*credentialService)

// WithBcryptCost overrides the bcrypt work factor
func WithBcryptCost(cost int) CredentialOption {
	return func(s *credentialService) {
		s.cost = cost
	}
}

// NewCredentialService creates a bcrypt backed CredentialSvc
func NewCredentialService(options ...CredentialOption) portssvc.CredentialSvc {
	svc := &credentialService{cost: bcrypt.DefaultCost}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CredentialSvc = (*credentialService)(nil)

func (s *credentialService) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), s.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether candidate matches digest. A malformed digest is a mismatch.
func (s *credentialService) Verify(digest, candidate string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(candidate)) == nil
}
