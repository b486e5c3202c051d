package services

import (
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	idGen, err := NewIDGenerator(cfg.IDNode)
	if err != nil {
		return nil, err
	}
	credentials := NewCredentialService(WithBcryptCost(cfg.BcryptCost))

	return &portssvc.ServiceContainer{
		Bank:  NewBankService(repos, credentials, idGen),
		Token: NewTokenService(cfg),
	}, nil
}
