package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// accountService owns account state and the balance primitives. It never
// appends journal entries itself; the bank service records them.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	currencies  portssvc.CurrencyReaderSvc
	credentials portssvc.CredentialSvc
	idGen       portssvc.IDGeneratorSvc
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, currencies portssvc.CurrencyReaderSvc,
	credentials portssvc.CredentialSvc, idGen portssvc.IDGeneratorSvc) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: repo,
		currencies:  currencies,
		credentials: credentials,
		idGen:       idGen,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccount(ctx context.Context, bankID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, bankID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// CheckAccountExistence fails with ErrUserNotFound unless an active account uses username.
func (s *accountService) CheckAccountExistence(ctx context.Context, bankID, username string) error {
	_, err := s.accountRepo.FindAccountByUsername(ctx, bankID, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		s.LogError(ctx, err, "Failed to find account by username", slog.String("username", username))
		return err
	}
	return nil
}

func (s *accountService) GetBalance(ctx context.Context, bankID, accountID string) (decimal.Decimal, error) {
	account, err := s.GetAccount(ctx, bankID, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// Authenticate never fails for a wrong pin; it returns false instead.
func (s *accountService) Authenticate(ctx context.Context, bankID, accountID, pin string) (bool, error) {
	account, err := s.GetAccount(ctx, bankID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.credentials.Verify(account.PinHash, pin), nil
}

// CreateAccount validates req and builds an unsaved account holding the
// opening balance.
func (s *accountService) CreateAccount(ctx context.Context, bankID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	if err := requestValidator.Struct(req); err != nil {
		s.LogWarn(ctx, "Invalid account data", slog.String("reason", err.Error()))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidAccountData, err)
	}
	accountType, err := domain.ParseAccountType(string(req.AccountType))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidAccountData, err)
	}
	if err := s.ensureUsernameFree(ctx, bankID, req.Username); err != nil {
		return nil, err
	}

	pinHash, err := s.credentials.Hash(req.Pin)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash account pin")
		return nil, fmt.Errorf("%w: failed to hash pin: %w", apperrors.ErrInternal, err)
	}

	return &domain.Account{
		AccountID:        s.idGen.GenID(req.Name),
		BankID:           bankID,
		Username:         req.Username,
		Name:             req.Name,
		AccountType:      accountType,
		PinHash:          pinHash,
		Balance:          domain.OpeningBalance,
		SoftDeleteFields: domain.NewSoftDeleteFields(time.Now().UTC()),
	}, nil
}

func (s *accountService) ensureUsernameFree(ctx context.Context, bankID, username string) error {
	_, err := s.accountRepo.FindAccountByUsername(ctx, bankID, username)
	if err == nil {
		s.LogWarn(ctx, "Account username already taken",
			slog.String("bank_id", bankID),
			slog.String("username", username))
		return apperrors.ErrUsernameAlreadyExists
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account username", slog.String("username", username))
		return err
	}
	return nil
}

func (s *accountService) AddAccount(ctx context.Context, account domain.Account) error {
	if err := s.ensureUsernameFree(ctx, account.BankID, account.Username); err != nil {
		return err
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return apperrors.ErrUsernameAlreadyExists
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return err
	}
	return nil
}

// UpdateAccount applies the non-nil fields of req. Balance is never changed here.
func (s *accountService) UpdateAccount(ctx context.Context, bankID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := requestValidator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidAccountData, err)
	}
	account, err := s.GetAccount(ctx, bankID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be blank", apperrors.ErrInvalidAccountData)
		}
		account.Name = name
	}
	if req.AccountType != nil {
		accountType, err := domain.ParseAccountType(string(*req.AccountType))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidAccountData, err)
		}
		account.AccountType = accountType
	}
	if req.Pin != nil {
		pinHash, err := s.credentials.Hash(*req.Pin)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to hash pin: %w", apperrors.ErrInternal, err)
		}
		account.PinHash = pinHash
	}
	account.Touch(time.Now().UTC())

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// DeleteAccount soft-deletes an active account. Its journal is kept.
func (s *accountService) DeleteAccount(ctx context.Context, bankID, accountID string) error {
	err := s.accountRepo.DeactivateAccount(ctx, bankID, accountID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	return nil
}

func (s *accountService) DeactivateBankAccounts(ctx context.Context, bankID string) error {
	if err := s.accountRepo.DeactivateAccountsByBank(ctx, bankID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate bank accounts", slog.String("bank_id", bankID))
		return err
	}
	return nil
}

// Deposit credits amount, converted to base units through the named currency,
// and returns the credited base amount. An empty currency means the base currency.
func (s *accountService) Deposit(ctx context.Context, bankID, accountID, currency string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		s.LogWarn(ctx, "Rejected deposit amount", slog.String("amount", amount.String()))
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	account, err := s.GetAccount(ctx, bankID, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	if strings.TrimSpace(currency) == "" {
		currency = domain.BaseCurrency
	}
	unit, err := s.currencies.GetCurrencyByName(ctx, bankID, currency)
	if err != nil {
		return decimal.Zero, err
	}

	credited := unit.ToBase(amount)
	if !credited.IsPositive() {
		s.LogWarn(ctx, "Deposit rounds to nothing",
			slog.String("amount", amount.String()),
			slog.String("currency", unit.Name))
		return decimal.Zero, apperrors.ErrInvalidAmount
	}
	if err := s.setBalance(ctx, account, account.Balance.Add(credited)); err != nil {
		return decimal.Zero, err
	}
	return credited, nil
}

// Withdraw debits amount in base units. Amounts finer than
// domain.AmountScale are rejected.
func (s *accountService) Withdraw(ctx context.Context, bankID, accountID string, amount decimal.Decimal) error {
	if !domain.ValidAmount(amount) {
		s.LogWarn(ctx, "Rejected withdraw amount", slog.String("amount", amount.String()))
		return apperrors.ErrInvalidAmount
	}
	account, err := s.GetAccount(ctx, bankID, accountID)
	if err != nil {
		return err
	}
	if !account.CanDebit(amount) {
		s.LogWarn(ctx, "Insufficient balance for withdraw",
			slog.String("account_id", accountID),
			slog.String("amount", amount.String()))
		return apperrors.ErrInvalidAmount
	}
	return s.setBalance(ctx, account, account.Balance.Sub(amount))
}

// Transfer moves amount in base units between two accounts, possibly at
// different banks. Callers run it inside one unit of work.
func (s *accountService) Transfer(ctx context.Context, from, to domain.AccountRef, amount decimal.Decimal) error {
	if !domain.ValidAmount(amount) {
		s.LogWarn(ctx, "Rejected transfer amount", slog.String("amount", amount.String()))
		return apperrors.ErrInvalidAmount
	}
	source, err := s.GetAccount(ctx, from.BankID, from.AccountID)
	if err != nil {
		return err
	}
	if !source.CanDebit(amount) {
		s.LogWarn(ctx, "Insufficient balance for transfer",
			slog.String("account_id", from.AccountID),
			slog.String("amount", amount.String()))
		return apperrors.ErrInvalidAmount
	}
	if from == to {
		return fmt.Errorf("%w: source and destination are the same account", apperrors.ErrTransferFailed)
	}
	destination, err := s.GetAccount(ctx, to.BankID, to.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.LogWarn(ctx, "Transfer destination not found",
				slog.String("to_bank_id", to.BankID),
				slog.String("to_account_id", to.AccountID))
			return fmt.Errorf("%w: destination account not found", apperrors.ErrTransferFailed)
		}
		return err
	}

	if err := s.setBalance(ctx, source, source.Balance.Sub(amount)); err != nil {
		return err
	}
	return s.setBalance(ctx, destination, destination.Balance.Add(amount))
}

func (s *accountService) setBalance(ctx context.Context, account *domain.Account, balance decimal.Decimal) error {
	err := s.accountRepo.UpdateAccountBalance(ctx, account.BankID, account.AccountID, balance, time.Now().UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to update balance", slog.String("account_id", account.AccountID))
		return err
	}
	account.Balance = balance
	return nil
}
