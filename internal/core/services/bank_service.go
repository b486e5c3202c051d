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
	"github.com/SscSPs/bank_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// effects are the journal entries and audit entries an operation produces.
// They are appended by execute after the operation body succeeds, in order:
// transactions first so audit entries can reference them.
type effects struct {
	transactions []domain.Transaction
	actions      []domain.EmployeeAction
}

// bankService composes the ledger, journal, registry and audit services into
// bank-scoped operations. Each mutating operation runs in one unit of work.
type bankService struct {
	BaseService
	txManager  portsrepo.TransactionManager
	bankRepo   portsrepo.BankRepositoryFacade
	accounts   portssvc.AccountSvcFacade
	employees  portssvc.EmployeeSvcFacade
	currencies portssvc.CurrencySvcFacade
	journal    portssvc.JournalSvcFacade
	audit      portssvc.EmployeeActionSvc
	idGen      portssvc.IDGeneratorSvc
}

// NewBankService wires the bank service and the services it composes over repos.
func NewBankService(repos portsrepo.RepositoryProvider, credentials portssvc.CredentialSvc, idGen portssvc.IDGeneratorSvc) portssvc.BankSvcFacade {
	currencies := NewCurrencyService(repos.CurrencyRepo)
	return &bankService{
		txManager:  repos.TxManager,
		bankRepo:   repos.BankRepo,
		accounts:   NewAccountService(repos.AccountRepo, currencies, credentials, idGen),
		employees:  NewEmployeeService(repos.EmployeeRepo, credentials, idGen),
		currencies: currencies,
		journal:    NewJournalService(repos.TransactionRepo, idGen),
		audit:      NewEmployeeActionService(repos.EmployeeActionRepo),
		idGen:      idGen,
	}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

// execute runs op and appends its effects inside one unit of work. Any error
// rolls back every mutation op made.
func (s *bankService) execute(ctx context.Context, op func(ctx context.Context) (effects, error)) error {
	return s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		eff, err := op(ctx)
		if err != nil {
			return err
		}
		for _, txn := range eff.transactions {
			if err := s.journal.AddTransaction(ctx, txn.BankID, txn.AccountID, txn); err != nil {
				return err
			}
		}
		for _, action := range eff.actions {
			if err := s.audit.AddEmployeeAction(ctx, action.BankID, action.EmployeeID, action); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *bankService) action(bankID, employeeID string, actionType domain.EmployeeActionType, targetID string, related *string) effects {
	return effects{actions: []domain.EmployeeAction{
		s.audit.CreateEmployeeAction(bankID, employeeID, actionType, targetID, related),
	}}
}

// --- Reads ---

func (s *bankService) GetBank(ctx context.Context, bankID string) (*domain.Bank, error) {
	bank, err := s.bankRepo.FindBankByID(ctx, bankID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrBankDoesNotExist
		}
		s.LogError(ctx, err, "Failed to find bank", slog.String("bank_id", bankID))
		return nil, err
	}
	return bank, nil
}

func (s *bankService) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	banks, err := s.bankRepo.ListBanks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list banks")
		return nil, fmt.Errorf("failed to list banks: %w", err)
	}
	if banks == nil {
		return []domain.Bank{}, nil
	}
	return banks, nil
}

func (s *bankService) CheckBankExistence(ctx context.Context, bankID string) error {
	_, err := s.GetBank(ctx, bankID)
	return err
}

// ValidateBankName fails with ErrBankNameAlreadyExists when an active bank uses name.
func (s *bankService) ValidateBankName(ctx context.Context, name string) error {
	_, err := s.bankRepo.FindBankByName(ctx, name)
	if err == nil {
		return apperrors.ErrBankNameAlreadyExists
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	s.LogError(ctx, err, "Failed to check bank name", slog.String("name", name))
	return err
}

func (s *bankService) ListCurrencies(ctx context.Context, bankID string) ([]domain.Currency, error) {
	if err := s.CheckBankExistence(ctx, bankID); err != nil {
		return nil, err
	}
	return s.currencies.ListCurrencies(ctx, bankID)
}

// --- Authorization ---

func (s *bankService) requireAdmin(ctx context.Context, bankID, employeeID string) error {
	if err := s.CheckBankExistence(ctx, bankID); err != nil {
		return err
	}
	isAdmin, err := s.employees.IsEmployeeAdmin(ctx, bankID, employeeID)
	if err != nil {
		return err
	}
	if !isAdmin {
		s.LogWarn(ctx, "Admin action denied",
			slog.String("bank_id", bankID),
			slog.String("employee_id", employeeID))
		return apperrors.ErrAccessDenied
	}
	return nil
}

func (s *bankService) requireEmployee(ctx context.Context, bankID, employeeID string) error {
	if err := s.CheckBankExistence(ctx, bankID); err != nil {
		return err
	}
	if _, err := s.employees.GetEmployee(ctx, bankID, employeeID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.LogWarn(ctx, "Staff action denied",
				slog.String("bank_id", bankID),
				slog.String("employee_id", employeeID))
			return apperrors.ErrAccessDenied
		}
		return err
	}
	return nil
}

// --- Bank lifecycle ---

// CreateBank opens a bank with its first admin and the base currency. The
// NEW_BANK audit entry is attributed to that admin.
func (s *bankService) CreateBank(ctx context.Context, req dto.CreateBankRequest) (*domain.Bank, *domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, nil, fmt.Errorf("%w: bank name cannot be empty", apperrors.ErrBankCreationFailed)
	}

	var bank domain.Bank
	var admin *domain.Employee
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.ValidateBankName(ctx, name); err != nil {
			return effects{}, err
		}

		bank = domain.Bank{
			BankID:           s.idGen.GenID(name),
			Name:             name,
			IMPS:             domain.DefaultIMPS,
			RTGS:             domain.DefaultRTGS,
			OIMPS:            domain.DefaultOIMPS,
			ORTGS:            domain.DefaultORTGS,
			SoftDeleteFields: domain.NewSoftDeleteFields(time.Now().UTC()),
		}
		if err := s.bankRepo.SaveBank(ctx, bank); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return effects{}, apperrors.ErrBankNameAlreadyExists
			}
			return effects{}, err
		}

		adminReq := req.Admin
		adminReq.EmployeeType = domain.Admin
		employee, err := s.employees.CreateEmployee(ctx, bank.BankID, adminReq)
		if err != nil {
			return effects{}, fmt.Errorf("%w: %w", apperrors.ErrBankCreationFailed, err)
		}
		if err := s.employees.AddEmployee(ctx, *employee); err != nil {
			return effects{}, err
		}
		admin = employee

		base, err := s.currencies.CreateCurrency(domain.BaseCurrency, decimal.NewFromInt(1))
		if err != nil {
			return effects{}, err
		}
		if err := s.currencies.AddCurrency(ctx, bank.BankID, base); err != nil {
			return effects{}, err
		}

		return s.action(bank.BankID, admin.EmployeeID, domain.ActionNewBank, bank.BankID, nil), nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "Bank created",
		slog.String("bank_id", bank.BankID),
		slog.String("admin_id", admin.EmployeeID))
	return &bank, admin, nil
}

func (s *bankService) UpdateBank(ctx context.Context, bankID, employeeID string, req dto.UpdateBankRequest) (*domain.Bank, error) {
	if err := requestValidator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	for _, charge := range []*decimal.Decimal{req.IMPS, req.RTGS, req.OIMPS, req.ORTGS} {
		if charge != nil && charge.IsNegative() {
			return nil, fmt.Errorf("%w: transfer charges cannot be negative", apperrors.ErrValidation)
		}
	}

	var bank *domain.Bank
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.requireAdmin(ctx, bankID, employeeID); err != nil {
			return effects{}, err
		}
		current, err := s.GetBank(ctx, bankID)
		if err != nil {
			return effects{}, err
		}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return effects{}, fmt.Errorf("%w: bank name cannot be blank", apperrors.ErrValidation)
			}
			if name != current.Name {
				if err := s.ValidateBankName(ctx, name); err != nil {
					return effects{}, err
				}
				current.Name = name
			}
		}
		if req.IMPS != nil {
			current.IMPS = *req.IMPS
		}
		if req.RTGS != nil {
			current.RTGS = *req.RTGS
		}
		if req.OIMPS != nil {
			current.OIMPS = *req.OIMPS
		}
		if req.ORTGS != nil {
			current.ORTGS = *req.ORTGS
		}
		current.Touch(time.Now().UTC())

		if err := s.bankRepo.UpdateBank(ctx, *current); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return effects{}, apperrors.ErrBankNameAlreadyExists
			}
			return effects{}, err
		}
		bank = current
		return s.action(bankID, employeeID, domain.ActionUpdateBank, bankID, nil), nil
	})
	if err != nil {
		return nil, err
	}
	return bank, nil
}

// DeleteBank soft-deletes the bank with all its employees and accounts and
// removes its currencies. One DELETE_BANK entry is audited.
func (s *bankService) DeleteBank(ctx context.Context, bankID, employeeID string) error {
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.requireAdmin(ctx, bankID, employeeID); err != nil {
			return effects{}, err
		}
		if err := s.employees.DeactivateBankEmployees(ctx, bankID); err != nil {
			return effects{}, err
		}
		if err := s.accounts.DeactivateBankAccounts(ctx, bankID); err != nil {
			return effects{}, err
		}
		if err := s.currencies.DeleteBankCurrencies(ctx, bankID); err != nil {
			return effects{}, err
		}
		if err := s.bankRepo.DeactivateBank(ctx, bankID, time.Now().UTC()); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return effects{}, apperrors.ErrBankDoesNotExist
			}
			return effects{}, err
		}
		return s.action(bankID, employeeID, domain.ActionDeleteBank, bankID, nil), nil
	})
	if err != nil {
		return err
	}
	s.LogInfo(ctx, "Bank deleted", slog.String("bank_id", bankID), slog.String("employee_id", employeeID))
	return nil
}

// --- Employees (admin) ---

func (s *bankService) AddEmployee(ctx context.Context, bankID, employeeID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	var created *domain.Employee
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.requireAdmin(ctx, bankID, employeeID); err != nil {
			return effects{}, err
		}
		employee, err := s.employees.CreateEmployee(ctx, bankID, req)
		if err != nil {
			return effects{}, err
		}
		if err := s.employees.AddEmployee(ctx, *employee); err != nil {
			return effects{}, err
		}
		created = employee
		return s.action(bankID, employeeID, domain.ActionNewEmployee, employee.EmployeeID, nil), nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *bankService) UpdateEmployee(ctx context.Context, bankID, employeeID, targetEmployeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	var updated *domain.Employee
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.requireAdmin(ctx, bankID, employeeID); err != nil {
			return effects{}, err
		}
		if req.EmployeeType != nil && *req.EmployeeType != domain.Admin {
			if err := s.keepAnAdmin(ctx, bankID, targetEmployeeID); err != nil {
				return effects{}, err
			}
		}
		employee, err := s.employees.UpdateEmployee(ctx, bankID, targetEmployeeID, req)
		if err != nil {
			return effects{}, err
		}
		updated = employee
		return s.action(bankID, employeeID, domain.ActionUpdateEmployee, targetEmployeeID, nil), nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *bankService) DeleteEmployee(ctx context.Context, bankID, employeeID, targetEmployeeID string) error {
	return s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.requireAdmin(ctx, bankID, employeeID); err != nil {
			return effects{}, err
		}
		if err := s.keepAnAdmin(ctx, bankID, targetEmployeeID); err != nil {
			return effects{}, err
		}
		if err := s.employees.DeleteEmployee(ctx, bankID, targetEmployeeID); err != nil {
			return effects{}, err
		}
		return s.action(bankID, employeeID, domain.ActionDeleteEmployee, targetEmployeeID, nil), nil
	})
}

// keepAnAdmin fails with ErrLastAdmin when targetEmployeeID is the only
// active admin of the bank.
func (s *bankService) keepAnAdmin(ctx context.Context, bankID, targetEmployeeID string) error {
	target, err := s.employees.GetEmployee(ctx, bankID, targetEmployeeID)
	if err != nil {
		return err
	}
	if !target.IsAdmin() {
		return nil
	}
	employees, err := s.employees.ListEmployees(ctx, bankID)
	if err != nil {
		return err
	}
	for _, e := range employees {
		if e.EmployeeID != targetEmployeeID && e.IsAdmin() {
			return nil
		}
	}
	s.LogWarn(ctx, "Refused to remove the last admin",
		slog.String("bank_id", bankID),
		slog.String("employee_id", targetEmployeeID))
	return apperrors.ErrLastAdmin
}

// --- Currencies (admin) ---

func (s *bankService) AddCurrency(ctx context.Context, bankID, employeeID string, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	if err := requestValidator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	var added domain.Currency
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.requireAdmin(ctx, bankID, employeeID); err != nil {
			return effects{}, err
		}
		currency, err := s.currencies.CreateCurrency(req.Name, req.ExchangeRate)
		if err != nil {
			return effects{}, err
		}
		if err := s.currencies.AddCurrency(ctx, bankID, currency); err != nil {
			return effects{}, err
		}
		currency.BankID = bankID
		added = currency
		return s.action(bankID, employeeID, domain.ActionAddCurrency, currency.Name, nil), nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *bankService) UpdateCurrency(ctx context.Context, bankID, employeeID, name string, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	var updated *domain.Currency
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.requireAdmin(ctx, bankID, employeeID); err != nil {
			return effects{}, err
		}
		currency, err := s.currencies.UpdateCurrency(ctx, bankID, name, req.ExchangeRate)
		if err != nil {
			return effects{}, err
		}
		updated = currency
		return s.action(bankID, employeeID, domain.ActionUpdateCurrency, currency.Name, nil), nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *bankService) DeleteCurrency(ctx context.Context, bankID, employeeID, name string) error {
	return s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.requireAdmin(ctx, bankID, employeeID); err != nil {
			return effects{}, err
		}
		if err := s.currencies.DeleteCurrency(ctx, bankID, name); err != nil {
			return effects{}, err
		}
		return s.action(bankID, employeeID, domain.ActionDeleteCurrency, normalizeCurrencyName(name), nil), nil
	})
}

// --- Staff operations ---

func (s *bankService) ListEmployees(ctx context.Context, bankID, employeeID string) ([]domain.Employee, error) {
	if err := s.requireEmployee(ctx, bankID, employeeID); err != nil {
		return nil, err
	}
	return s.employees.ListEmployees(ctx, bankID)
}

// AddAccount opens an account with the opening balance, records the matching
// ACCOUNT_CREATION credit and audits NEW_ACCOUNT against it.
func (s *bankService) AddAccount(ctx context.Context, bankID, employeeID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	var created *domain.Account
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.requireEmployee(ctx, bankID, employeeID); err != nil {
			return effects{}, err
		}
		account, err := s.accounts.CreateAccount(ctx, bankID, req)
		if err != nil {
			return effects{}, err
		}
		if err := s.accounts.AddAccount(ctx, *account); err != nil {
			return effects{}, err
		}
		created = account

		opening := s.journal.CreateTransaction(bankID, account.AccountID, account.Balance,
			domain.Credit, domain.NarrativeAccountCreation, account.Ref(), nil)
		eff := s.action(bankID, employeeID, domain.ActionNewAccount, account.AccountID, &opening.TransactionID)
		eff.transactions = []domain.Transaction{opening}
		return eff, nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Account opened",
		slog.String("bank_id", bankID),
		slog.String("account_id", created.AccountID))
	return created, nil
}

func (s *bankService) UpdateAccount(ctx context.Context, bankID, employeeID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	var updated *domain.Account
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.requireEmployee(ctx, bankID, employeeID); err != nil {
			return effects{}, err
		}
		account, err := s.accounts.UpdateAccount(ctx, bankID, accountID, req)
		if err != nil {
			return effects{}, err
		}
		updated = account
		return s.action(bankID, employeeID, domain.ActionUpdateAccount, accountID, nil), nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *bankService) DeleteAccount(ctx context.Context, bankID, employeeID, accountID string) error {
	return s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.requireEmployee(ctx, bankID, employeeID); err != nil {
			return effects{}, err
		}
		if err := s.accounts.DeleteAccount(ctx, bankID, accountID); err != nil {
			return effects{}, err
		}
		return s.action(bankID, employeeID, domain.ActionDeleteAccount, accountID, nil), nil
	})
}

// RevertTransaction pays a transfer back from its payee to its payer. The
// original entries are left untouched; two REVERT_TRANSACTION legs are added.
// Either leg identifies the transfer, and a transfer is reverted at most once.
func (s *bankService) RevertTransaction(ctx context.Context, bankID, employeeID, transactionID string) ([]domain.Transaction, error) {
	var legs []domain.Transaction
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.requireEmployee(ctx, bankID, employeeID); err != nil {
			return effects{}, err
		}
		original, err := s.journal.GetTransactionByID(ctx, bankID, transactionID)
		if err != nil {
			return effects{}, err
		}
		if !original.IsTransfer() {
			s.LogWarn(ctx, "Revert rejected",
				slog.String("transaction_id", transactionID),
				slog.String("narrative", string(original.Narrative)))
			return effects{}, apperrors.ErrRevertNotSupported
		}

		reverted, err := s.journal.HasReversal(ctx, original.TransferKey())
		if err != nil {
			return effects{}, err
		}
		if reverted {
			s.LogWarn(ctx, "Revert rejected, transfer already reverted",
				slog.String("transaction_id", transactionID),
				slog.String("transfer", original.TransferKey()))
			return effects{}, apperrors.ErrAlreadyReverted
		}

		payer := original.Payer()
		payee, _ := original.Payee()
		eff, err := s.transfer(ctx, payee, payer, original.Amount, domain.NarrativeRevertTransaction, original.TransferKey())
		if err != nil {
			return effects{}, err
		}
		legs = eff.transactions

		originalID := original.TransactionID
		eff.actions = s.action(bankID, employeeID, domain.ActionRevertTransaction, payer.AccountID, &originalID).actions
		return eff, nil
	})
	if errors.Is(err, apperrors.ErrDuplicate) {
		// a concurrent revert of the same transfer committed first
		return nil, apperrors.ErrAlreadyReverted
	}
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Transaction reverted",
		slog.String("transaction_id", transactionID),
		slog.String("employee_id", employeeID))
	return legs, nil
}

func (s *bankService) GetTransaction(ctx context.Context, bankID, employeeID, transactionID string) (*domain.Transaction, error) {
	if err := s.requireEmployee(ctx, bankID, employeeID); err != nil {
		return nil, err
	}
	return s.journal.GetTransactionByID(ctx, bankID, transactionID)
}

// ReconcileAccount replays an account's journal and compares it with the
// stored balance.
func (s *bankService) ReconcileAccount(ctx context.Context, bankID, employeeID, accountID string) (*dto.ReconciliationResponse, error) {
	if err := s.requireEmployee(ctx, bankID, employeeID); err != nil {
		return nil, err
	}
	account, err := s.accounts.GetAccount(ctx, bankID, accountID)
	if err != nil {
		return nil, err
	}
	history, err := s.journal.GetTransactions(ctx, bankID, accountID)
	if err != nil && !errors.Is(err, apperrors.ErrNoTransactions) {
		return nil, err
	}
	journaled, err := accounting.ReplayBalance(history)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInternal, err)
	}

	report := &dto.ReconciliationResponse{
		AccountID:      accountID,
		StoredBalance:  account.Balance,
		JournalBalance: journaled,
		Transactions:   len(history),
		Consistent:     true,
	}
	var discrepancy accounting.Discrepancy
	if err := accounting.Reconcile(*account, history); errors.As(err, &discrepancy) {
		report.Consistent = false
		s.LogError(ctx, discrepancy, "Ledger discrepancy detected",
			slog.String("bank_id", bankID),
			slog.String("account_id", accountID))
	}
	return report, nil
}

// --- Self-service ---

func (s *bankService) GetAccount(ctx context.Context, bankID, accountID string) (*domain.Account, error) {
	if err := s.CheckBankExistence(ctx, bankID); err != nil {
		return nil, err
	}
	return s.accounts.GetAccount(ctx, bankID, accountID)
}

func (s *bankService) GetBalance(ctx context.Context, bankID, accountID string) (decimal.Decimal, error) {
	if err := s.CheckBankExistence(ctx, bankID); err != nil {
		return decimal.Zero, err
	}
	return s.accounts.GetBalance(ctx, bankID, accountID)
}

func (s *bankService) Deposit(ctx context.Context, bankID, accountID, currency string, amount decimal.Decimal) (*domain.Transaction, error) {
	var recorded domain.Transaction
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.CheckBankExistence(ctx, bankID); err != nil {
			return effects{}, err
		}
		credited, err := s.accounts.Deposit(ctx, bankID, accountID, currency, amount)
		if err != nil {
			return effects{}, err
		}
		ref := domain.AccountRef{BankID: bankID, AccountID: accountID}
		recorded = s.journal.CreateTransaction(bankID, accountID, credited, domain.Credit, domain.NarrativeDeposit, ref, nil)
		return effects{transactions: []domain.Transaction{recorded}}, nil
	})
	if err != nil {
		return nil, err
	}
	return &recorded, nil
}

func (s *bankService) Withdraw(ctx context.Context, bankID, accountID string, amount decimal.Decimal) (*domain.Transaction, error) {
	var recorded domain.Transaction
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.CheckBankExistence(ctx, bankID); err != nil {
			return effects{}, err
		}
		if err := s.accounts.Withdraw(ctx, bankID, accountID, amount); err != nil {
			return effects{}, err
		}
		ref := domain.AccountRef{BankID: bankID, AccountID: accountID}
		recorded = s.journal.CreateTransaction(bankID, accountID, amount, domain.Debit, domain.NarrativeWithdraw, ref, nil)
		return effects{transactions: []domain.Transaction{recorded}}, nil
	})
	if err != nil {
		return nil, err
	}
	return &recorded, nil
}

// Transfer moves amount from the caller's account and returns the debit leg.
func (s *bankService) Transfer(ctx context.Context, bankID, accountID, toBankID, toAccountID string, amount decimal.Decimal) (*domain.Transaction, error) {
	var debit domain.Transaction
	err := s.execute(ctx, func(ctx context.Context) (effects, error) {
		if err := s.CheckBankExistence(ctx, bankID); err != nil {
			return effects{}, err
		}
		from := domain.AccountRef{BankID: bankID, AccountID: accountID}
		to := domain.AccountRef{BankID: toBankID, AccountID: toAccountID}
		eff, err := s.transfer(ctx, from, to, amount, domain.NarrativeTransfer, "")
		if err != nil {
			return effects{}, err
		}
		debit = eff.transactions[0]
		return eff, nil
	})
	if err != nil {
		return nil, err
	}
	return &debit, nil
}

// transfer moves the balances and returns the debit leg on from followed by
// the credit leg on to. Both legs name from as payer and to as payee, and both
// carry reference, which defaults to the debit leg's id.
func (s *bankService) transfer(ctx context.Context, from, to domain.AccountRef, amount decimal.Decimal,
	narrative domain.TransactionNarrative, reference string) (effects, error) {
	if err := s.accounts.Transfer(ctx, from, to, amount); err != nil {
		return effects{}, err
	}
	debit := s.journal.CreateTransaction(from.BankID, from.AccountID, amount, domain.Debit, narrative, from, &to)
	credit := s.journal.CreateTransaction(to.BankID, to.AccountID, amount, domain.Credit, narrative, from, &to)
	if reference == "" {
		reference = debit.TransactionID
	}
	debit.ReferenceID = &reference
	credit.ReferenceID = &reference
	return effects{transactions: []domain.Transaction{debit, credit}}, nil
}

func (s *bankService) GetTransactions(ctx context.Context, bankID, accountID string) ([]domain.Transaction, error) {
	if err := s.CheckBankExistence(ctx, bankID); err != nil {
		return nil, err
	}
	return s.journal.GetTransactions(ctx, bankID, accountID)
}

func (s *bankService) ListTransactions(ctx context.Context, bankID, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if err := s.CheckBankExistence(ctx, bankID); err != nil {
		return nil, err
	}
	return s.journal.ListTransactions(ctx, bankID, accountID, params)
}

// --- Authentication ---

// AuthenticateEmployee returns the employee when password matches. Every
// mismatch is reported as ErrAuthenticationFailed.
func (s *bankService) AuthenticateEmployee(ctx context.Context, bankID, employeeID, password string) (*domain.Employee, error) {
	if err := s.CheckBankExistence(ctx, bankID); err != nil {
		if errors.Is(err, apperrors.ErrBankDoesNotExist) {
			return nil, apperrors.ErrAuthenticationFailed
		}
		return nil, err
	}
	ok, err := s.employees.Authenticate(ctx, bankID, employeeID, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.LogWarn(ctx, "Employee authentication failed", slog.String("employee_id", employeeID))
		return nil, apperrors.ErrAuthenticationFailed
	}
	return s.employees.GetEmployee(ctx, bankID, employeeID)
}

// AuthenticateAccount returns the account when pin matches.
func (s *bankService) AuthenticateAccount(ctx context.Context, bankID, accountID, pin string) (*domain.Account, error) {
	if err := s.CheckBankExistence(ctx, bankID); err != nil {
		if errors.Is(err, apperrors.ErrBankDoesNotExist) {
			return nil, apperrors.ErrAuthenticationFailed
		}
		return nil, err
	}
	ok, err := s.accounts.Authenticate(ctx, bankID, accountID, pin)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.LogWarn(ctx, "Account authentication failed", slog.String("account_id", accountID))
		return nil, apperrors.ErrAuthenticationFailed
	}
	return s.accounts.GetAccount(ctx, bankID, accountID)
}
