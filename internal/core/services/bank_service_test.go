package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bank_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/bank_ledger/internal/apperrors"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/core/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminPassword = "admin-secret"
	testPin           = "1234"
)

// MockEmployeeActionRepository is a mock type for the EmployeeActionRepository interface
type MockEmployeeActionRepository struct {
	mock.Mock
}

var _ portsrepo.EmployeeActionRepository = (*MockEmployeeActionRepository)(nil)

func (m *MockEmployeeActionRepository) SaveEmployeeAction(ctx context.Context, action domain.EmployeeAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newBankService(t *testing.T, repos portsrepo.RepositoryProvider, node int64) portssvc.BankSvcFacade {
	t.Helper()
	idGen, err := services.NewIDGenerator(node)
	require.NoError(t, err)
	credentials := services.NewCredentialService(services.WithBcryptCost(bcrypt.MinCost))
	return services.NewBankService(repos, credentials, idGen)
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// --- Test Suite Setup ---

type BankServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	repos portsrepo.RepositoryProvider
	svc   portssvc.BankSvcFacade
	bank  *domain.Bank
	admin *domain.Employee
}

func (suite *BankServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.NewStore()
	suite.repos = memory.NewRepositoryProvider(suite.store)
	suite.svc = newBankService(suite.T(), suite.repos, 1)

	bank, admin, err := suite.svc.CreateBank(suite.ctx, dto.CreateBankRequest{
		Name: gofakeit.Company(),
		Admin: dto.CreateEmployeeRequest{
			Name:     gofakeit.Name(),
			Username: "admin",
			Password: testAdminPassword,
		},
	})
	suite.Require().NoError(err)
	suite.bank = bank
	suite.admin = admin
}

func TestBankServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankServiceTestSuite))
}

func (suite *BankServiceTestSuite) openAccount(username string) *domain.Account {
	account, err := suite.svc.AddAccount(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.CreateAccountRequest{
		Name:        gofakeit.Name(),
		Username:    username,
		Pin:         testPin,
		AccountType: domain.Savings,
	})
	suite.Require().NoError(err)
	return account
}

func (suite *BankServiceTestSuite) addRegularEmployee(username string) *domain.Employee {
	employee, err := suite.svc.AddEmployee(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.CreateEmployeeRequest{
		Name:         gofakeit.Name(),
		Username:     username,
		Password:     "clerk-secret",
		EmployeeType: domain.Regular,
	})
	suite.Require().NoError(err)
	return employee
}

func (suite *BankServiceTestSuite) balance(account *domain.Account) decimal.Decimal {
	b, err := suite.svc.GetBalance(suite.ctx, account.BankID, account.AccountID)
	suite.Require().NoError(err)
	return b
}

func (suite *BankServiceTestSuite) history(account *domain.Account) []domain.Transaction {
	txns, err := suite.svc.GetTransactions(suite.ctx, account.BankID, account.AccountID)
	suite.Require().NoError(err)
	return txns
}

func (suite *BankServiceTestSuite) assertReconciled(account *domain.Account) {
	report, err := suite.svc.ReconcileAccount(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, account.AccountID)
	suite.Require().NoError(err)
	suite.True(report.Consistent, "stored %s journal %s", report.StoredBalance, report.JournalBalance)
}

// --- Test Cases ---

func (suite *BankServiceTestSuite) TestCreateBank_SeedsAdminCurrencyAndAudit() {
	suite.True(suite.admin.IsAdmin())
	suite.Equal(suite.bank.BankID, suite.admin.BankID)
	suite.True(domain.DefaultIMPS.Equal(suite.bank.IMPS))

	currencies, err := suite.svc.ListCurrencies(suite.ctx, suite.bank.BankID)
	suite.Require().NoError(err)
	suite.Require().Len(currencies, 1)
	suite.Equal(domain.BaseCurrency, currencies[0].Name)
	suite.True(currencies[0].ExchangeRate.Equal(dec(1)))

	actions := suite.store.EmployeeActions(suite.bank.BankID)
	suite.Require().Len(actions, 1)
	suite.Equal(domain.ActionNewBank, actions[0].ActionType)
	suite.Equal(suite.admin.EmployeeID, actions[0].EmployeeID)
	suite.Equal(suite.bank.BankID, actions[0].TargetID)
}

func (suite *BankServiceTestSuite) TestCreateBank_Failures() {
	_, _, err := suite.svc.CreateBank(suite.ctx, dto.CreateBankRequest{Name: "  "})
	suite.ErrorIs(err, apperrors.ErrBankCreationFailed)

	_, _, err = suite.svc.CreateBank(suite.ctx, dto.CreateBankRequest{
		Name:  suite.bank.Name,
		Admin: dto.CreateEmployeeRequest{Name: "Other", Username: "other", Password: "pw"},
	})
	suite.ErrorIs(err, apperrors.ErrBankNameAlreadyExists)

	_, _, err = suite.svc.CreateBank(suite.ctx, dto.CreateBankRequest{Name: "No Admin Bank"})
	suite.ErrorIs(err, apperrors.ErrBankCreationFailed)
	_, err = suite.repos.BankRepo.FindBankByName(suite.ctx, "No Admin Bank")
	suite.ErrorIs(err, apperrors.ErrNotFound, "failed creation must not leave a bank behind")
}

func (suite *BankServiceTestSuite) TestAddAccount_OpeningBalanceAndAudit() {
	account := suite.openAccount("alice")

	suite.True(account.Balance.Equal(domain.OpeningBalance))
	txns := suite.history(account)
	suite.Require().Len(txns, 1)
	suite.Equal(domain.Credit, txns[0].TransactionType)
	suite.Equal(domain.NarrativeAccountCreation, txns[0].Narrative)
	suite.True(txns[0].Amount.Equal(dec(1500)))

	actions := suite.store.EmployeeActions(suite.bank.BankID)
	last := actions[len(actions)-1]
	suite.Equal(domain.ActionNewAccount, last.ActionType)
	suite.Equal(account.AccountID, last.TargetID)
	suite.Require().NotNil(last.RelatedTransactionID)
	suite.Equal(txns[0].TransactionID, *last.RelatedTransactionID)
}

func (suite *BankServiceTestSuite) TestAddAccount_DuplicateUsername() {
	first := suite.openAccount("bob")

	_, err := suite.svc.AddAccount(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.CreateAccountRequest{
		Name:        "Bob Again",
		Username:    "bob",
		Pin:         "9999",
		AccountType: domain.Current,
	})
	suite.ErrorIs(err, apperrors.ErrUsernameAlreadyExists)

	suite.True(suite.balance(first).Equal(domain.OpeningBalance))
	suite.Len(suite.history(first), 1)
}

func (suite *BankServiceTestSuite) TestAddAccount_InvalidData() {
	_, err := suite.svc.AddAccount(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.CreateAccountRequest{
		Name:     "",
		Username: "nobody",
		Pin:      testPin,
	})
	suite.ErrorIs(err, apperrors.ErrInvalidAccountData)
	suite.ErrorIs(err, apperrors.ErrAccountCreationFailed)
}

func (suite *BankServiceTestSuite) TestLedgerWalkthrough() {
	_, err := suite.svc.AddCurrency(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.CreateCurrencyRequest{
		Name:         "USD",
		ExchangeRate: dec(2),
	})
	suite.Require().NoError(err)

	source := suite.openAccount("carol")
	destination := suite.openAccount("dave")
	suite.True(suite.balance(source).Equal(dec(1500)))

	deposit, err := suite.svc.Deposit(suite.ctx, suite.bank.BankID, source.AccountID, "USD", dec(100))
	suite.Require().NoError(err)
	suite.Equal(domain.Credit, deposit.TransactionType)
	suite.True(deposit.Amount.Equal(dec(200)))
	suite.True(suite.balance(source).Equal(dec(1700)))

	withdraw, err := suite.svc.Withdraw(suite.ctx, suite.bank.BankID, source.AccountID, dec(300))
	suite.Require().NoError(err)
	suite.Equal(domain.Debit, withdraw.TransactionType)
	suite.True(withdraw.Amount.Equal(dec(300)))
	suite.True(suite.balance(source).Equal(dec(1400)))

	debit, err := suite.svc.Transfer(suite.ctx, suite.bank.BankID, source.AccountID, suite.bank.BankID, destination.AccountID, dec(200))
	suite.Require().NoError(err)
	suite.True(suite.balance(source).Equal(dec(1200)))
	suite.True(suite.balance(destination).Equal(dec(1700)))

	suite.Equal(domain.Debit, debit.TransactionType)
	suite.Require().NotNil(debit.ToAccountID)
	suite.Equal(destination.AccountID, *debit.ToAccountID)

	destHistory := suite.history(destination)
	credit := destHistory[len(destHistory)-1]
	suite.Equal(domain.Credit, credit.TransactionType)
	suite.Equal(domain.NarrativeTransfer, credit.Narrative)
	suite.Equal(source.AccountID, credit.FromAccountID)
	suite.True(credit.Amount.Equal(debit.Amount))

	suite.Len(suite.history(source), 4)
	suite.assertReconciled(source)
	suite.assertReconciled(destination)
}

func (suite *BankServiceTestSuite) TestDeposit_DefaultsToBaseCurrency() {
	account := suite.openAccount("erin")

	txn, err := suite.svc.Deposit(suite.ctx, suite.bank.BankID, account.AccountID, "", dec(50))
	suite.Require().NoError(err)
	suite.True(txn.Amount.Equal(dec(50)))

	_, err = suite.svc.Deposit(suite.ctx, suite.bank.BankID, account.AccountID, "XYZ", dec(50))
	suite.ErrorIs(err, apperrors.ErrCurrencyDoesNotExist)
	suite.True(suite.balance(account).Equal(dec(1550)))
}

func (suite *BankServiceTestSuite) TestDeposit_InvalidAmountLeavesLedgerUnchanged() {
	account := suite.openAccount("frank")

	for _, amount := range []decimal.Decimal{decimal.Zero, dec(-10)} {
		_, err := suite.svc.Deposit(suite.ctx, suite.bank.BankID, account.AccountID, "", amount)
		suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	}
	suite.True(suite.balance(account).Equal(domain.OpeningBalance))
	suite.Len(suite.history(account), 1)
}

func (suite *BankServiceTestSuite) TestAmountsBeyondStoredPrecision() {
	account := suite.openAccount("tilda")
	other := suite.openAccount("umar")
	tiny := decimal.RequireFromString("0.00004")

	_, err := suite.svc.Deposit(suite.ctx, suite.bank.BankID, account.AccountID, "", tiny)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	_, err = suite.svc.Withdraw(suite.ctx, suite.bank.BankID, account.AccountID, tiny)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	_, err = suite.svc.Transfer(suite.ctx, suite.bank.BankID, account.AccountID, suite.bank.BankID, other.AccountID, tiny)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.True(suite.balance(account).Equal(domain.OpeningBalance))

	_, err = suite.svc.AddCurrency(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.CreateCurrencyRequest{
		Name: "JPY", ExchangeRate: decimal.RequireFromString("0.55555555"),
	})
	suite.Require().NoError(err)
	deposit, err := suite.svc.Deposit(suite.ctx, suite.bank.BankID, account.AccountID, "JPY", dec(10))
	suite.Require().NoError(err)
	suite.Equal("5.5556", deposit.Amount.String())
	suite.assertReconciled(account)
}

func (suite *BankServiceTestSuite) TestWithdraw_MoreThanBalance() {
	account := suite.openAccount("grace")

	_, err := suite.svc.Withdraw(suite.ctx, suite.bank.BankID, account.AccountID, dec(1501))
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.True(suite.balance(account).Equal(domain.OpeningBalance))
	suite.Len(suite.history(account), 1)
}

func (suite *BankServiceTestSuite) TestTransfer_Failures() {
	source := suite.openAccount("heidi")
	destination := suite.openAccount("ivan")

	tests := []struct {
		name        string
		fromAccount string
		toBank      string
		toAccount   string
		amount      decimal.Decimal
		wantErr     error
	}{
		{"unknown source", "missing", suite.bank.BankID, destination.AccountID, dec(10), apperrors.ErrUserNotFound},
		{"zero amount", source.AccountID, suite.bank.BankID, destination.AccountID, decimal.Zero, apperrors.ErrInvalidAmount},
		{"overdraw", source.AccountID, suite.bank.BankID, destination.AccountID, dec(5000), apperrors.ErrInvalidAmount},
		{"unknown destination", source.AccountID, suite.bank.BankID, "missing", dec(10), apperrors.ErrTransferFailed},
		{"unknown destination bank", source.AccountID, "NOPE", destination.AccountID, dec(10), apperrors.ErrTransferFailed},
		{"same account", source.AccountID, suite.bank.BankID, source.AccountID, dec(10), apperrors.ErrTransferFailed},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.svc.Transfer(suite.ctx, suite.bank.BankID, tt.fromAccount, tt.toBank, tt.toAccount, tt.amount)
			suite.ErrorIs(err, tt.wantErr)
		})
	}

	suite.True(suite.balance(source).Equal(domain.OpeningBalance))
	suite.True(suite.balance(destination).Equal(domain.OpeningBalance))
}

func (suite *BankServiceTestSuite) TestTransfer_AcrossBanks() {
	otherBank, otherAdmin, err := suite.svc.CreateBank(suite.ctx, dto.CreateBankRequest{
		Name:  "Second Bank",
		Admin: dto.CreateEmployeeRequest{Name: "Olga", Username: "olga", Password: "pw"},
	})
	suite.Require().NoError(err)
	remote, err := suite.svc.AddAccount(suite.ctx, otherBank.BankID, otherAdmin.EmployeeID, dto.CreateAccountRequest{
		Name: "Remote", Username: "remote", Pin: testPin, AccountType: domain.Current,
	})
	suite.Require().NoError(err)
	local := suite.openAccount("judy")

	_, err = suite.svc.Transfer(suite.ctx, suite.bank.BankID, local.AccountID, otherBank.BankID, remote.AccountID, dec(500))
	suite.Require().NoError(err)

	suite.True(suite.balance(local).Equal(dec(1000)))
	suite.True(suite.balance(remote).Equal(dec(2000)))

	remoteHistory := suite.history(remote)
	credit := remoteHistory[len(remoteHistory)-1]
	suite.Equal(otherBank.BankID, credit.BankID)
	suite.Equal(suite.bank.BankID, credit.FromBankID)
}

func (suite *BankServiceTestSuite) TestRevertTransaction_RestoresBalances() {
	source := suite.openAccount("kim")
	destination := suite.openAccount("leo")

	debit, err := suite.svc.Transfer(suite.ctx, suite.bank.BankID, source.AccountID, suite.bank.BankID, destination.AccountID, dec(250))
	suite.Require().NoError(err)

	legs, err := suite.svc.RevertTransaction(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, debit.TransactionID)
	suite.Require().NoError(err)
	suite.Require().Len(legs, 2)
	suite.Equal(destination.AccountID, legs[0].AccountID)
	suite.Equal(domain.Debit, legs[0].TransactionType)
	suite.Equal(source.AccountID, legs[1].AccountID)
	suite.Equal(domain.Credit, legs[1].TransactionType)

	suite.True(suite.balance(source).Equal(domain.OpeningBalance))
	suite.True(suite.balance(destination).Equal(domain.OpeningBalance))

	var transfers, reverts int
	for _, txn := range append(suite.history(source), suite.history(destination)...) {
		switch txn.Narrative {
		case domain.NarrativeTransfer:
			transfers++
		case domain.NarrativeRevertTransaction:
			reverts++
		}
	}
	suite.Equal(2, transfers)
	suite.Equal(2, reverts)

	_, err = suite.svc.GetTransaction(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, debit.TransactionID)
	suite.NoError(err, "original entry must survive the revert")

	actions := suite.store.EmployeeActions(suite.bank.BankID)
	last := actions[len(actions)-1]
	suite.Equal(domain.ActionRevertTransaction, last.ActionType)
	suite.Equal(source.AccountID, last.TargetID)
	suite.Require().NotNil(last.RelatedTransactionID)
	suite.Equal(debit.TransactionID, *last.RelatedTransactionID)

	suite.assertReconciled(source)
	suite.assertReconciled(destination)
}

func (suite *BankServiceTestSuite) TestRevertTransaction_Unsupported() {
	account := suite.openAccount("mona")
	deposit, err := suite.svc.Deposit(suite.ctx, suite.bank.BankID, account.AccountID, "", dec(10))
	suite.Require().NoError(err)
	actionsBefore := len(suite.store.EmployeeActions(suite.bank.BankID))

	_, err = suite.svc.RevertTransaction(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, deposit.TransactionID)
	suite.ErrorIs(err, apperrors.ErrRevertNotSupported)

	_, err = suite.svc.RevertTransaction(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, "TXN-missing")
	suite.ErrorIs(err, apperrors.ErrTransactionNotFound)

	suite.Len(suite.store.EmployeeActions(suite.bank.BankID), actionsBefore)
}

func (suite *BankServiceTestSuite) TestRevertTransaction_OnlyOncePerTransfer() {
	payer := suite.openAccount("xena")
	payee := suite.openAccount("yuri")

	debit, err := suite.svc.Transfer(suite.ctx, suite.bank.BankID, payer.AccountID, suite.bank.BankID, payee.AccountID, dec(100))
	suite.Require().NoError(err)
	payeeHistory := suite.history(payee)
	credit := payeeHistory[len(payeeHistory)-1]
	suite.Require().Equal(domain.NarrativeTransfer, credit.Narrative)
	suite.Require().NotNil(credit.ReferenceID)
	suite.Equal(debit.TransferKey(), credit.TransferKey())

	legs, err := suite.svc.RevertTransaction(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, debit.TransactionID)
	suite.Require().NoError(err)
	for _, leg := range legs {
		suite.Equal(debit.TransferKey(), leg.TransferKey())
	}
	suite.True(suite.balance(payer).Equal(domain.OpeningBalance))
	suite.True(suite.balance(payee).Equal(domain.OpeningBalance))
	actionsBefore := len(suite.store.EmployeeActions(suite.bank.BankID))

	_, err = suite.svc.RevertTransaction(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, credit.TransactionID)
	suite.ErrorIs(err, apperrors.ErrAlreadyReverted)
	_, err = suite.svc.RevertTransaction(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, debit.TransactionID)
	suite.ErrorIs(err, apperrors.ErrAlreadyReverted)
	_, err = suite.svc.RevertTransaction(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, legs[0].TransactionID)
	suite.ErrorIs(err, apperrors.ErrRevertNotSupported)

	suite.True(suite.balance(payer).Equal(domain.OpeningBalance))
	suite.True(suite.balance(payee).Equal(domain.OpeningBalance))
	suite.Len(suite.store.EmployeeActions(suite.bank.BankID), actionsBefore)
	suite.assertReconciled(payer)
	suite.assertReconciled(payee)
}

func (suite *BankServiceTestSuite) TestRevertTransaction_CreditLegFirst() {
	payer := suite.openAccount("zara")
	payee := suite.openAccount("abel")

	debit, err := suite.svc.Transfer(suite.ctx, suite.bank.BankID, payer.AccountID, suite.bank.BankID, payee.AccountID, dec(40))
	suite.Require().NoError(err)
	payeeHistory := suite.history(payee)
	credit := payeeHistory[len(payeeHistory)-1]

	_, err = suite.svc.RevertTransaction(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, credit.TransactionID)
	suite.Require().NoError(err)
	_, err = suite.svc.RevertTransaction(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, debit.TransactionID)
	suite.ErrorIs(err, apperrors.ErrAlreadyReverted)

	suite.True(suite.balance(payer).Equal(domain.OpeningBalance))
	suite.True(suite.balance(payee).Equal(domain.OpeningBalance))
}

func (suite *BankServiceTestSuite) TestAddEmployee_NonAdminDenied() {
	clerk := suite.addRegularEmployee("clerk")
	actionsBefore := len(suite.store.EmployeeActions(suite.bank.BankID))

	_, err := suite.svc.AddEmployee(suite.ctx, suite.bank.BankID, clerk.EmployeeID, dto.CreateEmployeeRequest{
		Name:         "Intruder",
		Username:     "intruder",
		Password:     "pw",
		EmployeeType: domain.Admin,
	})
	suite.ErrorIs(err, apperrors.ErrAccessDenied)
	suite.Len(suite.store.EmployeeActions(suite.bank.BankID), actionsBefore)

	_, err = suite.repos.EmployeeRepo.FindEmployeeByUsername(suite.ctx, suite.bank.BankID, "intruder")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BankServiceTestSuite) TestStaffOperations_AllowRegularEmployees() {
	clerk := suite.addRegularEmployee("teller")

	account, err := suite.svc.AddAccount(suite.ctx, suite.bank.BankID, clerk.EmployeeID, dto.CreateAccountRequest{
		Name: "Nina", Username: "nina", Pin: testPin, AccountType: domain.Savings,
	})
	suite.Require().NoError(err)

	employees, err := suite.svc.ListEmployees(suite.ctx, suite.bank.BankID, clerk.EmployeeID)
	suite.Require().NoError(err)
	suite.Len(employees, 2)

	_, err = suite.svc.AddAccount(suite.ctx, suite.bank.BankID, "stranger", dto.CreateAccountRequest{
		Name: "Nope", Username: "nope", Pin: testPin, AccountType: domain.Savings,
	})
	suite.ErrorIs(err, apperrors.ErrAccessDenied)

	suite.Require().NoError(suite.svc.DeleteAccount(suite.ctx, suite.bank.BankID, clerk.EmployeeID, account.AccountID))
	_, err = suite.svc.GetAccount(suite.ctx, suite.bank.BankID, account.AccountID)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *BankServiceTestSuite) TestUpdateAccount_NilPinKeepsCredential() {
	account := suite.openAccount("olive")
	name := "Olive Renamed"

	updated, err := suite.svc.UpdateAccount(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, account.AccountID, dto.UpdateAccountRequest{Name: &name})
	suite.Require().NoError(err)
	suite.Equal(name, updated.Name)
	suite.True(updated.Balance.Equal(account.Balance))

	_, err = suite.svc.AuthenticateAccount(suite.ctx, suite.bank.BankID, account.AccountID, testPin)
	suite.NoError(err)

	newPin := "4321"
	_, err = suite.svc.UpdateAccount(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, account.AccountID, dto.UpdateAccountRequest{Pin: &newPin})
	suite.Require().NoError(err)
	_, err = suite.svc.AuthenticateAccount(suite.ctx, suite.bank.BankID, account.AccountID, testPin)
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
	_, err = suite.svc.AuthenticateAccount(suite.ctx, suite.bank.BankID, account.AccountID, newPin)
	suite.NoError(err)
}

func (suite *BankServiceTestSuite) lastAction() domain.EmployeeAction {
	actions := suite.store.EmployeeActions(suite.bank.BankID)
	suite.Require().NotEmpty(actions)
	return actions[len(actions)-1]
}

func (suite *BankServiceTestSuite) TestUpdateBank_RenamesAndAudits() {
	name := "Renamed Savings Bank"
	rtgs := decimal.RequireFromString("2.5")
	updated, err := suite.svc.UpdateBank(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.UpdateBankRequest{Name: &name, RTGS: &rtgs})
	suite.Require().NoError(err)
	suite.Equal(name, updated.Name)
	suite.True(updated.RTGS.Equal(rtgs))
	suite.True(updated.IMPS.Equal(suite.bank.IMPS))

	last := suite.lastAction()
	suite.Equal(domain.ActionUpdateBank, last.ActionType)
	suite.Equal(suite.admin.EmployeeID, last.EmployeeID)
	suite.Equal(suite.bank.BankID, last.TargetID)

	other, _, err := suite.svc.CreateBank(suite.ctx, dto.CreateBankRequest{
		Name:  "Taken Name Bank",
		Admin: dto.CreateEmployeeRequest{Name: gofakeit.Name(), Username: "boss", Password: "pw"},
	})
	suite.Require().NoError(err)
	actionsBefore := len(suite.store.EmployeeActions(suite.bank.BankID))

	_, err = suite.svc.UpdateBank(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.UpdateBankRequest{Name: &other.Name})
	suite.ErrorIs(err, apperrors.ErrBankNameAlreadyExists)

	clerk := suite.addRegularEmployee("bank-clerk")
	actionsBefore++
	clerkName := "Clerk Bank"
	_, err = suite.svc.UpdateBank(suite.ctx, suite.bank.BankID, clerk.EmployeeID, dto.UpdateBankRequest{Name: &clerkName})
	suite.ErrorIs(err, apperrors.ErrAccessDenied)

	suite.Len(suite.store.EmployeeActions(suite.bank.BankID), actionsBefore)
	bank, err := suite.svc.GetBank(suite.ctx, suite.bank.BankID)
	suite.Require().NoError(err)
	suite.Equal(name, bank.Name)
}

func (suite *BankServiceTestSuite) TestUpdateEmployee_NilPasswordKeepsCredential() {
	clerk := suite.addRegularEmployee("paula")
	name := "Paula Renamed"

	updated, err := suite.svc.UpdateEmployee(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, clerk.EmployeeID, dto.UpdateEmployeeRequest{Name: &name})
	suite.Require().NoError(err)
	suite.Equal(name, updated.Name)
	suite.Equal(domain.Regular, updated.EmployeeType)
	_, err = suite.svc.AuthenticateEmployee(suite.ctx, suite.bank.BankID, clerk.EmployeeID, "clerk-secret")
	suite.NoError(err)

	last := suite.lastAction()
	suite.Equal(domain.ActionUpdateEmployee, last.ActionType)
	suite.Equal(clerk.EmployeeID, last.TargetID)

	password := "new-secret"
	_, err = suite.svc.UpdateEmployee(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, clerk.EmployeeID, dto.UpdateEmployeeRequest{Password: &password})
	suite.Require().NoError(err)
	_, err = suite.svc.AuthenticateEmployee(suite.ctx, suite.bank.BankID, clerk.EmployeeID, "clerk-secret")
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
	_, err = suite.svc.AuthenticateEmployee(suite.ctx, suite.bank.BankID, clerk.EmployeeID, password)
	suite.NoError(err)
}

func (suite *BankServiceTestSuite) TestUpdateEmployee_NonAdminDenied() {
	clerk := suite.addRegularEmployee("quentin")
	actionsBefore := len(suite.store.EmployeeActions(suite.bank.BankID))

	promote := domain.Admin
	_, err := suite.svc.UpdateEmployee(suite.ctx, suite.bank.BankID, clerk.EmployeeID, clerk.EmployeeID, dto.UpdateEmployeeRequest{EmployeeType: &promote})
	suite.ErrorIs(err, apperrors.ErrAccessDenied)

	suite.Len(suite.store.EmployeeActions(suite.bank.BankID), actionsBefore)
	stored, err := suite.repos.EmployeeRepo.FindEmployeeByID(suite.ctx, suite.bank.BankID, clerk.EmployeeID)
	suite.Require().NoError(err)
	suite.Equal(domain.Regular, stored.EmployeeType)
}

func (suite *BankServiceTestSuite) TestDeleteEmployee_AuditsAndDenies() {
	clerk := suite.addRegularEmployee("rhea")
	other := suite.addRegularEmployee("sven")
	actionsBefore := len(suite.store.EmployeeActions(suite.bank.BankID))

	err := suite.svc.DeleteEmployee(suite.ctx, suite.bank.BankID, other.EmployeeID, clerk.EmployeeID)
	suite.ErrorIs(err, apperrors.ErrAccessDenied)
	suite.Len(suite.store.EmployeeActions(suite.bank.BankID), actionsBefore)

	suite.Require().NoError(suite.svc.DeleteEmployee(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, clerk.EmployeeID))
	last := suite.lastAction()
	suite.Equal(domain.ActionDeleteEmployee, last.ActionType)
	suite.Equal(suite.admin.EmployeeID, last.EmployeeID)
	suite.Equal(clerk.EmployeeID, last.TargetID)

	_, err = suite.repos.EmployeeRepo.FindEmployeeByID(suite.ctx, suite.bank.BankID, clerk.EmployeeID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.svc.AuthenticateEmployee(suite.ctx, suite.bank.BankID, clerk.EmployeeID, "clerk-secret")
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)

	err = suite.svc.DeleteEmployee(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, clerk.EmployeeID)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *BankServiceTestSuite) TestLastAdminCannotBeRemoved() {
	demote := domain.Regular
	actionsBefore := len(suite.store.EmployeeActions(suite.bank.BankID))

	_, err := suite.svc.UpdateEmployee(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, suite.admin.EmployeeID, dto.UpdateEmployeeRequest{EmployeeType: &demote})
	suite.ErrorIs(err, apperrors.ErrLastAdmin)
	err = suite.svc.DeleteEmployee(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, suite.admin.EmployeeID)
	suite.ErrorIs(err, apperrors.ErrLastAdmin)
	suite.Len(suite.store.EmployeeActions(suite.bank.BankID), actionsBefore)

	second, err := suite.svc.AddEmployee(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.CreateEmployeeRequest{
		Name: gofakeit.Name(), Username: "deputy", Password: "deputy-secret", EmployeeType: domain.Admin,
	})
	suite.Require().NoError(err)

	_, err = suite.svc.UpdateEmployee(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, suite.admin.EmployeeID, dto.UpdateEmployeeRequest{EmployeeType: &demote})
	suite.Require().NoError(err)

	err = suite.svc.DeleteEmployee(suite.ctx, suite.bank.BankID, second.EmployeeID, second.EmployeeID)
	suite.ErrorIs(err, apperrors.ErrLastAdmin)

	_, err = suite.svc.AddEmployee(suite.ctx, suite.bank.BankID, second.EmployeeID, dto.CreateEmployeeRequest{
		Name: gofakeit.Name(), Username: "trainee", Password: "pw", EmployeeType: domain.Regular,
	})
	suite.NoError(err)
}

func (suite *BankServiceTestSuite) TestAuthenticateEmployee() {
	employee, err := suite.svc.AuthenticateEmployee(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, testAdminPassword)
	suite.Require().NoError(err)
	suite.Equal(suite.admin.EmployeeID, employee.EmployeeID)

	_, err = suite.svc.AuthenticateEmployee(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, "wrong")
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)

	_, err = suite.svc.AuthenticateEmployee(suite.ctx, "NOBANK", suite.admin.EmployeeID, testAdminPassword)
	suite.ErrorIs(err, apperrors.ErrAuthenticationFailed)
}

func (suite *BankServiceTestSuite) TestCurrencyManagement() {
	_, err := suite.svc.AddCurrency(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.CreateCurrencyRequest{Name: "eur", ExchangeRate: dec(90)})
	suite.Require().NoError(err)

	_, err = suite.svc.AddCurrency(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.CreateCurrencyRequest{Name: "EUR", ExchangeRate: dec(91)})
	suite.ErrorIs(err, apperrors.ErrCurrencyAlreadyExists)

	_, err = suite.svc.AddCurrency(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.CreateCurrencyRequest{Name: "GBP", ExchangeRate: decimal.Zero})
	suite.ErrorIs(err, apperrors.ErrInvalidExchangeRate)

	updated, err := suite.svc.UpdateCurrency(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, "EUR", dto.UpdateCurrencyRequest{ExchangeRate: dec(95)})
	suite.Require().NoError(err)
	suite.True(updated.ExchangeRate.Equal(dec(95)))

	_, err = suite.svc.UpdateCurrency(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, domain.BaseCurrency, dto.UpdateCurrencyRequest{ExchangeRate: dec(2)})
	suite.ErrorIs(err, apperrors.ErrBaseCurrencyLocked)

	clerk := suite.addRegularEmployee("cashier")
	err = suite.svc.DeleteCurrency(suite.ctx, suite.bank.BankID, clerk.EmployeeID, "EUR")
	suite.ErrorIs(err, apperrors.ErrAccessDenied)

	suite.Require().NoError(suite.svc.DeleteCurrency(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, "EUR"))
	err = suite.svc.DeleteCurrency(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, "EUR")
	suite.ErrorIs(err, apperrors.ErrCurrencyDoesNotExist)

	var audited []domain.EmployeeActionType
	for _, a := range suite.store.EmployeeActions(suite.bank.BankID) {
		audited = append(audited, a.ActionType)
	}
	suite.Contains(audited, domain.ActionAddCurrency)
	suite.Contains(audited, domain.ActionUpdateCurrency)
	suite.Contains(audited, domain.ActionDeleteCurrency)
}

func (suite *BankServiceTestSuite) TestDeleteBank_CascadesSoftDelete() {
	clerk := suite.addRegularEmployee("porter")
	account := suite.openAccount("pat")

	err := suite.svc.DeleteBank(suite.ctx, suite.bank.BankID, clerk.EmployeeID)
	suite.ErrorIs(err, apperrors.ErrAccessDenied)

	suite.Require().NoError(suite.svc.DeleteBank(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID))

	suite.ErrorIs(suite.svc.CheckBankExistence(suite.ctx, suite.bank.BankID), apperrors.ErrBankDoesNotExist)

	bankRecord, err := suite.repos.BankRepo.FindBankRecord(suite.ctx, suite.bank.BankID)
	suite.Require().NoError(err)
	suite.False(bankRecord.IsActive)
	suite.NotNil(bankRecord.DeletedOn)

	accountRecord, err := suite.repos.AccountRepo.FindAccountRecord(suite.ctx, suite.bank.BankID, account.AccountID)
	suite.Require().NoError(err)
	suite.False(accountRecord.IsActive)

	for _, id := range []string{suite.admin.EmployeeID, clerk.EmployeeID} {
		employeeRecord, err := suite.repos.EmployeeRepo.FindEmployeeRecord(suite.ctx, suite.bank.BankID, id)
		suite.Require().NoError(err)
		suite.False(employeeRecord.IsActive)
	}

	currencies, err := suite.repos.CurrencyRepo.ListCurrencies(suite.ctx, suite.bank.BankID)
	suite.Require().NoError(err)
	suite.Empty(currencies)

	actions := suite.store.EmployeeActions(suite.bank.BankID)
	deletes := 0
	for _, a := range actions {
		if a.ActionType == domain.ActionDeleteBank {
			deletes++
			suite.Equal(suite.admin.EmployeeID, a.EmployeeID)
		}
	}
	suite.Equal(1, deletes)
}

func (suite *BankServiceTestSuite) TestFailedAuditRollsBackWholeOperation() {
	failingAudit := new(MockEmployeeActionRepository)
	failingAudit.On("SaveEmployeeAction", mock.Anything, mock.AnythingOfType("domain.EmployeeAction")).Return(assert.AnError).Once()

	repos := suite.repos
	repos.EmployeeActionRepo = failingAudit
	svc := newBankService(suite.T(), repos, 2)

	_, err := svc.AddAccount(suite.ctx, suite.bank.BankID, suite.admin.EmployeeID, dto.CreateAccountRequest{
		Name: "Quinn", Username: "quinn", Pin: testPin, AccountType: domain.Savings,
	})
	suite.ErrorIs(err, assert.AnError)
	failingAudit.AssertExpectations(suite.T())

	_, err = suite.repos.AccountRepo.FindAccountByUsername(suite.ctx, suite.bank.BankID, "quinn")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Len(suite.store.EmployeeActions(suite.bank.BankID), 1)
}

func (suite *BankServiceTestSuite) TestListTransactions_WalksHistoryInOrder() {
	account := suite.openAccount("rita")
	for i := 1; i <= 4; i++ {
		_, err := suite.svc.Deposit(suite.ctx, suite.bank.BankID, account.AccountID, "", dec(int64(i)))
		suite.Require().NoError(err)
	}
	full := suite.history(account)
	suite.Require().Len(full, 5)

	var walked []string
	params := dto.ListTransactionsParams{Limit: 2}
	pages := 0
	for {
		page, err := suite.svc.ListTransactions(suite.ctx, suite.bank.BankID, account.AccountID, params)
		suite.Require().NoError(err)
		pages++
		for _, txn := range page.Transactions {
			walked = append(walked, txn.TransactionID)
		}
		if page.NextToken == nil {
			break
		}
		params.NextToken = *page.NextToken
	}

	suite.Equal(3, pages)
	suite.Require().Len(walked, len(full))
	for i, txn := range full {
		suite.Equal(txn.TransactionID, walked[i])
	}

	_, err := suite.svc.ListTransactions(suite.ctx, suite.bank.BankID, account.AccountID, dto.ListTransactionsParams{NextToken: "%%%"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BankServiceTestSuite) TestGetTransactions_EmptyHistory() {
	_, err := suite.svc.GetTransactions(suite.ctx, suite.bank.BankID, "unknown")
	suite.ErrorIs(err, apperrors.ErrNoTransactions)
}
