package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bank_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/bank_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/core/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/handlers"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/SscSPs/bank_ledger/internal/platform/config"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminPassword = "admin-secret"
	customerPin   = "4321"
)

func testConfig() *config.Config {
	return &config.Config{
		IsProduction:      true,
		JWTSecret:         "handler-test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "bank-ledger-test",
		IDNode:            7,
		LoginRateLimit:    "1000-M",
		CORSAllowOrigins:  []string{"http://localhost:3000"},
		BcryptCost:        bcrypt.MinCost,
	}
}

func newRouter(t *testing.T, cfg *config.Config, container *portssvc.ServiceContainer) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		t.Fatalf("register routes: %v", err)
	}
	return r
}

type HandlersTestSuite struct {
	suite.Suite
	cfg       *config.Config
	container *portssvc.ServiceContainer
	router    *gin.Engine
	bank      *domain.Bank
	admin     *domain.Employee
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = testConfig()

	container, err := services.NewServiceContainer(suite.cfg, memory.NewRepositoryProvider(memory.NewStore()))
	suite.Require().NoError(err)
	suite.container = container
	suite.router = newRouter(suite.T(), suite.cfg, container)

	bank, admin, err := container.Bank.CreateBank(context.Background(), dto.CreateBankRequest{
		Name: gofakeit.Company(),
		Admin: dto.CreateEmployeeRequest{
			Name:     gofakeit.Name(),
			Username: "admin",
			Password: adminPassword,
		},
	})
	suite.Require().NoError(err)
	suite.bank = bank
	suite.admin = admin
}

// --- helpers ---

func (suite *HandlersTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (suite *HandlersTestSuite) employeeToken(bankID, employeeID, password string) string {
	w := suite.do(http.MethodPost, "/api/v1/auth/employees/login", "", dto.EmployeeLoginRequest{
		BankID: bankID, EmployeeID: employeeID, Password: password,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.LoginResponse
	suite.decode(w, &res)
	suite.Require().NotEmpty(res.Token)
	return res.Token
}

func (suite *HandlersTestSuite) accountToken(bankID, accountID string) string {
	w := suite.do(http.MethodPost, "/api/v1/auth/accounts/login", "", dto.AccountLoginRequest{
		BankID: bankID, AccountID: accountID, Pin: customerPin,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.LoginResponse
	suite.decode(w, &res)
	return res.Token
}

func (suite *HandlersTestSuite) openAccount(adminToken, username string) dto.AccountResponse {
	w := suite.do(http.MethodPost, "/api/v1/banks/"+suite.bank.BankID+"/accounts", adminToken, dto.CreateAccountRequest{
		Name:        gofakeit.Name(),
		Username:    username,
		Pin:         customerPin,
		AccountType: domain.Savings,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.AccountResponse
	suite.decode(w, &res)
	return res
}

func (suite *HandlersTestSuite) balanceOf(accountToken string) decimal.Decimal {
	w := suite.do(http.MethodGet, "/api/v1/me/balance", accountToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.AccountBalanceResponse
	suite.decode(w, &res)
	return res.Balance
}

// --- tests ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestListBanksIsPublic() {
	w := suite.do(http.MethodGet, "/api/v1/banks", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var banks []dto.BankSummary
	suite.decode(w, &banks)
	suite.Require().Len(banks, 1)
	suite.Equal(suite.bank.BankID, banks[0].BankID)
}

func (suite *HandlersTestSuite) TestEmployeeLoginWrongPassword() {
	w := suite.do(http.MethodPost, "/api/v1/auth/employees/login", "", dto.EmployeeLoginRequest{
		BankID: suite.bank.BankID, EmployeeID: suite.admin.EmployeeID, Password: "wrong",
	})
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/auth/employees/login", "", dto.EmployeeLoginRequest{
		BankID: "NOBANK", EmployeeID: suite.admin.EmployeeID, Password: adminPassword,
	})
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestLoginRejectsMalformedBody() {
	w := suite.do(http.MethodPost, "/api/v1/auth/accounts/login", "", map[string]string{"bankID": suite.bank.BankID})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestStaffRoutesRequireToken() {
	w := suite.do(http.MethodGet, "/api/v1/banks/"+suite.bank.BankID, "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/banks/"+suite.bank.BankID, "not-a-jwt", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestOpenAccountAndReconcile() {
	token := suite.employeeToken(suite.bank.BankID, suite.admin.EmployeeID, adminPassword)
	account := suite.openAccount(token, "alice")

	suite.True(domain.OpeningBalance.Equal(account.Balance))

	w := suite.do(http.MethodGet, "/api/v1/banks/"+suite.bank.BankID+"/accounts/"+account.AccountID+"/reconcile", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var report dto.ReconciliationResponse
	suite.decode(w, &report)
	suite.True(report.Consistent)
	suite.Equal(1, report.Transactions)

	w = suite.do(http.MethodPost, "/api/v1/banks/"+suite.bank.BankID+"/accounts", token, dto.CreateAccountRequest{
		Name: "Another Alice", Username: "alice", Pin: customerPin, AccountType: domain.Current,
	})
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestNonAdminIsForbiddenFromAdminRoutes() {
	adminToken := suite.employeeToken(suite.bank.BankID, suite.admin.EmployeeID, adminPassword)

	w := suite.do(http.MethodPost, "/api/v1/banks/"+suite.bank.BankID+"/employees", adminToken, dto.CreateEmployeeRequest{
		Name: gofakeit.Name(), Username: "teller", Password: "teller-secret", EmployeeType: domain.Regular,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var teller dto.EmployeeResponse
	suite.decode(w, &teller)

	tellerToken := suite.employeeToken(suite.bank.BankID, teller.EmployeeID, "teller-secret")

	w = suite.do(http.MethodPost, "/api/v1/banks/"+suite.bank.BankID+"/employees", tellerToken, dto.CreateEmployeeRequest{
		Name: gofakeit.Name(), Username: "intruder", Password: "x", EmployeeType: domain.Admin,
	})
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/banks/"+suite.bank.BankID+"/currencies", tellerToken, dto.CreateCurrencyRequest{
		Name: "USD", ExchangeRate: decimal.NewFromInt(83),
	})
	suite.Equal(http.StatusForbidden, w.Code)

	// Regular staff still open accounts.
	suite.openAccount(tellerToken, "bob")
}

func (suite *HandlersTestSuite) TestTokenForAnotherBankIsForbidden() {
	other, otherAdmin, err := suite.container.Bank.CreateBank(context.Background(), dto.CreateBankRequest{
		Name:  gofakeit.Company() + " Other",
		Admin: dto.CreateEmployeeRequest{Name: gofakeit.Name(), Username: "admin", Password: adminPassword},
	})
	suite.Require().NoError(err)

	token := suite.employeeToken(other.BankID, otherAdmin.EmployeeID, adminPassword)
	w := suite.do(http.MethodGet, "/api/v1/banks/"+suite.bank.BankID+"/employees", token, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestCustomerFlow() {
	staffToken := suite.employeeToken(suite.bank.BankID, suite.admin.EmployeeID, adminPassword)
	alice := suite.openAccount(staffToken, "alice")
	bob := suite.openAccount(staffToken, "bob")

	aliceToken := suite.accountToken(suite.bank.BankID, alice.AccountID)

	w := suite.do(http.MethodPost, "/api/v1/me/deposit", aliceToken, dto.DepositRequest{Amount: decimal.NewFromInt(500)})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.True(decimal.NewFromInt(2000).Equal(suite.balanceOf(aliceToken)))

	w = suite.do(http.MethodPost, "/api/v1/me/withdraw", aliceToken, dto.WithdrawRequest{Amount: decimal.NewFromInt(5000)})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/me/deposit", aliceToken, dto.DepositRequest{Currency: "XYZ", Amount: decimal.NewFromInt(1)})
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/me/transfer", aliceToken, dto.TransferRequest{
		ToBankID: suite.bank.BankID, ToAccountID: bob.AccountID, Amount: decimal.NewFromInt(700),
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var debit dto.TransactionResponse
	suite.decode(w, &debit)
	suite.Equal(domain.Debit, debit.TransactionType)
	suite.Equal(alice.AccountID, debit.AccountID)

	suite.True(decimal.NewFromInt(1300).Equal(suite.balanceOf(aliceToken)))
	bobToken := suite.accountToken(suite.bank.BankID, bob.AccountID)
	suite.True(decimal.NewFromInt(2200).Equal(suite.balanceOf(bobToken)))

	w = suite.do(http.MethodGet, "/api/v1/me/transactions?limit=2", aliceToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var page dto.ListTransactionsResponse
	suite.decode(w, &page)
	suite.Len(page.Transactions, 2)
	suite.Require().NotNil(page.NextToken)

	w = suite.do(http.MethodGet, "/api/v1/me/transactions?limit=2&nextToken="+*page.NextToken, aliceToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	page = dto.ListTransactionsResponse{}
	suite.decode(w, &page)
	suite.Len(page.Transactions, 1)
	suite.Nil(page.NextToken)
}

func (suite *HandlersTestSuite) TestRevertThroughAPI() {
	staffToken := suite.employeeToken(suite.bank.BankID, suite.admin.EmployeeID, adminPassword)
	alice := suite.openAccount(staffToken, "alice")
	bob := suite.openAccount(staffToken, "bob")
	aliceToken := suite.accountToken(suite.bank.BankID, alice.AccountID)

	w := suite.do(http.MethodPost, "/api/v1/me/transfer", aliceToken, dto.TransferRequest{
		ToBankID: suite.bank.BankID, ToAccountID: bob.AccountID, Amount: decimal.NewFromInt(300),
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var debit dto.TransactionResponse
	suite.decode(w, &debit)

	w = suite.do(http.MethodPost, "/api/v1/banks/"+suite.bank.BankID+"/transactions/"+debit.TransactionID+"/revert", staffToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var legs []dto.TransactionResponse
	suite.decode(w, &legs)
	suite.Require().Len(legs, 2)
	suite.Require().NotNil(debit.ReferenceID)
	suite.Require().NotNil(legs[0].ReferenceID)
	suite.Equal(*debit.ReferenceID, *legs[0].ReferenceID)
	suite.True(domain.OpeningBalance.Equal(suite.balanceOf(aliceToken)))

	w = suite.do(http.MethodPost, "/api/v1/banks/"+suite.bank.BankID+"/transactions/"+debit.TransactionID+"/revert", staffToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "already reverted")
	suite.True(domain.OpeningBalance.Equal(suite.balanceOf(aliceToken)))

	w = suite.do(http.MethodPost, "/api/v1/banks/"+suite.bank.BankID+"/transactions/"+legs[0].TransactionID+"/revert", staffToken, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/banks/"+suite.bank.BankID+"/transactions/NOPE/revert", staffToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestPrincipalKindsDoNotMix() {
	staffToken := suite.employeeToken(suite.bank.BankID, suite.admin.EmployeeID, adminPassword)
	alice := suite.openAccount(staffToken, "alice")
	aliceToken := suite.accountToken(suite.bank.BankID, alice.AccountID)

	w := suite.do(http.MethodGet, "/api/v1/banks/"+suite.bank.BankID+"/employees", aliceToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/me/balance", staffToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestCurrencyRoutes() {
	token := suite.employeeToken(suite.bank.BankID, suite.admin.EmployeeID, adminPassword)
	base := "/api/v1/banks/" + suite.bank.BankID + "/currencies"

	w := suite.do(http.MethodPost, base, token, dto.CreateCurrencyRequest{Name: "usd", ExchangeRate: decimal.NewFromInt(83)})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.do(http.MethodPut, base+"/USD", token, dto.UpdateCurrencyRequest{ExchangeRate: decimal.NewFromInt(84)})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodDelete, base+"/"+domain.BaseCurrency, token, nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodGet, base, token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var currencies []dto.CurrencyResponse
	suite.decode(w, &currencies)
	suite.Len(currencies, 2)

	w = suite.do(http.MethodDelete, base+"/USD", token, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	cfg.LoginRateLimit = "2-M"

	container, err := services.NewServiceContainer(cfg, memory.NewRepositoryProvider(memory.NewStore()))
	if err != nil {
		t.Fatal(err)
	}
	r := newRouter(t, cfg, container)

	codes := make([]int, 0, 3)
	for range 3 {
		body, _ := json.Marshal(dto.AccountLoginRequest{BankID: "B", AccountID: "A", Pin: "0000"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/accounts/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusUnauthorized || codes[1] != http.StatusUnauthorized || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}
}
