package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler exchanges bank-scoped credentials for bearer tokens.
type authHandler struct {
	bankService  portssvc.BankAuthSvc
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(bs portssvc.BankAuthSvc, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{bankService: bs, tokenService: ts}
}

// registerAuthRoutes sets up the login routes behind the given rate limit.
func registerAuthRoutes(rg *gin.RouterGroup, limit gin.HandlerFunc, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Bank, services.Token)

	auth := rg.Group("/auth", limit)
	{
		auth.POST("/employees/login", h.employeeLogin)
		auth.POST("/accounts/login", h.accountLogin)
	}
}

// employeeLogin godoc
// @Summary Employee login
// @Description Authenticates a bank employee and returns a JWT token scoped to the bank.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.EmployeeLoginRequest true "Employee credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/employees/login [post]
func (h *authHandler) employeeLogin(c *gin.Context) {
	var req dto.EmployeeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	employee, err := h.bankService.AuthenticateEmployee(c.Request.Context(), req.BankID, req.EmployeeID, req.Password)
	if err != nil {
		respondWithError(c, err, "authenticate employee")
		return
	}

	token, expiresAt, err := h.tokenService.IssueEmployeeToken(c.Request.Context(), employee)
	if err != nil {
		respondWithError(c, err, "generate token")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Employee logged in",
		slog.String("bank_id", employee.BankID), slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// accountLogin godoc
// @Summary Account login
// @Description Authenticates a customer account with its pin and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.AccountLoginRequest true "Account credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/accounts/login [post]
func (h *authHandler) accountLogin(c *gin.Context) {
	var req dto.AccountLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	account, err := h.bankService.AuthenticateAccount(c.Request.Context(), req.BankID, req.AccountID, req.Pin)
	if err != nil {
		respondWithError(c, err, "authenticate account")
		return
	}

	token, expiresAt, err := h.tokenService.IssueAccountToken(c.Request.Context(), account)
	if err != nil {
		respondWithError(c, err, "generate token")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account logged in",
		slog.String("bank_id", account.BankID), slog.String("account_id", account.AccountID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
