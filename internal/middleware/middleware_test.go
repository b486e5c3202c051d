package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/SscSPs/bank_ledger/internal/utils"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func principalEcho(c *gin.Context) {
	p, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.String(http.StatusOK, p.ID+"|"+p.BankID+"|"+string(p.Kind))
}

func tokenFor(t *testing.T, subject, bankID string, kind middleware.PrincipalKind) string {
	t.Helper()
	token, _, err := utils.GenerateJWT(subject, bankID, string(kind), testSecret, time.Hour, "test")
	require.NoError(t, err)
	return token
}

func serve(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/whoami", middleware.AuthMiddleware(testSecret), principalEcho)

	t.Run("valid token", func(t *testing.T) {
		w := serve(r, "/whoami", tokenFor(t, "EMP1", "BANK1", middleware.PrincipalEmployee))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "EMP1|BANK1|employee", w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := serve(r, "/whoami", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := utils.GenerateJWT("EMP1", "BANK1", "employee", "other-secret", time.Hour, "test")
		require.NoError(t, err)
		w := serve(r, "/whoami", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		w := serve(r, "/whoami", tokenFor(t, "EMP1", "BANK1", middleware.PrincipalKind("robot")))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequirePrincipal(t *testing.T) {
	r := gin.New()
	r.GET("/banks/:bankID", middleware.AuthMiddleware(testSecret),
		middleware.RequirePrincipal(middleware.PrincipalEmployee, "bankID"), principalEcho)

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"matching bank", "/banks/BANK1", tokenFor(t, "EMP1", "BANK1", middleware.PrincipalEmployee), http.StatusOK},
		{"other bank", "/banks/BANK2", tokenFor(t, "EMP1", "BANK1", middleware.PrincipalEmployee), http.StatusForbidden},
		{"account token", "/banks/BANK1", tokenFor(t, "ACC1", "BANK1", middleware.PrincipalAccount), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.path, tt.token)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestStructuredLoggingMiddlewareEchoesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))

	w = serve(r, "/ping", "")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestNewLimiterRejectsBadRate(t *testing.T) {
	_, err := middleware.NewLimiter("lots", "")
	assert.Error(t, err)

	_, err = middleware.NewLimiter("5-M", "not a url")
	assert.Error(t, err)
}

func TestRateLimitWithRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	limiter, err := middleware.NewLimiter("2-M", "redis://"+mr.Addr())
	require.NoError(t, err)

	r := gin.New()
	r.GET("/login", middleware.RateLimit(limiter), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, "/login", "").Code)
	w := serve(r, "/login", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, serve(r, "/login", "").Code)

	assert.NotEmpty(t, mr.Keys())
}
