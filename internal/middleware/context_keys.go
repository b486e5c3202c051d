package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// contextKey is the key type for values this package stores in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey    = contextKey("logger")
	principalCtxKey = contextKey("principal")
)

// PrincipalKind distinguishes bank staff from customers.
type PrincipalKind string

const (
	PrincipalEmployee PrincipalKind = "employee"
	PrincipalAccount  PrincipalKind = "account"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	ID     string
	BankID string
	Kind   PrincipalKind
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// GetPrincipalFromCtx retrieves the authenticated caller from a standard context.
func GetPrincipalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtxKey).(Principal)
	return p, ok
}

// GetPrincipalFromContext retrieves the authenticated caller from the Gin context.
func GetPrincipalFromContext(c *gin.Context) (Principal, bool) {
	return GetPrincipalFromCtx(c.Request.Context())
}
