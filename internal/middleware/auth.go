package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/bank_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens
// and stores the caller in the request context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		kind := PrincipalKind(claims.Kind)
		if claims.Subject == "" || claims.BankID == "" || (kind != PrincipalEmployee && kind != PrincipalAccount) {
			logger.Error("Token claims incomplete", slog.String("kind", claims.Kind))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		principal := Principal{ID: claims.Subject, BankID: claims.BankID, Kind: kind}
		enrichedLogger := logger.With(
			slog.String("principal_id", principal.ID),
			slog.String("principal_kind", string(principal.Kind)),
			slog.String("bank_id", principal.BankID),
		)

		ctx := WithPrincipal(c.Request.Context(), principal)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequirePrincipal rejects callers whose token was not issued for kind.
// With bankParam set, the token's bank must also match that path parameter.
func RequirePrincipal(kind PrincipalKind, bankParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if p.Kind != kind {
			GetLoggerFromCtx(c.Request.Context()).Warn("Principal kind not allowed", slog.String("required", string(kind)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		if bankParam != "" && c.Param(bankParam) != p.BankID {
			GetLoggerFromCtx(c.Request.Context()).Warn("Token bank does not match path", slog.String("path_bank_id", c.Param(bankParam)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}
