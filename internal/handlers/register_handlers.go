package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/bank_ledger/cmd/docs"
	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/SscSPs/bank_ledger/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	// cors.New panics without any allowed origin.
	if len(cfg.CORSAllowOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to build login rate limiter: %w", err)
	}

	v1 := r.Group("/api/v1")
	registerPublicBankRoutes(v1, services.Bank)
	registerAuthRoutes(v1, middleware.RateLimit(loginLimiter), services)

	setupAPIV1Routes(v1, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated groups. Staff routes are
// scoped by the bank in the path, self-service routes by the account in the token.
func setupAPIV1Routes(
	v1 *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	bank := v1.Group("/banks/:bankID", auth, middleware.RequirePrincipal(middleware.PrincipalEmployee, "bankID"))
	registerBankRoutes(bank, services.Bank)
	registerEmployeeRoutes(bank, services.Bank)
	registerAccountRoutes(bank, services.Bank)
	registerCurrencyRoutes(bank, services.Bank)
	registerTransactionRoutes(bank, services.Bank)

	me := v1.Group("/me", auth, middleware.RequirePrincipal(middleware.PrincipalAccount, ""))
	registerCustomerRoutes(me, services.Bank)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
