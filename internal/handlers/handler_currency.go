package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to a bank's currencies.
type currencyHandler struct {
	bankService portssvc.BankSvcFacade
}

func newCurrencyHandler(bs portssvc.BankSvcFacade) *currencyHandler {
	return &currencyHandler{bankService: bs}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(bank *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newCurrencyHandler(bankService)

	currencies := bank.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.POST("", h.createCurrency)
		currencies.PUT("/:name", h.updateCurrency)
		currencies.DELETE("/:name", h.deleteCurrency)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists the currencies the bank accepts with their rate to the base currency.
// @Tags currencies
// @Produce json
// @Param bankID path string true "Bank ID"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.bankService.ListCurrencies(c.Request.Context(), c.Param("bankID"))
	if err != nil {
		respondWithError(c, err, "list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// createCurrency godoc
// @Summary Create currency
// @Description Registers a currency with the bank (admin only).
// @Tags currencies
// @Accept json
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Currency already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	currency, err := h.bankService.AddCurrency(c.Request.Context(), c.Param("bankID"), p.ID, req)
	if err != nil {
		respondWithError(c, err, "create currency")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Currency created", slog.String("currency", currency.Name))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(*currency))
}

// updateCurrency godoc
// @Summary Update currency
// @Description Replaces a currency's exchange rate (admin only). The base currency cannot change.
// @Tags currencies
// @Accept json
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param name path string true "Currency name"
// @Param currency body dto.UpdateCurrencyRequest true "New exchange rate"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/currencies/{name} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	currency, err := h.bankService.UpdateCurrency(c.Request.Context(), c.Param("bankID"), p.ID, c.Param("name"), req)
	if err != nil {
		respondWithError(c, err, "update currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(*currency))
}

// deleteCurrency godoc
// @Summary Delete currency
// @Description Removes a currency from the bank (admin only). The base currency cannot be removed.
// @Tags currencies
// @Param bankID path string true "Bank ID"
// @Param name path string true "Currency name"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/currencies/{name} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	if err := h.bankService.DeleteCurrency(c.Request.Context(), c.Param("bankID"), p.ID, c.Param("name")); err != nil {
		respondWithError(c, err, "delete currency")
		return
	}
	c.Status(http.StatusNoContent)
}
