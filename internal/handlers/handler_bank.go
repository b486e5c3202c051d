package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankHandler handles HTTP requests on the bank itself.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{bankService: bs}
}

// registerPublicBankRoutes registers the unauthenticated bank directory.
func registerPublicBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)
	rg.GET("/banks", h.listBanks)
}

// registerBankRoutes registers routes on a bank the caller works for.
func registerBankRoutes(bank *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	bank.GET("", h.getBank)
	bank.PUT("", h.updateBank)
	bank.DELETE("", h.deleteBank)
}

// listBanks godoc
// @Summary List banks
// @Description Lists every active bank with its identifier.
// @Tags banks
// @Produce json
// @Success 200 {array} dto.BankSummary
// @Failure 500 {object} ErrorResponse
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	banks, err := h.bankService.ListBanks(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "list banks")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankSummaries(banks))
}

// getBank godoc
// @Summary Get bank
// @Description Retrieves the bank of the calling employee, including its transfer charges.
// @Tags banks
// @Produce json
// @Param bankID path string true "Bank ID"
// @Success 200 {object} dto.BankResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID} [get]
func (h *bankHandler) getBank(c *gin.Context) {
	bank, err := h.bankService.GetBank(c.Request.Context(), c.Param("bankID"))
	if err != nil {
		respondWithError(c, err, "retrieve bank")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankResponse(bank))
}

// updateBank godoc
// @Summary Update bank
// @Description Renames the bank or changes its transfer charges (admin only).
// @Tags banks
// @Accept json
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param bank body dto.UpdateBankRequest true "Fields to update"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID} [put]
func (h *bankHandler) updateBank(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	bank, err := h.bankService.UpdateBank(c.Request.Context(), c.Param("bankID"), p.ID, req)
	if err != nil {
		respondWithError(c, err, "update bank")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankResponse(bank))
}

// deleteBank godoc
// @Summary Delete bank
// @Description Closes the bank together with its employees, accounts and currencies (admin only).
// @Tags banks
// @Param bankID path string true "Bank ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID} [delete]
func (h *bankHandler) deleteBank(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	bankID := c.Param("bankID")
	if err := h.bankService.DeleteBank(c.Request.Context(), bankID, p.ID); err != nil {
		respondWithError(c, err, "delete bank")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Bank deleted", slog.String("bank_id", bankID))
	c.Status(http.StatusNoContent)
}
