package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bank_ledger/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger/internal/dto"
	"github.com/SscSPs/bank_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to bank staff.
type employeeHandler struct {
	bankService portssvc.BankSvcFacade
}

func newEmployeeHandler(bs portssvc.BankSvcFacade) *employeeHandler {
	return &employeeHandler{bankService: bs}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(bank *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newEmployeeHandler(bankService)

	employees := bank.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.PUT("/:employeeID", h.updateEmployee)
		employees.DELETE("/:employeeID", h.deleteEmployee)
	}
}

// listEmployees godoc
// @Summary List employees
// @Description Lists the active employees of the bank.
// @Tags employees
// @Produce json
// @Param bankID path string true "Bank ID"
// @Success 200 {array} dto.EmployeeResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	employees, err := h.bankService.ListEmployees(c.Request.Context(), c.Param("bankID"), p.ID)
	if err != nil {
		respondWithError(c, err, "list employees")
		return
	}

	res := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = dto.ToEmployeeResponse(&employees[i])
	}
	c.JSON(http.StatusOK, res)
}

// createEmployee godoc
// @Summary Create employee
// @Description Adds an employee to the bank (admin only).
// @Tags employees
// @Accept json
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	employee, err := h.bankService.AddEmployee(c.Request.Context(), c.Param("bankID"), p.ID, req)
	if err != nil {
		respondWithError(c, err, "create employee")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Employee created", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update employee
// @Description Changes an employee's name, password or type (admin only).
// @Tags employees
// @Accept json
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param employeeID path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/employees/{employeeID} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	employee, err := h.bankService.UpdateEmployee(c.Request.Context(), c.Param("bankID"), p.ID, c.Param("employeeID"), req)
	if err != nil {
		respondWithError(c, err, "update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Delete employee
// @Description Deactivates an employee (admin only).
// @Tags employees
// @Param bankID path string true "Bank ID"
// @Param employeeID path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID}/employees/{employeeID} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	p, ok := principalOrAbort(c)
	if !ok {
		return
	}
	if err := h.bankService.DeleteEmployee(c.Request.Context(), c.Param("bankID"), p.ID, c.Param("employeeID")); err != nil {
		respondWithError(c, err, "delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}
