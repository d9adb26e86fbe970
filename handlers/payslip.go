package handlers

import (
	"encoding/json"
	"errors"

	"monaco_payslip/payroll"
	"monaco_payslip/report"
	"monaco_payslip/services"
	"monaco_payslip/types"
	"monaco_payslip/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CalculatePayslipRequest struct {
	GrossSalary  json.Number `json:"gross_salary" validate:"required"`
	EmployeeType string      `json:"employee_type"`
}

// HistoryFilters represents the available filter options
type HistoryFilters struct {
	EmployeeType string `query:"employee_type"`
	Limit        int    `query:"limit"`
}

// CalculatePayslip computes a full payslip for the requested gross salary and
// employee type, records it to history, and returns it. With ?format=text the
// response is the rendered bulletin instead of JSON.
func CalculatePayslip(c *fiber.Ctx) error {
	var req CalculatePayslipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	gross, err := decimal.NewFromString(req.GrossSalary.String())
	if err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	employeeType := req.EmployeeType
	if employeeType == "" {
		employeeType = string(payroll.CategoryStandard)
	}

	payslip, err := activeRates().calculator.Calculate(gross, employeeType)
	if err != nil {
		msg := types.ErrInvalidInput
		if errors.Is(err, payroll.ErrInvalidCategory) {
			msg = types.ErrInvalidCategory
		}
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   msg,
		})
	}

	if _, err := History.Record(payslip); err != nil {
		utils.Logger.Error("Failed to record payslip", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrDatabaseError,
		})
	}

	if c.Query("format") == "text" {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(report.FormatText(payslip))
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    payslip,
	})
}

// GetPayslipHistory lists previously calculated payslips, newest first.
func GetPayslipHistory(c *fiber.Ctx) error {
	var filters HistoryFilters
	if err := c.QueryParser(&filters); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   "Invalid filter parameters",
		})
	}

	records, err := History.List(services.HistoryFilters{
		EmployeeType: filters.EmployeeType,
		Limit:        filters.Limit,
	})
	if err != nil {
		utils.Logger.Error("Failed to fetch payslip history", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrDatabaseError,
		})
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    records,
	})
}
