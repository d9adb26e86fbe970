package handlers

import (
	"monaco_payslip/payroll"
	"monaco_payslip/types"
	"monaco_payslip/utils"

	"github.com/gofiber/fiber/v2"
)

// GetRates returns the currently active rate tables.
func GetRates(c *fiber.Ctx) error {
	return c.JSON(types.APIResponse{
		Success: true,
		Data:    activeRates().tables,
	})
}

// UpdateRates replaces the active rate tables. The new tables are validated
// first; a rejected table leaves the active ones untouched. Root only.
func UpdateRates(c *fiber.Ctx) error {
	var tables payroll.RateTables
	if err := c.BodyParser(&tables); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput,
		})
	}

	if err := tables.Validate(); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	setRates(&tables)
	utils.Logger.Info("Rate tables replaced")

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Rate tables updated successfully",
		Data:    &tables,
	})
}
