package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Calculator derives complete payslips from a set of rate tables. It holds no
// mutable state, so one instance is safe to share between concurrent callers.
type Calculator struct {
	tables *RateTables
}

func NewCalculator(tables *RateTables) *Calculator {
	return &Calculator{tables: tables}
}

// Calculate produces the payslip for one gross monthly salary. The category
// is matched case-insensitively. All validation happens before any
// arithmetic; no partial payslip is ever returned.
func (c *Calculator) Calculate(gross decimal.Decimal, category string) (*Payslip, error) {
	cat, employeeRates, employerRates, err := c.tables.RatesFor(category)
	if err != nil {
		return nil, err
	}
	if gross.IsNegative() {
		return nil, fmt.Errorf("%w: %s is negative", ErrInvalidInput, gross)
	}

	employee := computeContributions(gross, employeeRates, c.tables)
	employer := computeContributions(gross, employerRates, c.tables)

	return &Payslip{
		GrossSalary:           gross,
		EmployeeType:          cat,
		EmployeeContributions: employee,
		EmployerContributions: employer,
		NetSalary:             gross.Sub(employee.Total),
		TotalEmployerCost:     gross.Add(employer.Total),
		TotalContributions:    employee.Total.Add(employer.Total),
		EmployeeRatePercent:   effectiveRate(employee.Total, gross),
		EmployerRatePercent:   effectiveRate(employer.Total, gross),
		CalculationDate:       time.Now(),
	}, nil
}

// effectiveRate is total/gross as a percentage, quantized to two decimals
// half to even. Only contribution amounts round half away from zero; the
// summary percentages are informational. A zero gross salary yields a zero
// rate rather than a division error.
func effectiveRate(total, gross decimal.Decimal) decimal.Decimal {
	if gross.IsZero() {
		return decimal.Zero
	}
	return total.Div(gross).Mul(oneHundred).RoundBank(2)
}
