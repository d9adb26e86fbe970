package payroll

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Payslip is the complete outcome of one calculation. It is built once by
// Calculator.Calculate and never mutated afterwards.
type Payslip struct {
	GrossSalary           decimal.Decimal
	EmployeeType          Category
	EmployeeContributions Contributions
	EmployerContributions Contributions
	NetSalary             decimal.Decimal
	TotalEmployerCost     decimal.Decimal
	TotalContributions    decimal.Decimal
	EmployeeRatePercent   decimal.Decimal
	EmployerRatePercent   decimal.Decimal
	CalculationDate       time.Time
}

type payslipJSON struct {
	GrossSalary           json.Number            `json:"gross_salary"`
	EmployeeType          Category               `json:"employee_type"`
	EmployeeContributions map[string]json.Number `json:"employee_contributions"`
	EmployeeTotal         json.Number            `json:"employee_total"`
	EmployeeRatePercent   json.Number            `json:"employee_rate_percent"`
	NetSalary             json.Number            `json:"net_salary"`
	EmployerContributions map[string]json.Number `json:"employer_contributions"`
	EmployerTotal         json.Number            `json:"employer_total"`
	EmployerRatePercent   json.Number            `json:"employer_rate_percent"`
	TotalEmployerCost     json.Number            `json:"total_employer_cost"`
	TotalContributions    json.Number            `json:"total_contributions"`
	CalculationDate       string                 `json:"calculation_date"`
}

// cents renders a decimal as a JSON number with exactly two fractional
// digits. Amounts stay exact decimals everywhere before this point.
func cents(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func contributionsJSON(c Contributions) map[string]json.Number {
	m := make(map[string]json.Number, len(c.Amounts)+1)
	for kind, amount := range c.Amounts {
		m[string(kind)] = cents(amount)
	}
	m["total"] = cents(c.Total)
	return m
}

func (p *Payslip) MarshalJSON() ([]byte, error) {
	return json.Marshal(payslipJSON{
		GrossSalary:           cents(p.GrossSalary),
		EmployeeType:          p.EmployeeType,
		EmployeeContributions: contributionsJSON(p.EmployeeContributions),
		EmployeeTotal:         cents(p.EmployeeContributions.Total),
		EmployeeRatePercent:   cents(p.EmployeeRatePercent),
		NetSalary:             cents(p.NetSalary),
		EmployerContributions: contributionsJSON(p.EmployerContributions),
		EmployerTotal:         cents(p.EmployerContributions.Total),
		EmployerRatePercent:   cents(p.EmployerRatePercent),
		TotalEmployerCost:     cents(p.TotalEmployerCost),
		TotalContributions:    cents(p.TotalContributions),
		CalculationDate:       p.CalculationDate.Format(time.RFC3339),
	})
}
