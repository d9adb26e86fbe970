package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayslipRecord is one row of calculation history. Headline amounts are
// stored as exact decimals for querying; ResultJSON keeps the full serialized
// payslip exactly as it was returned to the caller.
type PayslipRecord struct {
	ID                 string          `gorm:"type:uuid;primary_key" json:"id"`
	GrossSalary        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"gross_salary"`
	EmployeeType       string          `gorm:"not null;index" json:"employee_type"`
	EmployeeTotal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"employee_total"`
	EmployerTotal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"employer_total"`
	NetSalary          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"net_salary"`
	TotalEmployerCost  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_employer_cost"`
	TotalContributions decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_contributions"`
	ResultJSON         string          `gorm:"type:text;not null" json:"-"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
}
