package services

import (
	"encoding/json"
	"strings"

	"monaco_payslip/models"
	"monaco_payslip/payroll"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryService persists calculation history. The payroll package never
// touches storage; handlers record here after a successful calculation.
type HistoryService struct {
	DB *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{DB: db}
}

// Record stores one calculated payslip and returns the stored row.
func (hs *HistoryService) Record(p *payroll.Payslip) (*models.PayslipRecord, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	record := models.PayslipRecord{
		ID:                 uuid.New().String(),
		GrossSalary:        p.GrossSalary,
		EmployeeType:       string(p.EmployeeType),
		EmployeeTotal:      p.EmployeeContributions.Total,
		EmployerTotal:      p.EmployerContributions.Total,
		NetSalary:          p.NetSalary,
		TotalEmployerCost:  p.TotalEmployerCost,
		TotalContributions: p.TotalContributions,
		ResultJSON:         string(raw),
		CreatedAt:          p.CalculationDate,
	}

	if err := hs.DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// HistoryFilters narrows List results.
type HistoryFilters struct {
	EmployeeType string
	Limit        int
}

func (hs *HistoryService) List(filters HistoryFilters) ([]models.PayslipRecord, error) {
	query := hs.DB.Model(&models.PayslipRecord{}).Order("created_at DESC")

	if filters.EmployeeType != "" {
		query = query.Where("employee_type = ?", strings.ToLower(filters.EmployeeType))
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var records []models.PayslipRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
