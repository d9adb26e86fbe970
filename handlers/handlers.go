package handlers

import (
	"sync/atomic"

	"monaco_payslip/payroll"
	"monaco_payslip/services"

	"gorm.io/gorm"
)

var (
	DB      *gorm.DB
	History *services.HistoryService

	rates atomic.Pointer[rateState]
)

// rateState snapshots the active tables together with the calculator built
// from them, so a concurrent rate swap can never pair new tables with an old
// calculator. Instances are immutable once stored.
type rateState struct {
	tables     *payroll.RateTables
	calculator *payroll.Calculator
}

func InitHandlers(db *gorm.DB, tables *payroll.RateTables) {
	DB = db
	History = services.NewHistoryService(db)
	setRates(tables)
}

func setRates(tables *payroll.RateTables) {
	rates.Store(&rateState{
		tables:     tables,
		calculator: payroll.NewCalculator(tables),
	})
}

func activeRates() *rateState {
	return rates.Load()
}
