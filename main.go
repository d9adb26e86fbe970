package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"monaco_payslip/config"
	"monaco_payslip/handlers"
	"monaco_payslip/middleware"
	"monaco_payslip/models"
	"monaco_payslip/payroll"
	"monaco_payslip/report"
	"monaco_payslip/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Database connection
var DB *gorm.DB

func loadTables(path string) (*payroll.RateTables, error) {
	if path == "" {
		return payroll.DefaultRateTables(), nil
	}
	return payroll.LoadRateTables(path)
}

// runOnce handles one-shot CLI mode: calculate a single payslip and print it.
func runOnce(gross, employeeType, format, ratesPath string) error {
	tables, err := loadTables(ratesPath)
	if err != nil {
		return err
	}

	amount, err := decimal.NewFromString(gross)
	if err != nil {
		return fmt.Errorf("%w: %q is not a number", payroll.ErrInvalidInput, gross)
	}

	payslip, err := payroll.NewCalculator(tables).Calculate(amount, employeeType)
	if err != nil {
		return err
	}

	if format == "json" {
		out, err := json.MarshalIndent(payslip, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(report.FormatText(payslip))
	return nil
}

func initServices() error {
	config.LoadConfig()

	// Initialize SQLite
	var err error
	DB, err = gorm.Open(sqlite.Open(config.AppConfig.DBPath), &gorm.Config{})
	if err != nil {
		return err
	}

	// Auto-migrate models
	if err := DB.AutoMigrate(&models.PayslipRecord{}); err != nil {
		return err
	}

	tables, err := loadTables(config.AppConfig.RatesPath)
	if err != nil {
		return err
	}

	handlers.InitHandlers(DB, tables)
	return nil
}

func main() {
	gross := flag.String("gross-salary", "", "monthly gross salary in EUR; runs a one-shot calculation and exits")
	employeeType := flag.String("employee-type", "standard", "type of employee: standard or household")
	format := flag.String("output-format", "text", "output format: text or json")
	ratesPath := flag.String("rates", os.Getenv("RATES_PATH"), "path to a JSON rate tables file")
	flag.Parse()

	if *gross != "" {
		if err := runOnce(*gross, *employeeType, *format, *ratesPath); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	utils.InitLogger()
	if err := initServices(); err != nil {
		log.Fatal("Failed to initialize services:", err)
	}

	app := fiber.New()

	// Routes
	app.Post("/auth/login", handlers.Login)
	app.Post("/payslips", handlers.CalculatePayslip)
	app.Get("/payslips", handlers.GetPayslipHistory)
	app.Get("/rates", handlers.GetRates)
	app.Put("/rates", middleware.RequireAuth, middleware.RequireRoot, handlers.UpdateRates)

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
