package payroll

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Category selects which pair of rate tables applies.
type Category string

const (
	CategoryStandard  Category = "standard"
	CategoryHousehold Category = "household"
)

// Kind names one social-security contribution line on the payslip.
type Kind string

const (
	KindMaladie               Kind = "maladie"
	KindVieillesse            Kind = "vieillesse"
	KindChomage               Kind = "chomage"
	KindAccidentsTravail      Kind = "accidents_travail"
	KindAllocationsFamiliales Kind = "allocations_familiales"
	KindFormationProf         Kind = "formation_prof"
)

// KindOrder fixes the order contribution lines appear in reports. Map
// iteration order is not stable, so renderers walk this slice instead.
var KindOrder = []Kind{
	KindMaladie,
	KindVieillesse,
	KindChomage,
	KindAccidentsTravail,
	KindAllocationsFamiliales,
	KindFormationProf,
}

// RateSet maps a contribution kind to its percentage rate (3.60 means 3.60%).
type RateSet map[Kind]decimal.Decimal

// RateTables holds the rates for both employee categories plus optional
// per-kind salary ceilings. A missing ceiling means the full gross salary is
// the contribution base for that kind. Tables are plain data so the official
// values can be swapped without touching calculation logic.
type RateTables struct {
	StandardEmployee  RateSet                  `json:"standard_employee"`
	StandardEmployer  RateSet                  `json:"standard_employer"`
	HouseholdEmployee RateSet                  `json:"household_employee"`
	HouseholdEmployer RateSet                  `json:"household_employer"`
	Ceilings          map[Kind]decimal.Decimal `json:"ceilings,omitempty"`
}

// employeeKinds are required in every employee-side rate set. Employer sides
// carry the full kind list, except household employers who owe no
// professional-training contribution.
var (
	employeeKinds          = []Kind{KindMaladie, KindVieillesse, KindChomage}
	standardEmployerKinds  = KindOrder
	householdEmployerKinds = []Kind{KindMaladie, KindVieillesse, KindChomage, KindAccidentsTravail, KindAllocationsFamiliales}
)

func rate(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultRateTables returns the embedded reference tables. These are template
// values; verify against the official rates on www.caisses-sociales.mc before
// relying on them.
func DefaultRateTables() *RateTables {
	return &RateTables{
		StandardEmployee: RateSet{
			KindMaladie:    rate("3.60"),
			KindVieillesse: rate("4.25"),
			KindChomage:    rate("0.50"),
		},
		StandardEmployer: RateSet{
			KindMaladie:               rate("12.90"),
			KindVieillesse:            rate("12.75"),
			KindChomage:               rate("1.50"),
			KindAccidentsTravail:      rate("2.00"),
			KindAllocationsFamiliales: rate("7.00"),
			KindFormationProf:         rate("0.50"),
		},
		HouseholdEmployee: RateSet{
			KindMaladie:    rate("3.60"),
			KindVieillesse: rate("4.25"),
			KindChomage:    rate("0.50"),
		},
		HouseholdEmployer: RateSet{
			KindMaladie:               rate("10.50"),
			KindVieillesse:            rate("10.00"),
			KindChomage:               rate("1.00"),
			KindAccidentsTravail:      rate("1.50"),
			KindAllocationsFamiliales: rate("5.00"),
		},
	}
}

// LoadRateTables reads rate tables from a JSON file and validates them.
func LoadRateTables(path string) (*RateTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate tables: %w", err)
	}

	var tables RateTables
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("parse rate tables: %w", err)
	}
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return &tables, nil
}

// Validate checks the tables for completeness: every required kind present in
// every set, no negative rate, no negative ceiling.
func (t *RateTables) Validate() error {
	sets := []struct {
		name     string
		set      RateSet
		required []Kind
	}{
		{"standard_employee", t.StandardEmployee, employeeKinds},
		{"standard_employer", t.StandardEmployer, standardEmployerKinds},
		{"household_employee", t.HouseholdEmployee, employeeKinds},
		{"household_employer", t.HouseholdEmployer, householdEmployerKinds},
	}

	for _, s := range sets {
		for _, kind := range s.required {
			if _, ok := s.set[kind]; !ok {
				return fmt.Errorf("rate table %s: missing kind %q", s.name, kind)
			}
		}
		for kind, r := range s.set {
			if r.IsNegative() {
				return fmt.Errorf("rate table %s: negative rate %s for kind %q", s.name, r, kind)
			}
		}
	}

	for kind, ceiling := range t.Ceilings {
		if ceiling.IsNegative() {
			return fmt.Errorf("ceilings: negative ceiling %s for kind %q", ceiling, kind)
		}
	}
	return nil
}

// RatesFor resolves a category string (case-insensitive) to its canonical
// form and the matching employee/employer rate sets. Unknown categories fail
// with ErrInvalidCategory before any contribution is computed.
func (t *RateTables) RatesFor(category string) (Category, RateSet, RateSet, error) {
	switch Category(strings.ToLower(category)) {
	case CategoryStandard:
		return CategoryStandard, t.StandardEmployee, t.StandardEmployer, nil
	case CategoryHousehold:
		return CategoryHousehold, t.HouseholdEmployee, t.HouseholdEmployer, nil
	default:
		return "", nil, nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
}

// CeilingFor reports the salary ceiling for a kind, if one is configured.
func (t *RateTables) CeilingFor(kind Kind) (decimal.Decimal, bool) {
	ceiling, ok := t.Ceilings[kind]
	return ceiling, ok
}
