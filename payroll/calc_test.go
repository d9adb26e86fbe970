package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRoundHalfUp(t *testing.T) {
	calc := NewCalculator(DefaultRateTables())

	// 0.50% of 101 is exactly 0.505 and must round away from zero.
	p, err := calc.Calculate(d("101"), "standard")
	require.NoError(t, err)

	assertAmount(t, "0.51", p.EmployeeContributions.Amounts[KindChomage])
	assertAmount(t, "3.64", p.EmployeeContributions.Amounts[KindMaladie])    // 3.636
	assertAmount(t, "4.29", p.EmployeeContributions.Amounts[KindVieillesse]) // 4.2925
}

func TestCeilingCapsBase(t *testing.T) {
	tables := DefaultRateTables()
	tables.Ceilings = map[Kind]decimal.Decimal{
		KindVieillesse: d("2000"),
	}
	require.NoError(t, tables.Validate())

	p, err := NewCalculator(tables).Calculate(d("3500"), "standard")
	require.NoError(t, err)

	// Pension base is capped at the ceiling, health stays on full gross.
	assertAmount(t, "85.00", p.EmployeeContributions.Amounts[KindVieillesse]) // 2000 * 4.25%
	assertAmount(t, "126.00", p.EmployeeContributions.Amounts[KindMaladie])
}

func TestCeilingAboveGrossHasNoEffect(t *testing.T) {
	tables := DefaultRateTables()
	tables.Ceilings = map[Kind]decimal.Decimal{
		KindVieillesse: d("5000"),
	}

	p, err := NewCalculator(tables).Calculate(d("3500"), "standard")
	require.NoError(t, err)

	assertAmount(t, "148.75", p.EmployeeContributions.Amounts[KindVieillesse])
}

func TestTotalIsSumOfRoundedParts(t *testing.T) {
	// Both lines round individually before summing: 0.505 -> 0.51 twice,
	// while rounding the unrounded sum (1.01) would give the same digits but
	// for a different reason. A third line at 0.015 -> 0.02 makes the
	// distinction observable: sum of rounded parts is 1.04, the rounded
	// unrounded sum would be 1.03.
	tables := DefaultRateTables()
	tables.StandardEmployee = RateSet{
		KindMaladie:    d("0.50"),
		KindVieillesse: d("0.50"),
		KindChomage:    d("0.015"),
	}
	require.NoError(t, tables.Validate())

	p, err := NewCalculator(tables).Calculate(d("101"), "standard")
	require.NoError(t, err)

	assertAmount(t, "0.51", p.EmployeeContributions.Amounts[KindMaladie])
	assertAmount(t, "0.51", p.EmployeeContributions.Amounts[KindVieillesse])
	assertAmount(t, "0.02", p.EmployeeContributions.Amounts[KindChomage]) // 0.01515
	assertAmount(t, "1.04", p.EmployeeContributions.Total)
}
