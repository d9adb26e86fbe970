package payroll

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// Contributions is the outcome of applying one rate set to a gross salary.
type Contributions struct {
	Amounts map[Kind]decimal.Decimal
	Total   decimal.Decimal
}

// computeContributions applies every rate in the set to the gross salary,
// capping the base at the kind's ceiling when one is configured. Each line is
// rounded to the cent half away from zero before it enters the total, so the
// itemized lines always reconcile with the total exactly.
func computeContributions(gross decimal.Decimal, rates RateSet, tables *RateTables) Contributions {
	out := Contributions{Amounts: make(map[Kind]decimal.Decimal, len(rates))}
	for kind, r := range rates {
		base := gross
		if ceiling, ok := tables.CeilingFor(kind); ok && base.GreaterThan(ceiling) {
			base = ceiling
		}
		amount := base.Mul(r).Div(oneHundred).Round(2)
		out.Amounts[kind] = amount
		out.Total = out.Total.Add(amount)
	}
	return out
}
