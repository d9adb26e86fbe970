// Package report renders calculated payslips as human-readable text.
package report

import (
	"fmt"
	"strings"

	"monaco_payslip/payroll"
)

const width = 60

// FormatText renders a payslip as the classic bulletin de salaire layout:
// employee section, employer section, then a summary block.
func FormatText(p *payroll.Payslip) string {
	var b strings.Builder
	rule := strings.Repeat("=", width)
	sep := strings.Repeat("-", width)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "BULLETIN DE SALAIRE - MONACO")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Type d'employé: %s\n", strings.ToUpper(string(p.EmployeeType)))
	fmt.Fprintf(&b, "Date de calcul: %s\n\n", p.CalculationDate.Format("2006-01-02"))

	fmt.Fprintln(&b, sep)
	fmt.Fprintln(&b, "SALAIRE ET COTISATIONS SALARIALES")
	fmt.Fprintln(&b, sep)
	fmt.Fprintf(&b, "Salaire brut mensuel:           %12s €\n\n", p.GrossSalary.StringFixed(2))
	fmt.Fprintln(&b, "Cotisations salariales:")
	writeContributionLines(&b, p.EmployeeContributions)
	fmt.Fprintf(&b, "  %-30s %12s €\n", "Total cotisations salariales", p.EmployeeContributions.Total.StringFixed(2))
	fmt.Fprintf(&b, "  %-30s %11s %%\n\n", "Taux effectif", p.EmployeeRatePercent.StringFixed(2))
	fmt.Fprintf(&b, "%-32s %12s €\n\n", "SALAIRE NET À PAYER:", p.NetSalary.StringFixed(2))

	fmt.Fprintln(&b, sep)
	fmt.Fprintln(&b, "COTISATIONS PATRONALES")
	fmt.Fprintln(&b, sep)
	writeContributionLines(&b, p.EmployerContributions)
	fmt.Fprintf(&b, "  %-30s %12s €\n", "Total cotisations patronales", p.EmployerContributions.Total.StringFixed(2))
	fmt.Fprintf(&b, "  %-30s %11s %%\n\n", "Taux effectif", p.EmployerRatePercent.StringFixed(2))
	fmt.Fprintf(&b, "%-32s %12s €\n\n", "COÛT TOTAL EMPLOYEUR:", p.TotalEmployerCost.StringFixed(2))

	fmt.Fprintln(&b, sep)
	fmt.Fprintln(&b, "RÉSUMÉ")
	fmt.Fprintln(&b, sep)
	fmt.Fprintf(&b, "Salaire brut:                   %12s €\n", p.GrossSalary.StringFixed(2))
	fmt.Fprintf(&b, "Cotisations totales:            %12s €\n", p.TotalContributions.StringFixed(2))
	fmt.Fprintf(&b, "  - Part salariale:             %12s €\n", p.EmployeeContributions.Total.StringFixed(2))
	fmt.Fprintf(&b, "  - Part patronale:             %12s €\n", p.EmployerContributions.Total.StringFixed(2))
	fmt.Fprintf(&b, "Salaire net:                    %12s €\n", p.NetSalary.StringFixed(2))
	fmt.Fprintf(&b, "Coût total employeur:           %12s €\n", p.TotalEmployerCost.StringFixed(2))
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "IMPORTANT: Les taux utilisés sont des valeurs de référence.")
	fmt.Fprintln(&b, "Vérifiez avec les taux officiels sur www.caisses-sociales.mc")

	return b.String()
}

func writeContributionLines(b *strings.Builder, c payroll.Contributions) {
	for _, kind := range payroll.KindOrder {
		amount, ok := c.Amounts[kind]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "  - %-30s %12s €\n", kindLabel(kind), amount.StringFixed(2))
	}
}

// kindLabel turns "accidents_travail" into "Accidents Travail".
func kindLabel(kind payroll.Kind) string {
	words := strings.Split(string(kind), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
