package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/cashflow"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
)

var digestTemplate = template.Must(template.New("digest").Parse(`<h2>Upcoming payments and collections as of {{ .Today }}</h2>
{{- if .Overdue }}
<p><strong>{{ .Overdue }} overdue item(s)</strong></p>
{{- end }}
<table>
<tr><th>Date</th><th>Item</th><th>Counterparty</th><th>Amount</th><th>Due</th></tr>
{{- range .Rows }}
<tr><td>{{ .Date }}</td><td>{{ .Item }}</td><td>{{ .Counterparty }}</td><td>{{ .Amount }}</td><td>{{ .Due }}</td></tr>
{{- end }}
</table>
<p>Expected inflows: {{ .Inflow }}<br>Expected outflows: {{ .Outflow }}</p>
`))

type digestRow struct {
	Date         string
	Item         string
	Counterparty string
	Amount       string
	Due          string
}

type digest struct {
	Today   string
	Overdue int
	Rows    []digestRow
	Inflow  string
	Outflow string
}

func subject(today types.Date, notifications []cashflow.Notification) string {
	overdue := 0
	for _, n := range notifications {
		if n.Overdue {
			overdue++
		}
	}

	if overdue > 0 {
		return fmt.Sprintf("%d upcoming items, %d overdue (%s)", len(notifications), overdue, today)
	}
	return fmt.Sprintf("%d upcoming items (%s)", len(notifications), today)
}

func due(n cashflow.Notification) string {
	switch {
	case n.Overdue:
		return fmt.Sprintf("overdue by %d days", -n.DaysLeft)
	case n.DaysLeft == 0:
		return "today"
	case n.DaysLeft == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", n.DaysLeft)
	}
}

func item(n cashflow.Notification) string {
	label := n.Description
	if n.Number != "" {
		label = fmt.Sprintf("%s #%s", label, n.Number)
	}

	if n.Account != "" {
		return fmt.Sprintf("%s (%s)", label, n.Account)
	}
	return label
}

func (m *Mailer) body(today types.Date, notifications []cashflow.Notification) (string, error) {
	d := digest{Today: today.String()}

	var totals cashflow.Totals
	for _, n := range notifications {
		if n.Overdue {
			d.Overdue++
		}

		if n.Amount.IsPositive() {
			totals.Inflow = totals.Inflow.Add(n.Amount)
		} else {
			totals.Outflow = totals.Outflow.Add(n.Amount.Neg())
		}

		d.Rows = append(d.Rows, digestRow{
			Date:         n.Date.String(),
			Item:         item(n),
			Counterparty: n.Counterparty,
			Amount:       m.money.Format(n.Amount),
			Due:          due(n),
		})
	}

	d.Inflow = m.money.Format(totals.Inflow)
	d.Outflow = m.money.Format(totals.Outflow)

	var b bytes.Buffer
	if err := digestTemplate.Execute(&b, d); err != nil {
		return "", fmt.Errorf("rendering digest: %w", err)
	}

	return b.String(), nil
}
