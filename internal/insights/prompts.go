package insights

import (
	"fmt"
	"strings"

	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/cashflow"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
)

// maxPromptDays limits the number of days listed in a summary prompt.
const maxPromptDays = 31

func summaryPrompt(money Money, p cashflow.Projection) string {
	var b strings.Builder

	b.WriteString("You are the financial assistant of a small business.\n")
	fmt.Fprintf(&b, "Write a short summary (at most 120 words) of the projected bank balance from %s to %s.\n", p.Start, p.End)
	b.WriteString("Mention the lowest balance and its date, and warn about any day with a negative balance.\n")
	b.WriteString("Do not use Markdown. Do not invent figures that are not listed below.\n")
	fmt.Fprintf(&b, "Answer in %s.\n\n", money.Language())

	fmt.Fprintf(&b, "Balance at the start: %s\n", money.Format(p.Opening))
	fmt.Fprintf(&b, "Balance at the end: %s\n", money.Format(p.Closing))
	fmt.Fprintf(&b, "Total inflows: %s\n", money.Format(p.Totals.Inflow))
	fmt.Fprintf(&b, "Total outflows: %s\n", money.Format(p.Totals.Outflow))
	fmt.Fprintf(&b, "Lowest balance: %s on %s\n\n", money.Format(p.Lowest.Closing), p.Lowest.Date)

	b.WriteString("Days with movements (date: inflow / outflow / closing balance):\n")
	listed := 0
	for _, point := range p.Points {
		if point.Net.IsZero() && point.Inflow.IsZero() {
			continue
		}

		if listed == maxPromptDays {
			b.WriteString("...\n")
			break
		}

		fmt.Fprintf(&b, "- %s: %s / %s / %s\n", point.Date, money.Format(point.Inflow), money.Format(point.Outflow), money.Format(point.Closing))
		listed++
	}

	if listed == 0 {
		b.WriteString("- none\n")
	}

	return b.String()
}

func kind(t models.Transaction) string {
	switch t.Subset {
	case models.SubsetCheckDetails:
		return "check received from"
	case models.SubsetIssuedChecks:
		return "check issued to"
	case models.SubsetSupplierInvoices:
		return "invoice from supplier"
	case models.SubsetInvoices:
		return "invoice to customer"
	default:
		return "payment with"
	}
}

func reminderPrompt(money Money, t models.Transaction, today types.Date) string {
	due := t.DueDate
	if due.IsZero() {
		due = t.Date
	}

	counterparty := t.Counterparty
	if counterparty == "" {
		counterparty = "an unnamed counterparty"
	}

	var b strings.Builder

	b.WriteString("You are the financial assistant of a small business.\n")
	b.WriteString("Write a short, polite reminder message (at most 80 words) about the following item.\n")
	b.WriteString("Do not use Markdown. Only return the message.\n")
	fmt.Fprintf(&b, "Answer in %s.\n\n", money.Language())

	fmt.Fprintf(&b, "Item: %s %s\n", kind(t), counterparty)
	if t.Number != "" {
		fmt.Fprintf(&b, "Number: %s\n", t.Number)
	}
	if t.Bank != "" {
		fmt.Fprintf(&b, "Bank: %s\n", t.Bank)
	}
	fmt.Fprintf(&b, "Amount: %s\n", money.Format(t.Amount.Abs()))

	if !due.IsZero() {
		fmt.Fprintf(&b, "Due date: %s\n", due)

		days := today.DaysUntil(due)
		switch {
		case days < 0:
			fmt.Fprintf(&b, "The item is overdue by %d days.\n", -days)
		case days == 0:
			b.WriteString("The item is due today.\n")
		default:
			fmt.Fprintf(&b, "The item is due in %d days.\n", days)
		}
	}

	return b.String()
}
