package cashflow

import (
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Totals are the summed events of one day.
type Totals struct {
	Inflow  decimal.Decimal `json:"inflow" example:"300"`
	Outflow decimal.Decimal `json:"outflow" example:"100"` // Absolute value of all outflows
	Net     decimal.Decimal `json:"net" example:"200"`
}

func (t Totals) add(amount decimal.Decimal) Totals {
	if amount.IsPositive() {
		t.Inflow = t.Inflow.Add(amount)
	} else {
		t.Outflow = t.Outflow.Add(amount.Abs())
	}
	t.Net = t.Net.Add(amount)

	return t
}

// Daily maps dates to the totals of their events. Dates without events read
// as zero totals.
type Daily struct {
	totals map[string]Totals
}

// Aggregate sums the events per day.
func Aggregate(events []Event) Daily {
	d := Daily{totals: make(map[string]Totals)}
	for _, e := range events {
		key := e.Date.String()
		d.totals[key] = d.totals[key].add(e.Amount)
	}

	return d
}

// On returns the totals of the date.
func (d Daily) On(date types.Date) Totals {
	return d.totals[date.String()]
}

// Dates returns the dates with events in ascending order.
func (d Daily) Dates() []types.Date {
	keys := maps.Keys(d.totals)

	// YYYY-MM-DD sorts chronologically
	slices.Sort(keys)

	dates := make([]types.Date, 0, len(keys))
	for _, k := range keys {
		date, _ := types.ParseDate(k)
		dates = append(dates, date)
	}

	return dates
}

// netBefore sums the net change of all dates strictly before date.
func (d Daily) netBefore(date types.Date) decimal.Decimal {
	limit := date.String()

	sum := decimal.Zero
	for k, t := range d.totals {
		if k < limit {
			sum = sum.Add(t.Net)
		}
	}

	return sum
}
