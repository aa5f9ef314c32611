package cashflow

import (
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
)

// Point is the projected balance for one day.
type Point struct {
	Date    types.Date      `json:"date" example:"2024-03-20"`
	Opening decimal.Decimal `json:"opening" example:"1000"` // Balance before the events of the day
	Totals
	Closing decimal.Decimal `json:"closing" example:"1200"` // Balance after the events of the day
}

// Projector computes running balances from an initial balance and the
// daily totals.
type Projector struct {
	Initial decimal.Decimal
	Daily   Daily
}

// BalanceAsOf returns the initial balance plus the net change of all days
// strictly before date.
func (p Projector) BalanceAsOf(date types.Date) decimal.Decimal {
	return p.Initial.Add(p.Daily.netBefore(date))
}

// Trajectory returns one point per day from start to end, both inclusive.
func (p Projector) Trajectory(start, end types.Date) []Point {
	if end.Before(start) {
		return []Point{}
	}

	points := make([]Point, 0, start.DaysUntil(end)+1)
	balance := p.BalanceAsOf(start)
	for day := start; !day.After(end); day = day.AddDays(1) {
		totals := p.Daily.On(day)
		closing := balance.Add(totals.Net)

		points = append(points, Point{
			Date:    day,
			Opening: balance,
			Totals:  totals,
			Closing: closing,
		})

		balance = closing
	}

	return points
}
