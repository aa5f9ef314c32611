package cashflow

import (
	"context"
	"fmt"
	"sort"

	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultNotificationDays is the notification horizon in days after today.
const DefaultNotificationDays = 7

// Projection is the projected bank balance over a range of days.
type Projection struct {
	Start   types.Date      `json:"start" example:"2024-03-01"`
	End     types.Date      `json:"end" example:"2024-03-31"`
	Initial decimal.Decimal `json:"initial" example:"1000"`   // The configured initial bank balance
	Opening decimal.Decimal `json:"opening" example:"1500"`   // Balance before the first day
	Closing decimal.Decimal `json:"closing" example:"1320.5"` // Balance after the last day
	Totals  Totals          `json:"totals"`                   // Totals of all days in the range
	Lowest  Point           `json:"lowest"`                   // The day with the lowest closing balance
	Points  []Point         `json:"points"`
}

// DayDetail lists the events of a single day.
type DayDetail struct {
	Date     types.Date `json:"date" example:"2024-03-20"`
	Totals   Totals     `json:"totals"`
	Inflows  []Event    `json:"inflows"`
	Outflows []Event    `json:"outflows"`
}

// Notification is an outstanding item that is due soon or overdue.
type Notification struct {
	Event
	DaysLeft int  `json:"daysLeft" example:"3"` // Days until the item is due, negative when overdue
	Overdue  bool `json:"overdue" example:"false"`
}

// Engine projects the bank balance from the store.
type Engine struct {
	db        *gorm.DB
	extractor Extractor
}

// NewEngine returns an Engine reading from db with the default mappings.
func NewEngine(db *gorm.DB, mappings ...Mapping) *Engine {
	return &Engine{
		db:        db,
		extractor: NewExtractor(db, mappings...),
	}
}

// Initial returns the configured initial bank balance.
func (e *Engine) Initial(ctx context.Context) (decimal.Decimal, error) {
	return models.GetDecimalSetting(e.db.WithContext(ctx), models.SettingInitialBankBalance)
}

func (e *Engine) projector(ctx context.Context, until types.Date) (Projector, error) {
	initial, err := e.Initial(ctx)
	if err != nil {
		return Projector{}, fmt.Errorf("reading initial balance: %w", err)
	}

	events, err := e.extractor.Events(ctx, types.Date{}, until)
	if err != nil {
		return Projector{}, err
	}

	return Projector{Initial: initial, Daily: Aggregate(events)}, nil
}

// Project returns the projection for every day from start to end.
func (e *Engine) Project(ctx context.Context, start, end types.Date) (Projection, error) {
	if start.IsZero() || end.Before(start) {
		return Projection{}, ErrRangeInvalid
	}

	p, err := e.projector(ctx, end)
	if err != nil {
		return Projection{}, err
	}

	points := p.Trajectory(start, end)

	projection := Projection{
		Start:   start,
		End:     end,
		Initial: p.Initial,
		Opening: points[0].Opening,
		Closing: points[len(points)-1].Closing,
		Lowest:  points[0],
		Points:  points,
	}

	for _, point := range points {
		projection.Totals.Inflow = projection.Totals.Inflow.Add(point.Inflow)
		projection.Totals.Outflow = projection.Totals.Outflow.Add(point.Outflow)
		projection.Totals.Net = projection.Totals.Net.Add(point.Net)

		if point.Closing.LessThan(projection.Lowest.Closing) {
			projection.Lowest = point
		}
	}

	return projection, nil
}

// BalanceAsOf returns the projected balance at the start of the date.
func (e *Engine) BalanceAsOf(ctx context.Context, date types.Date) (decimal.Decimal, error) {
	if date.IsZero() {
		return decimal.Zero, ErrRangeInvalid
	}

	p, err := e.projector(ctx, date.AddDays(-1))
	if err != nil {
		return decimal.Zero, err
	}

	return p.BalanceAsOf(date), nil
}

// Day returns the inflows and outflows of the date.
func (e *Engine) Day(ctx context.Context, date types.Date) (DayDetail, error) {
	events, err := e.extractor.Events(ctx, date, date)
	if err != nil {
		return DayDetail{}, err
	}

	detail := DayDetail{
		Date:     date,
		Totals:   Aggregate(events).On(date),
		Inflows:  make([]Event, 0),
		Outflows: make([]Event, 0),
	}

	for _, event := range events {
		if event.Amount.IsPositive() {
			detail.Inflows = append(detail.Inflows, event)
		} else {
			detail.Outflows = append(detail.Outflows, event)
		}
	}

	return detail, nil
}

// Notifications returns the outstanding items due within days after today,
// including overdue ones, ordered by date.
func (e *Engine) Notifications(ctx context.Context, today types.Date, days int) ([]Notification, error) {
	if today.IsZero() || days < 0 {
		return nil, ErrRangeInvalid
	}

	events, err := e.extractor.Outstanding(ctx, today.AddDays(days))
	if err != nil {
		return nil, err
	}

	notifications := make([]Notification, 0, len(events))
	for _, event := range events {
		left := today.DaysUntil(event.Date)
		notifications = append(notifications, Notification{
			Event:    event,
			DaysLeft: left,
			Overdue:  left < 0,
		})
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Date.Before(notifications[j].Date)
	})

	return notifications, nil
}
