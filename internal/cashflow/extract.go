package cashflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrRangeInvalid = errors.New("the range must have an end date that is not before its start date")

// Source tells what kind of record an event was derived from.
type Source string

const (
	SourceTransaction      Source = "transaction"
	SourceRecurringExpense Source = "recurring-expense"
)

// Event is a dated, signed cash-flow amount together with the identity of
// the record it was derived from.
type Event struct {
	Date         types.Date      `json:"date" example:"2024-03-20"`
	Amount       decimal.Decimal `json:"amount" example:"-450"` // Positive amounts are inflows
	Source       Source          `json:"source" example:"transaction"`
	ID           uuid.UUID       `json:"id" example:"1d3ed1a8-0c7e-4a47-a3e4-5d9d2a6b4a4f"` // ID of the transaction or recurring expense
	Account      string          `json:"account,omitempty" example:"Payables"`
	Subset       models.Subset   `json:"subset,omitempty" example:"supplier-invoices"`
	Description  string          `json:"description" example:"Office supplies"`
	Counterparty string          `json:"counterparty,omitempty" example:"Supplies SA"`
	Number       string          `json:"number,omitempty" example:"A-17"`
	Status       models.Status   `json:"status,omitempty" example:"pending"`
	Month        *types.Month    `json:"month,omitempty" example:"2024-03"` // Month of a recurring expense occurrence
}

// Extractor reads cash-flow events from the store.
type Extractor struct {
	db       *gorm.DB
	mappings []Mapping
}

// NewExtractor returns an Extractor for the mappings. Without mappings, the
// DefaultMappings are used.
func NewExtractor(db *gorm.DB, mappings ...Mapping) Extractor {
	if len(mappings) == 0 {
		mappings = DefaultMappings
	}

	return Extractor{db: db, mappings: mappings}
}

// Events returns all events dated on or before until. If from is set, events
// before it are left out.
func (e Extractor) Events(ctx context.Context, from, until types.Date) ([]Event, error) {
	return e.extract(ctx, from, until, false)
}

// Outstanding returns the events of the outstanding mapping rows and the
// unpaid recurring expense occurrences dated on or before until.
func (e Extractor) Outstanding(ctx context.Context, until types.Date) ([]Event, error) {
	return e.extract(ctx, types.Date{}, until, true)
}

func (e Extractor) extract(ctx context.Context, from, until types.Date, outstanding bool) ([]Event, error) {
	if until.IsZero() || (!from.IsZero() && until.Before(from)) {
		return nil, ErrRangeInvalid
	}

	db := e.db.WithContext(ctx)

	events := make([]Event, 0)
	for _, m := range e.mappings {
		if outstanding && !m.Outstanding {
			continue
		}

		rows, err := m.events(db, from, until)
		if err != nil {
			return nil, fmt.Errorf("extracting %s of %s: %w", m.Subset, m.Account, err)
		}
		events = append(events, rows...)
	}

	occurrences, err := recurring(db, from, until)
	if err != nil {
		return nil, fmt.Errorf("expanding recurring expenses: %w", err)
	}

	return append(events, occurrences...), nil
}

// events returns the events of one mapping row. An account that does not
// exist contributes nothing.
func (m Mapping) events(db *gorm.DB, from, until types.Date) ([]Event, error) {
	var accounts []models.Account
	err := db.Where("name_key = ?", models.NameKey(m.Account)).Limit(1).Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		return nil, nil
	}

	column := string(m.Date)
	q := db.
		Where("account_id = ? AND subset = ?", accounts[0].ID, m.Subset).
		Where(column+" IS NOT NULL").
		Where(column+" <= ?", until)

	if !from.IsZero() {
		q = q.Where(column+" >= ?", from)
	}

	var transactions []models.Transaction
	err = q.Order(column + " ASC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(transactions))
	for _, t := range transactions {
		if m.excludes(t.Status) {
			continue
		}

		date := m.Date.of(t)
		if date.IsZero() {
			continue
		}

		amount := t.Amount
		if m.Signed {
			if amount.IsZero() {
				continue
			}
		} else {
			if !amount.IsPositive() {
				continue
			}
			amount = amount.Mul(decimal.NewFromInt(int64(m.Sign)))
		}

		events = append(events, Event{
			Date:         date,
			Amount:       amount,
			Source:       SourceTransaction,
			ID:           t.ID,
			Account:      m.Account,
			Subset:       t.Subset,
			Description:  t.Description,
			Counterparty: t.Counterparty,
			Number:       t.Number,
			Status:       t.Status,
		})
	}

	return events, nil
}

// recurring expands every recurring expense into one event per unpaid month
// from its start month on, up to until.
func recurring(db *gorm.DB, from, until types.Date) ([]Event, error) {
	var expenses []models.RecurringExpense
	err := db.Preload("Payments").Order("created_at ASC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0)
	for _, expense := range expenses {
		paid := make(map[string]bool, len(expense.Payments))
		for _, p := range expense.Payments {
			paid[p.Month.String()] = true
		}

		start := expense.StartMonth
		if start.IsZero() {
			start = until.Month()
		}
		if !from.IsZero() && start.Before(from.Month()) {
			start = from.Month()
		}

		last := until.Month()
		for month := start; !month.After(last); month = month.AddDate(0, 1) {
			date := expense.DueDate(month)
			if date.After(until) || (!from.IsZero() && date.Before(from)) {
				continue
			}

			if paid[month.String()] {
				continue
			}

			m := month
			events = append(events, Event{
				Date:        date,
				Amount:      expense.Amount.Neg(),
				Source:      SourceRecurringExpense,
				ID:          expense.ID,
				Description: expense.Description,
				Month:       &m,
			})
		}
	}

	return events, nil
}
