package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Drift is an account whose stored balance does not match the sum of its
// transaction amounts.
type Drift struct {
	AccountID uuid.UUID       `json:"accountId" example:"0f1d7c5e-3f7a-4d3c-9c55-5ad0b5b0a6d1"`
	Name      string          `json:"name" example:"Bank balance"`
	Stored    decimal.Decimal `json:"stored" example:"1500"`
	Computed  decimal.Decimal `json:"computed" example:"1450"`
}

// Difference is the amount by which the stored balance exceeds the computed one.
func (d Drift) Difference() decimal.Decimal {
	return d.Stored.Sub(d.Computed)
}

// Reconcile compares every account balance with the sum of its transaction
// amounts. It never corrects a balance, it only reports.
//
// Balances and amounts are read from the same snapshot, so a unit committing
// during the check does not show up as drift.
func (l *Ledger) Reconcile(ctx context.Context) ([]Drift, error) {
	var accounts []models.Account

	// Amounts are summed here instead of in SQL as sqlite aggregates
	// decimals as floating point numbers.
	var rows []struct {
		AccountID uuid.UUID
		Amount    decimal.Decimal
	}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Order("name_key ASC").Find(&accounts).Error
		if err != nil {
			return fmt.Errorf("listing accounts: %w", err)
		}

		err = tx.Model(&models.Transaction{}).Select("account_id, amount").Find(&rows).Error
		if err != nil {
			return fmt.Errorf("listing transaction amounts: %w", err)
		}

		return nil
	}, snapshot(l.db))
	if err != nil {
		return nil, models.GeneralError(err)
	}

	sums := make(map[uuid.UUID]decimal.Decimal, len(accounts))
	for _, row := range rows {
		sums[row.AccountID] = sums[row.AccountID].Add(row.Amount)
	}

	drifts := make([]Drift, 0)
	for _, account := range accounts {
		computed := sums[account.ID]
		if computed.Equal(account.Balance) {
			continue
		}

		d := Drift{
			AccountID: account.ID,
			Name:      account.Name,
			Stored:    account.Balance,
			Computed:  computed,
		}
		drifts = append(drifts, d)

		log.Warn().
			Str("account", account.Name).
			Str("stored", d.Stored.String()).
			Str("computed", d.Computed.String()).
			Msg("Balance drift")
	}

	driftedAccounts.Set(float64(len(drifts)))
	return drifts, nil
}

// snapshot returns the options for a read-only transaction that sees one
// consistent state of the database. sqlite transactions always do.
func snapshot(db *gorm.DB) *sql.TxOptions {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	return &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
}
