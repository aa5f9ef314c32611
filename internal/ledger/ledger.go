// Package ledger is the only write path for account balances.
//
// Every operation runs as one database transaction: the balance of each
// affected account is read, adjusted and written together with the
// transaction records that cause the change. Write conflicts reported by the
// database abort the transaction, which is then run again as a whole.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultMaxAttempts = 5
	DefaultBackoff     = 20 * time.Millisecond
)

var (
	ErrAccountChange = errors.New("the account of a transaction cannot be changed by editing it, use a workflow instead")
	ErrWrongAccount  = errors.New("the transaction does not belong to the account required for this operation")
	ErrWrongSubset   = errors.New("the transaction is not of the type required for this operation")
	ErrWrongStatus   = errors.New("the transaction status does not allow this operation")
)

// Ledger mutates balances and transactions atomically.
type Ledger struct {
	db          *gorm.DB
	maxAttempts int
	backoff     time.Duration
	now         func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithRetry sets the number of attempts for an atomic unit and the base
// backoff between attempts.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(l *Ledger) {
		l.maxAttempts = max(attempts, 1)
		l.backoff = backoff
	}
}

// WithClock sets the function used to date synthetic transactions.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New returns a Ledger operating on db.
func New(db *gorm.DB, opts ...Option) *Ledger {
	l := &Ledger{
		db:          db,
		maxAttempts: DefaultMaxAttempts,
		backoff:     DefaultBackoff,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *Ledger) today() types.Date {
	return types.DateOf(l.now())
}

// atomic runs fn inside a database transaction. If the database reports a
// write conflict, the whole transaction is discarded and fn runs again.
//
// fn must not keep state between attempts.
func (l *Ledger) atomic(ctx context.Context, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 1; attempt <= l.maxAttempts; attempt++ {
		err = models.GeneralError(l.db.WithContext(ctx).Transaction(fn))
		if !models.IsConflict(err) {
			return err
		}

		conflictRetries.Inc()
		log.Debug().Err(err).Int("attempt", attempt).Msg("Ledger write conflict, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * l.backoff):
		}
	}

	log.Error().Err(err).Int("attempts", l.maxAttempts).Msg("Ledger write conflict, giving up")
	return fmt.Errorf("%w: giving up after %d attempts", models.ErrGeneral, l.maxAttempts)
}

// applyDelta adds delta to the balance of the account.
//
// This is the only place where balances are written.
func applyDelta(tx *gorm.DB, accountID uuid.UUID, delta decimal.Decimal) error {
	var account models.Account
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&account, "id = ?", accountID).Error
	if err != nil {
		return err
	}

	if delta.IsZero() {
		return nil
	}

	return tx.Exec("UPDATE accounts SET balance = ?, updated_at = ? WHERE id = ?", account.Balance.Add(delta), time.Now().UTC(), accountID).Error
}

// ensureAccount returns the account with the name, creating it with a zero
// balance if it does not exist.
func ensureAccount(tx *gorm.DB, name string, kind models.AccountKind) (models.Account, error) {
	candidate := models.Account{Name: name, Kind: kind}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name_key"}},
		DoNothing: true,
	}).Create(&candidate).Error
	if err != nil {
		return models.Account{}, err
	}

	var account models.Account
	err = tx.Where("name_key = ?", models.NameKey(name)).First(&account).Error
	return account, err
}

// workflowAccount ensures one of the fixed workflow accounts.
func workflowAccount(tx *gorm.DB, name string) (models.Account, error) {
	return ensureAccount(tx, name, models.AccountKinds[name])
}

// insert creates the transaction and adds its amount to the account.
func insert(tx *gorm.DB, t *models.Transaction) error {
	t.ID = uuid.Nil
	normalize(t)

	err := applyDelta(tx, t.AccountID, t.Amount)
	if err != nil {
		return err
	}

	return tx.Omit(clause.Associations).Create(t).Error
}

// remove deletes the transaction and subtracts its amount from the account.
func remove(tx *gorm.DB, t models.Transaction) error {
	result := tx.Delete(&models.Transaction{}, "id = ?", t.ID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w transaction matching your query", models.ErrResourceNotFound)
	}

	return applyDelta(tx, t.AccountID, t.Amount.Neg())
}

// load reads the transaction inside the unit and locks its row until the
// unit ends. A concurrent unit reading the same transaction waits and then
// sees the committed state.
func load(tx *gorm.DB, id uuid.UUID) (models.Transaction, error) {
	var t models.Transaction
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&t, "id = ?", id).Error
	return t, err
}

// normalize derives the amount of receivable invoices from gross and tax.
func normalize(t *models.Transaction) {
	if t.Subset == models.SubsetInvoices && !t.Gross.IsZero() && t.Status != models.StatusCollected {
		t.Amount = t.Gross.Add(t.Tax)
	}
}

// EnsureAccount returns the account with the normalized name, creating it if
// needed. Concurrent calls for the same name return the same account.
func (l *Ledger) EnsureAccount(ctx context.Context, name string, kind models.AccountKind) (models.Account, error) {
	var account models.Account
	err := l.atomic(ctx, func(tx *gorm.DB) (err error) {
		account, err = ensureAccount(tx, name, kind)
		return
	})
	return account, err
}

// Record creates a transaction on its account.
func (l *Ledger) Record(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	var created models.Transaction
	err := l.atomic(ctx, func(tx *gorm.DB) error {
		created = t
		return insert(tx, &created)
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return created, nil
}

// Edit applies mutate to the current state of the transaction and adjusts the
// balance by the difference between the new and the current amount.
//
// The current amount is read inside the unit, so concurrent edits never
// apply a stale difference.
func (l *Ledger) Edit(ctx context.Context, id uuid.UUID, mutate func(*models.Transaction)) (models.Transaction, error) {
	var edited models.Transaction
	err := l.atomic(ctx, func(tx *gorm.DB) error {
		current, err := load(tx, id)
		if err != nil {
			return err
		}

		edited = current
		mutate(&edited)
		edited.ID = current.ID
		edited.CreatedAt = current.CreatedAt
		normalize(&edited)

		if edited.AccountID != current.AccountID {
			return ErrAccountChange
		}

		err = tx.Omit(clause.Associations).Save(&edited).Error
		if err != nil {
			return err
		}

		return applyDelta(tx, current.AccountID, edited.Amount.Sub(current.Amount))
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return edited, nil
}

// Delete removes the transaction and its contribution to the balance.
//
// If the transaction is the movement of a recurring expense payment, the
// payment is removed as well and the month is due again.
func (l *Ledger) Delete(ctx context.Context, id uuid.UUID) error {
	return l.atomic(ctx, func(tx *gorm.DB) error {
		t, err := load(tx, id)
		if err != nil {
			return err
		}

		err = tx.Where("transaction_id = ?", t.ID).Delete(&models.ExpensePayment{}).Error
		if err != nil {
			return err
		}

		return remove(tx, t)
	})
}

// Transfer moves the transaction to another account: it is deleted from its
// account and a copy, modified by mutate, is created on the destination.
// Both balances are adjusted in the same unit.
func (l *Ledger) Transfer(ctx context.Context, id, destinationID uuid.UUID, mutate func(*models.Transaction)) (models.Transaction, error) {
	var moved models.Transaction
	err := l.atomic(ctx, func(tx *gorm.DB) error {
		source, err := load(tx, id)
		if err != nil {
			return err
		}

		moved, err = transfer(tx, source, destinationID, mutate)
		return err
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return moved, nil
}

func transfer(tx *gorm.DB, source models.Transaction, destinationID uuid.UUID, mutate func(*models.Transaction)) (models.Transaction, error) {
	err := remove(tx, source)
	if err != nil {
		return models.Transaction{}, err
	}

	moved := source
	moved.CreatedAt = time.Time{}
	moved.UpdatedAt = time.Time{}
	moved.AccountID = destinationID
	if mutate != nil {
		mutate(&moved)
	}

	err = insert(tx, &moved)
	return moved, err
}
