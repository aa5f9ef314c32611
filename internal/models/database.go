package models

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CashflowContext string

const (
	DBContextURL CashflowContext = "cashflow-url"
)

// SQLite result codes, see https://www.sqlite.org/rescode.html
const (
	sqliteBusy   = 5
	sqliteLocked = 6
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgUniqueViolation      = "23505"
)

// Dialector returns the gorm dialector for the configured driver.
//
// For sqlite, foreign keys are enabled and a busy timeout is set.
func Dialector(driver, dsn string) gorm.Dialector {
	if driver == "postgres" {
		return postgres.Open(dsn)
	}

	if !strings.Contains(dsn, "_pragma") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn = fmt.Sprintf("%s%s_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn, sep)
	}

	return sqlite.Open(dsn)
}

// Connect opens the database, registers the error callbacks and migrates the schema.
func Connect(dialector gorm.Dialector) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// sqlite only allows one writer at a time, a single connection
	// prevents most SQLITE_BUSY errors.
	if dialector.Name() == "sqlite" {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("cashflow:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("cashflow:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Row callbacks are used by Scan and Pluck
	err = db.Callback().Row().After("*").Register("cashflow:after_row_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("cashflow:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("cashflow:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("cashflow:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("cashflow:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("cashflow:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	// Raw callbacks are used by Exec
	return db.Callback().Raw().After("*").Register("cashflow:after_raw_general", generalCallback)
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	// Normalized account names are unique
	if strings.Contains(msg, "UNIQUE constraint failed: accounts.name_key") || strings.Contains(msg, "idx_accounts_name_key") {
		db.Error = ErrAccountNameNotUnique
		return
	}

	// One payment per recurring expense and month
	if strings.Contains(msg, "UNIQUE constraint failed: expense_payments.recurring_expense_id, expense_payments.month") || strings.Contains(msg, "expense_payments_pkey") {
		db.Error = ErrExpensePaymentExists
		return
	}
}

// generalCallback handles unspecified errors.
func generalCallback(db *gorm.DB) {
	db.Error = GeneralError(db.Error)
}

// GeneralError handles errors that no other callback could make sense of.
// It is also used for errors of statements that do not run callbacks, such
// as beginning or committing a transaction.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
// Write conflicts keep their cause so that the ledger can retry them.
func GeneralError(err error) error {
	if err == nil || errors.Is(err, ErrConflict) || errors.Is(err, ErrGeneral) {
		return err
	}

	if IsConflict(err) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}

	var sqliteErr *go_sqlite.Error
	var pgErr *pgconn.PgError

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if errors.Is(err, sql.ErrConnDone) || err.Error() == "sql: database is closed" || errors.As(err, &sqliteErr) || (errors.As(err, &pgErr) && pgErr.Code != pgUniqueViolation) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// IsConflict reports whether the error is a write conflict that is resolved
// by running the whole database transaction again.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrConflict) {
		return true
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code() & 0xff
		return code == sqliteBusy || code == sqliteLocked
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}

	return false
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Account{}, Transaction{}, Setting{}, RecurringExpense{}, ExpensePayment{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
