package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

var (
	ErrDiscountInvalid   = errors.New("the discount must not be negative or exceed the amount of the check")
	ErrCashMovementEmpty = errors.New("a cash movement needs a non-zero amount for at least one register")
	ErrAmountNotPositive = errors.New("the amount of the transaction must be positive for this operation")
)

// loadFrom reads the transaction and verifies that it is in one of the
// accounts and has the subset.
func loadFrom(tx *gorm.DB, id uuid.UUID, subset models.Subset, accounts ...string) (models.Transaction, models.Account, error) {
	t, err := load(tx, id)
	if err != nil {
		return models.Transaction{}, models.Account{}, err
	}

	var account models.Account
	err = tx.First(&account, "id = ?", t.AccountID).Error
	if err != nil {
		return models.Transaction{}, models.Account{}, err
	}

	keys := make([]string, 0, len(accounts))
	for _, a := range accounts {
		keys = append(keys, models.NameKey(a))
	}

	if !slices.Contains(keys, account.NameKey) {
		return models.Transaction{}, models.Account{}, fmt.Errorf("%w (%s)", ErrWrongAccount, strings.Join(accounts, ", "))
	}

	if t.Subset != subset {
		return models.Transaction{}, models.Account{}, fmt.Errorf("%w (%s)", ErrWrongSubset, subset)
	}

	return t, account, nil
}

func orDate(d, fallback types.Date) types.Date {
	if d.IsZero() {
		return fallback
	}
	return d
}

func describe(prefix string, t models.Transaction) string {
	parts := []string{prefix}
	if t.Counterparty != "" {
		parts = append(parts, t.Counterparty)
	}
	if t.Number != "" {
		parts = append(parts, "#"+t.Number)
	}
	return strings.Join(parts, " ")
}

// DepositCheck moves a check from the portfolio to the checks pending collection.
func (l *Ledger) DepositCheck(ctx context.Context, id uuid.UUID, date types.Date) (models.Transaction, error) {
	var deposited models.Transaction
	err := l.atomic(ctx, func(tx *gorm.DB) error {
		check, _, err := loadFrom(tx, id, models.SubsetCheckDetails, models.AccountChecksPortfolio)
		if err != nil {
			return err
		}

		pending, err := workflowAccount(tx, models.AccountChecksPending)
		if err != nil {
			return err
		}

		deposited, err = transfer(tx, check, pending.ID, func(t *models.Transaction) {
			t.Status = models.StatusDeposited
			t.Date = orDate(date, t.Date)
		})
		return err
	})

	return deposited, err
}

// CollectCheck moves a deposited check to the bank balance.
func (l *Ledger) CollectCheck(ctx context.Context, id uuid.UUID, date types.Date) (models.Transaction, error) {
	var movement models.Transaction
	err := l.atomic(ctx, func(tx *gorm.DB) error {
		check, _, err := loadFrom(tx, id, models.SubsetCheckDetails, models.AccountChecksPending)
		if err != nil {
			return err
		}

		bank, err := workflowAccount(tx, models.AccountBank)
		if err != nil {
			return err
		}

		movement, err = transfer(tx, check, bank.ID, func(t *models.Transaction) {
			t.Subset = models.SubsetBankMovements
			t.Status = models.StatusCollected
			t.Date = orDate(date, orDate(t.DueDate, t.Date))
			t.DueDate = types.Date{}
			t.Description = describe("Check collected", check)
		})
		return err
	})

	return movement, err
}

// RejectCheck returns a deposited check to the portfolio and marks it as rejected.
func (l *Ledger) RejectCheck(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	var rejected models.Transaction
	err := l.atomic(ctx, func(tx *gorm.DB) error {
		check, _, err := loadFrom(tx, id, models.SubsetCheckDetails, models.AccountChecksPending)
		if err != nil {
			return err
		}

		portfolio, err := workflowAccount(tx, models.AccountChecksPortfolio)
		if err != nil {
			return err
		}

		rejected, err = transfer(tx, check, portfolio.ID, func(t *models.Transaction) {
			t.Status = models.StatusRejected
		})
		return err
	})

	return rejected, err
}

// SellCheck sells a check in the portfolio or pending collection at a discount.
// The check is removed and the bank balance receives the gross amount and the
// discount as two separate movements.
func (l *Ledger) SellCheck(ctx context.Context, id uuid.UUID, discount decimal.Decimal, date types.Date) ([]models.Transaction, error) {
	var movements []models.Transaction
	err := l.atomic(ctx, func(tx *gorm.DB) error {
		check, _, err := loadFrom(tx, id, models.SubsetCheckDetails, models.AccountChecksPortfolio, models.AccountChecksPending)
		if err != nil {
			return err
		}

		if discount.IsNegative() || discount.GreaterThan(check.Amount) {
			return ErrDiscountInvalid
		}

		bank, err := workflowAccount(tx, models.AccountBank)
		if err != nil {
			return err
		}

		err = remove(tx, check)
		if err != nil {
			return err
		}

		day := orDate(date, l.today())
		gross := models.Transaction{
			AccountID:    bank.ID,
			Subset:       models.SubsetBankMovements,
			Date:         day,
			Description:  describe("Check sale", check),
			Counterparty: check.Counterparty,
			Number:       check.Number,
			Bank:         check.Bank,
			Status:       models.StatusSold,
			Amount:       check.Amount,
		}

		cost := gross
		cost.Description = describe("Check sale discount", check)
		cost.Amount = discount.Neg()

		movements = []models.Transaction{gross}
		if !discount.IsZero() {
			movements = append(movements, cost)
		}

		for i := range movements {
			err = insert(tx, &movements[i])
			if err != nil {
				return err
			}
		}

		return nil
	})

	return movements, err
}

// PayIssuedCheck debits an issued check from the bank balance.
func (l *Ledger) PayIssuedCheck(ctx context.Context, id uuid.UUID, date types.Date) (models.Transaction, error) {
	var movement models.Transaction
	err := l.atomic(ctx, func(tx *gorm.DB) error {
		check, _, err := loadFrom(tx, id, models.SubsetIssuedChecks, models.AccountChecksPayable)
		if err != nil {
			return err
		}

		bank, err := workflowAccount(tx, models.AccountBank)
		if err != nil {
			return err
		}

		movement, err = transfer(tx, check, bank.ID, func(t *models.Transaction) {
			t.Subset = models.SubsetBankMovements
			t.Status = models.StatusPaid
			t.Date = orDate(date, l.today())
			t.DueDate = types.Date{}
			t.Description = describe("Issued check debited", check)
			t.Amount = check.Amount.Abs().Neg()
		})
		return err
	})

	return movement, err
}

// IssuedCheck describes the check used to pay a supplier invoice.
type IssuedCheck struct {
	Number  string
	Bank    string
	Date    types.Date // Issue date
	DueDate types.Date // Date on which the check can be cashed
}

// PaySupplierInvoice settles a supplier invoice with an issued check. The
// invoice stays in the payables with a zero amount and the paid status, the
// check is added to the checks payable.
func (l *Ledger) PaySupplierInvoice(ctx context.Context, id uuid.UUID, payment IssuedCheck) (models.Transaction, error) {
	var check models.Transaction
	err := l.atomic(ctx, func(tx *gorm.DB) error {
		invoice, _, err := loadFrom(tx, id, models.SubsetSupplierInvoices, models.AccountPayables)
		if err != nil {
			return err
		}

		if invoice.Status == models.StatusPaid {
			return ErrWrongStatus
		}

		if !invoice.Amount.IsPositive() {
			return ErrAmountNotPositive
		}

		payable, err := workflowAccount(tx, models.AccountChecksPayable)
		if err != nil {
			return err
		}

		check = models.Transaction{
			AccountID:    payable.ID,
			Subset:       models.SubsetIssuedChecks,
			Date:         orDate(payment.Date, l.today()),
			DueDate:      payment.DueDate,
			Description:  describe("Payment of invoice", invoice),
			Counterparty: invoice.Counterparty,
			Number:       payment.Number,
			Bank:         payment.Bank,
			Status:       models.StatusIssued,
			Amount:       invoice.Amount,
		}
		err = insert(tx, &check)
		if err != nil {
			return err
		}

		return settle(tx, invoice, models.StatusPaid)
	})

	return check, err
}

// CollectReceivable settles a receivable invoice into the bank balance. The
// invoice stays in the receivables with a zero amount and the collected status.
func (l *Ledger) CollectReceivable(ctx context.Context, id uuid.UUID, date types.Date) (models.Transaction, error) {
	var movement models.Transaction
	err := l.atomic(ctx, func(tx *gorm.DB) error {
		invoice, _, err := loadFrom(tx, id, models.SubsetInvoices, models.AccountReceivables)
		if err != nil {
			return err
		}

		if invoice.Status == models.StatusCollected {
			return ErrWrongStatus
		}

		if !invoice.Amount.IsPositive() {
			return ErrAmountNotPositive
		}

		bank, err := workflowAccount(tx, models.AccountBank)
		if err != nil {
			return err
		}

		movement = models.Transaction{
			AccountID:    bank.ID,
			Subset:       models.SubsetBankMovements,
			Date:         orDate(date, l.today()),
			Description:  describe("Invoice collected", invoice),
			Counterparty: invoice.Counterparty,
			Number:       invoice.Number,
			Status:       models.StatusCollected,
			Amount:       invoice.Amount,
		}
		err = insert(tx, &movement)
		if err != nil {
			return err
		}

		return settle(tx, invoice, models.StatusCollected)
	})

	return movement, err
}

// settle sets the amount of an invoice to zero and updates its status.
func settle(tx *gorm.DB, invoice models.Transaction, status models.Status) error {
	err := applyDelta(tx, invoice.AccountID, invoice.Amount.Neg())
	if err != nil {
		return err
	}

	return tx.Model(&invoice).Updates(map[string]any{
		"amount": decimal.Zero,
		"status": status,
	}).Error
}

// CashMovement is a movement across the cash registers. Amounts are signed,
// negative amounts are withdrawals.
type CashMovement struct {
	Date        types.Date
	Description string
	Registers   map[string]decimal.Decimal
}

// RecordCashMovement records one transaction per register with a non-zero amount.
func (l *Ledger) RecordCashMovement(ctx context.Context, movement CashMovement) ([]models.Transaction, error) {
	registers := make([]string, 0, len(movement.Registers))
	for register, amount := range movement.Registers {
		if !amount.IsZero() {
			registers = append(registers, register)
		}
	}
	slices.Sort(registers)

	if len(registers) == 0 {
		return nil, ErrCashMovementEmpty
	}

	var created []models.Transaction
	err := l.atomic(ctx, func(tx *gorm.DB) error {
		cash, err := workflowAccount(tx, models.AccountCash)
		if err != nil {
			return err
		}

		created = make([]models.Transaction, 0, len(registers))
		for _, register := range registers {
			t := models.Transaction{
				AccountID:   cash.ID,
				Subset:      models.SubsetCashMovements,
				Date:        orDate(movement.Date, l.today()),
				Description: movement.Description,
				Register:    register,
				Amount:      movement.Registers[register],
			}

			err = insert(tx, &t)
			if err != nil {
				return err
			}
			created = append(created, t)
		}

		return nil
	})

	return created, err
}

// RegisterBalances returns the balance of each cash register.
func (l *Ledger) RegisterBalances(ctx context.Context) (map[string]decimal.Decimal, error) {
	var movements []models.Transaction
	err := l.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("accounts.name_key = ? AND transactions.subset = ?", models.NameKey(models.AccountCash), models.SubsetCashMovements).
		Find(&movements).Error
	if err != nil {
		return nil, err
	}

	balances := make(map[string]decimal.Decimal)
	for _, m := range movements {
		balances[m.Register] = balances[m.Register].Add(m.Amount)
	}

	return balances, nil
}

// PayRecurringExpense records the payment of a recurring expense for a month
// and debits the amount from the bank balance or the cash registers.
func (l *Ledger) PayRecurringExpense(ctx context.Context, expenseID uuid.UUID, month types.Month, method models.PaymentMethod, date types.Date) (models.ExpensePayment, models.Transaction, error) {
	if method != models.MethodBank && method != models.MethodCash {
		return models.ExpensePayment{}, models.Transaction{}, models.ErrPaymentMethodInvalid
	}

	var payment models.ExpensePayment
	var movement models.Transaction
	err := l.atomic(ctx, func(tx *gorm.DB) error {
		var expense models.RecurringExpense
		err := tx.First(&expense, "id = ?", expenseID).Error
		if err != nil {
			return err
		}

		movement = models.Transaction{
			Date:        orDate(date, expense.DueDate(month)),
			Description: fmt.Sprintf("%s (%s)", expense.Description, month),
			Amount:      expense.Amount.Neg(),
			Status:      models.StatusPaid,
		}

		var account models.Account
		if method == models.MethodBank {
			account, err = workflowAccount(tx, models.AccountBank)
			movement.Subset = models.SubsetBankMovements
		} else {
			account, err = workflowAccount(tx, models.AccountCash)
			movement.Subset = models.SubsetCashMovements
			movement.Register = "main"
		}
		if err != nil {
			return err
		}
		movement.AccountID = account.ID

		err = insert(tx, &movement)
		if err != nil {
			return err
		}

		payment = models.ExpensePayment{
			RecurringExpenseID: expense.ID,
			Month:              month,
			Method:             method,
			PaidAt:             movement.Date,
			TransactionID:      &movement.ID,
		}
		return tx.Create(&payment).Error
	})

	return payment, movement, err
}
