package ledger_test

import (
	"github.com/google/uuid"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/ledger"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestDepositCheck() {
	check := suite.check(models.AccountChecksPortfolio, 200)

	deposited, err := suite.ledger.DepositCheck(suite.ctx, check.ID, types.NewDate(2024, 3, 10))
	suite.Require().Nil(err)

	pending := suite.account(models.AccountChecksPending)
	suite.Assert().Equal(pending.ID, deposited.AccountID)
	suite.Assert().Equal(models.StatusDeposited, deposited.Status)
	suite.Assert().Equal("2024-03-10", deposited.Date.String())
	suite.Assert().Equal("2024-03-20", deposited.DueDate.String())
	suite.Assert().True(decimal.NewFromInt(200).Equal(suite.balance(pending.ID)))
	suite.Assert().True(suite.balance(check.AccountID).IsZero())
	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestDepositCheckWrongAccount() {
	check := suite.check(models.AccountChecksPending, 200)

	_, err := suite.ledger.DepositCheck(suite.ctx, check.ID, types.Date{})
	suite.Assert().ErrorIs(err, ledger.ErrWrongAccount)
}

func (suite *TestSuiteStandard) TestDepositCheckWrongSubset() {
	portfolio := suite.account(models.AccountChecksPortfolio)
	t := suite.record(models.Transaction{AccountID: portfolio.ID, Subset: models.SubsetBankMovements, Amount: decimal.NewFromInt(10)})

	_, err := suite.ledger.DepositCheck(suite.ctx, t.ID, types.Date{})
	suite.Assert().ErrorIs(err, ledger.ErrWrongSubset)
}

func (suite *TestSuiteStandard) TestCollectCheck() {
	check := suite.check(models.AccountChecksPending, 200)

	movement, err := suite.ledger.CollectCheck(suite.ctx, check.ID, types.Date{})
	suite.Require().Nil(err)

	bank := suite.account(models.AccountBank)
	suite.Assert().Equal(bank.ID, movement.AccountID)
	suite.Assert().Equal(models.SubsetBankMovements, movement.Subset)
	suite.Assert().Equal(models.StatusCollected, movement.Status)
	suite.Assert().Equal("2024-03-20", movement.Date.String(), "Collection date defaults to the due date")
	suite.Assert().True(movement.DueDate.IsZero())
	suite.Assert().Equal("Check collected Drawer Inc. #0042", movement.Description)
	suite.Assert().True(decimal.NewFromInt(200).Equal(suite.balance(bank.ID)))
	suite.Assert().True(suite.balance(check.AccountID).IsZero())
	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestRejectCheck() {
	check := suite.check(models.AccountChecksPending, 200)

	rejected, err := suite.ledger.RejectCheck(suite.ctx, check.ID)
	suite.Require().Nil(err)

	portfolio := suite.account(models.AccountChecksPortfolio)
	suite.Assert().Equal(portfolio.ID, rejected.AccountID)
	suite.Assert().Equal(models.StatusRejected, rejected.Status)
	suite.Assert().True(decimal.NewFromInt(200).Equal(suite.balance(portfolio.ID)))
	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestSellCheck() {
	check := suite.check(models.AccountChecksPortfolio, 1000)

	movements, err := suite.ledger.SellCheck(suite.ctx, check.ID, decimal.NewFromInt(35), types.Date{})
	suite.Require().Nil(err)
	suite.Require().Len(movements, 2)

	bank := suite.account(models.AccountBank)
	suite.Assert().True(decimal.NewFromInt(965).Equal(suite.balance(bank.ID)))
	suite.Assert().True(suite.balance(check.AccountID).IsZero())
	suite.Assert().True(decimal.NewFromInt(1000).Equal(movements[0].Amount))
	suite.Assert().True(decimal.NewFromInt(-35).Equal(movements[1].Amount))
	suite.Assert().Equal("2024-03-15", movements[0].Date.String(), "Sale date defaults to today")
	suite.Assert().Equal(int64(0), suite.count(check.AccountID, models.SubsetCheckDetails))
	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestSellCheckWithoutDiscount() {
	check := suite.check(models.AccountChecksPending, 500)

	movements, err := suite.ledger.SellCheck(suite.ctx, check.ID, decimal.Zero, types.NewDate(2024, 3, 2))
	suite.Require().Nil(err)
	suite.Assert().Len(movements, 1)
}

func (suite *TestSuiteStandard) TestSellCheckDiscountInvalid() {
	check := suite.check(models.AccountChecksPortfolio, 100)

	tests := []decimal.Decimal{decimal.NewFromInt(-1), decimal.NewFromInt(101)}
	for _, discount := range tests {
		_, err := suite.ledger.SellCheck(suite.ctx, check.ID, discount, types.Date{})
		suite.Assert().ErrorIs(err, ledger.ErrDiscountInvalid, "Discount %s", discount)
	}

	suite.Assert().True(decimal.NewFromInt(100).Equal(suite.balance(check.AccountID)))
}

func (suite *TestSuiteStandard) TestPayIssuedCheck() {
	payable := suite.account(models.AccountChecksPayable)
	check := suite.record(models.Transaction{
		AccountID: payable.ID,
		Subset:    models.SubsetIssuedChecks,
		Date:      types.NewDate(2024, 3, 5),
		Number:    "9001",
		Status:    models.StatusIssued,
		Amount:    decimal.NewFromInt(300),
	})

	movement, err := suite.ledger.PayIssuedCheck(suite.ctx, check.ID, types.Date{})
	suite.Require().Nil(err)

	bank := suite.account(models.AccountBank)
	suite.Assert().True(decimal.NewFromInt(-300).Equal(movement.Amount))
	suite.Assert().Equal(models.StatusPaid, movement.Status)
	suite.Assert().Equal("2024-03-15", movement.Date.String())
	suite.Assert().True(decimal.NewFromInt(-300).Equal(suite.balance(bank.ID)))
	suite.Assert().True(suite.balance(payable.ID).IsZero())
	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestPaySupplierInvoice() {
	payables := suite.account(models.AccountPayables)
	invoice := suite.record(models.Transaction{
		AccountID:    payables.ID,
		Subset:       models.SubsetSupplierInvoices,
		Date:         types.NewDate(2024, 3, 1),
		DueDate:      types.NewDate(2024, 3, 30),
		Counterparty: "Supplies SA",
		Number:       "A-17",
		Status:       models.StatusPending,
		Amount:       decimal.NewFromInt(450),
	})

	check, err := suite.ledger.PaySupplierInvoice(suite.ctx, invoice.ID, ledger.IssuedCheck{
		Number:  "9002",
		Bank:    "Banco Uno",
		DueDate: types.NewDate(2024, 4, 15),
	})
	suite.Require().Nil(err)

	payable := suite.account(models.AccountChecksPayable)
	suite.Assert().Equal(payable.ID, check.AccountID)
	suite.Assert().Equal(models.StatusIssued, check.Status)
	suite.Assert().Equal("Supplies SA", check.Counterparty)
	suite.Assert().True(decimal.NewFromInt(450).Equal(suite.balance(payable.ID)))
	suite.Assert().True(suite.balance(payables.ID).IsZero())

	var settled models.Transaction
	suite.Require().Nil(suite.db.First(&settled, "id = ?", invoice.ID).Error)
	suite.Assert().Equal(models.StatusPaid, settled.Status)
	suite.Assert().True(settled.Amount.IsZero())
	suite.assertConsistent()

	_, err = suite.ledger.PaySupplierInvoice(suite.ctx, invoice.ID, ledger.IssuedCheck{})
	suite.Assert().ErrorIs(err, ledger.ErrWrongStatus)
}

func (suite *TestSuiteStandard) TestCollectReceivable() {
	receivables := suite.account(models.AccountReceivables)
	invoice := suite.record(models.Transaction{
		AccountID:    receivables.ID,
		Subset:       models.SubsetInvoices,
		DueDate:      types.NewDate(2024, 3, 25),
		Counterparty: "Customer SRL",
		Gross:        decimal.NewFromInt(100),
		Tax:          decimal.NewFromInt(21),
		Status:       models.StatusPending,
	})

	movement, err := suite.ledger.CollectReceivable(suite.ctx, invoice.ID, types.NewDate(2024, 3, 24))
	suite.Require().Nil(err)

	bank := suite.account(models.AccountBank)
	suite.Assert().Equal("2024-03-24", movement.Date.String())
	suite.Assert().True(decimal.NewFromInt(121).Equal(suite.balance(bank.ID)))
	suite.Assert().True(suite.balance(receivables.ID).IsZero())
	suite.assertConsistent()

	_, err = suite.ledger.CollectReceivable(suite.ctx, invoice.ID, types.Date{})
	suite.Assert().ErrorIs(err, ledger.ErrWrongStatus)
}

func (suite *TestSuiteStandard) TestRecordCashMovement() {
	movements, err := suite.ledger.RecordCashMovement(suite.ctx, ledger.CashMovement{
		Description: "Change between registers",
		Registers: map[string]decimal.Decimal{
			"main":   decimal.NewFromInt(-50),
			"office": decimal.NewFromInt(50),
			"store":  decimal.Zero,
		},
	})
	suite.Require().Nil(err)
	suite.Require().Len(movements, 2)
	suite.Assert().Equal("main", movements[0].Register)
	suite.Assert().Equal("office", movements[1].Register)

	suite.record(models.Transaction{
		AccountID: movements[0].AccountID,
		Subset:    models.SubsetCashMovements,
		Register:  "main",
		Amount:    decimal.NewFromInt(80),
	})

	balances, err := suite.ledger.RegisterBalances(suite.ctx)
	suite.Require().Nil(err)
	suite.Assert().True(decimal.NewFromInt(30).Equal(balances["main"]))
	suite.Assert().True(decimal.NewFromInt(50).Equal(balances["office"]))
	suite.Assert().True(decimal.NewFromInt(80).Equal(suite.balance(movements[0].AccountID)))
	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestRecordCashMovementEmpty() {
	_, err := suite.ledger.RecordCashMovement(suite.ctx, ledger.CashMovement{
		Registers: map[string]decimal.Decimal{"main": decimal.Zero},
	})
	suite.Assert().ErrorIs(err, ledger.ErrCashMovementEmpty)
}

func (suite *TestSuiteStandard) TestPayRecurringExpense() {
	expense := models.RecurringExpense{
		Description: "Rent",
		Amount:      decimal.NewFromInt(800),
		DueDay:      31,
		StartMonth:  types.NewMonth(2024, 1),
	}
	suite.Require().Nil(suite.db.Create(&expense).Error)

	month := types.NewMonth(2024, 2)
	payment, movement, err := suite.ledger.PayRecurringExpense(suite.ctx, expense.ID, month, models.MethodBank, types.Date{})
	suite.Require().Nil(err)

	bank := suite.account(models.AccountBank)
	suite.Assert().Equal("2024-02-29", movement.Date.String(), "Payment date defaults to the clamped due date")
	suite.Assert().Equal("Rent (2024-02)", movement.Description)
	suite.Assert().True(decimal.NewFromInt(-800).Equal(suite.balance(bank.ID)))
	suite.Require().NotNil(payment.TransactionID)
	suite.Assert().Equal(movement.ID, *payment.TransactionID)

	_, _, err = suite.ledger.PayRecurringExpense(suite.ctx, expense.ID, month, models.MethodCash, types.Date{})
	suite.Assert().ErrorIs(err, models.ErrExpensePaymentExists)
	suite.Assert().True(decimal.NewFromInt(-800).Equal(suite.balance(bank.ID)), "Duplicate payment must not move money")

	var n int64
	suite.Require().Nil(suite.db.Model(&models.Transaction{}).Count(&n).Error)
	suite.Assert().Equal(int64(1), n)
	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestPayRecurringExpenseCash() {
	expense := models.RecurringExpense{Description: "Cleaning", Amount: decimal.NewFromInt(60), DueDay: 5}
	suite.Require().Nil(suite.db.Create(&expense).Error)

	_, movement, err := suite.ledger.PayRecurringExpense(suite.ctx, expense.ID, types.NewMonth(2024, 3), models.MethodCash, types.NewDate(2024, 3, 6))
	suite.Require().Nil(err)
	suite.Assert().Equal(models.SubsetCashMovements, movement.Subset)
	suite.Assert().Equal("main", movement.Register)
	suite.Assert().Equal("2024-03-06", movement.Date.String())
}

func (suite *TestSuiteStandard) TestPayRecurringExpenseErrors() {
	_, _, err := suite.ledger.PayRecurringExpense(suite.ctx, uuid.New(), types.NewMonth(2024, 3), "card", types.Date{})
	suite.Assert().ErrorIs(err, models.ErrPaymentMethodInvalid)

	_, _, err = suite.ledger.PayRecurringExpense(suite.ctx, uuid.New(), types.NewMonth(2024, 3), models.MethodBank, types.Date{})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
