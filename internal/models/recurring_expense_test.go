package models_test

import (
	"time"

	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestRecurringExpenseValidation() {
	tests := []struct {
		name    string
		expense models.RecurringExpense
		err     error
	}{
		{"Due day too small", models.RecurringExpense{Description: "Rent", Amount: decimal.NewFromInt(1), DueDay: 0}, models.ErrDueDayInvalid},
		{"Due day too large", models.RecurringExpense{Description: "Rent", Amount: decimal.NewFromInt(1), DueDay: 32}, models.ErrDueDayInvalid},
		{"Amount zero", models.RecurringExpense{Description: "Rent", DueDay: 5}, models.ErrRecurringAmountInvalid},
		{"Amount negative", models.RecurringExpense{Description: "Rent", Amount: decimal.NewFromInt(-3), DueDay: 5}, models.ErrRecurringAmountInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := suite.db.Create(&tt.expense).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringExpenseStartMonthDefault() {
	expense := suite.createTestRecurringExpense(models.RecurringExpense{Description: "Internet"})
	suite.Assert().True(types.MonthOf(time.Now()).Equal(expense.StartMonth))

	var reloaded models.RecurringExpense
	suite.Require().Nil(suite.db.First(&reloaded, expense.ID).Error)
	suite.Assert().Equal(expense.StartMonth.String(), reloaded.StartMonth.String())
}

func (suite *TestSuiteStandard) TestRecurringExpenseDueDate() {
	expense := models.RecurringExpense{DueDay: 31}
	suite.Assert().Equal("2024-02-29", expense.DueDate(types.NewMonth(2024, 2)).String())
	suite.Assert().Equal("2024-03-31", expense.DueDate(types.NewMonth(2024, 3)).String())
}

func (suite *TestSuiteStandard) TestExpensePaymentUnique() {
	expense := suite.createTestRecurringExpense(models.RecurringExpense{Description: "Rent"})
	month := types.NewMonth(2024, 5)

	err := suite.db.Create(&models.ExpensePayment{RecurringExpenseID: expense.ID, Month: month, Method: models.MethodBank}).Error
	suite.Require().Nil(err)

	err = suite.db.Create(&models.ExpensePayment{RecurringExpenseID: expense.ID, Month: month, Method: models.MethodCash}).Error
	suite.Assert().ErrorIs(err, models.ErrExpensePaymentExists)

	var payments []models.ExpensePayment
	suite.Require().Nil(suite.db.Where(&models.ExpensePayment{RecurringExpenseID: expense.ID}).Find(&payments).Error)
	suite.Require().Len(payments, 1)
	suite.Assert().Equal("2024-05", payments[0].Month.String())
}

func (suite *TestSuiteStandard) TestSettings() {
	value, err := models.GetDecimalSetting(suite.db, models.SettingInitialBankBalance)
	suite.Require().Nil(err)
	suite.Assert().True(value.IsZero(), "Missing setting is not zero")

	_, err = models.PutDecimalSetting(suite.db, models.SettingInitialBankBalance, decimal.RequireFromString("1000.50"))
	suite.Require().Nil(err)

	s, err := models.PutDecimalSetting(suite.db, models.SettingInitialBankBalance, decimal.RequireFromString("1234.56"))
	suite.Require().Nil(err)
	suite.Assert().True(s.Value.Equal(decimal.RequireFromString("1234.56")))

	value, err = models.GetDecimalSetting(suite.db, models.SettingInitialBankBalance)
	suite.Require().Nil(err)
	suite.Assert().True(value.Equal(decimal.RequireFromString("1234.56")), "Value is %s", value)

	var count int64
	suite.Require().Nil(suite.db.Model(&models.Setting{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}
