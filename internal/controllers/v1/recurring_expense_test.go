package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/rpmartinrodriguez/Reporte-Financiero/internal/controllers/v1"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createRecurringExpense(body map[string]any) v1.RecurringExpense {
	var response v1.RecurringExpenseResponse
	suite.do(http.MethodPost, "/v1/recurring-expenses", body, &response, http.StatusCreated)
	return *response.Data
}

func (suite *TestSuiteStandard) TestRecurringExpensesCreate() {
	rent := suite.createRecurringExpense(map[string]any{
		"description": "Rent",
		"amount":      1500,
		"dueDay":      10,
		"startMonth":  "2024-01",
	})

	suite.Assert().Equal("Rent", rent.Description)
	suite.Assert().Equal(types.NewMonth(2024, 1), rent.StartMonth)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/recurring-expenses/%s", rent.ID), rent.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/recurring-expenses/%s/payments", rent.ID), rent.Links.Payments)

	internet := suite.createRecurringExpense(map[string]any{
		"description": "Internet",
		"amount":      "80.5",
		"dueDay":      5,
	})
	suite.Assert().False(internet.StartMonth.IsZero(), "The start month defaults to the current month")

	var list v1.RecurringExpenseListResponse
	suite.do(http.MethodGet, "/v1/recurring-expenses", nil, &list, http.StatusOK)
	suite.Require().Len(list.Data, 2)
	suite.Assert().Equal("Internet", list.Data[0].Description, "Recurring expenses are ordered by due day")
	suite.Assert().Equal("Rent", list.Data[1].Description)
}

func (suite *TestSuiteStandard) TestRecurringExpensesCreateFails() {
	tests := []struct {
		name string
		body any
	}{
		{"No body", nil},
		{"No description", map[string]any{"amount": 10, "dueDay": 1}},
		{"No amount", map[string]any{"description": "Rent", "dueDay": 1}},
		{"Zero amount", map[string]any{"description": "Rent", "amount": 0, "dueDay": 1}},
		{"Negative amount", map[string]any{"description": "Rent", "amount": -10, "dueDay": 1}},
		{"No due day", map[string]any{"description": "Rent", "amount": 10}},
		{"Due day too large", map[string]any{"description": "Rent", "amount": 10, "dueDay": 32}},
		{"Broken start month", map[string]any{"description": "Rent", "amount": 10, "dueDay": 1, "startMonth": "January"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			var response v1.RecurringExpenseResponse
			suite.do(http.MethodPost, "/v1/recurring-expenses", tt.body, &response, http.StatusBadRequest)
			suite.Assert().NotNil(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringExpensesUpdate() {
	rent := suite.createRecurringExpense(map[string]any{
		"description": "Rent",
		"amount":      1500,
		"dueDay":      10,
		"startMonth":  "2024-01",
	})
	path := fmt.Sprintf("/v1/recurring-expenses/%s", rent.ID)

	var response v1.RecurringExpenseResponse
	suite.do(http.MethodPatch, path, map[string]any{"amount": 1700, "dueDay": 31}, &response, http.StatusOK)
	suite.Assert().True(decimal.NewFromInt(1700).Equal(response.Data.Amount))
	suite.Assert().Equal(31, response.Data.DueDay)
	suite.Assert().Equal("Rent", response.Data.Description)

	suite.do(http.MethodGet, path, nil, &response, http.StatusOK)
	suite.Assert().Equal(31, response.Data.DueDay)

	suite.Run("Invalid due day", func() {
		suite.do(http.MethodPatch, path, map[string]any{"dueDay": 0}, nil, http.StatusBadRequest)
	})

	suite.Run("Invalid amount", func() {
		suite.do(http.MethodPatch, path, map[string]any{"amount": -1}, nil, http.StatusBadRequest)
	})

	suite.Run("Not found", func() {
		suite.do(http.MethodPatch, fmt.Sprintf("/v1/recurring-expenses/%s", uuid.New()), map[string]any{"dueDay": 2}, nil, http.StatusNotFound)
	})
}

func (suite *TestSuiteStandard) TestRecurringExpensesPayments() {
	rent := suite.createRecurringExpense(map[string]any{
		"description": "Rent",
		"amount":      1500,
		"dueDay":      31,
		"startMonth":  "2024-01",
	})
	path := fmt.Sprintf("/v1/recurring-expenses/%s/payments", rent.ID)

	suite.Run("Bank", func() {
		var response v1.ExpensePaymentResponse
		suite.do(http.MethodPost, path, map[string]any{"month": "2024-02"}, &response, http.StatusCreated)

		suite.Assert().Equal(types.NewMonth(2024, 2), response.Data.Month)
		suite.Assert().Equal(models.MethodBank, response.Data.Method)
		suite.Assert().Equal(types.NewDate(2024, 2, 29), response.Data.PaidAt, "The payment defaults to the due date, clamped to the month")
		suite.Require().NotNil(response.Data.Transaction)
		suite.Assert().Equal(models.SubsetBankMovements, response.Data.Transaction.Subset)
		suite.Assert().Equal("Rent (2024-02)", response.Data.Transaction.Description)
		suite.Assert().Equal(response.Data.Transaction.ID, *response.Data.TransactionID)
		suite.assertBalance(models.AccountBank, -1500)
	})

	suite.Run("Cash", func() {
		var response v1.ExpensePaymentResponse
		suite.do(http.MethodPost, path, map[string]any{"month": "2024-03", "method": "cash", "date": "2024-03-05"}, &response, http.StatusCreated)

		suite.Assert().Equal(models.MethodCash, response.Data.Method)
		suite.Assert().Equal(types.NewDate(2024, 3, 5), response.Data.PaidAt)
		suite.Assert().Equal(models.SubsetCashMovements, response.Data.Transaction.Subset)
		suite.Assert().Equal("main", response.Data.Transaction.Register)
		suite.assertBalance(models.AccountCash, -1500)
	})

	suite.Run("Paid twice", func() {
		var response v1.ExpensePaymentResponse
		suite.do(http.MethodPost, path, map[string]any{"month": "2024-02", "method": "cash"}, &response, http.StatusConflict)
		suite.Assert().Equal(models.ErrExpensePaymentExists.Error(), *response.Error)
		suite.assertBalance(models.AccountCash, -1500)
	})

	suite.Run("List", func() {
		var response v1.ExpensePaymentListResponse
		suite.do(http.MethodGet, path, nil, &response, http.StatusOK)

		suite.Require().Len(response.Data, 2)
		suite.Assert().Equal(types.NewMonth(2024, 3), response.Data[0].Month)
		suite.Assert().Equal(types.NewMonth(2024, 2), response.Data[1].Month)
	})

	suite.Run("Month missing", func() {
		suite.do(http.MethodPost, path, map[string]any{"method": "bank"}, nil, http.StatusBadRequest)
	})

	suite.Run("Invalid method", func() {
		suite.do(http.MethodPost, path, map[string]any{"month": "2024-04", "method": "card"}, nil, http.StatusBadRequest)
	})

	suite.Run("Unknown expense", func() {
		suite.do(http.MethodPost, fmt.Sprintf("/v1/recurring-expenses/%s/payments", uuid.New()), map[string]any{"month": "2024-04"}, nil, http.StatusNotFound)
		suite.do(http.MethodGet, fmt.Sprintf("/v1/recurring-expenses/%s/payments", uuid.New()), nil, nil, http.StatusNotFound)
	})

	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestRecurringExpensesDelete() {
	rent := suite.createRecurringExpense(map[string]any{
		"description": "Rent",
		"amount":      1500,
		"dueDay":      10,
	})
	path := fmt.Sprintf("/v1/recurring-expenses/%s", rent.ID)

	suite.do(http.MethodPost, path+"/payments", map[string]any{"month": "2024-03"}, nil, http.StatusCreated)

	suite.do(http.MethodDelete, path, nil, nil, http.StatusNoContent)
	suite.do(http.MethodGet, path, nil, nil, http.StatusNotFound)
	suite.do(http.MethodDelete, path, nil, nil, http.StatusNotFound)
	suite.do(http.MethodDelete, "/v1/recurring-expenses/nope", nil, nil, http.StatusBadRequest)

	// The movement of the payment is kept
	suite.assertBalance(models.AccountBank, -1500)

	var count int64
	suite.Require().Nil(suite.db.Model(&models.ExpensePayment{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count)
}
