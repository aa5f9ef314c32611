package v1_test

import (
	"fmt"
	"net/http"

	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/cashflow"
	v1 "github.com/rpmartinrodriguez/Reporte-Financiero/internal/controllers/v1"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
)

// seedProjection creates an initial balance of 1000, a past bank movement of
// -100 and three upcoming items: a supplier invoice of 300 due on the 18th,
// a check of 500 due on the 20th and a rent of 200 due on the 25th.
func (suite *TestSuiteStandard) seedProjection() {
	suite.do(http.MethodPut, "/v1/settings/initial-balance", map[string]any{"value": 1000}, nil, http.StatusOK)

	suite.createTransaction(map[string]any{
		"accountName": models.AccountBank,
		"subset":      models.SubsetBankMovements,
		"date":        "2024-03-10",
		"description": "Bank fees",
		"amount":      -100,
	})

	suite.createTransaction(map[string]any{
		"accountName":  models.AccountPayables,
		"subset":       models.SubsetSupplierInvoices,
		"date":         "2024-03-01",
		"dueDate":      "2024-03-18",
		"counterparty": "Supplies SA",
		"status":       models.StatusPending,
		"amount":       300,
	})

	suite.createTransaction(map[string]any{
		"accountName":  models.AccountChecksPortfolio,
		"subset":       models.SubsetCheckDetails,
		"date":         "2024-03-01",
		"dueDate":      "2024-03-20",
		"counterparty": "Drawer Inc.",
		"status":       models.StatusInPortfolio,
		"amount":       500,
	})

	suite.createRecurringExpense(map[string]any{
		"description": "Rent",
		"amount":      200,
		"dueDay":      25,
		"startMonth":  "2024-03",
	})
}

func (suite *TestSuiteStandard) TestProjection() {
	suite.seedProjection()

	var response v1.ProjectionResponse
	suite.do(http.MethodGet, "/v1/projection?fromDate=2024-03-15&untilDate=2024-03-31", nil, &response, http.StatusOK)

	p := response.Data
	suite.Require().NotNil(p)
	suite.Assert().Len(p.Points, 17)
	suite.Assert().True(decimal.NewFromInt(1000).Equal(p.Initial), p.Initial.String())
	suite.Assert().True(decimal.NewFromInt(900).Equal(p.Opening), p.Opening.String())
	suite.Assert().True(decimal.NewFromInt(900).Equal(p.Closing), p.Closing.String())
	suite.Assert().True(decimal.NewFromInt(500).Equal(p.Totals.Inflow), p.Totals.Inflow.String())
	suite.Assert().True(decimal.NewFromInt(500).Equal(p.Totals.Outflow), p.Totals.Outflow.String())
	suite.Assert().True(p.Totals.Net.IsZero(), p.Totals.Net.String())

	suite.Assert().Equal(types.NewDate(2024, 3, 18), p.Lowest.Date)
	suite.Assert().True(decimal.NewFromInt(600).Equal(p.Lowest.Closing), p.Lowest.Closing.String())

	// Points are contiguous and chain their balances
	for i := 1; i < len(p.Points); i++ {
		suite.Assert().Equal(p.Points[i-1].Date.AddDays(1), p.Points[i].Date)
		suite.Assert().True(p.Points[i-1].Closing.Equal(p.Points[i].Opening))
	}
}

func (suite *TestSuiteStandard) TestProjectionDefaults() {
	suite.seedProjection()

	var response v1.ProjectionResponse
	suite.do(http.MethodGet, "/v1/projection", nil, &response, http.StatusOK)

	suite.Assert().Equal(today, response.Data.Start)
	suite.Assert().Equal(today.AddDays(v1.DefaultProjectionDays), response.Data.End)
	suite.Assert().Len(response.Data.Points, v1.DefaultProjectionDays+1)

	suite.do(http.MethodGet, "/v1/projection?fromDate=2024-04-01", nil, &response, http.StatusOK)
	suite.Assert().Equal(types.NewDate(2024, 5, 1), response.Data.End)
	suite.Assert().True(decimal.NewFromInt(900).Equal(response.Data.Opening), "The April projection starts after all March items: %s", response.Data.Opening)
}

func (suite *TestSuiteStandard) TestProjectionFails() {
	var response v1.ProjectionResponse
	suite.do(http.MethodGet, "/v1/projection?fromDate=2024-03-20&untilDate=2024-03-10", nil, &response, http.StatusBadRequest)
	suite.Assert().Equal(cashflow.ErrRangeInvalid.Error(), *response.Error)

	suite.do(http.MethodGet, "/v1/projection?fromDate=yesterday", nil, nil, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProjectionBalance() {
	suite.seedProjection()

	tests := []struct {
		query    string
		date     types.Date
		expected int64
	}{
		{"", today, 900},
		{"?date=2024-03-10", types.NewDate(2024, 3, 10), 1000},
		{"?date=2024-03-19", types.NewDate(2024, 3, 19), 600},
		{"?date=2024-03-21", types.NewDate(2024, 3, 21), 1100},
		{"?date=2024-03-26", types.NewDate(2024, 3, 26), 900},
	}

	for _, tt := range tests {
		suite.Run(tt.date.String(), func() {
			var response v1.BalanceResponse
			suite.do(http.MethodGet, fmt.Sprintf("/v1/projection/balance%s", tt.query), nil, &response, http.StatusOK)

			suite.Assert().Equal(tt.date, response.Data.Date)
			suite.Assert().True(decimal.NewFromInt(tt.expected).Equal(response.Data.Balance), response.Data.Balance.String())
		})
	}

	suite.Run("Broken date", func() {
		suite.do(http.MethodGet, "/v1/projection/balance?date=2024-02-30", nil, nil, http.StatusBadRequest)
	})
}

func (suite *TestSuiteStandard) TestCalendarDay() {
	suite.seedProjection()

	var response v1.DayResponse
	suite.do(http.MethodGet, "/v1/calendar/2024-03-20", nil, &response, http.StatusOK)
	suite.Require().Len(response.Data.Inflows, 1)
	suite.Assert().Empty(response.Data.Outflows)
	suite.Assert().Equal("Drawer Inc.", response.Data.Inflows[0].Counterparty)
	suite.Assert().Equal(cashflow.SourceTransaction, response.Data.Inflows[0].Source)
	suite.Assert().True(decimal.NewFromInt(500).Equal(response.Data.Totals.Net))

	suite.do(http.MethodGet, "/v1/calendar/2024-03-25", nil, &response, http.StatusOK)
	suite.Require().Len(response.Data.Outflows, 1)
	suite.Assert().Equal(cashflow.SourceRecurringExpense, response.Data.Outflows[0].Source)
	suite.Assert().Equal(types.NewMonth(2024, 3), *response.Data.Outflows[0].Month)
	suite.Assert().True(decimal.NewFromInt(-200).Equal(response.Data.Outflows[0].Amount))

	suite.do(http.MethodGet, "/v1/calendar/2024-03-21", nil, &response, http.StatusOK)
	suite.Assert().Empty(response.Data.Inflows)
	suite.Assert().Empty(response.Data.Outflows)

	suite.do(http.MethodGet, "/v1/calendar/2024-13-01", nil, nil, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProjectionDatabaseError() {
	suite.CloseDB()

	var response v1.ProjectionResponse
	suite.do(http.MethodGet, "/v1/projection", nil, &response, http.StatusInternalServerError)
	suite.Assert().Contains(*response.Error, models.ErrGeneral.Error())
}
