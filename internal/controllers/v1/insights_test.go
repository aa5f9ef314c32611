package v1_test

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/rpmartinrodriguez/Reporte-Financiero/internal/controllers/v1"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/insights"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
)

func (suite *TestSuiteStandard) TestInsightsNotConfigured() {
	var response v1.TextResponse
	suite.do(http.MethodPost, "/v1/insights/summary", nil, &response, http.StatusServiceUnavailable)
	suite.Assert().Equal(insights.ErrNotConfigured.Error(), *response.Error)

	suite.do(http.MethodPost, fmt.Sprintf("/v1/insights/reminders/%s", uuid.New()), nil, &response, http.StatusServiceUnavailable)
}

func (suite *TestSuiteStandard) TestInsightsSummary() {
	generator := &fakeGenerator{text: "The balance stays positive."}
	suite.withNarrator(generator)
	suite.seedProjection()

	var response v1.TextResponse
	suite.do(http.MethodPost, "/v1/insights/summary", nil, &response, http.StatusOK)
	suite.Assert().Equal("The balance stays positive.", response.Data.Text)
	suite.Require().Len(generator.prompts, 1)
	suite.Assert().Contains(generator.prompts[0], "2024-03-15")

	suite.Run("Custom range", func() {
		suite.do(http.MethodPost, "/v1/insights/summary", map[string]any{"fromDate": "2024-04-01", "untilDate": "2024-04-30"}, &response, http.StatusOK)
		suite.Assert().Contains(generator.prompts[len(generator.prompts)-1], "2024-04-30")
	})

	suite.Run("Invalid range", func() {
		suite.do(http.MethodPost, "/v1/insights/summary", map[string]any{"fromDate": "2024-04-01", "untilDate": "2024-03-01"}, nil, http.StatusBadRequest)
	})

	suite.Run("Upstream failure", func() {
		generator.err = errors.New("quota exceeded")

		var response v1.TextResponse
		suite.do(http.MethodPost, "/v1/insights/summary", nil, &response, http.StatusBadGateway)
		suite.Assert().Contains(*response.Error, "quota exceeded")
	})
}

func (suite *TestSuiteStandard) TestInsightsReminder() {
	generator := &fakeGenerator{text: "Dear customer, please remember the check."}
	suite.withNarrator(generator)

	check := suite.createTransaction(map[string]any{
		"accountName":  models.AccountChecksPortfolio,
		"subset":       models.SubsetCheckDetails,
		"dueDate":      "2024-03-20",
		"counterparty": "Drawer Inc.",
		"number":       "0042",
		"amount":       500,
	}).Data

	var response v1.TextResponse
	suite.do(http.MethodPost, fmt.Sprintf("/v1/insights/reminders/%s", check.ID), nil, &response, http.StatusOK)
	suite.Assert().Equal(generator.text, response.Data.Text)
	suite.Require().Len(generator.prompts, 1)
	suite.Assert().Contains(generator.prompts[0], "Drawer Inc.")
	suite.Assert().Contains(generator.prompts[0], "2024-03-20")

	suite.do(http.MethodPost, fmt.Sprintf("/v1/insights/reminders/%s", uuid.New()), nil, nil, http.StatusNotFound)
	suite.do(http.MethodPost, "/v1/insights/reminders/0042", nil, nil, http.StatusBadRequest)
}
