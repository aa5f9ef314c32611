package v1_test

import (
	"errors"
	"net/http"

	v1 "github.com/rpmartinrodriguez/Reporte-Financiero/internal/controllers/v1"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/notify"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
)

// seedNotifications creates an overdue receivable, a supplier invoice due in
// three days, a check due in five days and a rent due in ten days.
func (suite *TestSuiteStandard) seedNotifications() {
	suite.createTransaction(map[string]any{
		"accountName":  models.AccountReceivables,
		"subset":       models.SubsetInvoices,
		"dueDate":      "2024-03-10",
		"counterparty": "Customer SRL",
		"status":       models.StatusPending,
		"amount":       50,
	})

	suite.seedProjection()

	// Collected items are not outstanding
	collected := suite.createTransaction(map[string]any{
		"accountName": models.AccountReceivables,
		"subset":      models.SubsetInvoices,
		"dueDate":     "2024-03-16",
		"amount":      70,
	}).Data
	suite.do(http.MethodPost, "/v1/receivables/"+collected.ID.String()+"/collect", nil, nil, http.StatusOK)
}

func (suite *TestSuiteStandard) TestNotifications() {
	suite.seedNotifications()

	tests := []struct {
		name  string
		query string
		dates []types.Date
	}{
		{"Default horizon", "", []types.Date{types.NewDate(2024, 3, 10), types.NewDate(2024, 3, 18), types.NewDate(2024, 3, 20)}},
		{"Only overdue", "?days=0", []types.Date{types.NewDate(2024, 3, 10)}},
		{"Longer horizon", "?days=10", []types.Date{types.NewDate(2024, 3, 10), types.NewDate(2024, 3, 18), types.NewDate(2024, 3, 20), types.NewDate(2024, 3, 25)}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			var response v1.NotificationListResponse
			suite.do(http.MethodGet, "/v1/notifications"+tt.query, nil, &response, http.StatusOK)

			dates := make([]types.Date, 0, len(response.Data))
			for _, n := range response.Data {
				dates = append(dates, n.Date)
			}
			suite.Assert().Equal(tt.dates, dates)
		})
	}

	var response v1.NotificationListResponse
	suite.do(http.MethodGet, "/v1/notifications", nil, &response, http.StatusOK)
	suite.Require().Len(response.Data, 3)
	suite.Assert().True(response.Data[0].Overdue)
	suite.Assert().Equal(-5, response.Data[0].DaysLeft)
	suite.Assert().False(response.Data[1].Overdue)
	suite.Assert().Equal(3, response.Data[1].DaysLeft)
	suite.Assert().True(response.Data[1].Amount.IsNegative(), "Supplier invoices are outflows")

	suite.Run("Negative horizon", func() {
		suite.do(http.MethodGet, "/v1/notifications?days=-1", nil, nil, http.StatusBadRequest)
	})

	suite.Run("Broken horizon", func() {
		suite.do(http.MethodGet, "/v1/notifications?days=soon", nil, nil, http.StatusBadRequest)
	})
}

func (suite *TestSuiteStandard) TestDigestNotConfigured() {
	var response v1.DigestResponse
	suite.do(http.MethodPost, "/v1/notifications/digest", nil, &response, http.StatusServiceUnavailable)
	suite.Assert().Equal(notify.ErrNotConfigured.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestDigest() {
	sender := &fakeSender{}
	suite.withMailer(sender)

	suite.Run("Nothing to send", func() {
		var response v1.DigestResponse
		suite.do(http.MethodPost, "/v1/notifications/digest", nil, &response, http.StatusOK)
		suite.Assert().Equal(0, response.Data.Sent)
		suite.Assert().Empty(sender.messages)
	})

	suite.seedNotifications()

	var response v1.DigestResponse
	suite.do(http.MethodPost, "/v1/notifications/digest", nil, &response, http.StatusOK)
	suite.Assert().Equal(3, response.Data.Sent)
	suite.Require().Len(sender.messages, 1)
	suite.Assert().Equal([]string{"3 upcoming items, 1 overdue (2024-03-15)"}, sender.messages[0].GetHeader("Subject"))
	suite.Assert().Equal([]string{"owner@example.com"}, sender.messages[0].GetHeader("To"))

	suite.Run("Delivery fails", func() {
		sender.err = errors.New("connection refused")

		var response v1.DigestResponse
		suite.do(http.MethodPost, "/v1/notifications/digest", nil, &response, http.StatusBadGateway)
		suite.Assert().Contains(*response.Error, "connection refused")
	})
}
