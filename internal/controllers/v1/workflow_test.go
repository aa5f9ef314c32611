package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	v1 "github.com/rpmartinrodriguez/Reporte-Financiero/internal/controllers/v1"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/ledger"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
)

// check creates a check in the portfolio.
func (suite *TestSuiteStandard) check(amount float64) v1.Transaction {
	return *suite.createTransaction(map[string]any{
		"accountName":  models.AccountChecksPortfolio,
		"subset":       models.SubsetCheckDetails,
		"date":         "2024-03-01",
		"dueDate":      "2024-03-22",
		"counterparty": "Drawer Inc.",
		"number":       "0042",
		"bank":         "Banco Nación",
		"status":       models.StatusInPortfolio,
		"amount":       amount,
	}).Data
}

func (suite *TestSuiteStandard) TestWorkflowCheckLifecycle() {
	check := suite.check(1000)

	var deposited v1.TransactionResponse
	suite.do(http.MethodPost, fmt.Sprintf("/v1/checks/%s/deposit", check.ID), map[string]any{"date": "2024-03-16"}, &deposited, http.StatusOK)

	suite.Assert().NotEqual(check.ID, deposited.Data.ID, "A moved transaction is a new transaction")
	suite.Assert().Equal(models.StatusDeposited, deposited.Data.Status)
	suite.Assert().Equal(types.NewDate(2024, 3, 16), deposited.Data.Date)
	suite.Assert().Equal(check.Number, deposited.Data.Number)
	suite.assertBalance(models.AccountChecksPortfolio, 0)
	suite.assertBalance(models.AccountChecksPending, 1000)

	// The original check is gone
	suite.do(http.MethodGet, fmt.Sprintf("/v1/transactions/%s", check.ID), nil, nil, http.StatusNotFound)

	var collected v1.TransactionResponse
	suite.do(http.MethodPost, fmt.Sprintf("/v1/checks/%s/collect", deposited.Data.ID), nil, &collected, http.StatusOK)

	suite.Assert().Equal(models.SubsetBankMovements, collected.Data.Subset)
	suite.Assert().Equal(models.StatusCollected, collected.Data.Status)
	suite.Assert().Equal(types.NewDate(2024, 3, 22), collected.Data.Date, "Collection defaults to the due date of the check")
	suite.Assert().True(collected.Data.DueDate.IsZero())
	suite.Assert().Equal("Check collected Drawer Inc. #0042", collected.Data.Description)
	suite.assertBalance(models.AccountChecksPending, 0)
	suite.assertBalance(models.AccountBank, 1000)

	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestWorkflowRejectCheck() {
	check := suite.check(400)

	var deposited v1.TransactionResponse
	suite.do(http.MethodPost, fmt.Sprintf("/v1/checks/%s/deposit", check.ID), nil, &deposited, http.StatusOK)
	suite.Assert().Equal(check.Date, deposited.Data.Date, "Without a date, the deposit keeps the date of the check")

	var rejected v1.TransactionResponse
	suite.do(http.MethodPost, fmt.Sprintf("/v1/checks/%s/reject", deposited.Data.ID), nil, &rejected, http.StatusOK)

	suite.Assert().Equal(models.StatusRejected, rejected.Data.Status)
	suite.Assert().Equal(models.SubsetCheckDetails, rejected.Data.Subset)
	suite.assertBalance(models.AccountChecksPortfolio, 400)
	suite.assertBalance(models.AccountChecksPending, 0)

	suite.Run("Check is not deposited", func() {
		var response v1.TransactionResponse
		suite.do(http.MethodPost, fmt.Sprintf("/v1/checks/%s/collect", rejected.Data.ID), nil, &response, http.StatusBadRequest)
		suite.Assert().Contains(*response.Error, ledger.ErrWrongAccount.Error())
	})

	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestWorkflowSellCheck() {
	suite.Run("With discount", func() {
		check := suite.check(1000)

		var response v1.TransactionListResponse
		suite.do(http.MethodPost, fmt.Sprintf("/v1/checks/%s/sell", check.ID), map[string]any{"discount": "35.5"}, &response, http.StatusOK)

		suite.Require().Len(response.Data, 2)
		suite.Assert().Equal(models.StatusSold, response.Data[0].Status)
		suite.Assert().True(decimal.NewFromInt(1000).Equal(response.Data[0].Amount))
		suite.Assert().True(decimal.NewFromFloat(-35.5).Equal(response.Data[1].Amount))
		suite.Assert().Equal(today, response.Data[0].Date, "The sale defaults to today")
		suite.assertBalance(models.AccountBank, 964.5)
		suite.assertBalance(models.AccountChecksPortfolio, 0)
	})

	suite.Run("Without discount", func() {
		check := suite.check(200)

		var response v1.TransactionListResponse
		suite.do(http.MethodPost, fmt.Sprintf("/v1/checks/%s/sell", check.ID), map[string]any{"discount": 0, "date": "2024-03-18"}, &response, http.StatusOK)

		suite.Require().Len(response.Data, 1)
		suite.Assert().Equal(types.NewDate(2024, 3, 18), response.Data[0].Date)
		suite.assertBalance(models.AccountBank, 1164.5)
	})

	suite.Run("Discount missing", func() {
		check := suite.check(200)
		suite.do(http.MethodPost, fmt.Sprintf("/v1/checks/%s/sell", check.ID), map[string]any{"date": "2024-03-18"}, nil, http.StatusBadRequest)
		suite.do(http.MethodPost, fmt.Sprintf("/v1/checks/%s/sell", check.ID), nil, nil, http.StatusBadRequest)
	})

	suite.Run("Discount exceeds amount", func() {
		check := suite.check(100)

		var response v1.TransactionListResponse
		suite.do(http.MethodPost, fmt.Sprintf("/v1/checks/%s/sell", check.ID), map[string]any{"discount": 101}, &response, http.StatusBadRequest)
		suite.Assert().Equal(ledger.ErrDiscountInvalid.Error(), *response.Error)
	})

	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestWorkflowSupplierInvoice() {
	invoice := suite.createTransaction(map[string]any{
		"accountName":  models.AccountPayables,
		"subset":       models.SubsetSupplierInvoices,
		"date":         "2024-03-02",
		"dueDate":      "2024-03-25",
		"counterparty": "Supplies SA",
		"number":       "F-77",
		"status":       models.StatusPending,
		"amount":       800,
	}).Data
	path := fmt.Sprintf("/v1/supplier-invoices/%s/pay", invoice.ID)

	var check v1.TransactionResponse
	suite.do(http.MethodPost, path, map[string]any{
		"number":  "00012345",
		"bank":    "Banco Nación",
		"dueDate": "2024-04-10",
	}, &check, http.StatusOK)

	suite.Assert().Equal(models.SubsetIssuedChecks, check.Data.Subset)
	suite.Assert().Equal(models.StatusIssued, check.Data.Status)
	suite.Assert().Equal("Supplies SA", check.Data.Counterparty)
	suite.Assert().Equal(today, check.Data.Date)
	suite.Assert().Equal(types.NewDate(2024, 4, 10), check.Data.DueDate)
	suite.assertBalance(models.AccountPayables, 0)
	suite.assertBalance(models.AccountChecksPayable, 800)

	var settled v1.TransactionResponse
	suite.do(http.MethodGet, fmt.Sprintf("/v1/transactions/%s", invoice.ID), nil, &settled, http.StatusOK)
	suite.Assert().Equal(models.StatusPaid, settled.Data.Status)
	suite.Assert().True(settled.Data.Amount.IsZero())

	suite.Run("Paid twice", func() {
		suite.do(http.MethodPost, path, nil, nil, http.StatusConflict)
	})

	var paid v1.TransactionResponse
	suite.do(http.MethodPost, fmt.Sprintf("/v1/issued-checks/%s/pay", check.Data.ID), map[string]any{"date": "2024-04-10"}, &paid, http.StatusOK)

	suite.Assert().Equal(models.SubsetBankMovements, paid.Data.Subset)
	suite.Assert().Equal(models.StatusPaid, paid.Data.Status)
	suite.Assert().True(decimal.NewFromInt(-800).Equal(paid.Data.Amount), paid.Data.Amount.String())
	suite.assertBalance(models.AccountChecksPayable, 0)
	suite.assertBalance(models.AccountBank, -800)

	suite.Run("Not an issued check", func() {
		suite.do(http.MethodPost, fmt.Sprintf("/v1/issued-checks/%s/pay", paid.Data.ID), nil, nil, http.StatusBadRequest)
	})

	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestWorkflowCollectReceivable() {
	invoice := suite.createTransaction(map[string]any{
		"accountName":  models.AccountReceivables,
		"subset":       models.SubsetInvoices,
		"dueDate":      "2024-03-30",
		"counterparty": "Customer SRL",
		"number":       "A-0001",
		"status":       models.StatusPending,
		"gross":        1000,
		"tax":          210,
	}).Data
	path := fmt.Sprintf("/v1/receivables/%s/collect", invoice.ID)

	var movement v1.TransactionResponse
	suite.do(http.MethodPost, path, map[string]any{"date": "2024-03-20"}, &movement, http.StatusOK)

	suite.Assert().Equal(models.StatusCollected, movement.Data.Status)
	suite.Assert().Equal(types.NewDate(2024, 3, 20), movement.Data.Date)
	suite.Assert().True(decimal.NewFromInt(1210).Equal(movement.Data.Amount))
	suite.assertBalance(models.AccountReceivables, 0)
	suite.assertBalance(models.AccountBank, 1210)

	var response v1.TransactionResponse
	suite.do(http.MethodPost, path, nil, &response, http.StatusConflict)
	suite.Assert().Equal(ledger.ErrWrongStatus.Error(), *response.Error)

	suite.Run("Zero amount", func() {
		empty := suite.createTransaction(map[string]any{
			"accountName": models.AccountReceivables,
			"subset":      models.SubsetInvoices,
			"amount":      0,
		}).Data

		var response v1.TransactionResponse
		suite.do(http.MethodPost, fmt.Sprintf("/v1/receivables/%s/collect", empty.ID), nil, &response, http.StatusBadRequest)
		suite.Assert().Equal(ledger.ErrAmountNotPositive.Error(), *response.Error)
	})

	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestWorkflowCashMovement() {
	var response v1.TransactionListResponse
	suite.do(http.MethodPost, "/v1/cash-movements", map[string]any{
		"date":        "2024-03-15",
		"description": "Daily sales",
		"registers":   map[string]any{"b": "20.25", "a": 100},
	}, &response, http.StatusCreated)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("a", response.Data[0].Register)
	suite.Assert().Equal("b", response.Data[1].Register)
	suite.Assert().Equal("Daily sales", response.Data[1].Description)
	suite.assertBalance(models.AccountCash, 120.25)

	suite.Run("Only zero amounts", func() {
		var response v1.TransactionListResponse
		suite.do(http.MethodPost, "/v1/cash-movements", map[string]any{"registers": map[string]any{"a": 0}}, &response, http.StatusBadRequest)
		suite.Assert().Equal(ledger.ErrCashMovementEmpty.Error(), *response.Error)
	})

	suite.Run("No registers", func() {
		suite.do(http.MethodPost, "/v1/cash-movements", map[string]any{"description": "Nothing"}, nil, http.StatusBadRequest)
	})

	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestWorkflowErrors() {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Invalid ID", "/v1/checks/abc/deposit", http.StatusBadRequest},
		{"Unknown check", fmt.Sprintf("/v1/checks/%s/deposit", uuid.New()), http.StatusNotFound},
		{"Unknown issued check", fmt.Sprintf("/v1/issued-checks/%s/pay", uuid.New()), http.StatusNotFound},
		{"Unknown invoice", fmt.Sprintf("/v1/receivables/%s/collect", uuid.New()), http.StatusNotFound},
		{"Unknown supplier invoice", fmt.Sprintf("/v1/supplier-invoices/%s/pay", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.do(http.MethodPost, tt.path, nil, nil, tt.status)
		})
	}

	suite.Run("Wrong subset", func() {
		movement := suite.createTransaction(map[string]any{
			"accountName": models.AccountChecksPortfolio,
			"subset":      models.SubsetBankMovements,
			"amount":      10,
		}).Data

		var response v1.TransactionResponse
		suite.do(http.MethodPost, fmt.Sprintf("/v1/checks/%s/deposit", movement.ID), nil, &response, http.StatusBadRequest)
		suite.Assert().Contains(*response.Error, ledger.ErrWrongSubset.Error())
	})

	suite.Run("Broken date", func() {
		check := suite.check(10)
		suite.do(http.MethodPost, fmt.Sprintf("/v1/checks/%s/deposit", check.ID), map[string]any{"date": "tomorrow"}, nil, http.StatusBadRequest)
	})
}
