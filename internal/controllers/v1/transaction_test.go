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

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	invoice := suite.createTransaction(map[string]any{
		"accountName":  models.AccountReceivables,
		"subset":       models.SubsetInvoices,
		"date":         "2024-03-01",
		"dueDate":      "2024-03-31",
		"counterparty": "Customer SRL",
		"number":       "A-0001",
		"status":       models.StatusPending,
		"gross":        "1000",
		"tax":          "210",
	})

	suite.Assert().True(decimal.NewFromInt(1210).Equal(invoice.Data.Amount), invoice.Data.Amount.String())
	suite.Assert().Equal(types.NewDate(2024, 3, 31), invoice.Data.DueDate)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions/%s", invoice.Data.ID), invoice.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/accounts/%s", invoice.Data.AccountID), invoice.Data.Links.Account)
	suite.assertBalance(models.AccountReceivables, 1210)

	suite.Run("By account ID", func() {
		bank := suite.account(models.AccountBank)
		created := suite.createTransaction(map[string]any{
			"accountId": bank.ID.String(),
			"subset":    models.SubsetBankMovements,
			"amount":    -150.5,
		})

		suite.Assert().Equal(bank.ID, created.Data.AccountID)
		suite.assertBalance(models.AccountBank, -150.5)
	})

	suite.Run("Custom account by name", func() {
		created := suite.createTransaction(map[string]any{
			"accountName": "Savings",
			"accountKind": models.KindAsset,
			"subset":      models.SubsetBankMovements,
			"amount":      20,
		})

		var response v1.AccountResponse
		suite.do(http.MethodGet, fmt.Sprintf("/v1/accounts/%s", created.Data.AccountID), nil, &response, http.StatusOK)
		suite.Assert().Equal("Savings", response.Data.Name)
		suite.Assert().Equal(models.KindAsset, response.Data.Kind)
	})

	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"Empty body", map[string]any{}, http.StatusBadRequest},
		{"No subset", map[string]any{"accountName": models.AccountBank, "amount": 10}, http.StatusBadRequest},
		{"No account", map[string]any{"subset": models.SubsetBankMovements, "amount": 10}, http.StatusBadRequest},
		{"No amount", map[string]any{"accountName": models.AccountBank, "subset": models.SubsetBankMovements}, http.StatusBadRequest},
		{"Gross outside invoices", map[string]any{"accountName": models.AccountBank, "subset": models.SubsetBankMovements, "gross": 10}, http.StatusBadRequest},
		{"Invalid subset", map[string]any{"accountName": models.AccountBank, "subset": "loans", "amount": 10}, http.StatusBadRequest},
		{"Invalid status", map[string]any{"accountName": models.AccountBank, "subset": models.SubsetBankMovements, "status": "lost", "amount": 10}, http.StatusBadRequest},
		{"Unknown account ID", map[string]any{"accountId": uuid.New().String(), "subset": models.SubsetBankMovements, "amount": 10}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			response := suite.createTransaction(tt.body, tt.status)
			suite.Assert().NotNil(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	suite.createTransaction(map[string]any{
		"accountName":  models.AccountChecksPortfolio,
		"subset":       models.SubsetCheckDetails,
		"date":         "2024-03-01",
		"dueDate":      "2024-03-20",
		"description":  "Check for the March order",
		"counterparty": "Drawer Inc.",
		"number":       "0042",
		"status":       models.StatusInPortfolio,
		"amount":       500,
	})

	suite.createTransaction(map[string]any{
		"accountName":  models.AccountChecksPortfolio,
		"subset":       models.SubsetCheckDetails,
		"date":         "2024-03-05",
		"dueDate":      "2024-04-05",
		"description":  "Check for the April order",
		"counterparty": "Other Drawer",
		"number":       "0043",
		"status":       models.StatusInPortfolio,
		"amount":       700,
	})

	suite.createTransaction(map[string]any{
		"accountName": models.AccountBank,
		"subset":      models.SubsetBankMovements,
		"date":        "2024-03-10",
		"description": "Rent for March",
		"amount":      -300,
	})

	portfolio := suite.account(models.AccountChecksPortfolio)

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Account", fmt.Sprintf("account=%s", portfolio.ID), 2},
		{"Subset", "subset=bank-movements", 1},
		{"Status", "status=in-portfolio", 2},
		{"Counterparty", "counterparty=Drawer%20Inc.", 1},
		{"Number", "number=0043", 1},
		{"From date", "fromDate=2024-03-05", 2},
		{"Until date", "untilDate=2024-03-04", 1},
		{"Date range", "fromDate=2024-03-02&untilDate=2024-03-09", 1},
		{"Match", "match=*ORDER*", 2},
		{"Match prefix", "match=rent*", 1},
		{"Match none", "match=salary", 0},
		{"Combined", "subset=check-details&match=*april*", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			var response v1.TransactionListResponse
			suite.do(http.MethodGet, fmt.Sprintf("/v1/transactions?%s", tt.query), nil, &response, http.StatusOK)
			suite.Assert().Len(response.Data, tt.len)
			suite.Assert().Equal(int64(tt.len), response.Pagination.Total)
		})
	}

	suite.Run("Newest first", func() {
		var response v1.TransactionListResponse
		suite.do(http.MethodGet, "/v1/transactions", nil, &response, http.StatusOK)
		suite.Require().Len(response.Data, 3)
		suite.Assert().Equal(types.NewDate(2024, 3, 10), response.Data[0].Date)
		suite.Assert().Equal(types.NewDate(2024, 3, 1), response.Data[2].Date)
	})

	suite.Run("Invalid account ID", func() {
		suite.do(http.MethodGet, "/v1/transactions?account=nope", nil, nil, http.StatusBadRequest)
	})
}

func (suite *TestSuiteStandard) TestTransactionsPagination() {
	for i := 1; i <= 5; i++ {
		suite.createTransaction(map[string]any{
			"accountName": models.AccountBank,
			"subset":      models.SubsetBankMovements,
			"date":        fmt.Sprintf("2024-03-0%d", i),
			"amount":      i,
		})
	}

	tests := []struct {
		name       string
		query      string
		count      int
		offset     uint
		limit      int
		firstDay   int
		hasResults bool
	}{
		{"Default", "", 5, 0, 50, 5, true},
		{"Limit", "limit=2", 2, 0, 2, 5, true},
		{"Offset", "offset=3", 2, 3, 50, 2, true},
		{"Offset and limit", "offset=1&limit=2", 2, 1, 2, 4, true},
		{"Offset beyond total", "offset=10", 0, 10, 50, 0, false},
		{"Negative limit returns all", "limit=-1", 5, 0, -1, 5, true},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			var response v1.TransactionListResponse
			suite.do(http.MethodGet, fmt.Sprintf("/v1/transactions?%s", tt.query), nil, &response, http.StatusOK)

			suite.Assert().Len(response.Data, tt.count)
			suite.Assert().Equal(tt.count, response.Pagination.Count)
			suite.Assert().Equal(int64(5), response.Pagination.Total)
			suite.Assert().Equal(tt.offset, response.Pagination.Offset)
			suite.Assert().Equal(tt.limit, response.Pagination.Limit)

			if tt.hasResults {
				suite.Assert().Equal(types.NewDate(2024, 3, tt.firstDay), response.Data[0].Date)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGet() {
	created := suite.createTransaction(map[string]any{
		"accountName": models.AccountBank,
		"subset":      models.SubsetBankMovements,
		"amount":      10,
	})

	var response v1.TransactionResponse
	suite.do(http.MethodGet, fmt.Sprintf("/v1/transactions/%s", created.Data.ID), nil, &response, http.StatusOK)
	suite.Assert().Equal(created.Data.ID, response.Data.ID)

	suite.do(http.MethodGet, "/v1/transactions/broken", nil, nil, http.StatusBadRequest)
	suite.do(http.MethodGet, fmt.Sprintf("/v1/transactions/%s", uuid.New()), nil, &response, http.StatusNotFound)
	suite.Assert().Contains(*response.Error, "there is no transaction")
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	created := suite.createTransaction(map[string]any{
		"accountName": models.AccountBank,
		"subset":      models.SubsetBankMovements,
		"description": "Deposit",
		"amount":      100,
	})
	path := fmt.Sprintf("/v1/transactions/%s", created.Data.ID)

	suite.Run("Amount", func() {
		var response v1.TransactionResponse
		suite.do(http.MethodPatch, path, map[string]any{"amount": 250}, &response, http.StatusOK)

		suite.Assert().True(decimal.NewFromInt(250).Equal(response.Data.Amount))
		suite.Assert().Equal("Deposit", response.Data.Description, "Fields that are not sent must not change")
		suite.assertBalance(models.AccountBank, 250)
	})

	suite.Run("Description only", func() {
		var response v1.TransactionResponse
		suite.do(http.MethodPatch, path, map[string]any{"description": "Cash deposit"}, &response, http.StatusOK)

		suite.Assert().Equal("Cash deposit", response.Data.Description)
		suite.assertBalance(models.AccountBank, 250)
	})

	suite.Run("Account change", func() {
		cash := suite.account(models.AccountCash)

		var response v1.TransactionResponse
		suite.do(http.MethodPatch, path, map[string]any{"accountId": cash.ID.String()}, &response, http.StatusBadRequest)
		suite.Assert().Equal(ledger.ErrAccountChange.Error(), *response.Error)
		suite.assertBalance(models.AccountBank, 250)
	})

	suite.Run("Invalid subset", func() {
		suite.do(http.MethodPatch, path, map[string]any{"subset": "loans"}, nil, http.StatusBadRequest)
	})

	suite.Run("Broken body", func() {
		suite.do(http.MethodPatch, path, `{"amount": 3`, nil, http.StatusBadRequest)
	})

	suite.Run("Not found", func() {
		suite.do(http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", uuid.New()), map[string]any{"amount": 1}, nil, http.StatusNotFound)
	})

	suite.Run("Invalid ID", func() {
		suite.do(http.MethodPatch, "/v1/transactions/1", map[string]any{"amount": 1}, nil, http.StatusBadRequest)
	})

	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	created := suite.createTransaction(map[string]any{
		"accountName": models.AccountBank,
		"subset":      models.SubsetBankMovements,
		"amount":      100,
	})
	suite.createTransaction(map[string]any{
		"accountName": models.AccountBank,
		"subset":      models.SubsetBankMovements,
		"amount":      40,
	})

	path := fmt.Sprintf("/v1/transactions/%s", created.Data.ID)
	suite.do(http.MethodDelete, path, nil, nil, http.StatusNoContent)
	suite.assertBalance(models.AccountBank, 40)

	suite.do(http.MethodGet, path, nil, nil, http.StatusNotFound)
	suite.do(http.MethodDelete, path, nil, nil, http.StatusNotFound)
	suite.do(http.MethodDelete, "/v1/transactions/not-an-id", nil, nil, http.StatusBadRequest)

	suite.assertConsistent()
}

func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	suite.CloseDB()

	var response v1.TransactionListResponse
	suite.do(http.MethodGet, "/v1/transactions", nil, &response, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), *response.Error)
}
