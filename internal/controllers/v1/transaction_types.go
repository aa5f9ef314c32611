package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	ez_uuid "github.com/rpmartinrodriguez/Reporte-Financiero/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable contains the fields of a transaction that can be set
// through the API.
type TransactionEditable struct {
	AccountID    uuid.UUID       `json:"accountId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                               // ID of the account
	Subset       models.Subset   `json:"subset" example:"check-details"`                                                         // The type of the transaction
	Date         types.Date      `json:"date" example:"2024-03-01"`                                                              // Date of the transaction
	DueDate      types.Date      `json:"dueDate" example:"2024-03-20"`                                                           // Due date of invoices and collection date of checks
	Description  string          `json:"description" example:"Check from customer" default:""`                                   // A description
	Counterparty string          `json:"counterparty" example:"Drawer Inc." default:""`                                          // Customer, drawer, supplier or payee
	Number       string          `json:"number" example:"0042" default:""`                                                       // Number of the check or invoice
	Bank         string          `json:"bank" example:"Banco Nación" default:""`                                                 // Bank of the check
	Register     string          `json:"register" example:"main" default:""`                                                     // Cash register, only for cash movements
	Status       models.Status   `json:"status" example:"in-portfolio" default:""`                                               // Status of the check or invoice
	Gross        decimal.Decimal `json:"gross" example:"1000" default:"0"`                                                       // Net amount of a receivable invoice
	Tax          decimal.Decimal `json:"tax" example:"210" default:"0"`                                                          // Tax of a receivable invoice
	Amount       decimal.Decimal `json:"amount" example:"1210" minimum:"-999999999999.99999999" maximum:"999999999999.99999999"` // Signed contribution to the account balance. For receivable invoices with a gross amount, it is gross + tax
}

// apply sets the fields listed in fields on the transaction.
func (editable TransactionEditable) apply(t *models.Transaction, fields []any) {
	for _, field := range fields {
		switch field {
		case "AccountID":
			t.AccountID = editable.AccountID
		case "Subset":
			t.Subset = editable.Subset
		case "Date":
			t.Date = editable.Date
		case "DueDate":
			t.DueDate = editable.DueDate
		case "Description":
			t.Description = editable.Description
		case "Counterparty":
			t.Counterparty = editable.Counterparty
		case "Number":
			t.Number = editable.Number
		case "Bank":
			t.Bank = editable.Bank
		case "Register":
			t.Register = editable.Register
		case "Status":
			t.Status = editable.Status
		case "Gross":
			t.Gross = editable.Gross
		case "Tax":
			t.Tax = editable.Tax
		case "Amount":
			t.Amount = editable.Amount
		}
	}
}

// TransactionCreate is the body to create a transaction. The account is
// either referenced by its ID or by its name, in which case it is created
// if it does not exist.
type TransactionCreate struct {
	AccountID    ez_uuid.UUID       `json:"accountId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the account
	AccountName  string             `json:"accountName" example:"Checks in portfolio"`                // Name of the account, used when accountId is not set
	AccountKind  models.AccountKind `json:"accountKind" example:"asset"`                              // Kind of the account, used when it is created by name. Defaults to the kind of the known workflow accounts
	Subset       models.Subset      `json:"subset" binding:"required" example:"check-details"`
	Date         types.Date         `json:"date" example:"2024-03-01"`
	DueDate      types.Date         `json:"dueDate" example:"2024-03-20"`
	Description  string             `json:"description" example:"Check from customer"`
	Counterparty string             `json:"counterparty" example:"Drawer Inc."`
	Number       string             `json:"number" example:"0042"`
	Bank         string             `json:"bank" example:"Banco Nación"`
	Register     string             `json:"register" example:"main"`
	Status       models.Status      `json:"status" example:"in-portfolio"`
	Gross        *decimal.Decimal   `json:"gross" example:"1000"`
	Tax          *decimal.Decimal   `json:"tax" example:"210"`
	Amount       *decimal.Decimal   `json:"amount" example:"1210"` // Required unless a receivable invoice has a gross amount
}

func (create TransactionCreate) model() (models.Transaction, error) {
	t := models.Transaction{
		Subset:       create.Subset,
		Date:         create.Date,
		DueDate:      create.DueDate,
		Description:  create.Description,
		Counterparty: create.Counterparty,
		Number:       create.Number,
		Bank:         create.Bank,
		Register:     create.Register,
		Status:       create.Status,
	}

	if create.Gross != nil {
		t.Gross = *create.Gross
	}

	if create.Tax != nil {
		t.Tax = *create.Tax
	}

	if create.Amount == nil {
		if create.Subset != models.SubsetInvoices || create.Gross == nil {
			return models.Transaction{}, errAmountMissing
		}
		t.Amount = t.Gross.Add(t.Tax)
	} else {
		t.Amount = *create.Amount
	}

	return t, nil
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Account string `json:"account" example:"https://example.com/api/v1/accounts/3b1ea324-d438-4419-882a-2fc91d71772f"`  // The account of the transaction
}

// Transaction is the API v1 representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			AccountID:    model.AccountID,
			Subset:       model.Subset,
			Date:         model.Date,
			DueDate:      model.DueDate,
			Description:  model.Description,
			Counterparty: model.Counterparty,
			Number:       model.Number,
			Bank:         model.Bank,
			Register:     model.Register,
			Status:       model.Status,
			Gross:        model.Gross,
			Tax:          model.Tax,
			Amount:       model.Amount,
		},
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}
}

func newTransactions(c *gin.Context, models []models.Transaction) []Transaction {
	data := make([]Transaction, 0, len(models))
	for _, t := range models {
		data = append(data, newTransaction(c, t))
	}
	return data
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination,omitempty"`                                          // Pagination information
}

type TransactionQueryFilter struct {
	AccountID    ez_uuid.UUID  `form:"account" filterField:"false"`   // ID of the account
	Subset       models.Subset `form:"subset"`                        // Type of the transaction
	Status       models.Status `form:"status"`                        // Status of the check or invoice
	Counterparty string        `form:"counterparty"`                  // Exact counterparty
	Number       string        `form:"number"`                        // Exact number of the check or invoice
	FromDate     types.Date    `form:"fromDate" filterField:"false"`  // Transactions at and after this date
	UntilDate    types.Date    `form:"untilDate" filterField:"false"` // Transactions before and at this date
	Match        string        `form:"match" filterField:"false"`     // Glob pattern for the description, case insensitive
	Offset       uint          `form:"offset" filterField:"false"`    // The offset of the first Transaction returned. Defaults to 0.
	Limit        int           `form:"limit" filterField:"false"`     // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Subset:       f.Subset,
		Status:       f.Status,
		Counterparty: f.Counterparty,
		Number:       f.Number,
	}
}
