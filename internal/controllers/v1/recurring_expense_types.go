package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
)

// RecurringExpenseEditable contains the fields of a recurring expense that
// can be updated.
type RecurringExpenseEditable struct {
	Description string          `json:"description" example:"Rent"`   // Description of the expense
	Amount      decimal.Decimal `json:"amount" example:"1500"`        // Monthly amount, must be positive
	DueDay      int             `json:"dueDay" example:"10"`          // Day of the month the expense is due. In shorter months, the last day of the month is used
	StartMonth  types.Month     `json:"startMonth" example:"2024-01"` // First month with an occurrence
}

func (editable RecurringExpenseEditable) apply(r *models.RecurringExpense, fields []any) {
	for _, field := range fields {
		switch field {
		case "Description":
			r.Description = editable.Description
		case "Amount":
			r.Amount = editable.Amount
		case "DueDay":
			r.DueDay = editable.DueDay
		case "StartMonth":
			r.StartMonth = editable.StartMonth
		}
	}
}

// RecurringExpenseCreate is the body to create a recurring expense.
type RecurringExpenseCreate struct {
	Description string           `json:"description" binding:"required" example:"Rent"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" example:"1500"`
	DueDay      int              `json:"dueDay" binding:"required,min=1,max=31" example:"10"`
	StartMonth  types.Month      `json:"startMonth" example:"2024-01"` // Defaults to the current month
}

func (create RecurringExpenseCreate) model() models.RecurringExpense {
	return models.RecurringExpense{
		Description: create.Description,
		Amount:      *create.Amount,
		DueDay:      create.DueDay,
		StartMonth:  create.StartMonth,
	}
}

type RecurringExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/recurring-expenses/0b5e5a2c-8d4a-4e0b-9a43-3a8e8b9c7e21"`              // The recurring expense itself
	Payments string `json:"payments" example:"https://example.com/api/v1/recurring-expenses/0b5e5a2c-8d4a-4e0b-9a43-3a8e8b9c7e21/payments"` // Payments of the recurring expense
}

// RecurringExpense is the API v1 representation of a RecurringExpense.
type RecurringExpense struct {
	models.DefaultModel
	RecurringExpenseEditable
	Links RecurringExpenseLinks `json:"links"`
}

func newRecurringExpense(c *gin.Context, model models.RecurringExpense) RecurringExpense {
	url := c.GetString(string(models.DBContextURL))

	return RecurringExpense{
		DefaultModel: model.DefaultModel,
		RecurringExpenseEditable: RecurringExpenseEditable{
			Description: model.Description,
			Amount:      model.Amount,
			DueDay:      model.DueDay,
			StartMonth:  model.StartMonth,
		},
		Links: RecurringExpenseLinks{
			Self:     fmt.Sprintf("%s/v1/recurring-expenses/%s", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/recurring-expenses/%s/payments", url, model.ID),
		},
	}
}

type RecurringExpenseResponse struct {
	Data  *RecurringExpense `json:"data"`                                                          // Data for the recurring expense
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RecurringExpenseListResponse struct {
	Data  []RecurringExpense `json:"data"`                                                          // List of recurring expenses
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ExpensePaymentCreate is the body to pay a recurring expense for a month.
type ExpensePaymentCreate struct {
	Month  types.Month          `json:"month" example:"2024-03"`                                   // The month that is paid
	Method models.PaymentMethod `json:"method" binding:"omitempty,oneof=bank cash" example:"bank"` // Either 'bank' or 'cash'. Defaults to 'bank'
	Date   types.Date           `json:"date" example:"2024-03-10"`                                 // Date of the payment. Defaults to the due date in the month
}

// ExpensePayment is a payment of a recurring expense together with the
// movement that realized it.
type ExpensePayment struct {
	models.ExpensePayment
	Transaction *Transaction `json:"transaction,omitempty"` // The bank or cash movement of the payment
}

type ExpensePaymentResponse struct {
	Data  *ExpensePayment `json:"data"`                                                                       // Data for the payment
	Error *string         `json:"error" example:"the recurring expense has already been paid for this month"` // The error, if any occurred
}

type ExpensePaymentListResponse struct {
	Data  []models.ExpensePayment `json:"data"`                                                          // Payments, newest month first
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
