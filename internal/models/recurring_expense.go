package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecurringExpense is a monthly obligation template. It generates one
// occurrence per month from StartMonth on, unless an ExpensePayment
// exists for that month.
type RecurringExpense struct {
	DefaultModel
	Description string           `json:"description" gorm:"not null" example:"Rent"`
	Amount      decimal.Decimal  `json:"amount" gorm:"type:DECIMAL(20,8);not null" example:"1500"`
	DueDay      int              `json:"dueDay" gorm:"not null" example:"10" minimum:"1" maximum:"31"`
	StartMonth  types.Month      `json:"startMonth" example:"2024-01"`
	Payments    []ExpensePayment `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (r RecurringExpense) Self() string {
	return "Recurring Expense"
}

// BeforeSave validates the template and defaults the start month.
func (r *RecurringExpense) BeforeSave(_ *gorm.DB) error {
	if r.DueDay < 1 || r.DueDay > 31 {
		return ErrDueDayInvalid
	}

	if !r.Amount.IsPositive() {
		return ErrRecurringAmountInvalid
	}

	if r.StartMonth.IsZero() {
		r.StartMonth = types.MonthOf(time.Now())
	}

	return nil
}

// DueDate returns the date of the occurrence in the month.
func (r RecurringExpense) DueDate(m types.Month) types.Date {
	return m.Day(r.DueDay)
}

// swagger:enum PaymentMethod
type PaymentMethod string

const (
	MethodBank PaymentMethod = "bank"
	MethodCash PaymentMethod = "cash"
)

// ExpensePayment marks a recurring expense as paid for a month.
type ExpensePayment struct {
	Timestamps
	RecurringExpenseID uuid.UUID     `json:"recurringExpenseId" gorm:"type:uuid;primaryKey" example:"0b5e5a2c-8d4a-4e0b-9a43-3a8e8b9c7e21"`
	Month              types.Month   `json:"month" gorm:"primaryKey" example:"2024-03"`
	Method             PaymentMethod `json:"method" gorm:"not null" example:"bank"`
	PaidAt             types.Date    `json:"paidAt" example:"2024-03-10"`
	TransactionID      *uuid.UUID    `json:"transactionId" gorm:"type:uuid" example:"9d1b0a4e-1f3c-4b7e-8c2a-5e6f7a8b9c0d"` // The bank or cash movement of the payment
}

func (p ExpensePayment) Self() string {
	return "Expense Payment"
}
