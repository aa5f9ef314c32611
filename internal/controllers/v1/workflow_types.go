package v1

import (
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/ledger"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
)

// CheckSale is the body to sell a check at a discount.
type CheckSale struct {
	Discount *decimal.Decimal `json:"discount" example:"35.5"`   // Discount withheld by the buyer, between zero and the amount of the check
	Date     types.Date       `json:"date" example:"2024-03-20"` // Date of the sale. Defaults to today
}

// SupplierPayment is the body to pay a supplier invoice with an issued check.
type SupplierPayment struct {
	Number  string     `json:"number" example:"00012345"`    // Number of the issued check
	Bank    string     `json:"bank" example:"Banco Nación"`  // Bank of the issued check
	Date    types.Date `json:"date" example:"2024-03-20"`    // Issue date. Defaults to today
	DueDate types.Date `json:"dueDate" example:"2024-04-20"` // Date on which the check can be cashed
}

func (p SupplierPayment) model() ledger.IssuedCheck {
	return ledger.IssuedCheck{
		Number:  p.Number,
		Bank:    p.Bank,
		Date:    p.Date,
		DueDate: p.DueDate,
	}
}

// CashMovementCreate is the body to record a movement across the cash registers.
type CashMovementCreate struct {
	Date        types.Date                 `json:"date" example:"2024-03-20"`                         // Date of the movement. Defaults to today
	Description string                     `json:"description" example:"Daily sales"`                 // A description
	Registers   map[string]decimal.Decimal `json:"registers" binding:"required" swaggertype:"object"` // Signed amount per cash register, negative amounts are withdrawals
}

func (m CashMovementCreate) model() ledger.CashMovement {
	return ledger.CashMovement{
		Date:        m.Date,
		Description: m.Description,
		Registers:   m.Registers,
	}
}
