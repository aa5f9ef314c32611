package models

import (
	"github.com/google/uuid"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// swagger:enum Subset
type Subset string

const (
	SubsetInvoices         Subset = "invoices"
	SubsetCheckDetails     Subset = "check-details"
	SubsetSupplierInvoices Subset = "supplier-invoices"
	SubsetIssuedChecks     Subset = "issued-checks"
	SubsetBankMovements    Subset = "bank-movements"
	SubsetCashMovements    Subset = "cash-movements"
)

var subsets = []Subset{SubsetInvoices, SubsetCheckDetails, SubsetSupplierInvoices, SubsetIssuedChecks, SubsetBankMovements, SubsetCashMovements}

// Valid reports if the subset is known.
func (s Subset) Valid() bool {
	return slices.Contains(subsets, s)
}

// swagger:enum Status
type Status string

const (
	StatusNone        Status = ""
	StatusPending     Status = "pending"
	StatusInPortfolio Status = "in-portfolio"
	StatusDeposited   Status = "deposited"
	StatusCollected   Status = "collected"
	StatusRejected    Status = "rejected"
	StatusSold        Status = "sold"
	StatusIssued      Status = "issued"
	StatusPaid        Status = "paid"
)

var statuses = []Status{StatusNone, StatusPending, StatusInPortfolio, StatusDeposited, StatusCollected, StatusRejected, StatusSold, StatusIssued, StatusPaid}

// Valid reports if the status is known.
func (s Status) Valid() bool {
	return slices.Contains(statuses, s)
}

// Transaction is one dated movement that belongs to exactly one account.
// Amount is the signed contribution of the transaction to the account balance.
type Transaction struct {
	DefaultModel
	AccountID    uuid.UUID       `json:"accountId" gorm:"type:uuid;index;not null" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`
	Account      Account         `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Subset       Subset          `json:"subset" gorm:"index;not null" example:"check-details"`
	Date         types.Date      `json:"date" gorm:"index" example:"2024-03-01"`
	DueDate      types.Date      `json:"dueDate" gorm:"index" example:"2024-03-20"` // Due date of invoices and collection date of checks
	Description  string          `json:"description" gorm:"not null;default:''" example:"Check from customer"`
	Counterparty string          `json:"counterparty" gorm:"not null;default:''" example:"Drawer Inc."` // Customer, drawer, supplier or payee
	Number       string          `json:"number" gorm:"not null;default:''" example:"0042"`
	Bank         string          `json:"bank" gorm:"not null;default:''" example:"Banco Nación"`
	Register     string          `json:"register" gorm:"not null;default:''" example:"main"` // Cash register, only for cash movements
	Status       Status          `json:"status" gorm:"index;not null;default:''" example:"in-portfolio"`
	Gross        decimal.Decimal `json:"gross" gorm:"type:DECIMAL(20,8);not null;default:0" example:"1000"`
	Tax          decimal.Decimal `json:"tax" gorm:"type:DECIMAL(20,8);not null;default:0" example:"210"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);not null;default:0" example:"1210"` // Signed contribution to the account balance
}

func (t Transaction) Self() string {
	return "Transaction"
}

// BeforeSave validates the enums.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if !t.Subset.Valid() {
		return ErrSubsetInvalid
	}

	if !t.Status.Valid() {
		return ErrStatusInvalid
	}

	return nil
}
