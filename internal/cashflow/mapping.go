// Package cashflow projects the bank balance from the outstanding items of
// the ledger.
//
// Events are extracted from the transactions of a fixed set of accounts and
// from the unpaid occurrences of recurring expenses, aggregated per day and
// summed onto the initial balance.
package cashflow

import (
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"golang.org/x/exp/slices"
)

// DateField selects the transaction date used for the event.
type DateField string

const (
	FieldDate    DateField = "date"
	FieldDueDate DateField = "due_date"
)

func (f DateField) of(t models.Transaction) types.Date {
	if f == FieldDueDate {
		return t.DueDate
	}
	return t.Date
}

// Mapping is one row of the event extraction table.
type Mapping struct {
	Account string
	Subset  models.Subset
	Date    DateField

	// Sign is applied to amounts of unsigned rows.
	Sign int

	// Signed rows already store the cash-flow direction in the amount.
	Signed bool

	// Transactions with these statuses are not outstanding.
	Exclude []models.Status

	// Outstanding rows are listed as notifications.
	Outstanding bool
}

func (m Mapping) excludes(s models.Status) bool {
	return slices.Contains(m.Exclude, s)
}

// DefaultMappings is the extraction table of the ledger's workflow accounts.
var DefaultMappings = []Mapping{
	{
		Account:     models.AccountReceivables,
		Subset:      models.SubsetInvoices,
		Date:        FieldDueDate,
		Sign:        1,
		Exclude:     []models.Status{models.StatusCollected},
		Outstanding: true,
	},
	{
		Account:     models.AccountChecksPortfolio,
		Subset:      models.SubsetCheckDetails,
		Date:        FieldDueDate,
		Sign:        1,
		Exclude:     []models.Status{models.StatusSold, models.StatusRejected},
		Outstanding: true,
	},
	{
		Account:     models.AccountChecksPending,
		Subset:      models.SubsetCheckDetails,
		Date:        FieldDueDate,
		Sign:        1,
		Exclude:     []models.Status{models.StatusCollected},
		Outstanding: true,
	},
	{
		Account:     models.AccountPayables,
		Subset:      models.SubsetSupplierInvoices,
		Date:        FieldDueDate,
		Sign:        -1,
		Exclude:     []models.Status{models.StatusPaid},
		Outstanding: true,
	},
	{
		Account:     models.AccountChecksPayable,
		Subset:      models.SubsetIssuedChecks,
		Date:        FieldDate,
		Sign:        -1,
		Exclude:     []models.Status{models.StatusPaid},
		Outstanding: true,
	},
	{
		Account: models.AccountBank,
		Subset:  models.SubsetBankMovements,
		Date:    FieldDate,
		Sign:    1,
		Signed:  true,
	},
	{
		Account: models.AccountCash,
		Subset:  models.SubsetCashMovements,
		Date:    FieldDate,
		Sign:    1,
		Signed:  true,
	},
}
