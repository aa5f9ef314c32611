package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/shopspring/decimal"
)

type AccountEditable struct {
	Name string             `json:"name" binding:"required" example:"Bank balance"` // Name of the account. Names are unique regardless of case and whitespace
	Kind models.AccountKind `json:"kind" binding:"required" example:"asset"`        // Either 'asset' or 'liability'
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                          // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`      // Transactions of the account
	Registers    string `json:"registers,omitempty" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2/registers"` // Cash register balances, only for the cash account
}

// Account is the API v1 representation of an Account.
type Account struct {
	models.DefaultModel
	AccountEditable
	Balance decimal.Decimal `json:"balance" example:"1520.75"` // Sum of the amounts of all transactions of the account
	Links   AccountLinks    `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	a := Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name: model.Name,
			Kind: model.Kind,
		},
		Balance: model.Balance,
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}

	if model.NameKey == models.NameKey(models.AccountCash) {
		a.Links.Registers = fmt.Sprintf("%s/v1/accounts/%s/registers", url, model.ID)
	}

	return a
}

// AccountTotals sums up the balances of all accounts.
type AccountTotals struct {
	Assets      decimal.Decimal `json:"assets" example:"15200"`     // Sum of all asset account balances
	Liabilities decimal.Decimal `json:"liabilities" example:"4300"` // Sum of all liability account balances
	NetWorth    decimal.Decimal `json:"netWorth" example:"10900"`   // Assets minus liabilities
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountListResponse struct {
	Data   []Account      `json:"data"`                                                          // List of accounts
	Totals *AccountTotals `json:"totals"`                                                        // Totals of the balances
	Error  *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RegisterBalance struct {
	Register string          `json:"register" example:"main"`
	Balance  decimal.Decimal `json:"balance" example:"320.5"`
}

type RegisterListResponse struct {
	Data  []RegisterBalance `json:"data"`                                                          // Balances of the cash registers, ordered by name
	Total *decimal.Decimal  `json:"total" example:"780"`                                           // Sum of all registers
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
