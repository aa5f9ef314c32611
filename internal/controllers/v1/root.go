package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/httputil"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
)

type RootResponse struct {
	Links RootLinks `json:"links"` // Links for the v1 API
}

type RootLinks struct {
	Accounts          string `json:"accounts" example:"https://example.com/api/v1/accounts"`                    // URL of the account dashboard
	Transactions      string `json:"transactions" example:"https://example.com/api/v1/transactions"`            // URL of Transaction collection endpoint
	CashMovements     string `json:"cashMovements" example:"https://example.com/api/v1/cash-movements"`         // URL to record cash movements
	RecurringExpenses string `json:"recurringExpenses" example:"https://example.com/api/v1/recurring-expenses"` // URL of Recurring Expense collection endpoint
	InitialBalance    string `json:"initialBalance" example:"https://example.com/api/v1/settings/initial-balance"`
	Projection        string `json:"projection" example:"https://example.com/api/v1/projection"`       // URL of the cash-flow projection
	Calendar          string `json:"calendar" example:"https://example.com/api/v1/calendar"`           // Base URL of the calendar day details, append the date
	Notifications     string `json:"notifications" example:"https://example.com/api/v1/notifications"` // URL of the upcoming items
	Insights          string `json:"insights" example:"https://example.com/api/v1/insights"`
	Reconciliation    string `json:"reconciliation" example:"https://example.com/api/v1/reconciliation"` // URL of the balance consistency check
}

// GetRoot returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	RootResponse
//	@Router			/v1 [get]
func (co Controller) GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Accounts:          url + "/accounts",
			Transactions:      url + "/transactions",
			CashMovements:     url + "/cash-movements",
			RecurringExpenses: url + "/recurring-expenses",
			InitialBalance:    url + "/settings/initial-balance",
			Projection:        url + "/projection",
			Calendar:          url + "/calendar",
			Notifications:     url + "/notifications",
			Insights:          url + "/insights",
			Reconciliation:    url + "/reconciliation",
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func (co Controller) OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
