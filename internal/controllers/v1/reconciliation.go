package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/httputil"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/ledger"
)

type ReconciliationResponse struct {
	Data  []ledger.Drift `json:"data"`                                                                // Accounts whose balance does not match their transactions. Empty when all balances are consistent
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// RegisterReconciliationRoutes registers the routes for the balance
// consistency check with the RouterGroup that is passed.
func (co Controller) RegisterReconciliationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsReconciliation)
		r.GET("", co.GetReconciliation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reconciliation
// @Success		204
// @Router			/v1/reconciliation [options]
func (co Controller) OptionsReconciliation(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Reconcile balances
// @Description	Compares the balance of every account with the sum of its transactions. Balances are never corrected.
// @Tags			Reconciliation
// @Produce		json
// @Success		200	{object}	ReconciliationResponse
// @Failure		500	{object}	ReconciliationResponse
// @Router			/v1/reconciliation [get]
func (co Controller) GetReconciliation(c *gin.Context) {
	drifts, err := co.Ledger.Reconcile(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReconciliationResponse{
			Error: &e,
		})
		return
	}

	if drifts == nil {
		drifts = make([]ledger.Drift, 0)
	}

	c.JSON(http.StatusOK, ReconciliationResponse{Data: drifts})
}
