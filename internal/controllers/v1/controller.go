// Package v1 implements the HTTP handlers of the v1 API.
package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/cashflow"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/insights"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/ledger"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/notify"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"gorm.io/gorm"
)

// Controller holds the dependencies of the handlers.
//
// Narrator and Mailer may be nil, the handlers using them then respond
// with 503 Service Unavailable.
type Controller struct {
	DB       *gorm.DB
	Ledger   *ledger.Ledger
	Engine   *cashflow.Engine
	Narrator *insights.Narrator
	Mailer   *notify.Mailer

	// Today returns the current date in the business' time zone. Defaults
	// to the current date in UTC.
	Today func() types.Date

	// NotifyDays is the default horizon for notifications.
	NotifyDays int
}

func (co Controller) today() types.Date {
	if co.Today == nil {
		return types.Today(time.UTC)
	}
	return co.Today()
}

func (co Controller) notifyDays() int {
	if co.NotifyDays <= 0 {
		return cashflow.DefaultNotificationDays
	}
	return co.NotifyDays
}

// RegisterRoutes registers all v1 routes with the RouterGroup.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.GET("", co.GetRoot)
		r.OPTIONS("", co.OptionsRoot)
	}

	co.RegisterAccountRoutes(r.Group("/accounts"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterWorkflowRoutes(r)
	co.RegisterRecurringExpenseRoutes(r.Group("/recurring-expenses"))
	co.RegisterSettingRoutes(r.Group("/settings"))
	co.RegisterProjectionRoutes(r)
	co.RegisterInsightRoutes(r.Group("/insights"))
	co.RegisterReconciliationRoutes(r.Group("/reconciliation"))
}
