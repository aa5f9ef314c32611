package v1

import (
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/cashflow"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
	"github.com/shopspring/decimal"
)

// DefaultProjectionDays is the length of the projection when no end date is given.
const DefaultProjectionDays = 30

type ProjectionQueryFilter struct {
	FromDate  types.Date `form:"fromDate"`  // First day of the projection. Defaults to today
	UntilDate types.Date `form:"untilDate"` // Last day of the projection. Defaults to 30 days after the first day
}

type ProjectionResponse struct {
	Data  *cashflow.Projection `json:"data"`                                                                              // The projection
	Error *string              `json:"error" example:"the range must have an end date that is not before its start date"` // The error, if any occurred
}

type BalanceQueryFilter struct {
	Date types.Date `form:"date"` // The date. Defaults to today
}

// Balance is the projected bank balance at the start of a day.
type Balance struct {
	Date    types.Date      `json:"date" example:"2024-03-20"`
	Balance decimal.Decimal `json:"balance" example:"1320.5"` // Initial balance plus all events before the date
}

type BalanceResponse struct {
	Data  *Balance `json:"data"`                                                                // The balance
	Error *string  `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type DayResponse struct {
	Data  *cashflow.DayDetail `json:"data"`                                                                                // Inflows and outflows of the day
	Error *string             `json:"error" example:"the query string contains unparseable data. Please check the values"` // The error, if any occurred
}

type NotificationQueryFilter struct {
	Days int `form:"days"` // Number of days after today to include. Defaults to 7
}

type NotificationListResponse struct {
	Data  []cashflow.Notification `json:"data"`                                                                              // Outstanding items, oldest first
	Error *string                 `json:"error" example:"the range must have an end date that is not before its start date"` // The error, if any occurred
}

// Digest is the result of sending the notification digest.
type Digest struct {
	Sent int `json:"sent" example:"4"` // Number of notifications in the e-mail. Zero when there was nothing to send
}

type DigestResponse struct {
	Data  *Digest `json:"data"`                                                                                       // The result
	Error *string `json:"error" example:"e-mail is not configured, set SMTP_HOST and DIGEST_RECIPIENTS to enable it"` // The error, if any occurred
}
