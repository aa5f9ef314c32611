package v1

import (
	"errors"
	"net/http"

	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/insights"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/ledger"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/notify"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict), errors.Is(err, models.ErrExpensePaymentExists), errors.Is(err, ledger.ErrWrongStatus):
		return http.StatusConflict
	case errors.Is(err, insights.ErrUpstream), errors.Is(err, notify.ErrSend):
		return http.StatusBadGateway
	case errors.Is(err, insights.ErrNotConfigured), errors.Is(err, notify.ErrNotConfigured):
		return http.StatusServiceUnavailable
	}

	return http.StatusBadRequest
}

var (
	errAccountMissing = errors.New("either accountId or accountName must be set")
	errAmountMissing  = errors.New("amount is required")
	errMonthMissing   = errors.New("month is required")
	errDiscountNeeded = errors.New("discount is required")
)
