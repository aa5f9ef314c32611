package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/httputil"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/notify"
	"golang.org/x/exp/slices"
)

// RegisterProjectionRoutes registers the routes for the cash-flow projection,
// the calendar and the notifications with the RouterGroup that is passed.
func (co Controller) RegisterProjectionRoutes(r *gin.RouterGroup) {
	// Projection
	{
		r.OPTIONS("/projection", co.OptionsProjection)
		r.GET("/projection", co.GetProjection)
		r.OPTIONS("/projection/balance", co.OptionsProjection)
		r.GET("/projection/balance", co.GetBalance)
		r.OPTIONS("/calendar/:date", co.OptionsProjection)
		r.GET("/calendar/:date", co.GetCalendarDay)
	}

	// Notifications
	{
		r.OPTIONS("/notifications", co.OptionsProjection)
		r.GET("/notifications", co.GetNotifications)
		r.OPTIONS("/notifications/digest", co.OptionsDigest)
		r.POST("/notifications/digest", co.SendDigest)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projection
// @Success		204
// @Router			/v1/projection [options]
func (co Controller) OptionsProjection(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projection
// @Success		204
// @Router			/v1/notifications/digest [options]
func (co Controller) OptionsDigest(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get projection
// @Description	Returns the projected bank balance for every day of the range together with the lowest balance and the totals
// @Tags			Projection
// @Produce		json
// @Success		200			{object}	ProjectionResponse
// @Failure		400			{object}	ProjectionResponse
// @Failure		500			{object}	ProjectionResponse
// @Param			fromDate	query		string	false	"First day of the projection. Defaults to today"
// @Param			untilDate	query		string	false	"Last day of the projection. Defaults to 30 days after the first day"
// @Router			/v1/projection [get]
func (co Controller) GetProjection(c *gin.Context) {
	var filter ProjectionQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ProjectionResponse{
			Error: &e,
		})
		return
	}

	start := filter.FromDate
	if start.IsZero() {
		start = co.today()
	}

	end := filter.UntilDate
	if end.IsZero() {
		end = start.AddDays(DefaultProjectionDays)
	}

	projection, err := co.Engine.Project(c.Request.Context(), start, end)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ProjectionResponse{Data: &projection})
}

// @Summary		Get balance
// @Description	Returns the projected bank balance at the start of a day
// @Tags			Projection
// @Produce		json
// @Success		200		{object}	BalanceResponse
// @Failure		400		{object}	BalanceResponse
// @Failure		500		{object}	BalanceResponse
// @Param			date	query		string	false	"The date. Defaults to today"
// @Router			/v1/projection/balance [get]
func (co Controller) GetBalance(c *gin.Context) {
	var filter BalanceQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, BalanceResponse{
			Error: &e,
		})
		return
	}

	date := filter.Date
	if date.IsZero() {
		date = co.today()
	}

	balance, err := co.Engine.BalanceAsOf(c.Request.Context(), date)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Data: &Balance{Date: date, Balance: balance}})
}

// @Summary		Get calendar day
// @Description	Returns the inflows and outflows of a day
// @Tags			Projection
// @Produce		json
// @Success		200		{object}	DayResponse
// @Failure		400		{object}	DayResponse
// @Failure		500		{object}	DayResponse
// @Param			date	path		string	true	"The date in YYYY-MM-DD format"
// @Router			/v1/calendar/{date} [get]
func (co Controller) GetCalendarDay(c *gin.Context) {
	var uri URIDate
	err := c.ShouldBindUri(&uri)
	if err != nil || uri.Date.IsZero() {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, DayResponse{
			Error: &e,
		})
		return
	}

	day, err := co.Engine.Day(c.Request.Context(), uri.Date)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DayResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, DayResponse{Data: &day})
}

// @Summary		Get notifications
// @Description	Returns the outstanding checks, invoices and recurring expenses due within the next days, including overdue ones
// @Tags			Projection
// @Produce		json
// @Success		200		{object}	NotificationListResponse
// @Failure		400		{object}	NotificationListResponse
// @Failure		500		{object}	NotificationListResponse
// @Param			days	query		int	false	"Number of days after today to include. Defaults to 7"
// @Router			/v1/notifications [get]
func (co Controller) GetNotifications(c *gin.Context) {
	var filter NotificationQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, NotificationListResponse{
			Error: &e,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)
	days := co.notifyDays()
	if slices.Contains(setFields, "Days") {
		days = filter.Days
	}

	notifications, err := co.Engine.Notifications(c.Request.Context(), co.today(), days)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), NotificationListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, NotificationListResponse{Data: notifications})
}

// @Summary		Send notification digest
// @Description	Sends the notifications due within the configured number of days by e-mail. Nothing is sent when there are no notifications.
// @Tags			Projection
// @Produce		json
// @Success		200	{object}	DigestResponse
// @Failure		500	{object}	DigestResponse
// @Failure		502	{object}	DigestResponse
// @Failure		503	{object}	DigestResponse
// @Router			/v1/notifications/digest [post]
func (co Controller) SendDigest(c *gin.Context) {
	if !co.Mailer.Enabled() {
		e := notify.ErrNotConfigured.Error()
		c.JSON(http.StatusServiceUnavailable, DigestResponse{
			Error: &e,
		})
		return
	}

	today := co.today()
	notifications, err := co.Engine.Notifications(c.Request.Context(), today, co.notifyDays())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DigestResponse{
			Error: &e,
		})
		return
	}

	sent, err := co.Mailer.SendDigest(c.Request.Context(), today, notifications)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DigestResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, DigestResponse{Data: &Digest{Sent: sent}})
}
