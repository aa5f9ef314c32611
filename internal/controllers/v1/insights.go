package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/httputil"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/insights"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
)

// SummaryRequest is the optional body to request a cash-flow summary.
type SummaryRequest struct {
	FromDate  types.Date `json:"fromDate" example:"2024-03-01"`  // First day of the summarized projection. Defaults to today
	UntilDate types.Date `json:"untilDate" example:"2024-03-31"` // Last day of the summarized projection. Defaults to 30 days after the first day
}

// Text is a generated text.
type Text struct {
	Text string `json:"text" example:"The bank balance stays positive for the next 30 days."`
}

type TextResponse struct {
	Data  *Text   `json:"data"`                                                                               // The generated text
	Error *string `json:"error" example:"text generation is not configured, set GEMINI_API_KEY to enable it"` // The error, if any occurred
}

// RegisterInsightRoutes registers the routes for generated texts with
// the RouterGroup that is passed.
func (co Controller) RegisterInsightRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/summary", co.OptionsInsights)
		r.POST("/summary", co.CreateSummary)
		r.OPTIONS("/reminders/:id", co.OptionsInsights)
		r.POST("/reminders/:id", co.CreateReminder)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Insights
// @Success		204
// @Router			/v1/insights/summary [options]
func (co Controller) OptionsInsights(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Summarize cash flow
// @Description	Generates a short narrative of the projected bank balance
// @Tags			Insights
// @Accept			json
// @Produce		json
// @Success		200		{object}	TextResponse
// @Failure		400		{object}	TextResponse
// @Failure		500		{object}	TextResponse
// @Failure		502		{object}	TextResponse
// @Failure		503		{object}	TextResponse
// @Param			range	body		SummaryRequest	false	"Range of the summary"
// @Router			/v1/insights/summary [post]
func (co Controller) CreateSummary(c *gin.Context) {
	if !co.Narrator.Enabled() {
		e := insights.ErrNotConfigured.Error()
		c.JSON(http.StatusServiceUnavailable, TextResponse{
			Error: &e,
		})
		return
	}

	var request SummaryRequest
	err := httputil.BindData(c, &request)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		e := err.Error()
		c.JSON(status(err), TextResponse{
			Error: &e,
		})
		return
	}

	start := request.FromDate
	if start.IsZero() {
		start = co.today()
	}

	end := request.UntilDate
	if end.IsZero() {
		end = start.AddDays(DefaultProjectionDays)
	}

	projection, err := co.Engine.Project(c.Request.Context(), start, end)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TextResponse{
			Error: &e,
		})
		return
	}

	text, err := co.Narrator.Summary(c.Request.Context(), projection)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TextResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TextResponse{Data: &Text{Text: text}})
}

// @Summary		Write payment reminder
// @Description	Generates a payment reminder for a check or an invoice
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	TextResponse
// @Failure		400	{object}	TextResponse
// @Failure		404	{object}	TextResponse
// @Failure		500	{object}	TextResponse
// @Failure		502	{object}	TextResponse
// @Failure		503	{object}	TextResponse
// @Param			id	path		URIID	true	"ID of the transaction"
// @Router			/v1/insights/reminders/{id} [post]
func (co Controller) CreateReminder(c *gin.Context) {
	if !co.Narrator.Enabled() {
		e := insights.ErrNotConfigured.Error()
		c.JSON(http.StatusServiceUnavailable, TextResponse{
			Error: &e,
		})
		return
	}

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TextResponse{
			Error: &e,
		})
		return
	}

	var transaction models.Transaction
	err = co.DB.WithContext(c.Request.Context()).First(&transaction, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TextResponse{
			Error: &e,
		})
		return
	}

	text, err := co.Narrator.Reminder(c.Request.Context(), transaction, co.today())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TextResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TextResponse{Data: &Text{Text: text}})
}
