package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/httputil"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"gorm.io/gorm/clause"
)

// RegisterRecurringExpenseRoutes registers the routes for recurring expenses
// with the RouterGroup that is passed.
func (co Controller) RegisterRecurringExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsRecurringExpenses)
		r.GET("", co.GetRecurringExpenses)
		r.POST("", co.CreateRecurringExpense)
	}

	// Recurring expense with ID
	{
		r.OPTIONS("/:id", co.OptionsRecurringExpenseDetail)
		r.GET("/:id", co.GetRecurringExpense)
		r.PATCH("/:id", co.UpdateRecurringExpense)
		r.DELETE("/:id", co.DeleteRecurringExpense)
		r.OPTIONS("/:id/payments", co.OptionsExpensePayments)
		r.GET("/:id/payments", co.GetExpensePayments)
		r.POST("/:id/payments", co.CreateExpensePayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Expenses
// @Success		204
// @Router			/v1/recurring-expenses [options]
func (co Controller) OptionsRecurringExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Expenses
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [options]
func (co Controller) OptionsRecurringExpenseDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Expenses
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id}/payments [options]
func (co Controller) OptionsExpensePayments(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get recurring expenses
// @Description	Returns all recurring expenses ordered by due day
// @Tags			Recurring Expenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseListResponse
// @Failure		500	{object}	RecurringExpenseListResponse
// @Router			/v1/recurring-expenses [get]
func (co Controller) GetRecurringExpenses(c *gin.Context) {
	var expenses []models.RecurringExpense
	err := co.DB.WithContext(c.Request.Context()).Order("due_day, description").Find(&expenses).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]RecurringExpense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newRecurringExpense(c, expense))
	}

	c.JSON(http.StatusOK, RecurringExpenseListResponse{Data: data})
}

// @Summary		Create recurring expense
// @Description	Creates a monthly expense that is projected every month from its start month on until it is paid
// @Tags			Recurring Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	RecurringExpenseResponse
// @Failure		400		{object}	RecurringExpenseResponse
// @Failure		500		{object}	RecurringExpenseResponse
// @Param			expense	body		RecurringExpenseCreate	true	"Recurring expense"
// @Router			/v1/recurring-expenses [post]
func (co Controller) CreateRecurringExpense(c *gin.Context) {
	var create RecurringExpenseCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &e,
		})
		return
	}

	expense := create.model()
	err = co.DB.WithContext(c.Request.Context()).Create(&expense).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newRecurringExpense(c, expense)
	c.JSON(http.StatusCreated, RecurringExpenseResponse{Data: &data})
}

// @Summary		Get recurring expense
// @Description	Returns a specific recurring expense
// @Tags			Recurring Expenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseResponse
// @Failure		400	{object}	RecurringExpenseResponse
// @Failure		404	{object}	RecurringExpenseResponse
// @Failure		500	{object}	RecurringExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [get]
func (co Controller) GetRecurringExpense(c *gin.Context) {
	expense, err := co.recurringExpense(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newRecurringExpense(c, expense)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &data})
}

// @Summary		Update recurring expense
// @Description	Updates an existing recurring expense. Only values to be updated need to be specified.
// @Tags			Recurring Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	RecurringExpenseResponse
// @Failure		400		{object}	RecurringExpenseResponse
// @Failure		404		{object}	RecurringExpenseResponse
// @Failure		500		{object}	RecurringExpenseResponse
// @Param			id		path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		RecurringExpenseEditable	true	"Recurring expense"
// @Router			/v1/recurring-expenses/{id} [patch]
func (co Controller) UpdateRecurringExpense(c *gin.Context) {
	expense, err := co.recurringExpense(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecurringExpenseEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &e,
		})
		return
	}

	var editable RecurringExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &e,
		})
		return
	}

	editable.apply(&expense, updateFields)
	err = co.DB.WithContext(c.Request.Context()).Omit(clause.Associations).Save(&expense).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringExpenseResponse{
			Error: &e,
		})
		return
	}

	data := newRecurringExpense(c, expense)
	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: &data})
}

// @Summary		Delete recurring expense
// @Description	Deletes a recurring expense and its payment records. Movements already recorded for payments are kept.
// @Tags			Recurring Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id} [delete]
func (co Controller) DeleteRecurringExpense(c *gin.Context) {
	expense, err := co.recurringExpense(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.WithContext(c.Request.Context()).Select(clause.Associations).Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Get payments
// @Description	Returns the payments of a recurring expense, newest month first
// @Tags			Recurring Expenses
// @Produce		json
// @Success		200	{object}	ExpensePaymentListResponse
// @Failure		400	{object}	ExpensePaymentListResponse
// @Failure		404	{object}	ExpensePaymentListResponse
// @Failure		500	{object}	ExpensePaymentListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-expenses/{id}/payments [get]
func (co Controller) GetExpensePayments(c *gin.Context) {
	expense, err := co.recurringExpense(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpensePaymentListResponse{
			Error: &e,
		})
		return
	}

	payments := make([]models.ExpensePayment, 0)
	err = co.DB.WithContext(c.Request.Context()).
		Where(&models.ExpensePayment{RecurringExpenseID: expense.ID}).
		Order("month DESC").
		Find(&payments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpensePaymentListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExpensePaymentListResponse{Data: payments})
}

// @Summary		Pay recurring expense
// @Description	Marks the month of a recurring expense as paid and debits the amount from the bank balance or the main cash register
// @Tags			Recurring Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpensePaymentResponse
// @Failure		400		{object}	ExpensePaymentResponse
// @Failure		404		{object}	ExpensePaymentResponse
// @Failure		409		{object}	ExpensePaymentResponse
// @Failure		500		{object}	ExpensePaymentResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		ExpensePaymentCreate	true	"Payment"
// @Router			/v1/recurring-expenses/{id}/payments [post]
func (co Controller) CreateExpensePayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, ExpensePaymentResponse{
			Error: &e,
		})
		return
	}

	var create ExpensePaymentCreate
	err = httputil.BindData(c, &create)
	if err == nil && create.Month.IsZero() {
		err = errMonthMissing
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpensePaymentResponse{
			Error: &e,
		})
		return
	}

	method := create.Method
	if method == "" {
		method = models.MethodBank
	}

	payment, movement, err := co.Ledger.PayRecurringExpense(c.Request.Context(), uri.ID.UUID, create.Month, method, create.Date)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpensePaymentResponse{
			Error: &e,
		})
		return
	}

	transaction := newTransaction(c, movement)
	c.JSON(http.StatusCreated, ExpensePaymentResponse{Data: &ExpensePayment{
		ExpensePayment: payment,
		Transaction:    &transaction,
	}})
}

// recurringExpense reads the recurring expense identified by the URI.
func (co Controller) recurringExpense(c *gin.Context) (models.RecurringExpense, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.RecurringExpense{}, httputil.ErrInvalidUUID
	}

	var expense models.RecurringExpense
	err = co.DB.WithContext(c.Request.Context()).First(&expense, "id = ?", uri.ID.UUID).Error
	return expense, err
}
