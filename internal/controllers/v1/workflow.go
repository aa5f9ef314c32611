package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/httputil"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/types"
)

// RegisterWorkflowRoutes registers the routes for the check and invoice
// workflows with the RouterGroup that is passed.
func (co Controller) RegisterWorkflowRoutes(r *gin.RouterGroup) {
	// Received checks
	{
		r.OPTIONS("/checks/:id/deposit", co.OptionsWorkflow)
		r.POST("/checks/:id/deposit", co.DepositCheck)
		r.OPTIONS("/checks/:id/collect", co.OptionsWorkflow)
		r.POST("/checks/:id/collect", co.CollectCheck)
		r.OPTIONS("/checks/:id/reject", co.OptionsWorkflow)
		r.POST("/checks/:id/reject", co.RejectCheck)
		r.OPTIONS("/checks/:id/sell", co.OptionsWorkflow)
		r.POST("/checks/:id/sell", co.SellCheck)
	}

	// Issued checks and invoices
	{
		r.OPTIONS("/issued-checks/:id/pay", co.OptionsWorkflow)
		r.POST("/issued-checks/:id/pay", co.PayIssuedCheck)
		r.OPTIONS("/supplier-invoices/:id/pay", co.OptionsWorkflow)
		r.POST("/supplier-invoices/:id/pay", co.PaySupplierInvoice)
		r.OPTIONS("/receivables/:id/collect", co.OptionsWorkflow)
		r.POST("/receivables/:id/collect", co.CollectReceivable)
	}

	// Cash registers
	{
		r.OPTIONS("/cash-movements", co.OptionsWorkflow)
		r.POST("/cash-movements", co.CreateCashMovement)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Workflows
// @Success		204
// @Router			/v1/cash-movements [options]
func (co Controller) OptionsWorkflow(c *gin.Context) {
	httputil.OptionsPost(c)
}

// optionalDate reads the date from an optional DateBody.
func optionalDate(c *gin.Context) (types.Date, error) {
	var body DateBody
	err := httputil.BindData(c, &body)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		return types.Date{}, err
	}

	return body.Date, nil
}

// runWorkflow binds the ID and the optional date and responds with the
// transaction that the operation returns.
func (co Controller) runWorkflow(c *gin.Context, operation func(ctx context.Context, id uuid.UUID, date types.Date) (models.Transaction, error)) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &e,
		})
		return
	}

	date, err := optionalDate(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := operation(c.Request.Context(), uri.ID.UUID, date)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Deposit check
// @Description	Moves a check from the checks in portfolio to the checks pending collection
// @Tags			Workflows
// @Accept			json
// @Produce		json
// @Success		200		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		404		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			body	body		DateBody	false	"Date of the deposit"
// @Router			/v1/checks/{id}/deposit [post]
func (co Controller) DepositCheck(c *gin.Context) {
	co.runWorkflow(c, co.Ledger.DepositCheck)
}

// @Summary		Collect check
// @Description	Moves a deposited check to the bank balance. The date defaults to the collection date of the check.
// @Tags			Workflows
// @Accept			json
// @Produce		json
// @Success		200		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		404		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			body	body		DateBody	false	"Date of the collection"
// @Router			/v1/checks/{id}/collect [post]
func (co Controller) CollectCheck(c *gin.Context) {
	co.runWorkflow(c, co.Ledger.CollectCheck)
}

// @Summary		Reject check
// @Description	Returns a deposited check to the checks in portfolio with the rejected status
// @Tags			Workflows
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/checks/{id}/reject [post]
func (co Controller) RejectCheck(c *gin.Context) {
	co.runWorkflow(c, func(ctx context.Context, id uuid.UUID, _ types.Date) (models.Transaction, error) {
		return co.Ledger.RejectCheck(ctx, id)
	})
}

// @Summary		Sell check
// @Description	Sells a check at a discount. The check is removed and the bank balance receives the amount of the check and the discount as two movements.
// @Tags			Workflows
// @Accept			json
// @Produce		json
// @Success		200		{object}	TransactionListResponse
// @Failure		400		{object}	TransactionListResponse
// @Failure		404		{object}	TransactionListResponse
// @Failure		500		{object}	TransactionListResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			sale	body		CheckSale	true	"Sale"
// @Router			/v1/checks/{id}/sell [post]
func (co Controller) SellCheck(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &e,
		})
		return
	}

	var sale CheckSale
	err = httputil.BindData(c, &sale)
	if err == nil && sale.Discount == nil {
		err = errDiscountNeeded
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	movements, err := co.Ledger.SellCheck(c.Request.Context(), uri.ID.UUID, *sale.Discount, sale.Date)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: newTransactions(c, movements)})
}

// @Summary		Pay issued check
// @Description	Debits an issued check from the bank balance
// @Tags			Workflows
// @Accept			json
// @Produce		json
// @Success		200		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		404		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			body	body		DateBody	false	"Date of the debit"
// @Router			/v1/issued-checks/{id}/pay [post]
func (co Controller) PayIssuedCheck(c *gin.Context) {
	co.runWorkflow(c, co.Ledger.PayIssuedCheck)
}

// @Summary		Pay supplier invoice
// @Description	Pays a supplier invoice with an issued check. The invoice keeps a zero amount and the paid status, the check is added to the checks payable.
// @Tags			Workflows
// @Accept			json
// @Produce		json
// @Success		200		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		404		{object}	TransactionResponse
// @Failure		409		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		SupplierPayment	false	"The issued check"
// @Router			/v1/supplier-invoices/{id}/pay [post]
func (co Controller) PaySupplierInvoice(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &e,
		})
		return
	}

	var payment SupplierPayment
	err = httputil.BindData(c, &payment)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	check, err := co.Ledger.PaySupplierInvoice(c.Request.Context(), uri.ID.UUID, payment.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, check)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Collect receivable
// @Description	Settles a receivable invoice into the bank balance. The invoice keeps a zero amount and the collected status.
// @Tags			Workflows
// @Accept			json
// @Produce		json
// @Success		200		{object}	TransactionResponse
// @Failure		400		{object}	TransactionResponse
// @Failure		404		{object}	TransactionResponse
// @Failure		409		{object}	TransactionResponse
// @Failure		500		{object}	TransactionResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			body	body		DateBody	false	"Date of the collection"
// @Router			/v1/receivables/{id}/collect [post]
func (co Controller) CollectReceivable(c *gin.Context) {
	co.runWorkflow(c, co.Ledger.CollectReceivable)
}

// @Summary		Record cash movement
// @Description	Records one transaction per cash register with a non-zero amount
// @Tags			Workflows
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Param			movement	body		CashMovementCreate	true	"Cash movement"
// @Router			/v1/cash-movements [post]
func (co Controller) CreateCashMovement(c *gin.Context) {
	var movement CashMovementCreate
	err := httputil.BindData(c, &movement)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	created, err := co.Ledger.RecordCashMovement(c.Request.Context(), movement.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, TransactionListResponse{Data: newTransactions(c, created)})
}
