package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/httputil"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/ledger"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsAccounts)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", co.OptionsAccountDetail)
		r.GET("/:id", co.GetAccount)
		r.OPTIONS("/:id/registers", co.OptionsAccountRegisters)
		r.GET("/:id/registers", co.GetAccountRegisters)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func (co Controller) OptionsAccounts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [options]
func (co Controller) OptionsAccountDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id}/registers [options]
func (co Controller) OptionsAccountRegisters(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get accounts
// @Description	Returns all accounts with their balances and the totals of assets, liabilities and the net worth
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Failure		500	{object}	AccountListResponse
// @Router			/v1/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	var accounts []models.Account
	err := co.DB.WithContext(c.Request.Context()).Order("name_key").Find(&accounts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountListResponse{
			Error: &e,
		})
		return
	}

	var totals AccountTotals
	data := make([]Account, 0, len(accounts))
	for _, account := range accounts {
		if account.Kind == models.KindLiability {
			totals.Liabilities = totals.Liabilities.Add(account.Balance)
		} else {
			totals.Assets = totals.Assets.Add(account.Balance)
		}

		data = append(data, newAccount(c, account))
	}
	totals.NetWorth = totals.Assets.Sub(totals.Liabilities)

	c.JSON(http.StatusOK, AccountListResponse{
		Data:   data,
		Totals: &totals,
	})
}

// @Summary		Create account
// @Description	Creates an account with a zero balance. If an account with the same name exists, it is returned instead.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var editable AccountEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	account, err := co.Ledger.EnsureAccount(c.Request.Context(), editable.Name, editable.Kind)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusCreated, AccountResponse{Data: &data})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	account, err := co.account(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Get cash register balances
// @Description	Returns the balance of every cash register. Only available for the cash registers account.
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	RegisterListResponse
// @Failure		400	{object}	RegisterListResponse
// @Failure		404	{object}	RegisterListResponse
// @Failure		500	{object}	RegisterListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id}/registers [get]
func (co Controller) GetAccountRegisters(c *gin.Context) {
	account, err := co.account(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegisterListResponse{
			Error: &e,
		})
		return
	}

	if account.NameKey != models.NameKey(models.AccountCash) {
		e := ledger.ErrWrongAccount.Error()
		c.JSON(http.StatusBadRequest, RegisterListResponse{
			Error: &e,
		})
		return
	}

	balances, err := co.Ledger.RegisterBalances(c.Request.Context())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RegisterListResponse{
			Error: &e,
		})
		return
	}

	registers := maps.Keys(balances)
	slices.Sort(registers)

	total := decimal.Zero
	data := make([]RegisterBalance, 0, len(registers))
	for _, register := range registers {
		total = total.Add(balances[register])
		data = append(data, RegisterBalance{Register: register, Balance: balances[register]})
	}

	c.JSON(http.StatusOK, RegisterListResponse{Data: data, Total: &total})
}

// account reads the account identified by the URI.
func (co Controller) account(c *gin.Context) (models.Account, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Account{}, httputil.ErrInvalidUUID
	}

	var account models.Account
	err = co.DB.WithContext(c.Request.Context()).First(&account, "id = ?", uri.ID.UUID).Error
	return account, err
}
