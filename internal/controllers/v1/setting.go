package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/httputil"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/shopspring/decimal"
)

// InitialBalanceEditable is the body to set the initial bank balance.
type InitialBalanceEditable struct {
	Value *decimal.Decimal `json:"value" binding:"required" example:"25000"` // Bank balance the projection starts from
}

type InitialBalanceResponse struct {
	Data  *models.Setting `json:"data"`                              // The setting
	Error *string         `json:"error" example:"Value is required"` // The error, if any occurred
}

// RegisterSettingRoutes registers the routes for settings with
// the RouterGroup that is passed.
func (co Controller) RegisterSettingRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/initial-balance", co.OptionsInitialBalance)
		r.GET("/initial-balance", co.GetInitialBalance)
		r.PUT("/initial-balance", co.SetInitialBalance)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings/initial-balance [options]
func (co Controller) OptionsInitialBalance(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get initial balance
// @Description	Returns the initial bank balance. It is zero until it is set.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	InitialBalanceResponse
// @Failure		500	{object}	InitialBalanceResponse
// @Router			/v1/settings/initial-balance [get]
func (co Controller) GetInitialBalance(c *gin.Context) {
	value, err := models.GetDecimalSetting(co.DB.WithContext(c.Request.Context()), models.SettingInitialBankBalance)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InitialBalanceResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, InitialBalanceResponse{Data: &models.Setting{
		Key:   models.SettingInitialBankBalance,
		Value: value,
	}})
}

// @Summary		Set initial balance
// @Description	Sets the initial bank balance the projection starts from
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200		{object}	InitialBalanceResponse
// @Failure		400		{object}	InitialBalanceResponse
// @Failure		500		{object}	InitialBalanceResponse
// @Param			balance	body		InitialBalanceEditable	true	"Initial balance"
// @Router			/v1/settings/initial-balance [put]
func (co Controller) SetInitialBalance(c *gin.Context) {
	var editable InitialBalanceEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InitialBalanceResponse{
			Error: &e,
		})
		return
	}

	setting, err := models.PutDecimalSetting(co.DB.WithContext(c.Request.Context()), models.SettingInitialBankBalance, *editable.Value)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InitialBalanceResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, InitialBalanceResponse{Data: &setting})
}
