package v1_test

import (
	"net/http"

	v1 "github.com/rpmartinrodriguez/Reporte-Financiero/internal/controllers/v1"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestInitialBalance() {
	var response v1.InitialBalanceResponse
	suite.do(http.MethodGet, "/v1/settings/initial-balance", nil, &response, http.StatusOK)
	suite.Assert().Equal(models.SettingInitialBankBalance, response.Data.Key)
	suite.Assert().True(response.Data.Value.IsZero(), "The initial balance is zero until it is set")

	suite.do(http.MethodPut, "/v1/settings/initial-balance", map[string]any{"value": "25000.50"}, &response, http.StatusOK)
	suite.Assert().True(decimal.RequireFromString("25000.5").Equal(response.Data.Value), response.Data.Value.String())

	suite.do(http.MethodPut, "/v1/settings/initial-balance", map[string]any{"value": -10}, &response, http.StatusOK)
	suite.do(http.MethodGet, "/v1/settings/initial-balance", nil, &response, http.StatusOK)
	suite.Assert().True(decimal.NewFromInt(-10).Equal(response.Data.Value), response.Data.Value.String())
}

func (suite *TestSuiteStandard) TestInitialBalanceFails() {
	tests := []struct {
		name string
		body any
	}{
		{"No body", nil},
		{"No value", map[string]any{}},
		{"Not a number", map[string]any{"value": "much"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			var response v1.InitialBalanceResponse
			suite.do(http.MethodPut, "/v1/settings/initial-balance", tt.body, &response, http.StatusBadRequest)
			suite.Assert().NotNil(response.Error)
		})
	}
}
