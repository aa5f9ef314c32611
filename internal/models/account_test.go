package models_test

import (
	"github.com/google/uuid"
	"github.com/rpmartinrodriguez/Reporte-Financiero/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountNameKeyNormalized() {
	account := suite.createTestAccount(models.Account{Name: "  Bank   Balance "})

	suite.Assert().Equal("Bank Balance", account.Name)
	suite.Assert().Equal("bank balance", account.NameKey)
}

func (suite *TestSuiteStandard) TestAccountNameUnique() {
	_ = suite.createTestAccount(models.Account{Name: "Receivables"})

	err := suite.db.Create(&models.Account{Name: "receivables ", Kind: models.KindAsset}).Error
	suite.Assert().ErrorIs(err, models.ErrAccountNameNotUnique)
}

func (suite *TestSuiteStandard) TestAccountValidation() {
	tests := []struct {
		name    string
		account models.Account
		err     error
	}{
		{"Empty name", models.Account{Name: "   ", Kind: models.KindAsset}, models.ErrAccountNameEmpty},
		{"Unknown kind", models.Account{Name: "Equity", Kind: "equity"}, models.ErrAccountKindInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := suite.db.Create(&tt.account).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

// TestAccountBalanceNotUpdatable verifies that the balance cannot be changed
// through a regular model update.
func (suite *TestSuiteStandard) TestAccountBalanceNotUpdatable() {
	account := suite.createTestAccount(models.Account{Name: "Cash registers", Balance: decimal.NewFromInt(10)})
	suite.Assert().True(account.Balance.Equal(decimal.NewFromInt(10)), "Balance is not written on create")

	err := suite.db.Model(&account).Updates(models.Account{Name: "Cash registers", Kind: models.KindAsset, Balance: decimal.NewFromInt(500)}).Error
	suite.Require().Nil(err)

	var reloaded models.Account
	suite.Require().Nil(suite.db.First(&reloaded, account.ID).Error)
	suite.Assert().True(reloaded.Balance.Equal(decimal.NewFromInt(10)), "Balance was updated to %s", reloaded.Balance)
}

func (suite *TestSuiteStandard) TestAccountNotFound() {
	var account models.Account
	err := suite.db.First(&account, uuid.New()).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no account matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	sqlDB, err := suite.db.DB()
	suite.Require().Nil(err)
	sqlDB.Close()

	err = suite.db.Create(&models.Account{Name: "Payables", Kind: models.KindLiability}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestNameKey() {
	suite.Assert().Equal("checks in portfolio", models.NameKey("Checks  in\tPortfolio "))
}
