package models_test

import (
	"testing"
	"time"

	"github.com/dompetku/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	tz, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		suite.Assert().FailNow("Loading the timezone failed", "Error: %s", err)
	}

	transaction := suite.createTestTransaction(models.Transaction{
		Date: time.Date(2024, 3, 20, 9, 30, 0, 0, tz),
	})

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())

	// Verify the read path as well
	var dbTransaction models.Transaction
	err = models.DB.First(&dbTransaction, transaction.ID).Error
	suite.Assert().NoError(err)
	assert.Equal(suite.T(), time.UTC, dbTransaction.Date.Location())
	assert.Equal(suite.T(), time.UTC, dbTransaction.CreatedAt.Location())
}

func (suite *TestSuiteStandard) TestTransactionTypeInvalid() {
	user := suite.createTestUser(models.User{Name: "Invalid type"})

	err := models.DB.Create(&models.Transaction{
		UserID: user.ID,
		Type:   "transfer",
		Amount: decimal.NewFromInt(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionAmountInvalid() {
	user := suite.createTestUser(models.User{Name: "Invalid amounts"})

	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"negative", decimal.NewFromInt(-1)},
		{"fractional", decimal.NewFromFloat(1.5)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&models.Transaction{
				UserID: user.ID,
				Type:   models.TypeExpense,
				Amount: tt.amount,
			}).Error

			assert.ErrorIs(t, err, models.ErrAmountInvalid)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionTrimsWhitespace() {
	transaction := suite.createTestTransaction(models.Transaction{
		Note:        " Lunch ",
		Description: "  With the team\n",
	})

	assert.Equal(suite.T(), "Lunch", transaction.Note)
	assert.Equal(suite.T(), "With the team", transaction.Description)
}

func (suite *TestSuiteStandard) TestTransactionNilCategory() {
	nilUUID := uuid.Nil
	transaction := suite.createTestTransaction(models.Transaction{
		CategoryID: &nilUUID,
	})

	assert.Nil(suite.T(), transaction.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionDateDefault() {
	transaction := models.Transaction{
		UserID: suite.createTestUser(models.User{}).ID,
		Type:   models.TypeIncome,
		Amount: decimal.NewFromInt(1),
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().NoError(err)
	assert.False(suite.T(), transaction.Date.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionUserRequired() {
	err := models.DB.Create(&models.Transaction{
		UserID: uuid.New(),
		Type:   models.TypeIncome,
		Amount: decimal.NewFromInt(10),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrReferenceMissing)
}
