package ledger_test

import (
	"fmt"
	"time"

	"github.com/dompetku/backend/internal/ledger"
	"github.com/dompetku/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionsPagination() {
	user := suite.createTestUser()

	for i := 0; i < 15; i++ {
		suite.createTestTransaction(user.ID, models.TypeIncome, 10, testMonth.Add(time.Duration(i)*time.Hour))
	}

	transactions, pagination, err := ledger.Transactions(models.DB, ledger.TransactionFilter{
		UserID: user.ID,
		Page:   2,
		Limit:  10,
	})

	suite.Assert().NoError(err)
	assert.Len(suite.T(), transactions, 5)
	assert.Equal(suite.T(), int64(15), pagination.Total)
	assert.Equal(suite.T(), 2, pagination.Page)
	assert.Equal(suite.T(), 10, pagination.Limit)
	assert.Equal(suite.T(), 2, pagination.TotalPage)
}

// TestTransactionsOrder verifies that the listing returns the most
// recent transaction first.
func (suite *TestSuiteStandard) TestTransactionsOrder() {
	user := suite.createTestUser()

	oldest := suite.createTestTransaction(user.ID, models.TypeIncome, 10, testMonth)
	newest := suite.createTestTransaction(user.ID, models.TypeIncome, 10, testMonth.Add(48*time.Hour))
	middle := suite.createTestTransaction(user.ID, models.TypeIncome, 10, testMonth.Add(24*time.Hour))

	transactions, _, err := ledger.Transactions(models.DB, ledger.TransactionFilter{UserID: user.ID})
	suite.Assert().NoError(err)

	suite.Require().Len(transactions, 3)
	assert.Equal(suite.T(), newest.ID, transactions[0].ID)
	assert.Equal(suite.T(), middle.ID, transactions[1].ID)
	assert.Equal(suite.T(), oldest.ID, transactions[2].ID)
}

func (suite *TestSuiteStandard) TestTransactionsSearch() {
	user := suite.createTestUser()

	match := models.Transaction{
		UserID: user.ID,
		Type:   models.TypeExpense,
		Amount: decimal.NewFromInt(5),
		Date:   testMonth,
		Note:   "Lunch at the ramen place",
	}
	suite.Assert().NoError(models.DB.Create(&match).Error)

	descriptionMatch := models.Transaction{
		UserID:      user.ID,
		Type:        models.TypeExpense,
		Amount:      decimal.NewFromInt(5),
		Date:        testMonth,
		Note:        "Groceries",
		Description: "ramen packs for the pantry",
	}
	suite.Assert().NoError(models.DB.Create(&descriptionMatch).Error)

	suite.createTestTransaction(user.ID, models.TypeExpense, 5, testMonth)
	suite.createTestTransaction(user.ID, models.TypeIncome, 1000, testMonth)

	transactions, pagination, err := ledger.Transactions(models.DB, ledger.TransactionFilter{
		UserID: user.ID,
		Search: "ramen",
	})

	suite.Assert().NoError(err)
	assert.Len(suite.T(), transactions, 2)
	assert.Equal(suite.T(), int64(2), pagination.Total)
}

// TestTransactionsSearchEmpty verifies that a search without matches is
// an empty result, not an error.
func (suite *TestSuiteStandard) TestTransactionsSearchEmpty() {
	user := suite.createTestUser()
	suite.createTestTransaction(user.ID, models.TypeIncome, 10, testMonth)

	transactions, pagination, err := ledger.Transactions(models.DB, ledger.TransactionFilter{
		UserID: user.ID,
		Search: "definitely not in any note",
	})

	suite.Assert().NoError(err)
	assert.Len(suite.T(), transactions, 0)
	assert.Equal(suite.T(), int64(0), pagination.Total)
	assert.Equal(suite.T(), 0, pagination.TotalPage)
}

// TestTransactionsUserScoped verifies that the listing never leaks other
// users' transactions.
func (suite *TestSuiteStandard) TestTransactionsUserScoped() {
	one := suite.createTestUser()
	two := suite.createTestUser()

	suite.createTestTransaction(one.ID, models.TypeIncome, 10, testMonth)
	suite.createTestTransaction(two.ID, models.TypeIncome, 10, testMonth)

	transactions, _, err := ledger.Transactions(models.DB, ledger.TransactionFilter{UserID: one.ID})
	suite.Assert().NoError(err)

	suite.Require().Len(transactions, 1)
	assert.Equal(suite.T(), one.ID, transactions[0].UserID)
}

func (suite *TestSuiteStandard) TestTransactionsDefaults() {
	user := suite.createTestUser()
	suite.createTestTransaction(user.ID, models.TypeIncome, 10, testMonth)

	_, pagination, err := ledger.Transactions(models.DB, ledger.TransactionFilter{
		UserID: user.ID,
		Page:   0,
		Limit:  -3,
	})

	suite.Assert().NoError(err)
	assert.Equal(suite.T(), 1, pagination.Page)
	assert.Equal(suite.T(), 10, pagination.Limit)
}

// TestTransactionsPreload verifies that the category and user relations
// are loaded with the listing.
func (suite *TestSuiteStandard) TestTransactionsPreload() {
	user := suite.createTestUser()

	category := models.Category{Name: fmt.Sprintf("Category %s", uuid.New())}
	suite.Assert().NoError(models.DB.Create(&category).Error)

	transaction := models.Transaction{
		UserID:     user.ID,
		CategoryID: &category.ID,
		Type:       models.TypeExpense,
		Amount:     decimal.NewFromInt(0),
		Date:       testMonth,
	}
	suite.Assert().NoError(models.DB.Create(&transaction).Error)

	transactions, _, err := ledger.Transactions(models.DB, ledger.TransactionFilter{UserID: user.ID})
	suite.Assert().NoError(err)

	suite.Require().Len(transactions, 1)
	assert.Equal(suite.T(), user.Email, transactions[0].User.Email)
	suite.Require().NotNil(transactions[0].Category)
	assert.Equal(suite.T(), category.Name, transactions[0].Category.Name)
}

func (suite *TestSuiteStandard) TestTransactionSingle() {
	user := suite.createTestUser()
	created := suite.createTestTransaction(user.ID, models.TypeIncome, 10, testMonth)

	transaction, err := ledger.Transaction(models.DB, created.ID)
	suite.Assert().NoError(err)
	assert.Equal(suite.T(), created.ID, transaction.ID)
	assert.Equal(suite.T(), user.Email, transaction.User.Email)

	_, err = ledger.Transaction(models.DB, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
