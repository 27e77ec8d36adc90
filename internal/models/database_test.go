package models_test

import (
	"github.com/dompetku/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/not/a/directory/that/exists/db")
	assert.Error(suite.T(), err)
}

// TestQueryErrorNaming verifies that the "not found" errors carry the
// resource name, derived from the table.
func (suite *TestSuiteStandard) TestQueryErrorNaming() {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"user", models.DB.First(&models.User{}, uuid.New()).Error, "there is no user matching your query"},
		{"category", models.DB.First(&models.Category{}, uuid.New()).Error, "there is no category matching your query"},
		{"transaction", models.DB.First(&models.Transaction{}, uuid.New()).Error, "there is no transaction matching your query"},
	}

	for _, tt := range tests {
		assert.ErrorIs(suite.T(), tt.err, models.ErrResourceNotFound, tt.name)
		assert.Contains(suite.T(), tt.err.Error(), tt.contains, tt.name)
	}
}

func (suite *TestSuiteStandard) TestUniqueConstraints() {
	suite.createTestUser(models.User{Name: "One", Email: "unique@example.com"})
	err := models.DB.Create(&models.User{Name: "Two", Email: "unique@example.com"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrUserEmailNotUnique)

	suite.createTestCategory(models.Category{Name: "Groceries"})
	err = models.DB.Create(&models.Category{Name: "Groceries"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}

// TestGeneralError verifies that unexpected database errors are replaced
// with a general error message.
func (suite *TestSuiteStandard) TestGeneralError() {
	suite.CloseDB()

	err := models.DB.First(&models.User{}, uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
