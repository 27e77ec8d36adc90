package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/dompetku/backend/internal/controllers/v1"
	"github.com/dompetku/backend/internal/models"
	"github.com/dompetku/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransactionsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	u := createTestUser(suite.T(), v1.UserEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestTransaction(t, v1.TransactionEditable{UserID: u.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?user=%s", u.Data.ID), "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.TransactionListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestTransactionsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name   string
		id     string // path at the transactions endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Transaction with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Transaction exists", createTestTransaction(suite.T(), v1.TransactionEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestTransactionsGetSingle verifies the detail endpoint.
func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Note: "Single"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing Transaction", transaction.Data.ID.String(), http.StatusOK},
		{"ID nil", uuid.Nil.String(), http.StatusNotFound},
		{"Unknown ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "definitely-not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.TransactionResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, "Single", response.Data.Note)
				assert.NotEmpty(t, response.Data.Links.Self)
			}
		})
	}
}

// TestTransactionsCreateEnriched verifies that the create response
// carries the user and category summaries.
func (suite *TestSuiteStandard) TestTransactionsCreateEnriched() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Ayu"})
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries", Description: "Everything edible"})

	categoryID := category.Data.ID
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID:     user.Data.ID,
		CategoryID: &categoryID,
		Note:       "Weekly shopping",
	})

	assert.Equal(suite.T(), "Ayu", transaction.Data.User.Name)
	require.NotNil(suite.T(), transaction.Data.Category)
	assert.Equal(suite.T(), "Groceries", transaction.Data.Category.Name)
	assert.Equal(suite.T(), "Everything edible", transaction.Data.Category.Description)
}

// TestTransactionsCreateNoCategory verifies that a transaction without a
// category is created and reported with a null category.
func (suite *TestSuiteStandard) TestTransactionsCreateNoCategory() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})
	assert.Nil(suite.T(), transaction.Data.Category)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	unknownCategory := uuid.New()

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken JSON", `{ "note": `, http.StatusBadRequest},
		{"Unknown user", v1.TransactionEditable{UserID: uuid.New(), Type: models.TypeIncome, Amount: decimal.NewFromInt(10)}, http.StatusBadRequest},
		{"Unknown category", v1.TransactionEditable{UserID: user.Data.ID, CategoryID: &unknownCategory, Type: models.TypeIncome, Amount: decimal.NewFromInt(10)}, http.StatusBadRequest},
		{"Invalid type", v1.TransactionEditable{UserID: user.Data.ID, Type: "transfer", Amount: decimal.NewFromInt(10)}, http.StatusBadRequest},
		{"Negative amount", v1.TransactionEditable{UserID: user.Data.ID, Type: models.TypeIncome, Amount: decimal.NewFromInt(-10)}, http.StatusBadRequest},
		{"Fractional amount", v1.TransactionEditable{UserID: user.Data.ID, Type: models.TypeIncome, Amount: decimal.NewFromFloat(1.5)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestTransactionsBudget verifies the budget rule through the API: an
// expense is only accepted when the month's income covers all expenses.
func (suite *TestSuiteStandard) TestTransactionsBudget() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	// No income yet: every expense is rejected
	response := createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: user.Data.ID,
		Type:   models.TypeExpense,
		Amount: decimal.NewFromInt(1),
	}, http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrBudgetExceeded.Error(), *response.Error)

	createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: user.Data.ID,
		Type:   models.TypeIncome,
		Amount: decimal.NewFromInt(100),
	})

	// Covered exactly
	createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: user.Data.ID,
		Type:   models.TypeExpense,
		Amount: decimal.NewFromInt(100),
	})

	// The budget is used up now
	createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: user.Data.ID,
		Type:   models.TypeExpense,
		Amount: decimal.NewFromInt(1),
	}, http.StatusBadRequest)
}

// TestTransactionsGetFiltered verifies listing, pagination and search.
func (suite *TestSuiteStandard) TestTransactionsGetFiltered() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	other := createTestUser(suite.T(), v1.UserEditable{})

	for i := 0; i < 15; i++ {
		createTestTransaction(suite.T(), v1.TransactionEditable{
			UserID: user.Data.ID,
			Note:   fmt.Sprintf("Note %d", i),
			Date:   time.Now().Add(-time.Duration(i) * time.Hour),
		})
	}
	createTestTransaction(suite.T(), v1.TransactionEditable{UserID: other.Data.ID, Note: "Not yours"})

	tests := []struct {
		name      string
		query     string
		count     int
		total     int64
		totalPage int
	}{
		{"first page", fmt.Sprintf("user=%s", user.Data.ID), 10, 15, 2},
		{"second page", fmt.Sprintf("user=%s&page=2", user.Data.ID), 5, 15, 2},
		{"small limit", fmt.Sprintf("user=%s&limit=4", user.Data.ID), 4, 15, 4},
		{"search match", fmt.Sprintf("user=%s&search=Note%%201", user.Data.ID), 6, 6, 1},
		{"search no match", fmt.Sprintf("user=%s&search=Not%%20yours", user.Data.ID), 0, 0, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
			require.NotNil(t, response.Pagination)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, tt.totalPage, response.Pagination.TotalPage)
		})
	}
}

// TestTransactionsGetOrder verifies that listings are sorted most recent
// first.
func (suite *TestSuiteStandard) TestTransactionsGetOrder() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	older := createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: user.Data.ID,
		Date:   time.Now().Add(-24 * time.Hour),
	})
	newer := createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: user.Data.ID,
		Date:   time.Now(),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?user=%s", user.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), newer.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), older.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidQuery() {
	tests := []struct {
		name  string
		query string
	}{
		{"missing user", ""},
		{"user not a UUID", "user=not-a-uuid"},
		{"page not a number", "user=" + uuid.New().String() + "&page=two"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestTransactionsUpdate verifies partial updates and the budget
// re-check against the proposed values.
func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: user.Data.ID,
		Type:   models.TypeIncome,
		Amount: decimal.NewFromInt(100),
	})
	expense := createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: user.Data.ID,
		Type:   models.TypeExpense,
		Amount: decimal.NewFromInt(100),
		Note:   "Initial note",
	})

	url := fmt.Sprintf("http://example.com/v1/transactions/%s", expense.Data.ID)

	// An edit that does not touch the amount is fine even though the
	// budget is fully used
	r := test.Request(suite.T(), http.MethodPatch, url, map[string]string{"note": "Updated note"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Updated note", response.Data.Note)

	// Raising the amount past the income is rejected
	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"amount": 101})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrBudgetExceeded.Error(), *response.Error)

	// The rejected update did not change the record
	r = test.Request(suite.T(), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(100)), "amount is %s", response.Data.Amount)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateInvalid() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})
	url := fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID)

	tests := []struct {
		name   string
		url    string
		body   any
		status int
	}{
		{"Broken JSON", url, `{ "note": `, http.StatusBadRequest},
		{"Non-existing transaction", fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), map[string]string{"note": "x"}, http.StatusNotFound},
		{"Invalid UUID", "http://example.com/v1/transactions/not-a-uuid", map[string]string{"note": "x"}, http.StatusBadRequest},
		{"Invalid type", url, map[string]string{"type": "transfer"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestTransactionsDelete verifies that deletion works and is never
// blocked by the budget state.
func (suite *TestSuiteStandard) TestTransactionsDelete() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	income := createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: user.Data.ID,
		Type:   models.TypeIncome,
		Amount: decimal.NewFromInt(100),
	})
	createTestTransaction(suite.T(), v1.TransactionEditable{
		UserID: user.Data.ID,
		Type:   models.TypeExpense,
		Amount: decimal.NewFromInt(100),
	})

	// Deleting the covering income is allowed
	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", income.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Deleting it again returns a 404
	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", income.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/transactions/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
