package v1

import (
	"fmt"
	"time"

	"github.com/dompetku/backend/internal/ledger"
	"github.com/dompetku/backend/internal/models"
	ledger_uuid "github.com/dompetku/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	UserID      uuid.UUID              `json:"userId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`              // ID of the user owning the transaction. Immutable after creation.
	CategoryID  *uuid.UUID             `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`          // ID of the category, optional
	Type        models.TransactionType `json:"type" example:"expense"`                                             // Either "income" or "expense"
	Amount      decimal.Decimal        `json:"amount" example:"1250" minimum:"0"`                                  // The amount in the smallest currency unit
	Date        time.Time              `json:"date" example:"2024-03-20T18:43:00.271152Z"`                         // Date of the transaction. Defaults to the current time.
	Note        string                 `json:"note" example:"Lunch" default:""`                                    // A short note
	Description string                 `json:"description" example:"Lunch with the team at the ramen place" default:""` // A longer description
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		UserID:      editable.UserID,
		CategoryID:  editable.CategoryID,
		Type:        editable.Type,
		Amount:      editable.Amount,
		Date:        editable.Date,
		Note:        editable.Note,
		Description: editable.Description,
	}
}

// TransactionUser is the summary of the owning user attached to every
// transaction in API responses.
type TransactionUser struct {
	ID     uuid.UUID `json:"id" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // ID of the user
	Name   string    `json:"name" example:"Ayu Lestari"`                        // Name of the user
	Email  string    `json:"email" example:"ayu@example.com"`                   // Email address
	Number string    `json:"number" example:"+62 812 0000 0000"`                // Phone number
}

// TransactionCategory is the category summary attached to transactions
// in API responses.
type TransactionCategory struct {
	Name        string `json:"name" example:"Groceries"`                        // Name of the category
	Description string `json:"description" example:"Everything edible"`        // Description of the category
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Category *TransactionCategory `json:"category"` // Category summary, null when the transaction has no category
	User     TransactionUser      `json:"user"`     // Summary of the owning user
	Links    TransactionLinks     `json:"links"`
}

// newTransaction returns the API v1 representation of the resource.
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	transaction := Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			UserID:      model.UserID,
			CategoryID:  model.CategoryID,
			Type:        model.Type,
			Amount:      model.Amount,
			Date:        model.Date,
			Note:        model.Note,
			Description: model.Description,
		},
		User: TransactionUser{
			ID:     model.User.ID,
			Name:   model.User.Name,
			Email:  model.User.Email,
			Number: model.User.Number,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}

	// Left-join semantics: a missing category never removes the
	// transaction, it is simply reported without one
	if model.Category != nil {
		transaction.Category = &TransactionCategory{
			Name:        model.Category.Name,
			Description: model.Category.Description,
		}
	}

	return transaction
}

type TransactionQueryFilter struct {
	UserID ledger_uuid.UUID `form:"user"`   // ID of the user to list transactions for
	Search string           `form:"search"` // Substring to search for in note and description
	Page   int              `form:"page"`   // The page to return. Defaults to 1.
	Limit  int              `form:"limit"`  // Maximum number of transactions per page. Defaults to 10.
}

// filter returns the typed filter for the query engine.
func (f TransactionQueryFilter) filter(page, limit int) ledger.TransactionFilter {
	return ledger.TransactionFilter{
		UserID: f.UserID.UUID,
		Search: f.Search,
		Page:   page,
		Limit:  limit,
	}
}

type TransactionListResponse struct {
	Data       []Transaction      `json:"data"`                                                          // List of transactions
	Error      *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *ledger.Pagination `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The Transaction data
}
