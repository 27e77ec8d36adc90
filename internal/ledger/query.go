package ledger

import (
	"fmt"

	"github.com/dompetku/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionFilter enumerates the supported listing filters.
type TransactionFilter struct {
	UserID uuid.UUID // Restrict the listing to this user
	Search string    // Substring matched against note and description
	Page   int       // 1-based page, defaults to 1
	Limit  int       // Page size, defaults to 10
}

// Pagination describes the page of a listing result.
type Pagination struct {
	Total     int64 `json:"total" example:"15"`    // Number of matching records over all pages
	Page      int   `json:"page" example:"2"`      // The returned page
	Limit     int   `json:"limit" example:"10"`    // Maximum number of records per page
	TotalPage int   `json:"totalPage" example:"2"` // Number of pages
}

// Transactions returns one page of the user's transactions, most recent
// first, with the category and user relations loaded.
//
// A transaction without a category is still returned, the relation is
// attached with left-join semantics.
func Transactions(db *gorm.DB, filter TransactionFilter) ([]models.Transaction, Pagination, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}

	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	q := db.
		Preload("Category").
		Preload("User").
		Where(&models.Transaction{UserID: filter.UserID}).
		// sqlite datetime only has second precision, the id breaks remaining ties
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC, transactions.id")

	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		q = q.Where(
			db.Where("transactions.note LIKE ?", like).
				Or(db.Where("transactions.description LIKE ?", like)),
		)
	}

	var transactions []models.Transaction
	err := q.Offset((page - 1) * limit).Limit(limit).Find(&transactions).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	var total int64
	err = q.Limit(-1).Offset(-1).Count(&total).Error
	if err != nil {
		return nil, Pagination{}, err
	}

	return transactions, Pagination{
		Total:     total,
		Page:      page,
		Limit:     limit,
		TotalPage: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// Transaction returns a single transaction with the category and user
// relations loaded.
func Transaction(db *gorm.DB, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction

	err := db.Preload("Category").Preload("User").First(&transaction, id).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}
