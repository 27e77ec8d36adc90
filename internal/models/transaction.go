package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the effect a transaction has on the monthly budget.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense record of a user.
//
// The category reference is weak: a transaction without a category is
// valid and deleting a category does not touch its transactions.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID `gorm:"index"`
	User        User
	CategoryID  *uuid.UUID
	Category    *Category `gorm:"constraint:OnDelete:SET NULL"`
	Type        TransactionType
	Date        time.Time       // Time of day is currently only used for sorting
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Non-negative, in the smallest currency unit
	Note        string
	Description string
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - verifies the type and the amount
//   - sets the timezone for the Date to UTC
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)
	t.Description = strings.TrimSpace(t.Description)

	if t.Type != TypeIncome && t.Type != TypeExpense {
		return ErrTransactionTypeInvalid
	}

	// Amounts are whole numbers of the smallest currency unit
	if t.Amount.IsNegative() || !t.Amount.IsInteger() {
		return ErrAmountInvalid
	}

	// Ensure that the category ID is nil and not a pointer to a nil UUID
	// when it is not set
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}
