package ledger

import (
	"time"

	"github.com/dompetku/backend/internal/models"
	"github.com/dompetku/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTransaction runs the budget check for the proposed transaction
// and persists it when it is admissible.
//
// Creation is for a brand-new record, it never loads a prior one.
func CreateTransaction(db *gorm.DB, transaction models.Transaction, now time.Time) (models.Transaction, error) {
	err := withGuard(db, transaction.UserID, func(db *gorm.DB) error {
		err := Evaluate(db, transaction.UserID, now, transaction.Type, transaction.Amount)
		if err != nil {
			return err
		}

		return db.Create(&transaction).Error
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// UpdateTransaction applies a partial update to an existing transaction.
//
// fields lists the names of the fields present in the request body;
// only those are written. The budget check runs against the proposed
// post-update values with the old record's own contribution removed
// from the aggregate, so an amount-neutral edit is always admissible.
func UpdateTransaction(db *gorm.DB, id uuid.UUID, patch models.Transaction, fields []any, now time.Time) (models.Transaction, error) {
	var transaction models.Transaction

	err := db.First(&transaction, id).Error
	if err != nil {
		return models.Transaction{}, err
	}

	err = withGuard(db, transaction.UserID, func(db *gorm.DB) error {
		proposed := merge(transaction, patch, fields)

		if proposed.Type == models.TypeExpense {
			if proposed.Amount.IsNegative() || !proposed.Amount.IsInteger() {
				return models.ErrAmountInvalid
			}

			aggregate, err := AggregateMonth(db, transaction.UserID, types.MonthOf(now))
			if err != nil {
				return err
			}

			err = aggregate.Exclude(transaction).Admits(proposed.Type, proposed.Amount)
			if err != nil {
				return err
			}
		}

		return db.Model(&transaction).Select("", fields...).Updates(proposed).Error
	})
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// merge applies the named fields of the patch onto the existing record.
// The identifier and the owner are immutable and never merged.
func merge(existing, patch models.Transaction, fields []any) models.Transaction {
	proposed := existing

	for _, field := range fields {
		switch field {
		case "Type":
			proposed.Type = patch.Type
		case "Amount":
			proposed.Amount = patch.Amount
		case "Date":
			proposed.Date = patch.Date
		case "CategoryID":
			proposed.CategoryID = patch.CategoryID
		case "Note":
			proposed.Note = patch.Note
		case "Description":
			proposed.Description = patch.Description
		}
	}

	return proposed
}

// DeleteTransaction removes the transaction. Removal can only improve
// the budget balance, there is no budget re-check.
func DeleteTransaction(db *gorm.DB, id uuid.UUID) error {
	var transaction models.Transaction

	err := db.First(&transaction, id).Error
	if err != nil {
		return err
	}

	return db.Delete(&transaction).Error
}
