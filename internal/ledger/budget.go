// Package ledger implements the domain operations of the transaction
// ledger: the monthly budget check, the create/update/delete commands
// and the listing queries.
//
// All operations take the database as an argument, nothing in this
// package reaches for global state of the persistence layer.
package ledger

import (
	"fmt"
	"time"

	"github.com/dompetku/backend/internal/models"
	"github.com/dompetku/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyAggregate is the income and expense sum of one user for one
// calendar month.
//
// It is computed fresh for every budget decision and never cached so
// that decisions always see the latest committed state.
type MonthlyAggregate struct {
	Month   types.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// AggregateMonth sums the user's transactions by type over the calendar
// month of the reference date.
func AggregateMonth(db *gorm.DB, userID uuid.UUID, month types.Month) (MonthlyAggregate, error) {
	var transactions []models.Transaction

	err := db.
		Where(&models.Transaction{UserID: userID}).
		Where("datetime(transactions.date) >= datetime(?)", month.First()).
		Where("datetime(transactions.date) < datetime(?)", month.AddDate(0, 1).First()).
		Find(&transactions).Error
	if err != nil {
		return MonthlyAggregate{}, err
	}

	aggregate := MonthlyAggregate{
		Month:   month,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, transaction := range transactions {
		// A stored amount that is not a whole non-negative number is a
		// data integrity fault. It must surface, not be coerced to zero.
		if transaction.Amount.IsNegative() || !transaction.Amount.IsInteger() {
			return MonthlyAggregate{}, fmt.Errorf("%w, stored amount of transaction %s is %s", models.ErrAmountInvalid, transaction.ID, transaction.Amount)
		}

		switch transaction.Type {
		case models.TypeIncome:
			aggregate.Income = aggregate.Income.Add(transaction.Amount)
		case models.TypeExpense:
			aggregate.Expense = aggregate.Expense.Add(transaction.Amount)
		}
	}

	return aggregate, nil
}

// Exclude removes a transaction's own contribution from the aggregate.
//
// This is used when re-evaluating an update: the old record is being
// replaced, counting it again would reject amount-neutral edits.
func (a MonthlyAggregate) Exclude(transaction models.Transaction) MonthlyAggregate {
	if !a.Month.Contains(transaction.Date) {
		return a
	}

	switch transaction.Type {
	case models.TypeIncome:
		a.Income = a.Income.Sub(transaction.Amount)
	case models.TypeExpense:
		a.Expense = a.Expense.Sub(transaction.Amount)
	}

	return a
}

// Admits decides whether a proposed transaction is admissible for the
// month: an expense is only admitted while the month's income covers
// all its expenses including the proposed one. Income is always
// admissible.
func (a MonthlyAggregate) Admits(kind models.TransactionType, amount decimal.Decimal) error {
	if kind != models.TypeExpense {
		return nil
	}

	if a.Income.LessThan(a.Expense.Add(amount)) {
		return models.ErrBudgetExceeded
	}

	return nil
}

// Evaluate decides whether a proposed transaction in the month of the
// reference date is admissible for the user. It is read-only.
//
// The reference date is explicit so that tests can pin the month.
func Evaluate(db *gorm.DB, userID uuid.UUID, reference time.Time, kind models.TransactionType, amount decimal.Decimal) error {
	if amount.IsNegative() || !amount.IsInteger() {
		return models.ErrAmountInvalid
	}

	// Income does not need the aggregate, it is never blocked
	if kind != models.TypeExpense {
		return nil
	}

	aggregate, err := AggregateMonth(db, userID, types.MonthOf(reference))
	if err != nil {
		return err
	}

	return aggregate.Admits(kind, amount)
}
