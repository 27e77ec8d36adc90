package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrBudgetExceeded is returned when an expense would exceed the
	// income recorded for the month it falls into.
	ErrBudgetExceeded = errors.New("this month's income does not cover this expense")

	ErrAmountInvalid          = errors.New("the amount must be a non-negative whole number of the smallest currency unit")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be income or expense")

	ErrUserEmailNotUnique    = errors.New("the email address is already used by another user")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrReferenceMissing      = errors.New("there is no resource for the ID you specified in the reference to another resource")
)
