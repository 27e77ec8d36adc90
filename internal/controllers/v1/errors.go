package v1

import (
	"errors"
	"net/http"

	"github.com/dompetku/backend/internal/httputil"
	"github.com/dompetku/backend/internal/models"
	ledger_uuid "github.com/dompetku/backend/internal/uuid"
	"github.com/go-playground/validator/v10"
)

// httpError is used for error responses that only contain the error.
type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

var errUserParameterRequired = errors.New("the user query parameter must be set to the ID of a user")

// status returns the HTTP status code matching the error.
//
// Not found and the domain rule violations are recoverable caller
// errors, everything unrecognized is a server fault.
func status(err error) int {
	// Binding validation failures are caller errors
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrBudgetExceeded),
		errors.Is(err, models.ErrAmountInvalid),
		errors.Is(err, models.ErrTransactionTypeInvalid),
		errors.Is(err, models.ErrUserEmailNotUnique),
		errors.Is(err, models.ErrCategoryNameNotUnique),
		errors.Is(err, models.ErrReferenceMissing),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidQuery),
		errors.Is(err, ledger_uuid.ErrInvalid),
		errors.Is(err, errUserParameterRequired):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
