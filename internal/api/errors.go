package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/biztime-api/internal/api/shared"
	"github.com/phrazzld/biztime-api/internal/domain"
	"github.com/phrazzld/biztime-api/internal/store"
)

// Request level errors raised by handlers before any service call.
var (
	// ErrNotAllowed is returned when a body tries to change an immutable key.
	ErrNotAllowed = errors.New("Not allowed")

	// ErrCompanyCodeRequired is returned when an association names no company.
	ErrCompanyCodeRequired = errors.New("Company code is required to make an association")
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, ErrNotAllowed),
		errors.Is(err, ErrCompanyCodeRequired),
		errors.Is(err, shared.ErrInvalidJSON),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var (
		validationErrs validator.ValidationErrors
		fieldErr       *domain.ValidationError
	)

	switch {
	// Not found errors
	case errors.Is(err, store.ErrCompanyNotFound):
		return "Company not found"
	case errors.Is(err, store.ErrIndustryNotFound):
		return "Industry not found"
	case errors.Is(err, store.ErrInvoiceNotFound):
		return "Invoice not found"
	case errors.Is(err, store.ErrNotFound):
		return "Not Found"

	// Conflict errors
	case errors.Is(err, store.ErrCompanyExists):
		return "Company already exists"
	case errors.Is(err, store.ErrIndustryExists):
		return "Industry already exists"
	case errors.Is(err, store.ErrDuplicate):
		return "Entity already exists"

	// Bad request errors
	case errors.Is(err, ErrNotAllowed):
		return ErrNotAllowed.Error()
	case errors.Is(err, ErrCompanyCodeRequired):
		return ErrCompanyCodeRequired.Error()
	case errors.Is(err, shared.ErrInvalidJSON):
		return "Invalid request format"
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)
	case errors.Is(err, domain.ErrEmptyCompanyName):
		return "Company name cannot be empty"
	case errors.Is(err, domain.ErrEmptyIndustryName):
		return "Industry name cannot be empty"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Amount must be greater than zero"
	case errors.As(err, &fieldErr):
		return fmt.Sprintf("Invalid %s: %s", fieldErr.Field, fieldErr.Message)
	case errors.Is(err, domain.ErrValidation):
		return "Validation error"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns validator failures into a message naming the
// first offending JSON field, without echoing the rejected value.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "gt", "gte":
		return "must be greater than zero"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. defaultMsg replaces the
// generic message for unexpected (5xx) failures when it is set. Conflicts are
// logged at WARN.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	statusCode := MapErrorToStatusCode(err)

	message := GetSafeErrorMessage(err)
	if statusCode == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}

	var opts []shared.ResponseOption
	if statusCode == http.StatusConflict {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, statusCode, message, err, opts...)
}
