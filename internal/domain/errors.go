package domain

import "errors"

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrInternalError = errors.New("internal error")
	ErrUserNotFound  = errors.New("user not found")

	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrDemoAuthDisabled      = errors.New("demo auth disabled")
	ErrDemoAuthMisconfigured = errors.New("DEMO_USERNAME/DEMO_PASSWORD not configured")

	ErrCategoryRequired        = errors.New("categoryId is required")
	ErrConceptRequired         = errors.New("conceptId is required")
	ErrInvalidAmount           = errors.New("amount must be a positive integer in cents")
	ErrContentRequired         = errors.New("content is required")
	ErrContentTooLong          = errors.New("content exceeds maximum length")
	ErrDateRequired            = errors.New("date is required")
	ErrInvalidTransactionType  = errors.New("type must be 'ingreso' or 'egreso'")
	ErrInvalidDateRange        = errors.New("startDate must not be after endDate")
	ErrTransactionNotFound     = errors.New("Transaction not found")
	ErrCategoryNotFound        = errors.New("category not found")
	ErrConceptNotFound         = errors.New("concept not found")
	ErrConceptCategoryMismatch = errors.New("concept does not belong to category")

	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrNothingToExport    = errors.New("no transactions to export in the selected range")
)

// Validation constants
const (
	MaxContentLength = 255
)

var validationErrors = []error{
	ErrInvalidInput,
	ErrCategoryRequired,
	ErrConceptRequired,
	ErrInvalidAmount,
	ErrContentRequired,
	ErrContentTooLong,
	ErrDateRequired,
	ErrInvalidTransactionType,
	ErrInvalidDateRange,
	ErrConceptCategoryMismatch,
}

// IsValidationError reports whether err belongs to the invalid input family.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
