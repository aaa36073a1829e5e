package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidDate indicates a date input that is not a YYYY-MM-DD calendar day.
var ErrInvalidDate = errors.New("invalid date")

// ErrInvalidRange indicates a date range whose start falls after its end.
var ErrInvalidRange = errors.New("invalid date range")

// ErrInvalidShopID indicates a malformed shop identifier.
var ErrInvalidShopID = errors.New("invalid shop id")

// ErrInvalidCustomerID indicates a malformed customer identifier.
var ErrInvalidCustomerID = errors.New("invalid customer id")

// ErrShopNotFound indicates that the referenced shop has no record.
var ErrShopNotFound = errors.New("shop not found")

// ErrSettingsNotFound indicates that the referenced shop has no settings record.
var ErrSettingsNotFound = errors.New("settings not found")

// ErrReportGeneration indicates a failure while rendering or persisting a
// report artifact. The underlying cause is wrapped for diagnostics.
var ErrReportGeneration = errors.New("report generation failed")

// AppError carries an HTTP-equivalent status code alongside the wrapped cause.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
