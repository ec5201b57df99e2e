package errs

import (
	"errors"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrBookUnavailable     = errors.New("book is not available")
	ErrInvalidLoanDuration = errors.New("loan period must be between 1 and 14 days")
	ErrAlreadyReturned     = errors.New("loan is already returned")
	ErrBookBorrowed        = errors.New("book is currently borrowed")
	ErrAlreadyExists       = errors.New("already exists")
	ErrStoreUnavailable    = errors.New("store unavailable")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
