package errors

import (
	"errors"
	"fmt"
)

const (
	ErrFailedAuditLedger           = "Failed to audit ledger"
	ErrorInvalidOpeningBalance     = "Invalid opening balance"
	ErrorFailedToRunTheServer      = "Failed to run the server"
	ErrorFailedToShutdownTheServer = "Failed to shutdown the server"
	ErrFailedDecodeRequestBody     = "Failed to decode request body"
	ErrInvalidRequestBody          = "Invalid request body"
	ErrFailedProcessTransaction    = "Failed to process transaction"
	ErrUserIDRequired              = "User ID is required"
	ErrInvalidUserID               = "Invalid User ID"
	ErrUserNotFound                = "User not found"
)

type BadRequestError struct {
	Message string
}

func NewBadRequestError(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("Bad request: %s", e.Message)
}

type NotFoundError struct {
	Message string
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

type InsufficientFundsError struct{}

func NewInsufficientFundsError() *InsufficientFundsError {
	return &InsufficientFundsError{}
}

func (e *InsufficientFundsError) Error() string {
	return "insufficient funds"
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
