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

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure in a collaborator (storage, id generation).
var ErrInternal = errors.New("internal error")

// Ledger outcomes. Each wraps one of the categories above so callers can match
// either the precise outcome or its category with errors.Is.
var (
	ErrBankDoesNotExist      = fmt.Errorf("%w: bank does not exist", ErrNotFound)
	ErrBankNameAlreadyExists = fmt.Errorf("%w: bank name already exists", ErrDuplicate)
	ErrBankCreationFailed    = fmt.Errorf("%w: bank creation failed", ErrValidation)

	ErrUsernameAlreadyExists = fmt.Errorf("%w: username already exists", ErrDuplicate)
	ErrAccountCreationFailed = fmt.Errorf("%w: account creation failed", ErrValidation)
	ErrInvalidAccountData    = fmt.Errorf("%w: invalid account data", ErrAccountCreationFailed)
	ErrInvalidEmployeeData   = fmt.Errorf("%w: invalid employee data", ErrValidation)
	ErrUserNotFound          = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrLastAdmin             = fmt.Errorf("%w: bank must keep an active admin", ErrValidation)

	ErrInvalidAmount  = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrTransferFailed = fmt.Errorf("%w: transfer failed", ErrValidation)

	ErrAuthenticationFailed = fmt.Errorf("%w: authentication failed", ErrUnauthorized)
	ErrAccessDenied         = fmt.Errorf("%w: access denied", ErrForbidden)

	ErrCurrencyAlreadyExists = fmt.Errorf("%w: currency already exists", ErrDuplicate)
	ErrCurrencyDoesNotExist  = fmt.Errorf("%w: currency does not exist", ErrNotFound)
	ErrInvalidExchangeRate   = fmt.Errorf("%w: exchange rate must be positive", ErrValidation)
	ErrBaseCurrencyLocked    = fmt.Errorf("%w: base currency cannot be changed", ErrValidation)

	ErrTransactionNotFound = fmt.Errorf("%w: transaction not found", ErrNotFound)
	ErrNoTransactions      = fmt.Errorf("%w: no transactions", ErrNotFound)
	ErrRevertNotSupported  = fmt.Errorf("%w: only transfers can be reverted", ErrValidation)
	ErrAlreadyReverted     = fmt.Errorf("%w: transfer already reverted", ErrValidation)
)

// AppError carries a status-like code alongside a wrapped cause. Storage
// adapters use it for infrastructure failures that have no ledger meaning.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// Is reports whether target is ErrInternal for 5xx codes, so handlers can
// treat every AppError from storage as an internal failure.
func (e *AppError) Is(target error) bool {
	return target == ErrInternal && e.Code >= 500
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
