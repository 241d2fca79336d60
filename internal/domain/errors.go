package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"estate_price/pkg/errcodes"
)

// Error kinds raised while turning a property record into a price.
var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrMissingField    = errors.New("missing field")
	ErrInvalidValue    = errors.New("invalid value")
	ErrScorerFailure   = errors.New("scorer failure")
)

// AppError is a domain error carrying a transport-neutral code.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func UnknownCategory(field string, value any) *AppError {
	return WrapError(ErrUnknownCategory, errcodes.UnknownCategory, fmt.Sprintf("%s=%v", field, value))
}

func MissingField(field string) *AppError {
	return WrapError(ErrMissingField, errcodes.MissingField, field)
}

func InvalidValue(field string, value any, cause error) *AppError {
	if cause == nil {
		return WrapError(ErrInvalidValue, errcodes.InvalidValue, fmt.Sprintf("%s=%v", field, value))
	}

	return WrapError(
		fmt.Errorf("%w: %w", ErrInvalidValue, cause),
		errcodes.InvalidValue,
		fmt.Sprintf("%s=%v", field, value),
	)
}

func ScorerFailure(cause error) *AppError {
	return WrapError(fmt.Errorf("%w: %w", ErrScorerFailure, cause), errcodes.ScorerFailure, "score")
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}
