package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	// Estimation.
	UnknownCategory failure.ErrorCode = "UnknownCategory" // value outside an encoding table
	MissingField    failure.ErrorCode = "MissingField"    // field absent where the pipeline requires one
	InvalidValue    failure.ErrorCode = "InvalidValue"    // value cannot be coerced to a number
	ScorerFailure   failure.ErrorCode = "ScorerFailure"   // model call failed or returned a non-finite price
	InvalidModel    failure.ErrorCode = "InvalidModel"
)
