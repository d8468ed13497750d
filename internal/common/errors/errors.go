package errors

import (
	"fmt"
)

type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Status  int    `json:"status"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
}

// Common error codes
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeConflict         = "CONFLICT"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeBadRequest       = "BAD_REQUEST"
	CodeUnprocessable    = "UNPROCESSABLE_ENTITY"
	CodeEmptySubmission  = "EMPTY_SUBMISSION"
	CodeUnknownQuestion  = "UNKNOWN_QUESTION"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
)

// Error constructors
func Validation(message string, details string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Details: details,
		Status:  400,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  404,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
		Status:  401,
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
		Status:  403,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
		Status:  409,
	}
}

func Internal(message string, details string) *AppError {
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Details: details,
		Status:  500,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: message,
		Status:  400,
	}
}

func Unprocessable(message string, details string) *AppError {
	return &AppError{
		Code:    CodeUnprocessable,
		Message: message,
		Details: details,
		Status:  422,
	}
}

// EmptySubmission rejects a quiz submission that carries no answers.
func EmptySubmission() *AppError {
	return &AppError{
		Code:    CodeEmptySubmission,
		Message: "submission contains no answers",
		Status:  400,
	}
}

// UnknownQuestion rejects a submission referencing a question id that does not
// belong to the culture being played.
func UnknownQuestion(questionID uint) *AppError {
	return &AppError{
		Code:    CodeUnknownQuestion,
		Message: "submitted answer references an unknown question",
		Details: fmt.Sprintf("question %d", questionID),
		Status:  422,
	}
}

// StoreUnavailable propagates a record store failure as a server error.
func StoreUnavailable(details string) *AppError {
	return &AppError{
		Code:    CodeStoreUnavailable,
		Message: "record store unavailable",
		Details: details,
		Status:  503,
	}
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code string) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}
