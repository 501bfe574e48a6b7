package errors

import (
	"errors"
	"net/http"
)

// ErrorString carries an HTTP status alongside the message so the response
// helpers can map domain failures without a switch per call site.
type ErrorString struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorString) Error() string {
	return e.Message
}

func (e *ErrorString) StatusCode() int {
	return e.Code
}

func BadRequest(message string) error {
	return &ErrorString{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// UnprocessableEntity marks a payload that parsed but failed a field-level
// constraint (inverted date range, rating out of bounds, negative amount).
func UnprocessableEntity(message string) error {
	return &ErrorString{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	}
}

func NotFound(message string) error {
	return &ErrorString{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// Conflict marks a write that references a parent row which does not exist.
func Conflict(message string) error {
	return &ErrorString{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func UnauthorizedError(message string) error {
	return &ErrorString{
		Code:    http.StatusUnauthorized,
		Message: message,
	}
}

func InternalServerError(message string) error {
	return &ErrorString{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func StatusCode(err error) int {
	var e *ErrorString
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}
