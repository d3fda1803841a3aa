package apperror

import (
	"errors"
	"net/http"
)

// Error carries the HTTP status a failure maps to. Handlers unwrap it with
// StatusOf; everything that is not an *Error becomes a 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// StatusOf returns the HTTP status for err and whether err is an app error.
func StatusOf(err error) (int, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status, true
	}
	return http.StatusInternalServerError, false
}

// IsNotFound reports whether err maps to a 404.
func IsNotFound(err error) bool {
	status, ok := StatusOf(err)
	return ok && status == http.StatusNotFound
}
