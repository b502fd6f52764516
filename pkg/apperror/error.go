// Package apperror defines the error type the HTTP layer translates into
// API responses. Usecases return these; the error middleware maps anything
// else to a generic 500.
package apperror

import "net/http"

// AppError carries the HTTP status the delivery layer should respond with.
// Error() returns only the client-safe message; a wrapped cause stays in Err
// for logs.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Err }

func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func BadRequest(message string) *AppError { return New(http.StatusBadRequest, message) }

func Unauthorized(message string) *AppError { return New(http.StatusUnauthorized, message) }

func Forbidden(message string) *AppError { return New(http.StatusForbidden, message) }

func NotFound(message string) *AppError { return New(http.StatusNotFound, message) }

func Conflict(message string) *AppError { return New(http.StatusConflict, message) }

func Internal(err error) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
}
