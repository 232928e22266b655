// Package httperr defines the closed error taxonomy of the API and the
// single terminal stage that maps an error onto a status code and the
// response envelope {error, message?, details?}.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Status  int          `json:"-"`
	Err     string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Err + ": " + e.Message
	}
	return e.Err
}

func Validation(details []FieldError) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Err:     "Erro de validação",
		Details: details,
	}
}

func BadRequest(err, message string) *Error {
	return &Error{Status: http.StatusBadRequest, Err: err, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Err: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Err: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Err: message}
}

func Forbidden(err, message string) *Error {
	return &Error{Status: http.StatusForbidden, Err: err, Message: message}
}

func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Err: message}
}

func Upload(status int, err, message string) *Error {
	return &Error{Status: status, Err: err, Message: message}
}

// Respond is the terminal error handler: every repository, usecase and
// middleware error ends up here. Unclassified errors become a 500.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, apiErr)
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, &Error{
		Status: http.StatusInternalServerError,
		Err:    "Erro interno do servidor",
	})
}
