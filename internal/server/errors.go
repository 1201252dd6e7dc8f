package server

import (
	"fmt"
	"net/http"
)

// ErrSessionNotFound indicates no session exists for the given id.
type ErrSessionNotFound struct {
	SessionID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// ErrBankNotFound indicates no stored question bank exists for the given key.
type ErrBankNotFound struct {
	Key string
}

func (e *ErrBankNotFound) Error() string {
	return fmt.Sprintf("question bank not found: %s", e.Key)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrSessionNotFound, *ErrBankNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
