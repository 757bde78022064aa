package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserAlreadyExists   = errors.New("username already taken")
	ErrMissingCredentials  = errors.New("username and password are required")
	ErrInvalidCredentials  = errors.New("incorrect username or password")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenMalformed      = errors.New("token malformed")
	ErrTokenMissingSubject = errors.New("token has no subject")
	ErrInference           = errors.New("inference failed")
	ErrInternal            = errors.New("internal server error")
)

// ValidationError reports a single field that failed validation. Field holds
// the external column name as it appears on the wire.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
