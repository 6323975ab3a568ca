package models

import "fmt"

// ValidationError is a user-correctable failure carrying a human readable message.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError reports a failed read or write of locally persisted data.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s session: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
