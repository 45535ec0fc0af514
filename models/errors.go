package models

import "fmt"

type ErrorNotFound struct {
	Resource string
	ID       any
}

func (e ErrorNotFound) Error() string {
	return fmt.Sprintf("%s not found - id: %v", e.Resource, e.ID)
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

// ErrorValidation is returned by the entity factories and setters.
type ErrorValidation struct {
	Field   string
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Field + ": " + e.Message
}
