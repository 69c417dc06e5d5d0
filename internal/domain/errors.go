package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidTransition is returned when a status change is not in the allowed set
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrUnknownStatus is returned when a status string is not recognised
	ErrUnknownStatus = errors.New("domain: unknown booking status")

	// ErrUnknownSubjectKind is returned when a subject kind string is not recognised
	ErrUnknownSubjectKind = errors.New("domain: unknown subject kind")

	// ErrRateTableOverlap is returned when two periods cover the same calendar day
	ErrRateTableOverlap = errors.New("domain: rate table periods overlap")

	// ErrRateTableGap is returned when some calendar day is not covered by any period
	ErrRateTableGap = errors.New("domain: rate table does not cover the whole year")

	// ErrInvalidPeriod is returned when a period has malformed boundaries or rates
	ErrInvalidPeriod = errors.New("domain: invalid rate period")
)

// TransitionError describes a rejected status change
type TransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

// Is makes errors.Is(err, ErrInvalidTransition) work for TransitionError
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// ValidationError collects field-scoped input errors
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string]string)}
}

// Add records a message for a field. The first message per field wins.
func (e *ValidationError) Add(field, msg string) {
	if _, exists := e.fields[field]; exists {
		return
	}
	e.fields[field] = msg
}

// HasErrors returns true if at least one field failed
func (e *ValidationError) HasErrors() bool {
	return len(e.fields) > 0
}

// Fields returns the field to message map
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError extracts a ValidationError from an error chain
func AsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}
