// Package apperr defines the error taxonomy surfaced to API callers.
// None of these are fatal to the process; handlers translate them into
// structured HTTP responses via Status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"ivms/internal/schedule"
)

// ValidationError carries a field→message map for bad or missing input.
// The caller is expected to re-prompt.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NewFieldError is the single-field convenience form.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// ConflictError reports that a candidate slot overlaps an existing booking.
// AvailableSlots lists the remaining free intervals of the working day so
// the caller can offer alternatives.
type ConflictError struct {
	Message        string
	AvailableSlots []schedule.Interval
}

func NewConflict(message string, slots []schedule.Interval) *ConflictError {
	return &ConflictError{Message: message, AvailableSlots: slots}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NotFoundError reports an unknown entity id.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// InvalidStateError reports a transition attempted on a terminal booking.
type InvalidStateError struct {
	Status schedule.Status
}

func NewInvalidState(status schedule.Status) *InvalidStateError {
	return &InvalidStateError{Status: status}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("already %s", strings.ToLower(string(e.Status)))
}

// Status maps an error to its HTTP response code. Anything outside the
// taxonomy is an internal error.
func Status(err error) int {
	var (
		validation *ValidationError
		conflict   *ConflictError
		notFound   *NotFoundError
		state      *InvalidStateError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &state):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
