package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"ivms/internal/apperr"
	"ivms/internal/schedule"
)

func TestValidationErrorMessage(t *testing.T) {
	err := apperr.NewValidation(map[string]string{
		"email": "email must be a valid email address",
		"name":  "name is required",
	})
	assert.Equal(t, "validation failed: email: email must be a valid email address; name: name is required", err.Error())

	assert.Equal(t, "validation failed", apperr.NewValidation(nil).Error())
}

func TestInvalidStateErrorMessage(t *testing.T) {
	assert.Equal(t, "already approved", apperr.NewInvalidState(schedule.StatusApproved).Error())
	assert.Equal(t, "already rejected", apperr.NewInvalidState(schedule.StatusRejected).Error())
}

func TestNotFoundErrorMessage(t *testing.T) {
	assert.Equal(t, `booking "b-1" not found`, apperr.NewNotFound("booking", "b-1").Error())
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: apperr.NewFieldError("name", "name is required"), want: http.StatusBadRequest},
		{name: "conflict", err: apperr.NewConflict("slot taken", nil), want: http.StatusConflict},
		{name: "not found", err: apperr.NewNotFound("booking", "x"), want: http.StatusNotFound},
		{name: "invalid state", err: apperr.NewInvalidState(schedule.StatusApproved), want: http.StatusConflict},
		{name: "wrapped", err: fmt.Errorf("submit: %w", apperr.NewNotFound("booking", "x")), want: http.StatusNotFound},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "nil", err: nil, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.Status(tt.err))
		})
	}
}
