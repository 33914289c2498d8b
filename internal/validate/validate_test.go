package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ivms/internal/apperr"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,len=10,numeric"`
	Role  string `json:"role" validate:"omitempty,oneof=Admin User"`
}

func TestStructValid(t *testing.T) {
	err := Struct(sample{Email: "a@example.com", Phone: "9876543210", Role: "Admin"})
	assert.NoError(t, err)
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{Email: "nope", Phone: "12", Role: "Root"})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be a valid email address", verr.Fields["email"])
	assert.Equal(t, "must be exactly 10 characters", verr.Fields["phone"])
	assert.Equal(t, "must be one of: Admin User", verr.Fields["role"])
}

func TestStructRequired(t *testing.T) {
	err := Struct(sample{})

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["email"])
	assert.Equal(t, "is required", verr.Fields["phone"])
	assert.NotContains(t, verr.Fields, "role")
}
