package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name  string `validate:"required,min=1,max=255"`
	Notes string `validate:"max=10"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		err := ValidateStruct(&samplePayload{Name: "ok"})
		assert.NoError(t, err)
	})

	t.Run("missing required field", func(t *testing.T) {
		err := ValidateStruct(&samplePayload{})
		require.Error(t, err)

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "validation failed", validationErr.Message)
		assert.Contains(t, validationErr.Fields["Name"], "required")
	})

	t.Run("max length exceeded", func(t *testing.T) {
		err := ValidateStruct(&samplePayload{Name: "ok", Notes: strings.Repeat("x", 11)})
		require.Error(t, err)

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Fields["Notes"], "at most 10")
	})

	t.Run("details mirror the field map", func(t *testing.T) {
		err := ValidateStruct(&samplePayload{})

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))

		details := validationErr.Details()
		assert.Len(t, details, len(validationErr.Fields))
		assert.Equal(t, validationErr.Fields["Name"], details["Name"])
	})
}
