package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clforge/clforge/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "n", Message: "must be at least 1"})
		errs.Add(validator.ValidationError{Field: "verifier", Message: "must be a single digit or K"})

		assert.Equal(t, "validation failed: n: must be at least 1; verifier: must be a single digit or K", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "min", Message: "must be at least 0"})
	errs.Add(validator.ValidationError{Field: "max", Message: "must be at most 4294967295"})
	errs.Add(validator.ValidationError{Field: "min", Message: "must not be greater than max"})

	assert.True(t, errs.Has("min"))
	assert.False(t, errs.Has("n"))
	assert.Equal(t, []string{"must be at least 0", "must not be greater than max"}, errs.Get("min"))
	assert.Nil(t, errs.Get("n"))
	assert.Equal(t, []string{"min", "max"}, errs.Fields())
	assert.Equal(t, map[string][]string{
		"min": {"must be at least 0", "must not be greater than max"},
		"max": {"must be at most 4294967295"},
	}, errs.Map())

	var empty validator.ValidationErrors
	assert.Nil(t, empty.Map())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.MinNum("n", 5, 1),
			validator.RequiredString("ppu", "PHZF55"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing rule in order", func(t *testing.T) {
		err := validator.Apply(
			validator.MinNum("n", 0, 1),
			validator.RequiredString("ppu", "PHZF55"),
			validator.RequiredString("verifier", "  "),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "n", verrs[0].Field)
		assert.Equal(t, "validation.min", verrs[0].Code)
		assert.Equal(t, "verifier", verrs[1].Field)
		assert.Equal(t, "validation.required", verrs[1].Code)
	})

	t.Run("with no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestWhen(t *testing.T) {
	t.Parallel()

	failing := validator.RequiredString("rut", "")

	assert.Empty(t, validator.When(false, failing))
	assert.Len(t, validator.When(true, failing), 1)
	assert.NoError(t, validator.Apply(validator.When(false, failing)...))
	assert.Error(t, validator.Apply(validator.When(true, failing)...))
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.RequiredString("ppu", ""))
	wrapped := fmt.Errorf("bind request: %w", err)

	assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	assert.True(t, validator.IsValidationError(wrapped))
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
}
