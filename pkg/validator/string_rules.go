package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// RequiredString fails for a string that is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: newError(field, "validation.required", "field is required", nil),
	}
}

// MaxLenString counts runes, not bytes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: newError(field, "validation.max_length", fmt.Sprintf("must be at most %d characters long", max), map[string]any{"max": max}),
	}
}

// OneOf validates that value is one of allowed. Matching is exact.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: newError(field, "validation.one_of", "must be one of: "+strings.Join(allowed, ", "), map[string]any{
			"allowed": allowed,
		}),
	}
}
