package validator

import "fmt"

// RequiredNum fails for the zero value of T.
func RequiredNum[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool { return value != zero },
		Error: newError(field, "validation.required", "field is required", nil),
	}
}

// MinNum validates that value >= min.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool { return value >= min },
		Error: newError(field, "validation.min", fmt.Sprintf("must be at least %v", min), map[string]any{"min": min}),
	}
}

// MaxNum validates that value <= max.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool { return value <= max },
		Error: newError(field, "validation.max", fmt.Sprintf("must be at most %v", max), map[string]any{"max": max}),
	}
}

// NumRange validates that min <= value <= max.
func NumRange[T Numeric](field string, value T, min, max T) Rule {
	return Rule{
		Check: func() bool { return value >= min && value <= max },
		Error: newError(field, "validation.range", fmt.Sprintf("must be between %v and %v", min, max), map[string]any{
			"min": min,
			"max": max,
		}),
	}
}

// LessOrEqual validates that one field does not exceed another, e.g. a lower
// bound against its upper bound.
func LessOrEqual[T Numeric](field string, value T, otherField string, other T) Rule {
	return Rule{
		Check: func() bool { return value <= other },
		Error: newError(field, "validation.lte_field", fmt.Sprintf("must not be greater than %s", otherField), map[string]any{
			"other": otherField,
		}),
	}
}
