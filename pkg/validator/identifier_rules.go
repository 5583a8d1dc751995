package validator

import (
	"github.com/clforge/clforge/pkg/verify"
)

// ValidPPU validates that value is a plate in one of the recognized layouts
// whose letters all belong to the plate alphabet.
func ValidPPU(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := verify.NormalizePPU(value)
			return err == nil
		},
		Error: newError(field, "validation.ppu", "must be a valid vehicle plate (PPU)", nil),
	}
}

// ValidVerifier validates a single check character: '0'..'9', 'K' or 'k'.
func ValidVerifier(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := verify.ParseVerifier(value)
			return err == nil
		},
		Error: newError(field, "validation.verifier", "must be a single digit or K", nil),
	}
}

// ValidRUT validates a written RUT such as "12.345.678-5" including its
// check character.
func ValidRUT(field, value string) Rule {
	return Rule{
		Check: func() bool {
			r, err := verify.ParseRUT(value)
			return err == nil && r.Valid()
		},
		Error: newError(field, "validation.rut", "must be a valid RUT with a matching check character", nil),
	}
}

// ValidCorrelative validates a RUT correlative given as a string of digits.
func ValidCorrelative(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := verify.ParseNumeric(value)
			return err == nil
		},
		Error: newError(field, "validation.correlative", "must contain only digits and fit in 32 bits", nil),
	}
}
