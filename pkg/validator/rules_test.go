package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clforge/clforge/pkg/validator"
)

func TestNumericRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{"required non-zero", validator.RequiredNum("n", 3), true},
		{"required zero", validator.RequiredNum("n", 0), false},
		{"min equal", validator.MinNum("n", 1, 1), true},
		{"min below", validator.MinNum[int64]("min", -1, 0), false},
		{"max equal", validator.MaxNum[int64]("max", 4294967295, 4294967295), true},
		{"max above", validator.MaxNum[int64]("max", 4294967296, 4294967295), false},
		{"range inside", validator.NumRange("n", 50, 1, 100), true},
		{"range lower edge", validator.NumRange("n", 1, 1, 100), true},
		{"range above", validator.NumRange("n", 101, 1, 100), false},
		{"lte equal", validator.LessOrEqual[int64]("min", 7, "max", 7), true},
		{"lte greater", validator.LessOrEqual[int64]("min", 10, "max", 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check())
		})
	}
}

func TestNumRange_Error(t *testing.T) {
	t.Parallel()

	rule := validator.NumRange("n", 0, 1, 10000)
	assert.Equal(t, "n", rule.Error.Field)
	assert.Equal(t, "validation.range", rule.Error.Code)
	assert.Equal(t, "must be between 1 and 10000", rule.Error.Message)
	assert.Equal(t, map[string]any{"field": "n", "min": 1, "max": 10000}, rule.Error.Params)
}

func TestStringRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{"required", validator.RequiredString("ppu", "AB1234"), true},
		{"required blank", validator.RequiredString("ppu", " \t"), false},
		{"max length runes", validator.MaxLenString("ppu", "ｂｂｃ１２", 5), true},
		{"max length exceeded", validator.MaxLenString("ppu", "ABCDEFG", 6), false},
		{"one of", validator.OneOf("output", "yaml", "text", "json", "yaml"), true},
		{"not one of", validator.OneOf("output", "xml", "text", "json", "yaml"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check())
		})
	}
}

func TestIdentifierRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		want bool
		code string
	}{
		{"plate", validator.ValidPPU("ppu", "PHZF55"), true, "validation.ppu"},
		{"plate with separators", validator.ValidPPU("ppu", "ab-12.34"), true, "validation.ppu"},
		{"plate unknown layout", validator.ValidPPU("ppu", "ABC1234"), false, "validation.ppu"},
		{"plate with vowel", validator.ValidPPU("ppu", "AEIO12"), false, "validation.ppu"},
		{"verifier digit", validator.ValidVerifier("verifier", "5"), true, "validation.verifier"},
		{"verifier lower k", validator.ValidVerifier("verifier", "k"), true, "validation.verifier"},
		{"verifier empty", validator.ValidVerifier("verifier", ""), false, "validation.verifier"},
		{"verifier two chars", validator.ValidVerifier("verifier", "10"), false, "validation.verifier"},
		{"rut", validator.ValidRUT("rut", "12.345.678-5"), true, "validation.rut"},
		{"rut wrong verifier", validator.ValidRUT("rut", "12.345.678-4"), false, "validation.rut"},
		{"rut garbage", validator.ValidRUT("rut", "abc"), false, "validation.rut"},
		{"correlative", validator.ValidCorrelative("digits", "0011222333"), true, "validation.correlative"},
		{"correlative overflow", validator.ValidCorrelative("digits", "4294967296"), false, "validation.correlative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check())
			assert.Equal(t, tt.code, tt.rule.Error.Code)
		})
	}
}
