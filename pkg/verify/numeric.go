package verify

import (
	"errors"
	"strconv"
)

// ParseNumeric parses a canonical digit string as an unsigned 32-bit integer.
// Leading zeros are allowed and do not change the value.
func ParseNumeric(digits string) (uint32, error) {
	if digits == "" {
		return 0, &Error{Kind: KindEmptyDigits}
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(rune(digits[i])) {
			return 0, errInvalidDigits(digits, "")
		}
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errInvalidDigits(digits, "value overflows 32 bits")
		}
		return 0, errInvalidDigits(digits, err.Error())
	}
	return uint32(n), nil
}

// PPUToNumeric normalizes a raw plate and parses the result.
func PPUToNumeric(raw string) (uint32, error) {
	normalized, err := NormalizePPU(raw)
	if err != nil {
		return 0, err
	}
	return ParseNumeric(normalized)
}
