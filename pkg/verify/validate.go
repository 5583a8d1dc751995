package verify

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// RUT is a correlative paired with its check character.
type RUT struct {
	Correlative uint32   `json:"correlative" yaml:"correlative"`
	Verifier    Verifier `json:"verifier" yaml:"verifier"`
}

// NewRUT pairs correlative with its computed check character.
func NewRUT(correlative uint32) (RUT, error) {
	v, err := Checksum(uint64(correlative))
	if err != nil {
		return RUT{}, err
	}
	return RUT{Correlative: correlative, Verifier: v}, nil
}

// String returns "correlative-verifier", e.g. "12345678-5".
func (r RUT) String() string {
	return strconv.FormatUint(uint64(r.Correlative), 10) + "-" + r.Verifier.String()
}

// Valid reports whether the verifier matches the correlative.
func (r RUT) Valid() bool {
	ok, err := ValidateRUT(r.Correlative, r.Verifier.String())
	return err == nil && ok
}

// ValidateRUT reports whether verifier is the check character of digits.
// The comparison is case-insensitive. An error is returned only for a
// malformed verifier; a well-formed but wrong one yields false.
func ValidateRUT(digits uint32, verifier string) (bool, error) {
	v, err := ParseVerifier(verifier)
	if err != nil {
		return false, err
	}
	expected, err := Checksum(uint64(digits))
	if err != nil {
		return false, err
	}
	return v == expected, nil
}

// ValidateRUTString is ValidateRUT for a correlative given as a digit string.
// Empty inputs are rejected before anything is parsed.
func ValidateRUTString(digits, verifier string) (bool, error) {
	if digits == "" {
		return false, &Error{Kind: KindEmptyDigits}
	}
	if verifier == "" {
		return false, &Error{Kind: KindEmptyVerifier}
	}
	n, err := ParseNumeric(digits)
	if err != nil {
		return false, err
	}
	return ValidateRUT(n, verifier)
}

// ParseRUT splits a written RUT into correlative and verifier. It accepts
// "12.345.678-5", "12345678-5" and "123456785". The pair is not checked;
// call Valid on the result.
func ParseRUT(s string) (RUT, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")

	var body, verifier string
	if i := strings.LastIndexByte(s, '-'); i >= 0 {
		body, verifier = s[:i], s[i+1:]
	} else if s != "" {
		_, size := utf8.DecodeLastRuneInString(s)
		body, verifier = s[:len(s)-size], s[len(s)-size:]
	}

	if body == "" {
		return RUT{}, &Error{Kind: KindEmptyDigits}
	}
	if verifier == "" {
		return RUT{}, &Error{Kind: KindEmptyVerifier}
	}
	n, err := ParseNumeric(body)
	if err != nil {
		return RUT{}, err
	}
	v, err := ParseVerifier(verifier)
	if err != nil {
		return RUT{}, err
	}
	return RUT{Correlative: n, Verifier: v}, nil
}
