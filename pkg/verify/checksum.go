package verify

import "unicode/utf8"

// Verifier is a check character: '0'..'9' or 'K'.
type Verifier byte

// VerifierK is the check character of remainder 10.
const VerifierK Verifier = 'K'

// weights are applied cyclically from the least significant digit.
var weights = [...]uint64{2, 3, 4, 5, 6, 7}

// Checksum computes the modulo-11 check character of n.
//
// Digits are weighted 2, 3, 4, 5, 6, 7, 2, 3, ... from the least significant
// one and summed; the remainder 11 - sum%11 maps 11 to '0', 10 to 'K' and
// 1..9 to the matching digit. For example 12345678 weighs to 138, 138%11 is 6
// and the verifier is '5'.
func Checksum(n uint64) (Verifier, error) {
	var sum uint64
	for i := 0; ; i++ {
		sum += (n % 10) * weights[i%len(weights)]
		n /= 10
		if n == 0 {
			break
		}
	}
	return verifierFor(11 - sum%11)
}

func verifierFor(remainder uint64) (Verifier, error) {
	switch {
	case remainder == 11:
		return '0', nil
	case remainder == 10:
		return VerifierK, nil
	case remainder <= 9:
		return Verifier('0' + remainder), nil
	}
	return 0, &Error{Kind: KindUnexpectedComputation}
}

// ParseVerifier parses a single check character. A lower-case 'k' is accepted.
func ParseVerifier(s string) (Verifier, error) {
	if s == "" {
		return 0, &Error{Kind: KindEmptyVerifier}
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, &Error{Kind: KindInvalidVerifier, Input: s}
	}
	v := Verifier(s[0])
	if v == 'k' {
		v = VerifierK
	}
	if !v.Valid() {
		return 0, &Error{Kind: KindInvalidVerifier, Input: s}
	}
	return v, nil
}

// Valid reports whether v is one of '0'..'9' or 'K'.
func (v Verifier) Valid() bool {
	return v == VerifierK || (v >= '0' && v <= '9')
}

func (v Verifier) String() string {
	return string(rune(v))
}

// MarshalText encodes the verifier as a one-character string. The zero
// Verifier encodes as an empty string.
func (v Verifier) MarshalText() ([]byte, error) {
	if v == 0 {
		return []byte{}, nil
	}
	if !v.Valid() {
		return nil, &Error{Kind: KindInvalidVerifier, Input: v.String()}
	}
	return []byte{byte(v)}, nil
}

// UnmarshalText decodes a one-character string, accepting 'k'.
func (v *Verifier) UnmarshalText(text []byte) error {
	parsed, err := ParseVerifier(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
