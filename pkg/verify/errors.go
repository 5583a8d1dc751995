package verify

import (
	"errors"
	"fmt"
)

// Stage errors group the kinds raised by one part of the engine.
var (
	// ErrPPU is matched by every plate detection and normalization failure.
	ErrPPU = errors.New("ppu error")
	// ErrVerifier is matched by every digits, verifier and checksum failure.
	ErrVerifier = errors.New("verifier error")
	// ErrGenerate is matched by every generator failure.
	ErrGenerate = errors.New("generate error")
)

// Kind sentinels. An *Error matches the sentinel of its Kind with errors.Is.
var (
	ErrUnknownFormat         = errors.New("unknown ppu format")
	ErrInvalidLength         = errors.New("invalid length")
	ErrUnknownLetter         = errors.New("unknown letter")
	ErrEmptyLetter           = errors.New("empty letter")
	ErrUnknownDigraph        = errors.New("unknown digraph")
	ErrEmptyDigraph          = errors.New("empty digraph")
	ErrEmptyDigits           = errors.New("empty digits")
	ErrInvalidDigits         = errors.New("invalid digits")
	ErrEmptyVerifier         = errors.New("empty verifier")
	ErrInvalidVerifier       = errors.New("invalid verifier")
	ErrUnexpectedComputation = errors.New("unexpected verifier computation")
	ErrInvalidRange          = errors.New("invalid range")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInsufficientRange     = errors.New("insufficient range")
	ErrUnexpectedGeneration  = errors.New("unexpected generation")
)

// Kind identifies the failure carried by an *Error.
type Kind uint8

const (
	KindUnknownFormat Kind = iota + 1
	KindInvalidLength
	KindUnknownLetter
	KindEmptyLetter
	KindUnknownDigraph
	KindEmptyDigraph
	KindEmptyDigits
	KindInvalidDigits
	KindEmptyVerifier
	KindInvalidVerifier
	KindUnexpectedComputation
	KindInvalidRange
	KindInvalidInput
	KindInsufficientRange
	KindUnexpectedGeneration
)

var kindInfo = [...]struct {
	code     string
	sentinel error
	stage    error
}{
	KindUnknownFormat:         {"unknown_format", ErrUnknownFormat, ErrPPU},
	KindInvalidLength:         {"invalid_length", ErrInvalidLength, ErrPPU},
	KindUnknownLetter:         {"unknown_letter", ErrUnknownLetter, ErrPPU},
	KindEmptyLetter:           {"empty_letter", ErrEmptyLetter, ErrPPU},
	KindUnknownDigraph:        {"unknown_digraph", ErrUnknownDigraph, ErrPPU},
	KindEmptyDigraph:          {"empty_digraph", ErrEmptyDigraph, ErrPPU},
	KindEmptyDigits:           {"empty_digits", ErrEmptyDigits, ErrVerifier},
	KindInvalidDigits:         {"invalid_digits", ErrInvalidDigits, ErrVerifier},
	KindEmptyVerifier:         {"empty_verifier", ErrEmptyVerifier, ErrVerifier},
	KindInvalidVerifier:       {"invalid_verifier", ErrInvalidVerifier, ErrVerifier},
	KindUnexpectedComputation: {"unexpected_computation", ErrUnexpectedComputation, ErrVerifier},
	KindInvalidRange:          {"invalid_range", ErrInvalidRange, ErrGenerate},
	KindInvalidInput:          {"invalid_input", ErrInvalidInput, ErrGenerate},
	KindInsufficientRange:     {"insufficient_range", ErrInsufficientRange, ErrGenerate},
	KindUnexpectedGeneration:  {"unexpected_generation", ErrUnexpectedGeneration, ErrGenerate},
}

func (k Kind) valid() bool {
	return k > 0 && int(k) < len(kindInfo)
}

// String returns the snake_case code of the kind, e.g. "unknown_format".
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindInfo[k].code
}

// Internal reports whether the kind marks a state the algorithms never reach
// for well-formed input.
func (k Kind) Internal() bool {
	return k == KindUnexpectedComputation || k == KindUnexpectedGeneration
}

// Error is the structured error returned by every operation in the package.
// Only the fields relevant to Kind are set.
type Error struct {
	Kind Kind

	// Input is the offending value: the raw ppu, letter, digraph, digits,
	// verifier or the characters of a mis-sized segment.
	Input string

	// Expected and Actual are set for KindInvalidLength.
	Expected int
	Actual   int

	// Min and Max are set for KindInvalidRange.
	Min int64
	Max int64

	// Requested and Available are set for KindInsufficientRange.
	Requested uint64
	Available uint64

	// Reason details KindInvalidDigits, KindInvalidInput and KindUnexpectedGeneration.
	Reason string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnknownFormat:
		return fmt.Sprintf("ppu does not match any known format: %q", e.Input)
	case KindInvalidLength:
		return fmt.Sprintf("expected length %d, but got %d (%q)", e.Expected, e.Actual, e.Input)
	case KindUnknownLetter:
		return fmt.Sprintf("unknown letter: %q", e.Input)
	case KindEmptyLetter:
		return "letter cannot be empty"
	case KindUnknownDigraph:
		return fmt.Sprintf("unknown digraph: %q", e.Input)
	case KindEmptyDigraph:
		return "digraph cannot be empty"
	case KindEmptyDigits:
		return "digits cannot be empty"
	case KindInvalidDigits:
		if e.Reason != "" {
			return fmt.Sprintf("input must be only digits, but %q was given: %s", e.Input, e.Reason)
		}
		return fmt.Sprintf("input must be only digits, but %q was given", e.Input)
	case KindEmptyVerifier:
		return "verifier cannot be empty"
	case KindInvalidVerifier:
		return fmt.Sprintf("verifier must be a single '0'..'9' or 'K', but %q was given", e.Input)
	case KindUnexpectedComputation:
		return "unexpected verifier computation"
	case KindInvalidRange:
		return fmt.Sprintf("lower bound %d is greater than upper bound %d", e.Min, e.Max)
	case KindInvalidInput:
		return "invalid generator input: " + e.Reason
	case KindInsufficientRange:
		return fmt.Sprintf("requested %d ruts, but the range only holds %d", e.Requested, e.Available)
	case KindUnexpectedGeneration:
		return "unexpected generation failure: " + e.Reason
	}
	return "verify: " + e.Kind.String()
}

// Is matches the sentinel of the error's kind and the sentinel of its stage.
func (e *Error) Is(target error) bool {
	if !e.Kind.valid() {
		return false
	}
	info := kindInfo[e.Kind]
	return target == info.sentinel || target == info.stage
}

// KindOf returns the Kind of the first *Error in err's chain, or 0 if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func errUnknownFormat(ppu string) error {
	return &Error{Kind: KindUnknownFormat, Input: ppu}
}

func errInvalidLength(expected, actual int, chars string) error {
	return &Error{Kind: KindInvalidLength, Expected: expected, Actual: actual, Input: chars}
}

func errInvalidDigits(input, reason string) error {
	return &Error{Kind: KindInvalidDigits, Input: input, Reason: reason}
}

func errInvalidInput(reason string) error {
	return &Error{Kind: KindInvalidInput, Reason: reason}
}

func errUnexpectedGeneration(format string, args ...any) error {
	return &Error{Kind: KindUnexpectedGeneration, Reason: fmt.Sprintf(format, args...)}
}
