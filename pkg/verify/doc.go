// Package verify checks and generates Chilean identifiers: vehicle plates
// (PPU) and tax numbers (RUT) protected by a modulo-11 check character.
//
// The package performs arithmetic validation only. It does not know whether
// an identifier is actually assigned to a person or a vehicle.
//
// # Architecture
//
// A raw plate flows through a fixed pipeline:
//
//	raw ─▶ DetectFormat ─▶ NormalizePPU ─▶ ParseNumeric ─▶ Checksum
//
//   - Alphabet tables (alphabet.go) map plate letters and two-letter series
//     to digit codes. They are built once at init and only read afterwards.
//   - The format table (format.go) is a closed set of layouts: LLNNNN,
//     LLLLNN, LLLNNN, LLLNN and the canonical NNNNNN. Input is folded rune
//     by rune with golang.org/x/text (full-width narrowed, accents dropped,
//     upper-cased) before its shape is matched; runes that expand are rejected.
//   - NormalizePPU substitutes the letter segment and pads it to the fixed
//     six-digit canonical width; it is idempotent on canonical strings.
//   - Checksum weights the digits 2..7 cyclically from the right and maps
//     11 - sum%11 to '0'..'9' or 'K'.
//   - Generate samples distinct correlatives from a range without
//     replacement using a seedable PCG stream local to the call.
//
// Every function is pure and safe for concurrent use.
//
// # Usage
//
//	p, err := verify.ParsePPU("PHZF55")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Normalized(), p.Verifier()) // 069455 K
//
//	ok, err := verify.ValidateRUT(12345678, "5") // true, nil
//
//	ruts, err := verify.Generate(5, 1_000_000, 25_000_000, verify.WithSeed(42))
//
// # Error Handling
//
// All failures are *Error values carrying a Kind and the offending input.
// Use errors.Is with a kind sentinel (ErrUnknownFormat, ErrInsufficientRange,
// ...) or a stage sentinel (ErrPPU, ErrVerifier, ErrGenerate), or errors.As to
// read the fields:
//
//	var verr *verify.Error
//	if errors.As(err, &verr) && verr.Kind == verify.KindInsufficientRange {
//	    log.Printf("only %d values available", verr.Available)
//	}
//
// KindUnexpectedComputation and KindUnexpectedGeneration mark states the
// algorithms never reach; seeing one is a bug.
package verify
