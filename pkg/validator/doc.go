// Package validator provides small, composable validation rules for request
// payloads and configuration values, including rules for Chilean plates and
// RUTs backed by pkg/verify.
//
// A Rule pairs a deferred Check with the ValidationError to report when it
// fails. Apply evaluates rules and aggregates the failures into a
// ValidationErrors slice that implements error.
//
// # Architecture
//
// Each source file groups one family of rules (`numeric_rules.go`,
// `string_rules.go`, `identifier_rules.go`). Constructors only capture their
// arguments; nothing is evaluated until Apply runs, and the package holds no
// state.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.NumRange("n", req.N, 1, cfg.GenerateMaxCount),
//	    validator.LessOrEqual("min", req.Min, "max", req.Max),
//	    validator.ValidVerifier("verifier", req.Verifier),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // report verrs.Map() to the client
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed with errors.Is. Use
// ExtractValidationErrors to get at the individual field errors; each one
// carries a stable Code such as "validation.ppu" for clients to switch on.
package validator
