// Package binder decodes HTTP requests into typed structs for handler.Wrap.
//
// Each binder reads one source and only touches fields tagged for it:
//
//   - JSON  - the request body, strictly (unknown fields and trailing data fail)
//   - Query - `query:"name"` tags from the URL query string
//   - Path  - `path:"name"` tags from router parameters, via an extractor
//
// Binders run in the order given to handler.WithBinders, so a request struct
// can mix sources:
//
//	type verifierRequest struct {
//		Digits string `path:"digits"`
//	}
//
//	r.Get("/v1/rut/{digits}/verifier", handler.Wrap(h,
//		handler.WithBinders[handler.Context, verifierRequest](binder.Path(chi.URLParam)),
//	))
//
// # Error Handling
//
// Every failure wraps one of the package sentinels (ErrUnsupportedMediaType,
// ErrFailedToParseJSON, ...), which the handler package maps to 4xx responses.
package binder
