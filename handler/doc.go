// Package handler turns typed request handlers into http.HandlerFunc values.
//
// A HandlerFunc receives a Context and a request struct that the configured
// binders filled, and returns a Response. Wrap does the plumbing: it builds
// the Context, runs binders in order, applies decorators and renders the
// response, routing every failure to the ErrorHandler.
//
// # Architecture
//
// Responses are values that render themselves. JSON wraps data in the
// {data, meta, error} envelope every endpoint shares; JSONError fills the
// error member from Classify, which maps validation, verification, binding
// and HTTP errors to a status code and a stable snake_case code.
//
// # Usage
//
//	r.Get("/v1/ppu/{ppu}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, ppuRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, ppuRequest](handler.NewErrorHandler(log)),
//	))
//
// # Error Handling
//
// Handlers return handler.JSONError(err) for expected failures. Binding
// errors, nil responses and render errors go through the ErrorHandler, which
// logs them and writes the same envelope. A *verify.Error renders as 422 with
// its kind as the code, e.g. "unknown_format"; the kinds that signal a bug
// render as 500.
package handler
