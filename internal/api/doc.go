// Package api exposes plate and RUT operations as a JSON HTTP service.
//
// Routes:
//
//	GET  /v1/ppu/{ppu}             parsed plate (format, normalized, numeric, verifier)
//	GET  /v1/ppu/{ppu}/normalized  six-digit canonical form
//	GET  /v1/ppu/{ppu}/numeric     canonical form as a number
//	GET  /v1/rut/{digits}/verifier check character of a correlative
//	POST /v1/rut/validate          {"rut": "12.345.678-5"} or {"digits": "...", "verifier": "..."}
//	POST /v1/rut/generate          {"n": 10, "min": 1000000, "max": 99999999, "seed": 42}
//	GET  /healthz                  readiness, backed by a checksum self-test
//	GET  /metrics                  Prometheus exposition
//
// Every JSON body uses the handler.JSONResponse envelope. Failures carry a
// stable error code, the verify.Kind name for domain errors, and the request
// id in meta.
//
// Generation is charged against a per-client budget (see pkg/ratelimiter)
// keyed by client address. A call the budget cannot cover gets 429 with
// Retry-After and X-RateLimit-* headers.
package api
