package binder

import "net/http"

// Query binds URL query parameters to fields tagged `query:"name"`.
// Untagged exported fields bind to their lower-cased name; `query:"-"`
// skips a field. Slices accept repeated or comma-separated values.
//
//	type generateQuery struct {
//		N    int    `query:"n"`
//		Seed *int64 `query:"seed"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
