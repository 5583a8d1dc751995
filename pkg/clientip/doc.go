// Package clientip resolves the address of the client behind an HTTP
// request. The HTTP service keys the generation budget on it and adds it to
// request logs.
//
// Forwarding headers are only honored when the caller opts in with
// trustProxy, since any client can set them.
//
//	r.Use(clientip.Middleware(settings.TrustProxy))
//	ip := clientip.FromContext(r.Context())
package clientip
