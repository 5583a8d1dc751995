// Package ratelimiter implements a token bucket limiter in which a single
// request may cost many tokens.
//
// The HTTP service uses it as a per-client generation budget: a request for
// n RUTs takes n tokens, and a request the bucket cannot cover is refused
// without consuming anything.
//
// # Usage
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//	    Capacity:       100000,
//	    RefillRate:     100000,
//	    RefillInterval: time.Minute,
//	})
//	res, err := bucket.Take(ctx, clientIP, n)
//	res.SetHeaders(w.Header())
//	if !res.Allowed {
//	    // 429
//	}
//
// # Error Handling
//
// NewBucket rejects non-positive settings with ErrInvalidConfig. Take rejects
// a cost that is not positive or exceeds the capacity with
// ErrInvalidTokenCount, since such a request could never be served.
package ratelimiter
