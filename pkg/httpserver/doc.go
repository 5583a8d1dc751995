// Package httpserver runs an http.Handler with graceful shutdown and provides
// a liveness/readiness handler.
//
// # Architecture
//
// Run binds the listener itself, so a bad address fails fast with ErrStart
// and ":0" can be used in tests (read the port back with Addr after Ready is
// closed). It then serves until the context is cancelled or SIGINT/SIGTERM
// arrives, and calls Shutdown, which waits up to the shutdown timeout for
// in-flight requests. Lifecycle events and http.Server errors go to the
// configured slog.Logger.
//
// # Usage
//
//	srv := httpserver.New(
//	    httpserver.WithAddr(settings.HTTPAddr),
//	    httpserver.WithReadTimeout(settings.HTTPReadTimeout),
//	    httpserver.WithShutdownTimeout(settings.ShutdownTimeout),
//	    httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Run returns errors wrapping ErrStart; Shutdown returns errors wrapping
// ErrShutdown. A clean shutdown returns nil from both.
package httpserver
