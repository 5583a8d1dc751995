// Package logger builds the service's *slog.Logger and provides attribute
// helpers so the same keys are used everywhere.
//
// # Architecture
//
// New picks slog's JSON or text handler from the configured Format, applies
// static attributes and wraps the result in a LogHandlerDecorator. The
// decorator runs ContextExtractor callbacks on every record, which is how
// request ids and the environment reach records logged deep inside a request
// without being passed around.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(settings.Env, "clforge"),
//	    logger.WithLevel(settings.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "ppu parsed", logger.PPU(p), logger.Duration(time.Since(start)))
//
// # Error Handling
//
// Error and ErrorKind return an empty slog.Attr for a nil or foreign error,
// so they can be passed unconditionally:
//
//	log.Warn("request rejected", logger.Error(err), logger.ErrorKind(err))
package logger
