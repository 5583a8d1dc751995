package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/clforge/clforge/binder"
	"github.com/clforge/clforge/pkg/logger"
	"github.com/clforge/clforge/pkg/requestid"
	"github.com/clforge/clforge/pkg/validator"
	"github.com/clforge/clforge/pkg/verify"
)

// ErrorInfo is the client-facing classification of an error.
type ErrorInfo struct {
	Status  int
	Code    string
	Message string
	Details map[string][]string
}

func (i ErrorInfo) Detail() *ErrorDetail {
	return &ErrorDetail{Code: i.Code, Message: i.Message, Details: i.Details}
}

// LogLevel is Warn for client errors and Error otherwise.
func (i ErrorInfo) LogLevel() slog.Level {
	if i.Status >= http.StatusBadRequest && i.Status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// Classify maps err to a status and a stable code:
//
//   - validator.ValidationErrors: 422 "validation_error" with per-field details
//   - *verify.Error: 422 with the kind as code, or 500 for the internal kinds
//   - binder errors: 400, 413 or 415
//   - HTTPError: its own status and key
//
// Anything else is a 500 whose message does not leak err.
func Classify(err error) ErrorInfo {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return ErrorInfo{
			Status:  http.StatusUnprocessableEntity,
			Code:    "validation_error",
			Message: verrs.Error(),
			Details: verrs.Map(),
		}
	}

	var verr *verify.Error
	if errors.As(err, &verr) {
		if verr.Kind.Internal() {
			return ErrorInfo{Status: http.StatusInternalServerError, Code: verr.Kind.String(), Message: verr.Error()}
		}
		return ErrorInfo{Status: http.StatusUnprocessableEntity, Code: verr.Kind.String(), Message: verr.Error()}
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return fromHTTPError(ErrUnsupportedMedia, err.Error())
	case errors.Is(err, binder.ErrRequestTooLarge):
		return fromHTTPError(ErrRequestTooLarge, err.Error())
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseQuery),
		errors.Is(err, binder.ErrFailedToParsePath):
		return fromHTTPError(ErrBadRequest, err.Error())
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return fromHTTPError(httpErr, http.StatusText(httpErr.Code))
	}

	return ErrorInfo{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "internal server error",
	}
}

func fromHTTPError(e HTTPError, message string) ErrorInfo {
	return ErrorInfo{Status: e.Code, Code: e.Key, Message: message}
}

// NewErrorHandler logs err at a level matching its status and renders it as a
// JSON error envelope with the request id in meta.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx Context, err error) {
		info := Classify(err)
		r := ctx.Request()
		id := requestid.FromContext(ctx)

		log.LogAttrs(ctx, info.LogLevel(), "request failed",
			logger.Component("error_handler"),
			logger.Error(err),
			logger.ErrorKind(err),
			slog.Int("status", info.Status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		var opts []JSONOption
		if id != "" {
			opts = append(opts, WithJSONMeta(map[string]any{"request_id": id}))
		}
		if renderErr := JSONError(err, opts...).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response",
				logger.Component("error_handler"),
				logger.Error(renderErr),
			)
		}
	}
}
