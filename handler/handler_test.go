package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clforge/clforge/binder"
	"github.com/clforge/clforge/handler"
	"github.com/clforge/clforge/pkg/logger"
	"github.com/clforge/clforge/pkg/requestid"
	"github.com/clforge/clforge/pkg/validator"
	"github.com/clforge/clforge/pkg/verify"
)

type ppuRequest struct {
	PPU string `query:"ppu"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) handler.JSONResponse {
	t.Helper()
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrap(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, ppuRequest](func(ctx handler.Context, req ppuRequest) handler.Response {
		normalized, err := verify.NormalizePPU(req.PPU)
		if err != nil {
			return handler.JSONError(err)
		}
		return handler.JSON(map[string]string{"normalized": normalized})
	})
	wrapped := handler.Wrap(h, handler.WithBinders[handler.Context, ppuRequest](binder.Query()))

	t.Run("binds and renders data", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		wrapped(rec, httptest.NewRequest(http.MethodGet, "/?ppu=PHZF55", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, map[string]any{"normalized": "069455"}, body.Data)
		assert.Nil(t, body.Error)
	})

	t.Run("domain error renders 422 with kind code", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		wrapped(rec, httptest.NewRequest(http.MethodGet, "/?ppu=ABC1234", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeEnvelope(t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "unknown_format", body.Error.Code)
		assert.Contains(t, body.Error.Message, "ABC1234")
	})
}

func TestWrap_BindErrorGoesToErrorHandler(t *testing.T) {
	t.Parallel()

	type req struct {
		N int `query:"n"`
	}
	var handled error
	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, req](func(handler.Context, req) handler.Response {
			t.Fatal("handler must not run")
			return nil
		}),
		handler.WithBinders[handler.Context, req](binder.Query()),
		handler.WithErrorHandler[handler.Context, req](func(ctx handler.Context, err error) {
			handled = err
			ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/?n=x", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.ErrorIs(t, handled, binder.ErrFailedToParseQuery)
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
		return nil
	}))
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", decodeEnvelope(t, rec).Error.Code)
}

func TestWrap_DecoratorOrder(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
			order = append(order, "handler")
			return handler.JSON("ok")
		}),
		handler.WithDecorators(trace("outer"), trace("inner")),
	)
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestJSON_Options(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	resp := handler.JSON([]int{1, 2}, handler.WithJSONStatus(http.StatusCreated), handler.WithJSONMeta(map[string]any{"count": 2}))
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, []any{float64(1), float64(2)}, body.Data)
	assert.Equal(t, map[string]any{"count": float64(2)}, body.Meta)

	rec = httptest.NewRecorder()
	require.NoError(t, handler.JSON(handler.ErrNotFound).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	_, insufficient := verify.Generate(3, 1, 2)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", validator.Apply(validator.RequiredString("ppu", "")), http.StatusUnprocessableEntity, "validation_error"},
		{"verify input", insufficient, http.StatusUnprocessableEntity, "insufficient_range"},
		{"verify internal", &verify.Error{Kind: verify.KindUnexpectedGeneration}, http.StatusInternalServerError, "unexpected_generation"},
		{"wrapped verify", fmt.Errorf("ppu: %w", &verify.Error{Kind: verify.KindUnknownLetter, Input: "A"}), http.StatusUnprocessableEntity, "unknown_letter"},
		{"media type", fmt.Errorf("%w: text/plain", binder.ErrUnsupportedMediaType), http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"missing content type", binder.ErrMissingContentType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"too large", binder.ErrRequestTooLarge, http.StatusRequestEntityTooLarge, "request_entity_too_large"},
		{"bad json", binder.ErrFailedToParseJSON, http.StatusBadRequest, "bad_request"},
		{"bad path", binder.ErrFailedToParsePath, http.StatusBadRequest, "bad_request"},
		{"http error", handler.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "method_not_allowed"},
		{"unknown", errors.New("db password is hunter2"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := handler.Classify(tt.err)
			assert.Equal(t, tt.wantStatus, info.Status)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.NotContains(t, info.Message, "hunter2")
		})
	}

	info := handler.Classify(validator.Apply(validator.RequiredString("ppu", ""), validator.MinNum("n", 0, 1)))
	assert.Equal(t, map[string][]string{"ppu": {"field is required"}, "n": {"must be at least 1"}}, info.Details)
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	eh := handler.NewErrorHandler(log)

	req := httptest.NewRequest(http.MethodPost, "/v1/rut/validate", strings.NewReader("{"))
	req = req.WithContext(requestid.WithContext(req.Context(), "req-7"))
	rec := httptest.NewRecorder()

	eh(handler.NewContext(rec, req), fmt.Errorf("%w: unexpected EOF", binder.ErrFailedToParseJSON))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "bad_request", body.Error.Code)
	assert.Equal(t, "req-7", body.Meta["request_id"])

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "request failed", entry["msg"])
	assert.InDelta(t, 400, entry["status"], 0)
	assert.Equal(t, "/v1/rut/validate", entry["path"])
}

func TestError_DefersToErrorHandler(t *testing.T) {
	t.Parallel()

	var handled error
	h := handler.Wrap(
		handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
			return handler.Error(verify.ErrInvalidVerifier)
		}),
		handler.WithErrorHandler[handler.Context, struct{}](func(ctx handler.Context, err error) {
			handled = err
		}),
	)
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, handled, verify.ErrInvalidVerifier)
}
