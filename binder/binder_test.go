package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clforge/clforge/binder"
)

type validateBody struct {
	Digits   string `json:"digits"`
	Verifier string `json:"verifier"`
}

func jsonRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/rut/validate", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	bind := binder.JSON()

	t.Run("decodes body", func(t *testing.T) {
		t.Parallel()
		var v validateBody
		err := bind(jsonRequest(`{"digits":"12345678","verifier":"5"}`, "application/json; charset=utf-8"), &v)
		require.NoError(t, err)
		assert.Equal(t, validateBody{Digits: "12345678", Verifier: "5"}, v)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		want        error
	}{
		{"missing content type", `{}`, "", binder.ErrMissingContentType},
		{"wrong content type", `{}`, "text/plain", binder.ErrUnsupportedMediaType},
		{"malformed content type", `{}`, "application/json; =", binder.ErrUnsupportedMediaType},
		{"empty body", ``, "application/json", binder.ErrFailedToParseJSON},
		{"syntax error", `{"digits":`, "application/json", binder.ErrFailedToParseJSON},
		{"wrong type", `{"digits":12}`, "application/json", binder.ErrFailedToParseJSON},
		{"unknown field", `{"digits":"1","rut":"1-9"}`, "application/json", binder.ErrFailedToParseJSON},
		{"trailing data", `{"digits":"1"} {"digits":"2"}`, "application/json", binder.ErrFailedToParseJSON},
		{"too large", `{"digits":"` + strings.Repeat("1", binder.DefaultMaxJSONSize) + `"}`, "application/json", binder.ErrRequestTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var v validateBody
			err := bind(jsonRequest(tt.body, tt.contentType), &v)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

type generateQuery struct {
	N       int      `query:"n"`
	Min     int64    `query:"min"`
	Seed    *int64   `query:"seed"`
	Formats []string `query:"format"`
	Verbose bool
	Skipped string `query:"-"`
	hidden  string
}

func TestQuery(t *testing.T) {
	t.Parallel()

	bind := binder.Query()

	t.Run("binds tagged and untagged fields", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?n=5&min=10&seed=42&format=LLLLNN,LLNNNN&format=LLLNN&verbose=true&skipped=x&hidden=y", nil)
		var q generateQuery
		require.NoError(t, bind(req, &q))

		assert.Equal(t, 5, q.N)
		assert.Equal(t, int64(10), q.Min)
		require.NotNil(t, q.Seed)
		assert.Equal(t, int64(42), *q.Seed)
		assert.Equal(t, []string{"LLLLNN", "LLNNNN", "LLLNN"}, q.Formats)
		assert.True(t, q.Verbose)
		assert.Empty(t, q.Skipped)
		assert.Empty(t, q.hidden)
	})

	t.Run("absent values keep zero", func(t *testing.T) {
		t.Parallel()
		var q generateQuery
		require.NoError(t, bind(httptest.NewRequest(http.MethodGet, "/", nil), &q))
		assert.Nil(t, q.Seed)
		assert.Zero(t, q.N)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		var q generateQuery
		err := bind(httptest.NewRequest(http.MethodGet, "/?n=five", nil), &q)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
		assert.Contains(t, err.Error(), "n")
	})

	t.Run("non-pointer target", func(t *testing.T) {
		t.Parallel()
		err := bind(httptest.NewRequest(http.MethodGet, "/?n=1", nil), generateQuery{})
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	})
}

type ppuPath struct {
	PPU    string `path:"ppu"`
	Digits uint32 `path:"digits"`
}

func TestPath(t *testing.T) {
	t.Parallel()

	params := map[string]string{"ppu": "PHZF55", "digits": "12345678"}
	extract := func(_ *http.Request, name string) string { return params[name] }

	var v ppuPath
	require.NoError(t, binder.Path(extract)(httptest.NewRequest(http.MethodGet, "/", nil), &v))
	assert.Equal(t, ppuPath{PPU: "PHZF55", Digits: 12345678}, v)

	bad := func(_ *http.Request, name string) string {
		if name == "digits" {
			return "99999999999"
		}
		return ""
	}
	err := binder.Path(bad)(httptest.NewRequest(http.MethodGet, "/", nil), &v)
	assert.ErrorIs(t, err, binder.ErrFailedToParsePath)

	err = binder.Path(nil)(httptest.NewRequest(http.MethodGet, "/", nil), &v)
	assert.ErrorIs(t, err, binder.ErrFailedToParsePath)

	var notStruct string
	err = binder.Path(extract)(httptest.NewRequest(http.MethodGet, "/", nil), &notStruct)
	assert.ErrorIs(t, err, binder.ErrFailedToParsePath)
}
