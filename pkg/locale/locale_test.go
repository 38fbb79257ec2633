package locale_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/createrainforest/bosweb/pkg/locale"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		prefs []string
		want  string
	}{
		{"no preference", nil, locale.German},
		{"danish region", []string{"da-DK"}, locale.Danish},
		{"accept header", []string{"en-US,en;q=0.9,de;q=0.5"}, locale.English},
		{"quality order", []string{"fr;q=0.2,da;q=0.8,en;q=0.5"}, locale.Danish},
		{"unsupported falls back", []string{"ja"}, locale.German},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Match(tt.prefs...))
		})
	}
}

func TestExact(t *testing.T) {
	t.Parallel()

	assert.Equal(t, locale.Danish, locale.Exact("da"))
	assert.Equal(t, locale.German, locale.Exact("DE-at"))
	assert.Empty(t, locale.Exact("fr"))
	assert.Empty(t, locale.Exact(""))
	assert.Empty(t, locale.Exact("not a language tag"))
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, locale.Default, locale.FromContext(context.Background()))

	ctx := locale.WithLocale(context.Background(), locale.Danish)
	assert.Equal(t, locale.Danish, locale.FromContext(ctx))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := locale.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = locale.FromContext(r.Context())
	}))

	t.Run("cookie wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "da"})
		req.Header.Set("Accept-Language", "de")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, locale.Danish, got)
	})

	t.Run("query before header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
		req.Header.Set("Accept-Language", "da")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, locale.English, got)
	})

	t.Run("unsupported query is skipped", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
		req.Header.Set("Accept-Language", "da-DK")
		h.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, locale.Danish, got)
	})

	t.Run("default without preference", func(t *testing.T) {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, locale.German, got)
	})

	t.Run("custom sources", func(t *testing.T) {
		custom := locale.Middleware(locale.DefaultExtractor(
			locale.WithCookieName("sprache"),
			locale.WithQueryParamName("sprache"),
		))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = locale.FromContext(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/?sprache=da&lang=en", nil)
		custom.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, locale.Danish, got)
	})
}

func TestJumpTarget(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "http://regenwald.example/lang", nil)

	for _, target := range []string{"/da/index.html", "index_en.html", "http://regenwald.example/de/"} {
		got, err := locale.JumpTarget(req, target)
		require.NoError(t, err, target)
		assert.Equal(t, target, got)
	}

	_, err := locale.JumpTarget(req, "")
	assert.ErrorIs(t, err, locale.ErrEmptyTarget)

	for _, target := range []string{"https://evil.example/", "//evil.example/x", "javascript:alert(1)"} {
		_, err := locale.JumpTarget(req, target)
		assert.ErrorIs(t, err, locale.ErrForeignTarget, target)
	}
}
