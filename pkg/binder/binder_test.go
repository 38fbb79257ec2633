package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/createrainforest/bosweb/pkg/binder"
)

type orderRequest struct {
	Values  url.Values `form:"*"`
	Lang    string     `path:"lang"`
	Email   string     `form:"email"`
	Gift    bool       `form:"geschenk"`
	Numsqm  int        `form:"numsqm"`
	Themes  []string   `form:"thema"`
	Ignored string     `form:"-"`
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds urlencoded fields", func(t *testing.T) {
		posted := url.Values{
			"email":    {"a@b.de"},
			"geschenk": {"on"},
			"numsqm":   {"30"},
			"thema":    {"wald", "wasser"},
			"lang":     {"da"},
		}

		var req orderRequest
		require.NoError(t, binder.Form()(postForm(posted), &req))

		assert.Equal(t, "a@b.de", req.Email)
		assert.True(t, req.Gift)
		assert.Equal(t, 30, req.Numsqm)
		assert.Equal(t, []string{"wald", "wasser"}, req.Themes)
		assert.Equal(t, posted, req.Values)
		assert.Empty(t, req.Lang, "path-tagged field is not bound from the form")
		assert.Empty(t, req.Ignored)
	})

	t.Run("binds multipart fields", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("email", "a@b.de"))
		require.NoError(t, mw.Close())

		r := httptest.NewRequest(http.MethodPost, "/order", &body)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		var req orderRequest
		require.NoError(t, binder.Form()(r, &req))
		assert.Equal(t, "a@b.de", req.Email)
		assert.Equal(t, []string{"a@b.de"}, req.Values["email"])
	})

	t.Run("empty number is an error", func(t *testing.T) {
		var req orderRequest
		err := binder.Form()(postForm(url.Values{"numsqm": {""}}), &req)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})

	t.Run("rejects other media types", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")

		var req orderRequest
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrUnsupportedMediaType)
	})

	t.Run("requires content type", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader("a=b"))

		var req orderRequest
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrMissingContentType)
	})

	t.Run("not applicable to bodyless GET", func(t *testing.T) {
		var req orderRequest
		err := binder.Form()(httptest.NewRequest(http.MethodGet, "/order", nil), &req)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
	})

	t.Run("wildcard needs url.Values", func(t *testing.T) {
		var req struct {
			All string `form:"*"`
		}
		err := binder.Form()(postForm(url.Values{"a": {"b"}}), &req)
		assert.ErrorIs(t, err, binder.ErrInvalidForm)
	})

	t.Run("target must be a struct pointer", func(t *testing.T) {
		var s string
		assert.ErrorIs(t, binder.Form()(postForm(url.Values{}), &s), binder.ErrInvalidForm)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	var req struct {
		Email  string     `query:"email"`
		Window string     `query:"window"`
		All    url.Values `query:"*"`
		Page   int
	}
	r := httptest.NewRequest(http.MethodGet, "/info-request?email=a%40b.de&page=2", nil)

	require.NoError(t, binder.Query()(r, &req))
	assert.Equal(t, "a@b.de", req.Email)
	assert.Empty(t, req.Window)
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, "a@b.de", req.All.Get("email"))

	bad := httptest.NewRequest(http.MethodGet, "/?page=x", nil)
	assert.ErrorIs(t, binder.Query()(bad, &req), binder.ErrInvalidQuery)
}

func TestPath(t *testing.T) {
	t.Parallel()

	params := map[string]string{"lang": "da", "window": "mailwin"}
	extract := func(_ *http.Request, name string) string { return params[name] }

	var req struct {
		Lang   string `path:"lang"`
		Window string `path:"window"`
		Email  string `form:"email"`
	}
	require.NoError(t, binder.Path(extract)(httptest.NewRequest(http.MethodGet, "/", nil), &req))
	assert.Equal(t, "da", req.Lang)
	assert.Equal(t, "mailwin", req.Window)
	assert.Empty(t, req.Email)

	assert.ErrorIs(t, binder.Path(nil)(httptest.NewRequest(http.MethodGet, "/", nil), &req), binder.ErrInvalidPath)
}
