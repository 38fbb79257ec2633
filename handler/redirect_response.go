package handler

import (
	"net/http"
	"net/url"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		sse := datastar.NewSSE(w, req)
		return sse.Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect answers with 303 See Other, or a client-side redirect for
// Datastar requests.
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

type redirectBackResponse struct {
	fallback string
	code     int
}

func (r redirectBackResponse) Render(w http.ResponseWriter, req *http.Request) error {
	target := r.fallback
	if referer := req.Header.Get("Referer"); referer != "" && isSameHost(referer, req) {
		target = referer
	}
	return redirectResponse{url: target, code: r.code}.Render(w, req)
}

// RedirectBack redirects to the same-host referrer, or to fallback.
func RedirectBack(fallback string) Response {
	return redirectBackResponse{fallback: fallback, code: http.StatusSeeOther}
}

func isSameHost(raw string, r *http.Request) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Host == "" || parsed.Host == r.Host
}
