package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures where a component is patched for Datastar requests.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the selector the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

type templResponse struct {
	component templ.Component
	status    int
	options   []datastar.PatchElementOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 && t.status != http.StatusOK {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ renders a component: patched via SSE for Datastar requests, written
// as HTML otherwise.
//
//	return handler.Templ(views.MailSent(email), handler.WithTarget("#mail-status"))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}

// TemplWithStatus is like Templ but answers plain requests with status.
func TemplWithStatus(status int, component templ.Component, opts ...TemplOption) Response {
	return templResponse{component: component, status: status, options: opts}
}
