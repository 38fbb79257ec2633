package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/createrainforest/bosweb/pkg/popup"
)

// Action is a client-side effect: a dialog, an opened window, a locked
// button. Actions are delivered as Datastar events, or as an inline script
// page for plain form posts. Every Action is also a Response on its own.
type Action interface {
	Response
	script() string
	apply(sse *datastar.ServerSentEventGenerator) error
}

type scriptAction struct {
	js string
}

func (a scriptAction) script() string { return a.js }

func (a scriptAction) apply(sse *datastar.ServerSentEventGenerator) error {
	return sse.ExecuteScript(a.js)
}

func (a scriptAction) Render(w http.ResponseWriter, r *http.Request) error {
	return Do(a).Render(w, r)
}

// Script runs raw JavaScript on the client.
func Script(js string) Action {
	return scriptAction{js: js}
}

// Alert shows message in a blocking alert dialog.
func Alert(message string) Action {
	return scriptAction{js: "alert(" + jsString(message) + ");"}
}

// Confirm asks the visitor to confirm message and runs then, in order, when
// they do.
func Confirm(message string, then ...Action) Action {
	var next strings.Builder
	for _, a := range then {
		if a != nil {
			next.WriteString(a.script())
		}
	}
	return scriptAction{js: "if(confirm(" + jsString(message) + ")){" + next.String() + "}"}
}

// OpenWindow opens url in the named popup window.
func OpenWindow(w popup.Window, url string) Action {
	return scriptAction{js: w.Script(url)}
}

// Submit signal names used by LockSubmit.
const (
	SignalSubmitLocked = "submitLocked"
	SignalSubmitLabel  = "submitLabel"
)

// SubmitButtonID is the id legacy form pages give their submit button.
const SubmitButtonID = "submit_button"

// formDocument evaluates to the document holding the posted form. Plain
// posts target a hidden frame on legacy pages, so the form lives in the
// parent window.
const formDocument = "(window.parent!==window?window.parent.document:document)"

type lockAction struct {
	form  string
	label string
}

// LockSubmit disables the submit button of form and relabels it. An empty
// label leaves the caption alone. The button is looked up by SubmitButtonID
// first, then as the form's "submit" element. Datastar pages receive the
// submitLocked and submitLabel signals instead.
func LockSubmit(form, label string) Action {
	return lockAction{form: form, label: label}
}

func (a lockAction) script() string {
	js := "var d=" + formDocument + ",b=d.getElementById(" + jsString(SubmitButtonID) + ");" +
		"if(!b){var f=d.forms[" + jsString(a.form) + "];b=f&&f.elements.submit;}" +
		"if(b){b.disabled=true;"
	if a.label != "" {
		js += "b.value=" + jsString(a.label) + ";"
	}
	return js + "}"
}

func (a lockAction) apply(sse *datastar.ServerSentEventGenerator) error {
	signals := map[string]any{SignalSubmitLocked: true}
	if a.label != "" {
		signals[SignalSubmitLabel] = a.label
	}
	return patchSignals(sse, signals)
}

func (a lockAction) Render(w http.ResponseWriter, r *http.Request) error {
	return Do(a).Render(w, r)
}

type fieldAction struct {
	form  string
	field string
	value any
}

// SetValue sets the value of a form field. Datastar pages receive a signal
// named after the field.
func SetValue(form, field, value string) Action {
	return fieldAction{form: form, field: field, value: value}
}

// SetChecked checks or unchecks a checkbox. Datastar pages receive a signal
// named after the field.
func SetChecked(form, field string, checked bool) Action {
	return fieldAction{form: form, field: field, value: checked}
}

func (a fieldAction) script() string {
	prop, val := "value", ""
	switch v := a.value.(type) {
	case bool:
		prop = "checked"
		val = "false"
		if v {
			val = "true"
		}
	case string:
		val = jsString(v)
	}
	return "var e=" + formDocument + ".forms[" + jsString(a.form) + "];" +
		"if(e&&e.elements[" + jsString(a.field) + "]){e.elements[" + jsString(a.field) + "]." + prop + "=" + val + ";}"
}

func (a fieldAction) apply(sse *datastar.ServerSentEventGenerator) error {
	return patchSignals(sse, map[string]any{a.field: a.value})
}

func (a fieldAction) Render(w http.ResponseWriter, r *http.Request) error {
	return Do(a).Render(w, r)
}

func patchSignals(sse *datastar.ServerSentEventGenerator, signals map[string]any) error {
	b, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return sse.PatchSignals(b)
}

type actionsResponse struct {
	actions []Action
	status  int
}

// backToForm returns a top-level plain post to the form page. Inside a frame
// the form page is still showing and history is left alone.
const backToForm = "if(window.parent===window){history.back();}"

// Do runs the actions in order.
func Do(actions ...Action) Response {
	return actionsResponse{actions: actions, status: http.StatusOK}
}

// Reject runs the actions for a submission that was not accepted. Plain
// requests get 422.
func Reject(actions ...Action) Response {
	return actionsResponse{actions: actions, status: http.StatusUnprocessableEntity}
}

func (a actionsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, action := range a.actions {
			if action == nil {
				continue
			}
			if err := action.apply(sse); err != nil {
				return err
			}
		}
		return nil
	}

	var js strings.Builder
	for _, action := range a.actions {
		if action != nil {
			js.WriteString(action.script())
		}
	}
	js.WriteString(backToForm)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(a.status)
	return scriptPage(js.String()).Render(r.Context(), w)
}

// scriptPage is a minimal document executing js on load.
func scriptPage(js string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!DOCTYPE html><html><head><meta charset="utf-8"></head><body><script>`+js+`</script></body></html>`)
		return err
	})
}

// jsString quotes s as a JavaScript string literal that is safe inside a
// script element.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
