// Package handler turns typed request handlers into http.HandlerFunc values
// and provides the responses the donation pages need.
//
// A handler receives a Context and a request struct filled by binders, and
// returns a Response:
//
//	type transferRequest struct {
//		Lang   string     `path:"lang"`
//		Values url.Values `form:"*"`
//	}
//
//	func (h *Handlers) transfer(ctx handler.Context, req transferRequest) handler.Response {
//		if err := h.checks.MailTransfer(req.Lang, req.Values); err != nil {
//			return handler.Reject(handler.Alert(formcheck.Alert(err)))
//		}
//		return handler.Do(handler.LockSubmit("mailtransfer", label))
//	}
//
//	r.Post("/transfer/{lang}", handler.Wrap(h.transfer,
//		handler.WithBinders[handler.Context, transferRequest](binder.Path(chi.URLParam), binder.Form()),
//		handler.WithErrorHandler[handler.Context, transferRequest](errHandler),
//	))
//
// # Responses
//
// Every response works for both plain form posts and Datastar requests
// (detected by IsDataStar):
//
//   - Do and Reject run client-side Actions such as Alert, Confirm,
//     OpenWindow and LockSubmit. Datastar clients receive them as
//     Server-Sent Events; plain requests receive a small page running the
//     same script against the form page. A post aimed at a hidden frame
//     reaches the parent document; a top-level post goes back to the form
//     afterwards. Reject answers 422.
//   - Templ renders a templ component, patched into the page for Datastar.
//   - Redirect and RedirectBack redirect with 303 or via Datastar.
//   - Empty answers 204.
//
// # Errors
//
// Errors from binders, rendering, or returned as failed form checks are
// passed to the ErrorHandler. NewErrorHandler answers validation errors with
// the form check alert and everything else by ClassifyError's status code.
package handler
