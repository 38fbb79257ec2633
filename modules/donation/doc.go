// Package donation serves the form checks of the donation pages: profile
// setup, bank and mail transfer orders, shipping details, info mail requests
// and the language menu.
//
// Checks are plain functions over bound forms (see the *Schema variables) and
// return validator.ValidationErrors. Handlers.Router answers each page with
// the client actions the check calls for: an alert for rejected input, a
// confirmation, a popup window or a locked submit button.
//
// The router reads the visitor's language with locale.Middleware. A mail
// transfer posted without a language in the path is checked in it. Info mail
// links carry a token signed for the address that expires after
// Config.InfoRequestTTL.
//
//	h, err := donation.New(cfg, sender, donation.WithLogger(log), donation.WithLimiter(limiter))
//	if err != nil {
//		return err
//	}
//	r.Mount("/", h.Router())
package donation
