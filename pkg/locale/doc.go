// Package locale negotiates the site language (German, Danish or English)
// and validates language-menu jump targets.
//
// Middleware stores the negotiated language in the request context; read it
// back with FromContext. Negotiation uses golang.org/x/text/language so
// regional variants such as "de-AT" or "da-DK" map onto the site languages.
package locale
