package locale

import (
	"golang.org/x/text/language"
)

// Site languages. German is the default and the first entry wins ties.
const (
	German  = "de"
	Danish  = "da"
	English = "en"
)

// Default is used when nothing in the request names a supported language.
const Default = German

var (
	supported = []string{German, Danish, English}
	matcher   = language.NewMatcher([]language.Tag{
		language.German,
		language.Danish,
		language.English,
	})
)

// Supported returns the site languages in preference order.
func Supported() []string {
	return append([]string(nil), supported...)
}

// IsSupported reports whether code is one of the site languages.
func IsSupported(code string) bool {
	for _, s := range supported {
		if s == code {
			return true
		}
	}
	return false
}

// Match returns the site language best matching the given language tags or
// Accept-Language header values. Inputs are considered in order.
func Match(prefs ...string) string {
	if len(prefs) == 0 {
		return Default
	}
	_, idx := language.MatchStrings(matcher, prefs...)
	if idx < 0 || idx >= len(supported) {
		return Default
	}
	return supported[idx]
}

// Exact returns the site language named by code, ignoring region and case,
// or "" when code names no site language.
func Exact(code string) string {
	if code == "" || len(code) > maxCodeLength {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	if IsSupported(base.String()) {
		return base.String()
	}
	return ""
}

// maxCodeLength bounds language codes taken from cookies and query strings.
const maxCodeLength = 35
