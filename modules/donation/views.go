package donation

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Element IDs patched by the donation routes.
const (
	MailStatusID  = "mail-status"
	CertificateID = "urkunde-info"
)

func infoMailBody(addr string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p>Vielen Dank für Ihr Interesse an BOS und Samboja Lestari.</p>`+
			`<p>Sie erhalten diese Nachricht, weil die Adresse `+templ.EscapeString(addr)+
			` auf unserer Webseite für Informationen eingetragen wurde.</p>`)
		return err
	})
}

func mailStatus(ok bool, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "mail-sent"
		if !ok {
			class = "mail-failed"
		}
		_, err := io.WriteString(w, `<div id="`+MailStatusID+`" class="`+class+`"><p>`+templ.EscapeString(message)+`</p></div>`)
		return err
	})
}

// certificateInfo shows the mailed certificate block and print info for
// large orders, or the download info otherwise.
func certificateInfo(info CertificateInfo) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := `<span id="urkunde-download-info">Ihre Urkunde steht nach Zahlungseingang zum Download bereit.</span>`
		if info.Mailed {
			body = `<div id="mail-cert">Ihre Urkunde über ` + strconv.FormatFloat(info.Area, 'f', -1, 64) +
				` Quadratmeter schicken wir Ihnen per Post.</div>` +
				`<span id="urkunde-print-info">Bitte geben Sie im nächsten Schritt die Versandadresse an.</span>`
		}
		_, err := io.WriteString(w, `<div id="`+CertificateID+`">`+body+`</div>`)
		return err
	})
}
