package donation

import "errors"

// Messages shown for rejected submissions.
const (
	MsgEmptyPassword          = "Das Kennwort darf nicht leer sein"
	MsgPasswordMismatch       = "Bitte geben Sie zwei mal das gleiche Kennwort ein"
	MsgDisclaimerNotAccepted  = "Bitte lesen Sie die Verzichtsklausel und bestätigen Sie sie Ihr Einverständnis durch Setzen des Häkchens"
	MsgBelowMinimumTransfer   = "Aufgrund des hohen manuellen Bearbeitungsaufands sind Überweisungen erst ab einer Summe von 15 Euro (5 Quadratmeter) möglich"
	MsgGiftNeedsOnlinePayment = "Den Geschenkservice können wir nur bei Online-Überweisungen anbieten"
	MsgShippingIncomplete     = "Bitte geben Sie einen Namen für die Urkunde sowie die Versandadresse an"
	MsgUnrecognisedEmail      = "Die von Ihnen eingegebene Email-Adresse \"%s\" konnte von unserem Server nicht erkannt werden.  Bitte senden Sie uns Ihre Anfrage per Email an %s"
	MsgInfoRequestPrompt      = "Wünschen Sie, daß wir Ihnen an die Email-Adresse \"%s\" Informationen zu BOS und Samboja Lestari schicken?"
)

var (
	ErrUnknownTransferLocale  = errors.New("no mail transfer rules for language")
	ErrMalformedTransferRules = errors.New("malformed mail transfer rules")
	ErrNilSender              = errors.New("email sender is required")
)
