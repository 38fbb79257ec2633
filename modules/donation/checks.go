package donation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/createrainforest/bosweb/pkg/form"
	"github.com/createrainforest/bosweb/pkg/validator"
)

const (
	// MinTransferArea is the smallest area in square metres paid by bank
	// transfer.
	MinTransferArea = 5

	// PrintedCertificateMinArea is the smallest order that gets a printed
	// certificate by post.
	PrintedCertificateMinArea = 30

	// DisclaimerURL is opened in the detail window by ShowDisclaimer.
	DisclaimerURL = "disclaimer"
)

// CheckProfileSetup checks the password fields of the profile form.
func CheckProfileSetup(f *form.Form) error {
	password := f.Value("password")
	return validator.First(
		validator.NotEmpty("password", password).WithMessage(MsgEmptyPassword),
		validator.SameAs("password", password, "password1", f.Value("password1")).WithMessage(MsgPasswordMismatch),
	)
}

// CheckTransfer checks a bank transfer order: the disclaimer must be
// accepted, the area must reach MinTransferArea and the gift service is not
// available. Only the first failure is reported.
func CheckTransfer(f *form.Form) error {
	belowMinimum := f.Checked("numsqm[0]") ||
		(f.Checked("numsqm[4]") && numberBelow(f.Value("numsqm1"), MinTransferArea))

	return validator.First(
		validator.Accepted(DisclaimerField, f.Checked(DisclaimerField)).WithMessage(MsgDisclaimerNotAccepted),
		rule("numsqm", "minimum_transfer", !belowMinimum).WithMessage(MsgBelowMinimumTransfer),
		validator.Declined("gift", f.Checked("gift")).WithMessage(MsgGiftNeedsOnlinePayment),
	)
}

// CheckShippingInfo requires a name for the certificate and a shipping
// address. Both share one message.
func CheckShippingInfo(f *form.Form) error {
	complete := f.Value("name") != "" && f.Value("address") != ""
	return validator.First(
		rule("name", "shipping_address", complete).WithMessage(MsgShippingIncomplete),
	)
}

var infoAddressRegex = regexp.MustCompile(`^([a-zA-Z0-9_.\-])+@(([a-zA-Z0-9\-])+\.)+([a-zA-Z0-9]{2,4})+$`)

// ValidInfoAddress reports whether the mail relay accepts addr.
func ValidInfoAddress(addr string) bool {
	return infoAddressRegex.MatchString(addr)
}

// CheckInfoRequest rejects addresses the mail relay would not accept. The
// message names the address and the service mailbox to write to instead.
func CheckInfoRequest(addr, mailbox string) error {
	return validator.First(
		validator.MatchesRegex(EmailField, addr, infoAddressRegex).
			WithMessage(fmt.Sprintf(MsgUnrecognisedEmail, addr, mailbox)),
	)
}

// InfoRequestPrompt asks the visitor to confirm the info mail to addr.
func InfoRequestPrompt(addr string) string {
	return fmt.Sprintf(MsgInfoRequestPrompt, addr)
}

// InfoRequestURL is the mail relay location opened in the mail window. tok
// is the signed token issued for addr.
func InfoRequestURL(addr, tok string) string {
	return "info-request?email=" + url.QueryEscape(addr) + "&token=" + url.QueryEscape(tok)
}

// CertificateInfo tells the order confirmation which certificate notes to
// show.
type CertificateInfo struct {
	Area   float64
	Mailed bool // printed certificate by post; otherwise download only
}

// PrintedCertificate decides how the certificate for an order of numsqm
// square metres is delivered. Unparsable input means download.
func PrintedCertificate(numsqm string) CertificateInfo {
	area, err := parseNumber(numsqm)
	if err != nil {
		return CertificateInfo{}
	}
	return CertificateInfo{Area: area, Mailed: area >= PrintedCertificateMinArea}
}

// rule builds a business rule whose outcome is already known.
func rule(field, key string, ok bool) validator.Rule {
	return validator.Rule{
		Check: func() bool { return ok },
		Error: validator.ValidationError{
			Field:          field,
			TranslationKey: "donation." + key,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// numberBelow reports whether s is a number below limit. Empty input counts
// as zero; anything unparsable is not below.
func numberBelow(s string, limit float64) bool {
	v, err := parseNumber(s)
	return err == nil && v < limit
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
