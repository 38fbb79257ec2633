package formcheck

import (
	"strings"

	"github.com/createrainforest/bosweb/pkg/validator"
)

// Preamble opens every alert built by Alert.
const Preamble = "Die benötigten Informationen sind unvollständig oder fehlerhaft:\t\t\t\t\t\n\n"

// Messages returns the failure messages carried by err in rule order, or nil
// when err holds no validation errors.
func Messages(err error) []string {
	verrs := validator.ExtractValidationErrors(err)
	if verrs.IsEmpty() {
		return nil
	}
	return verrs.Messages()
}

// Alert renders err as the text of a blocking alert: the German preamble
// followed by one "* message" line per failed rule. It returns "" when err
// holds no validation errors.
func Alert(err error) string {
	return AlertWith(Preamble, err)
}

// AlertWith is like Alert with a custom preamble.
func AlertWith(preamble string, err error) string {
	msgs := Messages(err)
	if len(msgs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(preamble)
	for _, m := range msgs {
		b.WriteString("* ")
		b.WriteString(m)
		b.WriteString("\n")
	}
	return b.String()
}
