package donation

import "time"

// DefaultInfoRequestTTL bounds how long a confirmed info mail link works.
const DefaultInfoRequestTTL = 15 * time.Minute

// Config holds the donation page settings.
type Config struct {
	// ServiceMailbox is named in the alert for addresses the mail relay
	// cannot handle.
	ServiceMailbox  string `env:"SERVICE_MAILBOX" envDefault:"service@createrainforest.org"`
	InfoMailSubject string `env:"INFO_MAIL_SUBJECT" envDefault:"Informationen zu BOS und Samboja Lestari"`
	// Accepted forms are redirected to these pages. Empty means the page
	// stays where it is.
	OrderNextURL    string `env:"ORDER_NEXT_URL"`
	ShippingNextURL string `env:"SHIPPING_NEXT_URL"`
	TransferNextURL string `env:"TRANSFER_NEXT_URL"`
	// InfoRequestSecret signs the info mail links handed out after the
	// visitor confirms. Empty means a random per-process secret.
	InfoRequestSecret string        `env:"INFO_REQUEST_SECRET"`
	InfoRequestTTL    time.Duration `env:"INFO_REQUEST_TTL" envDefault:"15m"`
}

func (c Config) withDefaults() Config {
	if c.ServiceMailbox == "" {
		c.ServiceMailbox = "service@createrainforest.org"
	}
	if c.InfoMailSubject == "" {
		c.InfoMailSubject = "Informationen zu BOS und Samboja Lestari"
	}
	if c.InfoRequestTTL <= 0 {
		c.InfoRequestTTL = DefaultInfoRequestTTL
	}
	return c
}
