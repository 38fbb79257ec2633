package email

// Config holds mail relay configuration. Without Postmark tokens NewSender
// falls back to DevSender, writing mails to OutboxDir.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL" envDefault:"info@createrainforest.org"`
	SupportEmail         string `env:"SUPPORT_EMAIL" envDefault:"info@createrainforest.org"`
	OutboxDir            string `env:"EMAIL_OUTBOX_DIR" envDefault:"./tmp/outbox"`
	// PostmarkBaseURL overrides the Postmark API endpoint, e.g. for a
	// sandbox relay. Empty means the public API.
	PostmarkBaseURL string `env:"POSTMARK_BASE_URL"`
}

// UsePostmark reports whether both Postmark tokens are configured.
func (c Config) UsePostmark() bool {
	return c.PostmarkServerToken != "" && c.PostmarkAccountToken != ""
}
