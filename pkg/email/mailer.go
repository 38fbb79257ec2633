package email

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// EmailSender sends one mail.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`       // Email address of the recipient
	Subject  string `json:"subject"`       // Subject of the email
	BodyHTML string `json:"body_html"`     // HTML body of the email
	Tag      string `json:"tag,omitempty"` // Optional
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks that all required fields are set and the recipient looks
// like an address.
func (p SendEmailParams) Validate() error {
	sendTo := strings.TrimSpace(p.SendTo)
	if sendTo == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(sendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}

// NewSender returns a Postmark sender when tokens are configured and a
// DevSender writing to cfg.OutboxDir otherwise.
func NewSender(cfg Config) (EmailSender, error) {
	if cfg.UsePostmark() {
		return NewPostmarkClient(cfg)
	}
	if cfg.OutboxDir == "" {
		return nil, fmt.Errorf("%w: OutboxDir is required without Postmark tokens", ErrInvalidConfig)
	}
	return NewDevSender(cfg.OutboxDir), nil
}
