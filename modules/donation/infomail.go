package donation

import (
	"context"
	"fmt"

	"github.com/createrainforest/bosweb/pkg/email"
	"github.com/createrainforest/bosweb/pkg/email/templates"
)

// InfoMailTag marks info mails in the relay.
const InfoMailTag = "info-request"

// InfoMailer sends the information mail requested on the donation pages.
type InfoMailer struct {
	sender  email.EmailSender
	subject string
	mailbox string
}

// NewInfoMailer creates an InfoMailer sending through sender.
func NewInfoMailer(sender email.EmailSender, cfg Config) (*InfoMailer, error) {
	if sender == nil {
		return nil, ErrNilSender
	}
	cfg = cfg.withDefaults()
	return &InfoMailer{sender: sender, subject: cfg.InfoMailSubject, mailbox: cfg.ServiceMailbox}, nil
}

// Send revalidates addr and mails the information to it. An address the
// relay does not accept yields the validation error shown to visitors.
func (m *InfoMailer) Send(ctx context.Context, addr string) error {
	if err := CheckInfoRequest(addr, m.mailbox); err != nil {
		return err
	}

	body, err := templates.Render(ctx, infoMailBody(addr))
	if err != nil {
		return fmt.Errorf("render info mail: %w", err)
	}

	if err := m.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   addr,
		Subject:  m.subject,
		BodyHTML: body,
		Tag:      InfoMailTag,
	}); err != nil {
		return fmt.Errorf("send info mail: %w", err)
	}
	return nil
}
