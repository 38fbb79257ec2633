// Package email sends the info mails requested through the donation pages.
//
// EmailSender is implemented by a Postmark client for production and by
// DevSender, which writes each mail to disk, for local work. NewSender picks
// one from Config:
//
//	sender, err := email.NewSender(cfg)
//	if err != nil {
//	    return err
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "spender@example.org",
//	    Subject:  "Informationen",
//	    BodyHTML: body,
//	    Tag:      "info-request",
//	})
//
// Bodies are usually templ components rendered with templates.Render.
//
// Errors wrap ErrInvalidConfig, ErrInvalidParams or ErrFailedToSendEmail and
// can be checked with errors.Is.
package email
