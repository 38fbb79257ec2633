// Package token signs short-lived links that may only be used for one
// subject, such as the info mail address confirmed by a visitor.
//
// A token is base64url(payload) "." base64url(HMAC-SHA256(payload)). The
// payload is JSON holding the subject and an expiry in Unix seconds.
//
// # Usage
//
//	signer, err := token.NewSigner(secret)
//	if err != nil {
//		return err
//	}
//
//	tok, err := signer.Sign("anna@example.org", 15*time.Minute)
//	// ...
//	if err := signer.Verify(tok, "anna@example.org"); err != nil {
//		// token.ErrMalformed, token.ErrBadSignature, token.ErrExpired or
//		// token.ErrSubjectMismatch
//	}
package token
