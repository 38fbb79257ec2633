package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type claims struct {
	Subject string `json:"sub"`
	Expires int64  `json:"exp"`
}

// Signer issues and checks subject-bound tokens with one secret.
type Signer struct {
	secret []byte
	now    func() time.Time
}

// Option configures a Signer.
type Option func(*Signer)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSigner creates a Signer. The secret must not be empty.
func NewSigner(secret string, opts ...Option) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	s := &Signer{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Sign returns a token for subject that expires after ttl.
func (s *Signer) Sign(subject string, ttl time.Duration) (string, error) {
	data, err := json.Marshal(claims{
		Subject: subject,
		Expires: s.now().Add(ttl).Unix(),
	})
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data) + "." +
		base64.RawURLEncoding.EncodeToString(s.mac(data)), nil
}

// Verify checks the signature, the expiry and that tok was issued for subject.
func (s *Signer) Verify(tok, subject string) error {
	payload, sig, ok := strings.Cut(tok, ".")
	if !ok || payload == "" || sig == "" {
		return ErrMalformed
	}
	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !hmac.Equal(got, s.mac(data)) {
		return ErrBadSignature
	}

	var c claims
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !s.now().Before(time.Unix(c.Expires, 0)) {
		return ErrExpired
	}
	if !hmac.Equal([]byte(c.Subject), []byte(subject)) {
		return ErrSubjectMismatch
	}
	return nil
}

func (s *Signer) mac(data []byte) []byte {
	h := hmac.New(sha256.New, s.secret)
	h.Write(data)
	return h.Sum(nil)
}
