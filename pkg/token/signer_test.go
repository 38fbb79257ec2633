package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/createrainforest/bosweb/pkg/token"
)

func TestNewSigner(t *testing.T) {
	t.Parallel()

	_, err := token.NewSigner("")
	assert.ErrorIs(t, err, token.ErrEmptySecret)

	s, err := token.NewSigner("geheim")
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestSigner(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	s, err := token.NewSigner("geheim", token.WithClock(clock))
	require.NoError(t, err)

	tok, err := s.Sign("anna@example.org", 15*time.Minute)
	require.NoError(t, err)
	require.Len(t, strings.Split(tok, "."), 2)

	t.Run("valid for its subject", func(t *testing.T) {
		assert.NoError(t, s.Verify(tok, "anna@example.org"))
	})

	t.Run("other subject", func(t *testing.T) {
		assert.ErrorIs(t, s.Verify(tok, "bert@example.org"), token.ErrSubjectMismatch)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := token.NewSigner("anders", token.WithClock(clock))
		require.NoError(t, err)
		assert.ErrorIs(t, other.Verify(tok, "anna@example.org"), token.ErrBadSignature)
	})

	t.Run("tampered payload", func(t *testing.T) {
		forged, err := token.NewSigner("anders", token.WithClock(clock))
		require.NoError(t, err)
		forgedTok, err := forged.Sign("anna@example.org", time.Hour)
		require.NoError(t, err)

		payload, _, _ := strings.Cut(forgedTok, ".")
		_, sig, _ := strings.Cut(tok, ".")
		assert.ErrorIs(t, s.Verify(payload+"."+sig, "anna@example.org"), token.ErrBadSignature)
	})

	t.Run("expired", func(t *testing.T) {
		later, err := token.NewSigner("geheim", token.WithClock(func() time.Time {
			return now.Add(15 * time.Minute)
		}))
		require.NoError(t, err)
		assert.ErrorIs(t, later.Verify(tok, "anna@example.org"), token.ErrExpired)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, in := range []string{"", "abc", ".", "abc.", ".abc", "a$b.c", "abc.d$f"} {
			assert.ErrorIs(t, s.Verify(in, "anna@example.org"), token.ErrMalformed, in)
		}
	})
}
