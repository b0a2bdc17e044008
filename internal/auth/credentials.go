// internal/auth/credentials.go
package auth

import (
	"golang.org/x/oauth2"
)

// CredentialSource supplies the Authorization header value for outgoing requests.
// ok is false when no credential is available.
type CredentialSource interface {
	AuthHeader() (header string, ok bool)
}

// TokenSourceCredentials adapts an oauth2.TokenSource into a CredentialSource.
type TokenSourceCredentials struct {
	ts oauth2.TokenSource
}

// NewTokenSourceCredentials wraps ts.
func NewTokenSourceCredentials(ts oauth2.TokenSource) *TokenSourceCredentials {
	return &TokenSourceCredentials{ts: ts}
}

// NewStaticCredentials returns credentials for a fixed personal access token.
// An empty token yields a source that never produces a header.
func NewStaticCredentials(token string) CredentialSource {
	if token == "" {
		return NoCredentials{}
	}
	return NewTokenSourceCredentials(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

// AuthHeader formats the current token as "<type> <access token>".
func (c *TokenSourceCredentials) AuthHeader() (string, bool) {
	if c == nil || c.ts == nil {
		return "", false
	}
	tok, err := c.ts.Token()
	if err != nil || tok == nil || tok.AccessToken == "" {
		return "", false
	}
	return tok.Type() + " " + tok.AccessToken, true
}

// NoCredentials never supplies a header; requests go out unauthenticated.
type NoCredentials struct{}

func (NoCredentials) AuthHeader() (string, bool) { return "", false }
