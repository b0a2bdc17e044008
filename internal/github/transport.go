// internal/github/transport.go
package github

import (
	"net/http"

	"github-repo-manager/internal/auth"
)

// authTransport sets the Authorization header from a CredentialSource on every request.
// Without a credential the request is sent as is.
type authTransport struct {
	base  http.RoundTripper
	creds auth.CredentialSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	header, ok := t.creds.AuthHeader()
	if ok && header != "" {
		// RoundTrippers must not modify the caller's request.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", header)
	}
	return t.transport().RoundTrip(req)
}

func (t *authTransport) transport() http.RoundTripper {
	if t.base != nil {
		return t.base
	}
	return http.DefaultTransport
}
