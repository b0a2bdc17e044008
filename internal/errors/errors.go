// internal/errors/errors.go
package errors

import "fmt"

// ErrInvalidRepoFormat is returned when a repository identity is not in 'owner/name' format.
type ErrInvalidRepoFormat struct {
	Repo string
}

func (e *ErrInvalidRepoFormat) Error() string {
	return fmt.Sprintf("invalid repository format: %q, expected 'owner/name'", e.Repo)
}

// ErrInvalidBaseURL is returned when the configured API base URL cannot be used.
type ErrInvalidBaseURL struct {
	URL    string
	Reason string
}

func (e *ErrInvalidBaseURL) Error() string {
	return fmt.Sprintf("invalid API base URL %q: %s", e.URL, e.Reason)
}
