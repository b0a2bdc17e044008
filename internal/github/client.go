// internal/github/client.go
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"

	"github-repo-manager/internal/auth"
	custom_errors "github-repo-manager/internal/errors"
	"github-repo-manager/internal/model"
)

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com/"

// pageSize is the number of repositories requested by a list call. Only one page is fetched.
const pageSize = 100

// Client is a stateless gateway over the repository-hosting REST API.
// It normalizes provider payloads into model.RepositoryRecord values.
type Client struct {
	gh     *github.Client
	logger *slog.Logger
}

// NewClient creates a Client talking to baseURL. Every request asks creds for an
// Authorization header at send time.
func NewClient(baseURL string, creds auth.CredentialSource, logger *slog.Logger) (*Client, error) {
	return NewClientWithHTTPClient(&http.Client{}, baseURL, creds, logger)
}

// NewClientWithHTTPClient is like NewClient but sends requests through httpClient's transport.
// httpClient is not modified.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string, creds auth.CredentialSource, logger *slog.Logger) (*Client, error) {
	u, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		creds = auth.NoCredentials{}
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	hc := *httpClient
	hc.Transport = &authTransport{base: httpClient.Transport, creds: creds}

	gh := github.NewClient(&hc)
	gh.BaseURL = u

	return &Client{
		gh:     gh,
		logger: logger,
	}, nil
}

// ListRepositories returns the authenticated user's own repositories, newest first.
// Failures are logged and reported as an empty list; use FetchRepositories to see them.
func (c *Client) ListRepositories(ctx context.Context) []model.RepositoryRecord {
	repos, err := c.FetchRepositories(ctx)
	if err != nil {
		return []model.RepositoryRecord{}
	}
	return repos
}

// FetchRepositories is ListRepositories with the error returned to the caller.
func (c *Client) FetchRepositories(ctx context.Context) ([]model.RepositoryRecord, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		Affiliation: "owner",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{
			PerPage: pageSize,
		},
	}

	c.logger.Debug("Fetching repositories", "per_page", pageSize)
	repos, _, err := c.gh.Repositories.ListByAuthenticatedUser(ctx, opts)
	if err != nil {
		c.logger.Error("Failed to fetch repositories", "error", err)
		return nil, fmt.Errorf("listing repositories: %w", err)
	}

	records := make([]model.RepositoryRecord, 0, len(repos))
	for _, r := range repos {
		records = append(records, toRecord(r))
	}
	return records, nil
}

// CreateRepository submits draft as a new repository of the authenticated user.
// The outcome is only logged: the caller gets neither the created record nor an error.
func (c *Client) CreateRepository(ctx context.Context, draft model.RepositoryRecord) {
	logger := c.logger.With("repo", draft.Name)

	req, err := c.gh.NewRequest(http.MethodPost, "user/repos", draft)
	if err != nil {
		logger.Error("Failed to create repository", "error", err)
		return
	}

	created := new(github.Repository)
	if _, err := c.gh.Do(ctx, req, created); err != nil {
		logger.Error("Failed to create repository", "error", err)
		return
	}
	logger.Info("Repository created", "full_name", created.GetFullName())
}

// UpdateRepository applies patch to owner/name and returns the record the provider reports back.
func (c *Client) UpdateRepository(ctx context.Context, owner, name string, patch model.RepositoryPatch) (model.RepositoryRecord, error) {
	logger := c.logger.With("owner", owner, "repo", name)

	req, err := c.gh.NewRequest(http.MethodPatch, fmt.Sprintf("repos/%v/%v", owner, name), patch)
	if err != nil {
		logger.Error("Failed to update repository", "error", err)
		return model.RepositoryRecord{}, fmt.Errorf("building update request for %s/%s: %w", owner, name, err)
	}

	updated := new(github.Repository)
	if _, err := c.gh.Do(ctx, req, updated); err != nil {
		logger.Error("Failed to update repository", "error", err)
		return model.RepositoryRecord{}, fmt.Errorf("updating repository %s/%s: %w", owner, name, err)
	}

	logger.Info("Repository updated", "full_name", updated.GetFullName())
	return toRecord(updated), nil
}

// DeleteRepository removes owner/name.
func (c *Client) DeleteRepository(ctx context.Context, owner, name string) error {
	logger := c.logger.With("owner", owner, "repo", name)

	if _, err := c.gh.Repositories.Delete(ctx, owner, name); err != nil {
		logger.Error("Failed to delete repository", "error", err)
		return fmt.Errorf("deleting repository %s/%s: %w", owner, name, err)
	}

	logger.Info("Repository deleted")
	return nil
}

// GetAccountInfo returns the authenticated user's profile, or model.NotFoundUser on failure.
func (c *Client) GetAccountInfo(ctx context.Context) model.UserInfo {
	user, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		c.logger.Error("Failed to fetch account info", "error", err)
		return model.NotFoundUser()
	}
	return model.UserInfo{
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		Bio:       user.GetBio(),
		AvatarURL: user.GetAvatarURL(),
	}
}

// toRecord translates a github.Repository into the normalized model.RepositoryRecord.
// Empty provider values become nil.
func toRecord(r *github.Repository) model.RepositoryRecord {
	rec := model.RepositoryRecord{
		Name:        r.GetName(),
		Description: model.StringPtr(r.GetDescription()),
		Language:    model.StringPtr(r.GetLanguage()),
		FullName:    model.StringPtr(r.GetFullName()),
		HTMLURL:     model.StringPtr(r.GetHTMLURL()),
	}
	if r.Owner != nil {
		rec.ImageURL = model.StringPtr(r.Owner.GetAvatarURL())
		rec.Owner = model.StringPtr(r.Owner.GetLogin())
	}
	return rec
}

func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		raw = DefaultBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &custom_errors.ErrInvalidBaseURL{URL: raw, Reason: err.Error()}
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, &custom_errors.ErrInvalidBaseURL{URL: raw, Reason: "must be an absolute URL"}
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}
