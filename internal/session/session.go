// internal/session/session.go
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github-repo-manager/internal/model"
)

// ErrUnknownOwner is returned when a record cannot be addressed because its owner is unknown.
var ErrUnknownOwner = errors.New("repository owner is unknown")

// Gateway is the subset of the repository gateway the session drives.
type Gateway interface {
	ListRepositories(ctx context.Context) []model.RepositoryRecord
	CreateRepository(ctx context.Context, draft model.RepositoryRecord)
	UpdateRepository(ctx context.Context, owner, name string, patch model.RepositoryPatch) (model.RepositoryRecord, error)
	DeleteRepository(ctx context.Context, owner, name string) error
	GetAccountInfo(ctx context.Context) model.UserInfo
}

// Session keeps the repositories and profile shown to one user and reconciles
// them with the results of gateway writes.
type Session struct {
	gateway Gateway
	logger  *slog.Logger

	mu      sync.RWMutex
	repos   []model.RepositoryRecord
	profile model.UserInfo
}

// New creates an empty Session.
func New(gateway Gateway, logger *slog.Logger) *Session {
	return &Session{
		gateway: gateway,
		logger:  logger,
		repos:   []model.RepositoryRecord{},
		profile: model.NotFoundUser(),
	}
}

// Load refreshes the repository list and the profile concurrently.
// Gateway failures surface as an empty list or the placeholder profile.
func (s *Session) Load(ctx context.Context) error {
	var (
		repos   []model.RepositoryRecord
		profile model.UserInfo
	)

	// The gateway swallows its own failures; only cancellation fails the group,
	// and a cancelled load leaves the previous state in place.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		repos = s.gateway.ListRepositories(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		profile = s.gateway.GetAccountInfo(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	s.repos = repos
	s.profile = profile
	s.mu.Unlock()

	s.logger.Info("Session loaded", "repositories", len(repos), "login", profile.Login)
	return nil
}

// Reload refreshes only the repository list.
func (s *Session) Reload(ctx context.Context) {
	repos := s.gateway.ListRepositories(ctx)

	s.mu.Lock()
	s.repos = repos
	s.mu.Unlock()
}

// RefreshProfile refreshes only the profile and returns it.
func (s *Session) RefreshProfile(ctx context.Context) model.UserInfo {
	profile := s.gateway.GetAccountInfo(ctx)

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	return profile
}

// Repositories returns a copy of the current list.
func (s *Session) Repositories() []model.RepositoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.RepositoryRecord, len(s.repos))
	copy(out, s.repos)
	return out
}

// Profile returns the current profile.
func (s *Session) Profile() model.UserInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Find returns the record with the given identity.
func (s *Session) Find(identity string) (model.RepositoryRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.repos {
		if r.Identity() == identity {
			return r, true
		}
	}
	return model.RepositoryRecord{}, false
}

// Create validates form and submits it. The gateway does not report the outcome,
// so the list is reloaded afterwards.
func (s *Session) Create(ctx context.Context, form model.DraftForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	s.gateway.CreateRepository(ctx, form.Record())
	s.Reload(ctx)
	return nil
}

// Edit renames rec and replaces its description. An empty description clears it.
// On success the returned record takes rec's place in the list.
func (s *Session) Edit(ctx context.Context, rec model.RepositoryRecord, name, description string) (model.RepositoryRecord, error) {
	if rec.OwnerLogin() == "" {
		return model.RepositoryRecord{}, ErrUnknownOwner
	}

	patch := model.RepositoryPatch{
		Name:        model.Set(name),
		Description: model.SetOrNull(description),
	}
	updated, err := s.gateway.UpdateRepository(ctx, rec.OwnerLogin(), rec.Name, patch)
	if err != nil {
		return model.RepositoryRecord{}, err
	}

	s.mu.Lock()
	s.repos = ReplaceByIdentity(s.repos, rec.Identity(), updated)
	s.mu.Unlock()
	return updated, nil
}

// Delete removes rec remotely, then drops every local record sharing its identity.
func (s *Session) Delete(ctx context.Context, rec model.RepositoryRecord) error {
	if rec.OwnerLogin() == "" {
		return ErrUnknownOwner
	}

	if err := s.gateway.DeleteRepository(ctx, rec.OwnerLogin(), rec.Name); err != nil {
		return err
	}

	s.mu.Lock()
	s.repos = RemoveByIdentity(s.repos, rec.Identity())
	s.mu.Unlock()
	return nil
}

// RemoveByIdentity returns a new slice without the records matching identity.
func RemoveByIdentity(repos []model.RepositoryRecord, identity string) []model.RepositoryRecord {
	out := make([]model.RepositoryRecord, 0, len(repos))
	for _, r := range repos {
		if r.Identity() != identity {
			out = append(out, r)
		}
	}
	return out
}

// ReplaceByIdentity returns a new slice with the records matching identity swapped for updated.
func ReplaceByIdentity(repos []model.RepositoryRecord, identity string, updated model.RepositoryRecord) []model.RepositoryRecord {
	out := make([]model.RepositoryRecord, len(repos))
	for i, r := range repos {
		if r.Identity() == identity {
			out[i] = updated
			continue
		}
		out[i] = r
	}
	return out
}
