// internal/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/go-github/v62/github"

	"github-repo-manager/internal/model"
	"github-repo-manager/internal/session"
)

// RepositoryService is the session behaviour the HTTP surface needs.
type RepositoryService interface {
	Reload(ctx context.Context)
	RefreshProfile(ctx context.Context) model.UserInfo
	Repositories() []model.RepositoryRecord
	Find(identity string) (model.RepositoryRecord, bool)
	Create(ctx context.Context, form model.DraftForm) error
	Edit(ctx context.Context, rec model.RepositoryRecord, name, description string) (model.RepositoryRecord, error)
	Delete(ctx context.Context, rec model.RepositoryRecord) error
}

// Handler is the container for API dependencies.
type Handler struct {
	svc    RepositoryService
	logger *slog.Logger
}

// repositoryForm is the body accepted by create.
type repositoryForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// repositoryPatchForm is the body accepted by edit. An omitted description keeps the current one.
type repositoryPatchForm struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// NewRouter creates and configures a new chi router with all API routes.
func NewRouter(svc RepositoryService, logger *slog.Logger) http.Handler {
	h := &Handler{
		svc:    svc,
		logger: logger,
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// API Routes
	r.Get("/health", h.healthCheck)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/user", h.getUser)
		r.Get("/repos", h.listRepos)
		r.Post("/repos", h.createRepo)
		r.Patch("/repos/{owner}/{name}", h.updateRepo)
		r.Delete("/repos/{owner}/{name}", h.deleteRepo)
	})

	return r
}

// healthCheck is a simple health endpoint.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getUser returns the authenticated profile, or the placeholder profile.
// GET /v1/user
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.svc.RefreshProfile(r.Context()))
}

// listRepos reloads and returns the repository list.
// GET /v1/repos
func (h *Handler) listRepos(w http.ResponseWriter, r *http.Request) {
	h.svc.Reload(r.Context())
	respondWithJSON(w, http.StatusOK, h.svc.Repositories())
}

// createRepo submits a new repository and returns the reloaded list.
// POST /v1/repos
func (h *Handler) createRepo(w http.ResponseWriter, r *http.Request) {
	var body repositoryForm
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	form := model.NewDraftForm().WithName(body.Name).WithDescription(body.Description)
	if err := h.svc.Create(r.Context(), form); err != nil {
		h.writeServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, h.svc.Repositories())
}

// updateRepo renames a repository and sets its description when one is given.
// PATCH /v1/repos/{owner}/{name}
func (h *Handler) updateRepo(w http.ResponseWriter, r *http.Request) {
	var body repositoryPatchForm
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if body.Name == "" {
		respondWithError(w, http.StatusBadRequest, model.ErrEmptyRepoName.Error())
		return
	}

	rec := h.lookup(r)
	description := rec.DescriptionText()
	if body.Description != nil {
		description = *body.Description
	}

	updated, err := h.svc.Edit(r.Context(), rec, body.Name, description)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

// deleteRepo removes a repository.
// DELETE /v1/repos/{owner}/{name}
func (h *Handler) deleteRepo(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), h.lookup(r)); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// lookup resolves the URL identity against the session list. Repositories that were
// never listed are addressed by owner and name alone.
func (h *Handler) lookup(r *http.Request) model.RepositoryRecord {
	owner := chi.URLParam(r, "owner")
	name := chi.URLParam(r, "name")

	if rec, ok := h.svc.Find(owner + "/" + name); ok {
		if rec.OwnerLogin() == "" {
			rec.Owner = model.StringPtr(owner)
		}
		return rec
	}
	return model.RepositoryRecord{Name: name, Owner: model.StringPtr(owner)}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrEmptyRepoName), errors.Is(err, session.ErrUnknownOwner):
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode < http.StatusInternalServerError {
		respondWithError(w, ghErr.Response.StatusCode, ghErr.Message)
		return
	}

	h.logger.Error("Repository provider request failed", "error", err)
	respondWithError(w, http.StatusBadGateway, "Repository provider request failed")
}
