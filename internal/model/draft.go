// internal/model/draft.go
package model

import (
	"errors"
	"strings"
)

// ErrEmptyRepoName is returned when a draft is submitted without a name.
var ErrEmptyRepoName = errors.New("repository name is required")

// DraftForm is the state of the create form. Setters return a new value.
type DraftForm struct {
	name        string
	description string
}

// NewDraftForm returns an empty form.
func NewDraftForm() DraftForm {
	return DraftForm{}
}

func (f DraftForm) WithName(name string) DraftForm {
	f.name = name
	return f
}

func (f DraftForm) WithDescription(description string) DraftForm {
	f.description = description
	return f
}

func (f DraftForm) Name() string        { return f.name }
func (f DraftForm) Description() string { return f.description }

// Validate rejects a blank name.
func (f DraftForm) Validate() error {
	if strings.TrimSpace(f.name) == "" {
		return ErrEmptyRepoName
	}
	return nil
}

// Record builds the draft record submitted on create. The description is kept as typed.
func (f DraftForm) Record() RepositoryRecord {
	description := f.description
	return RepositoryRecord{
		Name:        f.name,
		Description: &description,
	}
}
