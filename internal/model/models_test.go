// internal/model/models_test.go
package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	custom_errors "github-repo-manager/internal/errors"
)

func TestRepositoryRecord_Identity(t *testing.T) {
	t.Run("prefers full_name", func(t *testing.T) {
		r := RepositoryRecord{Name: "repo", Owner: StringPtr("alice"), FullName: StringPtr("org/other")}
		assert.Equal(t, "org/other", r.Identity())
	})

	t.Run("falls back to owner/name", func(t *testing.T) {
		r := RepositoryRecord{Name: "repo", Owner: StringPtr("alice")}
		assert.Equal(t, "alice/repo", r.Identity())
	})

	t.Run("empty full_name is ignored", func(t *testing.T) {
		empty := ""
		r := RepositoryRecord{Name: "repo", Owner: StringPtr("alice"), FullName: &empty}
		assert.Equal(t, "alice/repo", r.Identity())
	})
}

func TestSameEntity(t *testing.T) {
	a := RepositoryRecord{
		Name:        "one",
		Description: StringPtr("first"),
		Owner:       StringPtr("alice"),
		FullName:    StringPtr("alice/repo"),
	}
	b := RepositoryRecord{
		Name:     "two",
		Language: StringPtr("Go"),
		Owner:    StringPtr("bob"),
		FullName: StringPtr("alice/repo"),
	}
	assert.True(t, SameEntity(a, b), "equal full_name means same entity")

	c := RepositoryRecord{Name: "repo", Owner: StringPtr("alice")}
	assert.True(t, SameEntity(a, c), "derived identity matches full_name")

	d := RepositoryRecord{Name: "repo", Owner: StringPtr("bob")}
	assert.False(t, SameEntity(c, d))
}

func TestRepositoryRecord_JSON(t *testing.T) {
	r := RepositoryRecord{Name: "x", Owner: StringPtr("alice")}
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "x",
		"description": null,
		"imageurl": null,
		"owner": "alice",
		"language": null,
		"full_name": null,
		"html_url": null
	}`, string(b))
}

func TestNotFoundUser(t *testing.T) {
	u := NotFoundUser()
	assert.Equal(t, "undefined", u.Login)
	assert.Equal(t, "Usuario no encontrado", u.Name)
	assert.NotEmpty(t, u.Bio)
	assert.NotEmpty(t, u.AvatarURL)
	assert.True(t, u.IsNotFound())
	assert.False(t, UserInfo{Login: "octocat"}.IsNotFound())
}

func TestSplitFullName(t *testing.T) {
	owner, name, err := SplitFullName("alice/repo")
	require.NoError(t, err)
	assert.Equal(t, "alice", owner)
	assert.Equal(t, "repo", name)

	for _, bad := range []string{"", "alice", "alice/", "/repo", "a/b/c"} {
		_, _, err := SplitFullName(bad)
		var formatErr *custom_errors.ErrInvalidRepoFormat
		assert.ErrorAs(t, err, &formatErr, bad)
	}
}

func TestRepositoryPatch_MarshalJSON(t *testing.T) {
	t.Run("only set fields are sent", func(t *testing.T) {
		b, err := json.Marshal(RepositoryPatch{Name: Set("renamed")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "renamed"}`, string(b))
	})

	t.Run("null fields encode as null", func(t *testing.T) {
		b, err := json.Marshal(RepositoryPatch{Name: Set("x"), Description: Null(), Homepage: Null()})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name": "x", "description": null, "homepage": null}`, string(b))
	})

	t.Run("SetOrNull maps empty to null", func(t *testing.T) {
		f := SetOrNull("")
		assert.True(t, f.IsSet())
		assert.Nil(t, f.Value())
		f = SetOrNull("d")
		require.NotNil(t, f.Value())
		assert.Equal(t, "d", *f.Value())
	})
}

func TestDraftForm(t *testing.T) {
	empty := NewDraftForm()
	filled := empty.WithName("android-project").WithDescription("an android repo")

	assert.Equal(t, "", empty.Name(), "setters must not mutate the original form")
	assert.Equal(t, "android-project", filled.Name())
	assert.Equal(t, "an android repo", filled.Description())

	assert.ErrorIs(t, empty.Validate(), ErrEmptyRepoName)
	assert.ErrorIs(t, empty.WithName("   ").Validate(), ErrEmptyRepoName)
	assert.NoError(t, filled.Validate())

	rec := NewDraftForm().WithName("x").Record()
	assert.Equal(t, "x", rec.Name)
	require.NotNil(t, rec.Description)
	assert.Equal(t, "", *rec.Description)
	assert.Nil(t, rec.Owner)
	assert.Nil(t, rec.ImageURL)
	assert.Nil(t, rec.Language)
}
