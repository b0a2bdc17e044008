// cmd/repoctl/commands_test.go
package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI points the CLI at a fake provider and executes args.
func runCLI(t *testing.T, provider http.Handler, args ...string) (string, error) {
	t.Helper()
	server := httptest.NewServer(provider)
	t.Cleanup(server.Close)

	t.Setenv("API_BASE_URL", server.URL)
	t.Setenv("GITHUB_TOKEN", "secret")
	t.Setenv("LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	provider := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		fmt.Fprintln(w, `[{"name": "a", "description": "demo", "language": "Go", "owner": {"login": "alice"}, "full_name": "alice/a"}]`)
	})

	out, err := runCLI(t, provider, "list")

	require.NoError(t, err)
	assert.Equal(t, "alice/a\tGo\tdemo\n", out)
}

func TestListCommand_Empty(t *testing.T) {
	provider := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	out, err := runCLI(t, provider, "list")

	require.NoError(t, err)
	assert.Equal(t, "No repositories.\n", out)
}

func TestCreateCommand_RequiresName(t *testing.T) {
	_, err := runCLI(t, http.NotFoundHandler(), "create", "--description", "x")
	assert.Error(t, err)
}

func TestEditCommand(t *testing.T) {
	listed := `[{"name": "a", "description": "keep me", "owner": {"login": "alice"}, "full_name": "alice/a"}]`

	t.Run("rename keeps the current description", func(t *testing.T) {
		provider := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				fmt.Fprintln(w, listed)
				return
			}
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/repos/alice/a", r.URL.Path)
			raw, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"name": "b", "description": "keep me"}`, string(raw))
			fmt.Fprintln(w, `{"name": "b", "description": "keep me", "owner": {"login": "alice"}, "full_name": "alice/b"}`)
		})

		out, err := runCLI(t, provider, "edit", "alice/a", "--name", "b")

		require.NoError(t, err)
		assert.Equal(t, "alice/b\t-\tkeep me\n", out)
	})

	t.Run("empty description clears it", func(t *testing.T) {
		provider := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				fmt.Fprintln(w, listed)
				return
			}
			raw, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"name": "a", "description": null}`, string(raw))
			fmt.Fprintln(w, `{"name": "a", "description": null, "owner": {"login": "alice"}, "full_name": "alice/a"}`)
		})

		out, err := runCLI(t, provider, "edit", "alice/a", "--description", "")

		require.NoError(t, err)
		assert.Equal(t, "alice/a\t-\t-\n", out)
	})
}

func TestDeleteCommand(t *testing.T) {
	t.Run("invalid identity", func(t *testing.T) {
		_, err := runCLI(t, http.NotFoundHandler(), "delete", "just-a-name")
		assert.Error(t, err)
	})

	t.Run("reports provider failure", func(t *testing.T) {
		provider := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				fmt.Fprintln(w, `[]`)
				return
			}
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintln(w, `{"message": "Not Found"}`)
		})

		_, err := runCLI(t, provider, "delete", "alice/missing")
		assert.ErrorContains(t, err, "delete failed")
	})

	t.Run("listed record without owner uses the given owner", func(t *testing.T) {
		provider := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				fmt.Fprintln(w, `[{"name": "a", "full_name": "alice/a"}]`)
				return
			}
			assert.Equal(t, "/repos/alice/a", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		out, err := runCLI(t, provider, "delete", "alice/a")
		require.NoError(t, err)
		assert.Equal(t, "Deleted alice/a\n", out)
	})

	t.Run("deletes", func(t *testing.T) {
		provider := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				fmt.Fprintln(w, `[]`)
				return
			}
			assert.Equal(t, "/repos/alice/a", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		out, err := runCLI(t, provider, "delete", "alice/a")
		require.NoError(t, err)
		assert.Equal(t, "Deleted alice/a\n", out)
	})
}

func TestWhoamiCommand_Placeholder(t *testing.T) {
	provider := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	out, err := runCLI(t, provider, "whoami")

	require.NoError(t, err)
	assert.Contains(t, out, "undefined (Usuario no encontrado)")
}
