// cmd/repoctl/commands.go
package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github-repo-manager/internal/auth"
	"github-repo-manager/internal/config"
	"github-repo-manager/internal/github"
	"github-repo-manager/internal/model"
	"github-repo-manager/internal/session"
)

var version = "0.1.0"

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "repoctl",
		Short:         "Manage your hosted repositories",
		Long:          `repoctl lists, creates, edits and deletes the repositories owned by the authenticated account.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.AddCommand(listCmd(errOut))
	rootCmd.AddCommand(createCmd(errOut))
	rootCmd.AddCommand(editCmd(errOut))
	rootCmd.AddCommand(deleteCmd(errOut))
	rootCmd.AddCommand(whoamiCmd(errOut))

	return rootCmd
}

// newSession builds a session from configuration. Logs go to errOut so stdout stays clean.
func newSession(errOut io.Writer) (*session.Session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	gateway, err := github.NewClient(cfg.APIBaseURL, auth.NewStaticCredentials(cfg.GithubToken), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository gateway: %w", err)
	}
	return session.New(gateway, logger), nil
}

func listCmd(errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your repositories, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(errOut)
			if err != nil {
				return err
			}
			sess.Reload(cmd.Context())

			repos := sess.Repositories()
			if len(repos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No repositories.")
				return nil
			}
			for _, r := range repos {
				printRecord(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

func createCmd(errOut io.Writer) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a repository",
		Long: `Submits a new repository. The provider's answer is not reported back;
run 'repoctl list' to confirm the repository exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(errOut)
			if err != nil {
				return err
			}
			form := model.NewDraftForm().WithName(name).WithDescription(description)
			if err := sess.Create(cmd.Context(), form); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Submitted %q\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Repository name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Repository description")

	return cmd
}

func editCmd(errOut io.Writer) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "edit OWNER/NAME",
		Short: "Rename a repository or change its description",
		Long: `Sends the new name and description. Omitted flags keep the current values;
an explicitly empty description clears it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(errOut)
			if err != nil {
				return err
			}
			rec, err := resolve(cmd, sess, args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = rec.Name
			}
			if !cmd.Flags().Changed("description") {
				description = rec.DescriptionText()
			}

			updated, err := sess.Edit(cmd.Context(), rec, name, description)
			if err != nil {
				return fmt.Errorf("edit failed: %w", err)
			}
			printRecord(cmd.OutOrStdout(), updated)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New repository name (defaults to the current name)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description (defaults to the current description)")

	return cmd
}

func deleteCmd(errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "delete OWNER/NAME",
		Short: "Delete a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(errOut)
			if err != nil {
				return err
			}
			rec, err := resolve(cmd, sess, args[0])
			if err != nil {
				return err
			}
			if err := sess.Delete(cmd.Context(), rec); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", rec.Identity())
			return nil
		},
	}
}

func whoamiCmd(errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(errOut)
			if err != nil {
				return err
			}
			u := sess.RefreshProfile(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n%s\n", u.Login, u.Name, u.Bio)
			return nil
		},
	}
}

// resolve finds the listed record for identity, falling back to the bare owner/name pair.
func resolve(cmd *cobra.Command, sess *session.Session, identity string) (model.RepositoryRecord, error) {
	owner, name, err := model.SplitFullName(identity)
	if err != nil {
		return model.RepositoryRecord{}, err
	}
	sess.Reload(cmd.Context())
	if rec, ok := sess.Find(identity); ok {
		if rec.OwnerLogin() == "" {
			rec.Owner = model.StringPtr(owner)
		}
		return rec, nil
	}
	return model.RepositoryRecord{Name: name, Owner: model.StringPtr(owner)}, nil
}

func printRecord(w io.Writer, r model.RepositoryRecord) {
	fmt.Fprintf(w, "%s\t%s\t%s\n", r.Identity(), orDash(r.Language), orDash(r.Description))
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
