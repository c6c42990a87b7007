// Package repo provides the repository commands of gcli.
package repo

import (
	"fmt"
	"strings"

	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/spf13/cobra"
)

// CreateRepoCmd creates the repo command with all its subcommands.
func CreateRepoCmd() *cobra.Command {
	repoCmd := &cobra.Command{
		Use:     "repos",
		Aliases: []string{"repo"},
		Short:   "List, create and delete repositories",
	}

	repoCmd.AddCommand(createListCmd(), createCreateCmd(), createDeleteCmd(), createVisibilityCmd())

	return repoCmd
}

// ParseVisibility reads a repository visibility.
func ParseVisibility(s string) (forge.Visibility, error) {
	switch v := forge.Visibility(strings.ToLower(s)); v {
	case forge.VisibilityPublic, forge.VisibilityPrivate, forge.VisibilityInternal:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidVisibility, s)
}

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [owner]",
		Aliases: []string{"ls"},
		Short:   "List the repositories of a user or organization, yours by default",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.Open()
			if err != nil {
				return err
			}
			var repos []forge.Repo
			if len(args) == 1 {
				repos, err = env.Session.GetRepos(cmd.Context(), args[0], cli.Max)
			} else {
				repos, err = env.Session.GetOwnRepos(cmd.Context(), cli.Max)
			}
			if err != nil {
				return err
			}
			return format.Repos(cmd.OutOrStdout(), repos)
		},
	}
}

func createCreateCmd() *cobra.Command {
	var opts forge.RepoCreateOptions

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a repository in your account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.Open()
			if err != nil {
				return err
			}
			opts.Name = args[0]
			repo, err := env.Session.RepoCreate(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", repo.FullName)
			return nil
		},
	}

	createCmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Description of the repository")
	createCmd.Flags().BoolVar(&opts.Private, "private", false, "Create a private repository")

	return createCmd
}

func createDeleteCmd() *cobra.Command {
	var yes bool

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the repository",
		Long: `Delete the repository named by --owner and --repo, or detected from the
git remote. Nothing is deleted without --yes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("%w: %s/%s", ErrNotConfirmed, env.Target.Owner, env.Target.Repo)
			}
			return env.Session.RepoDelete(cmd.Context(), env.Target.Owner, env.Target.Repo)
		},
	}

	deleteCmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")

	return deleteCmd
}

func createVisibilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "visibility <public|private|internal>",
		Short:     "Change the visibility of the repository",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"public", "private", "internal"},
		RunE: func(cmd *cobra.Command, args []string) error {
			vis, err := ParseVisibility(args[0])
			if err != nil {
				return err
			}
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			return env.Session.RepoSetVisibility(cmd.Context(), env.Target.Owner, env.Target.Repo, vis)
		},
	}
}
