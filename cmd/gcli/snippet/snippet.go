// Package snippet provides the snippet commands of gcli.
package snippet

import (
	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/spf13/cobra"
)

// CreateSnippetCmd creates the snippet command with all its subcommands.
func CreateSnippetCmd() *cobra.Command {
	snippetCmd := &cobra.Command{
		Use:     "snippets",
		Aliases: []string{"snippet", "gists", "gist"},
		Short:   "List, print and delete your snippets or gists",
	}

	snippetCmd.AddCommand(createListCmd(), createGetCmd(), createDeleteCmd())

	return snippetCmd
}

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your snippets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.Open()
			if err != nil {
				return err
			}
			snippets, err := env.Session.GetSnippets(cmd.Context(), cli.Max)
			if err != nil {
				return err
			}
			return format.Snippets(cmd.OutOrStdout(), snippets)
		},
	}
}

func createGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print the content of a snippet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.Open()
			if err != nil {
				return err
			}
			return env.Session.SnippetGetContent(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}

func createDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a snippet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.Open()
			if err != nil {
				return err
			}
			return env.Session.SnippetDelete(cmd.Context(), args[0])
		},
	}
}
