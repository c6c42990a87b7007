// Package issue provides the issue commands of gcli.
package issue

import (
	"fmt"

	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/spf13/cobra"
)

// CreateIssueCmd creates the issue command with all its subcommands.
func CreateIssueCmd() *cobra.Command {
	issueCmd := &cobra.Command{
		Use:     "issues",
		Aliases: []string{"issue", "i"},
		Short:   "List, inspect and edit issues",
		Long:    `Work with the issues of a repository, or the bugs of a Bugzilla product.`,
	}

	issueCmd.AddCommand(
		createListCmd(),
		createShowCmd(),
		createCreateCmd(),
		createCloseCmd(),
		createReopenCmd(),
		createAssignCmd(),
		createLabelCmd(),
		createMilestoneCmd(),
		createTitleCmd(),
		createCommentsCmd(),
		createCommentCmd(),
	)

	return issueCmd
}

func createListCmd() *cobra.Command {
	var filter forge.IssueFilter

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List issues",
		Long: `List the open issues of the repository.

Examples:
  gcli issues list
  gcli issues list --all --author alice
  gcli -a mozilla -o Firefox -r Core issues list -n 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			t := env.Target
			issues, err := env.Session.GetIssues(cmd.Context(), t.Owner, t.Repo, filter, cli.Max)
			if err != nil {
				return err
			}
			return format.Issues(cmd.OutOrStdout(), issues)
		},
	}

	listCmd.Flags().BoolVar(&filter.All, "all", false, "Include closed issues")
	listCmd.Flags().StringVar(&filter.Author, "author", "", "Only issues opened by this user")
	listCmd.Flags().StringVarP(&filter.Label, "label", "l", "", "Only issues carrying this label")
	listCmd.Flags().StringVarP(&filter.Milestone, "milestone", "m", "", "Only issues of this milestone")
	listCmd.Flags().StringVarP(&filter.Search, "search", "s", "", "Only issues matching this text")

	return listCmd
}

func createShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <number>",
		Short: "Show an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ref, err := cli.OpenRef(args[0])
			if err != nil {
				return err
			}
			issue, err := env.Session.GetIssue(cmd.Context(), ref.Owner, ref.Repo, ref.Number)
			if err != nil {
				return err
			}
			return format.Issue(cmd.OutOrStdout(), issue)
		},
	}
}

func createCreateCmd() *cobra.Command {
	var title, body, bodyFile string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new issue",
		Long: `Open a new issue.

Examples:
  gcli issues create -t "Crash on start" -b "Steps to reproduce..."
  gcli issues create -t "Crash on start" -F report.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			text, err := env.Body(body, bodyFile)
			if err != nil {
				return err
			}
			issue, err := env.Session.CreateIssue(cmd.Context(), forge.SubmitIssueOptions{
				Owner: env.Target.Owner,
				Repo:  env.Target.Repo,
				Title: title,
				Body:  text,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created issue #%d\n", issue.Number)
			if issue.URL != "" {
				fmt.Fprintln(cmd.OutOrStdout(), issue.URL)
			}
			return nil
		},
	}

	createCmd.Flags().StringVarP(&title, "title", "t", "", "Title of the issue")
	createCmd.Flags().StringVarP(&body, "body", "b", "", "Description of the issue")
	createCmd.Flags().StringVarP(&bodyFile, "body-file", "F", "", "Read the description from a file")
	_ = createCmd.MarkFlagRequired("title")

	return createCmd
}
