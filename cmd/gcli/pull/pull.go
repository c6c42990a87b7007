// Package pull provides the pull request commands of gcli.
package pull

import (
	"fmt"

	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/spf13/cobra"
)

// CreatePullCmd creates the pull command with all its subcommands.
func CreatePullCmd() *cobra.Command {
	pullCmd := &cobra.Command{
		Use:     "pulls",
		Aliases: []string{"pull", "pr", "mr"},
		Short:   "List, inspect, open and merge pull requests",
		Long:    `Work with pull requests, called merge requests on GitLab.`,
	}

	pullCmd.AddCommand(
		createListCmd(),
		createShowCmd(),
		createCreateCmd(),
		createMergeCmd(),
		createCloseCmd(),
		createReopenCmd(),
		createCommitsCmd(),
		createDiffCmd(),
		createLabelCmd(),
		createMilestoneCmd(),
		createTitleCmd(),
		createReviewerCmd(),
		createCommentsCmd(),
		createCommentCmd(),
	)

	return pullCmd
}

func createListCmd() *cobra.Command {
	var filter forge.PullFilter

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List pull requests",
		Long: `List the open pull requests of the repository.

Examples:
  gcli pulls list
  gcli pulls list --all --label needs-review`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			pulls, err := env.Session.GetPulls(cmd.Context(), env.Target.Owner, env.Target.Repo, filter, cli.Max)
			if err != nil {
				return err
			}
			return format.Pulls(cmd.OutOrStdout(), pulls)
		},
	}

	listCmd.Flags().BoolVar(&filter.All, "all", false, "Include closed and merged pull requests")
	listCmd.Flags().StringVar(&filter.Author, "author", "", "Only pull requests opened by this user")
	listCmd.Flags().StringVarP(&filter.Label, "label", "l", "", "Only pull requests carrying this label")
	listCmd.Flags().StringVarP(&filter.Milestone, "milestone", "m", "", "Only pull requests of this milestone")
	listCmd.Flags().StringVarP(&filter.Search, "search", "s", "", "Only pull requests matching this text")

	return listCmd
}

func createShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <number>",
		Short: "Show a pull request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ref, err := cli.OpenRef(args[0])
			if err != nil {
				return err
			}
			pull, err := env.Session.GetPull(cmd.Context(), ref.Owner, ref.Repo, ref.Number)
			if err != nil {
				return err
			}
			return format.Pull(cmd.OutOrStdout(), pull)
		},
	}
}

func createCreateCmd() *cobra.Command {
	var opts forge.SubmitPullOptions
	var bodyFile string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Open a pull request",
		Long: `Open a pull request. The head branch defaults to the branch checked out
in the current directory.

Examples:
  gcli pulls create -t "Fix crash" --to main
  gcli pulls create -t "Fix crash" --from alice:fix --draft --label bug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			if opts.From == "" {
				if opts.From, err = env.CurrentBranch(); err != nil {
					return err
				}
			}
			if opts.Body, err = env.Body(opts.Body, bodyFile); err != nil {
				return err
			}
			opts.Owner, opts.Repo = env.Target.Owner, env.Target.Repo
			if err := env.Session.CreatePull(cmd.Context(), opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opened %s into %s\n", opts.From, opts.To)
			return nil
		},
	}

	createCmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Title of the pull request")
	createCmd.Flags().StringVarP(&opts.Body, "body", "b", "", "Description of the pull request")
	createCmd.Flags().StringVarP(&bodyFile, "body-file", "F", "", "Read the description from a file")
	createCmd.Flags().StringVar(&opts.From, "from", "", "Head branch, as branch or owner:branch")
	createCmd.Flags().StringVar(&opts.To, "to", "main", "Base branch")
	createCmd.Flags().BoolVar(&opts.Draft, "draft", false, "Open as draft")
	createCmd.Flags().StringSliceVar(&opts.Labels, "label", nil, "Labels to set")
	createCmd.Flags().StringSliceVar(&opts.Reviewers, "reviewer", nil, "Reviewers to request")
	_ = createCmd.MarkFlagRequired("title")

	return createCmd
}

func createMergeCmd() *cobra.Command {
	var squash, deleteHead bool

	mergeCmd := &cobra.Command{
		Use:   "merge <number>",
		Short: "Merge a pull request",
		Long: `Merge a pull request.

Examples:
  gcli pulls merge 42
  gcli pulls merge 42 --squash --delete-head`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ref, err := cli.OpenRef(args[0])
			if err != nil {
				return err
			}
			var flags forge.MergeFlags
			if squash {
				flags |= forge.MergeSquash
			}
			if deleteHead {
				flags |= forge.MergeDeleteHead
			}
			return env.Session.PullMerge(cmd.Context(), ref.Owner, ref.Repo, ref.Number, flags)
		},
	}

	mergeCmd.Flags().BoolVar(&squash, "squash", false, "Squash the commits")
	mergeCmd.Flags().BoolVarP(&deleteHead, "delete-head", "d", false, "Delete the head branch once merged")

	return mergeCmd
}

func createCommitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commits <number>",
		Short: "List the commits of a pull request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ref, err := cli.OpenRef(args[0])
			if err != nil {
				return err
			}
			commits, err := env.Session.GetPullCommits(cmd.Context(), ref.Owner, ref.Repo, ref.Number, cli.Max)
			if err != nil {
				return err
			}
			return format.Commits(cmd.OutOrStdout(), commits)
		},
	}
}

func createDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <number>",
		Short: "Print the diff of a pull request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ref, err := cli.OpenRef(args[0])
			if err != nil {
				return err
			}
			return env.Session.PullGetDiff(cmd.Context(), ref.Owner, ref.Repo, ref.Number, cmd.OutOrStdout())
		},
	}
}
