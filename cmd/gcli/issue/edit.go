package issue

import (
	"context"

	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/spf13/cobra"
)

// editCmd builds a command acting on one issue given by number.
func editCmd(use, short string, nargs int, fn func(ctx context.Context, s *forge.Session, r cli.Ref, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ref, err := cli.OpenRef(args[0])
			if err != nil {
				return err
			}
			return fn(cmd.Context(), env.Session, ref, args[1:])
		},
	}
}

func createCloseCmd() *cobra.Command {
	return editCmd("close <number>", "Close an issue", 1,
		func(ctx context.Context, s *forge.Session, r cli.Ref, _ []string) error {
			return s.IssueClose(ctx, r.Owner, r.Repo, r.Number)
		})
}

func createReopenCmd() *cobra.Command {
	return editCmd("reopen <number>", "Reopen a closed issue", 1,
		func(ctx context.Context, s *forge.Session, r cli.Ref, _ []string) error {
			return s.IssueReopen(ctx, r.Owner, r.Repo, r.Number)
		})
}

func createAssignCmd() *cobra.Command {
	return editCmd("assign <number> <user>", "Assign an issue to a user", 2,
		func(ctx context.Context, s *forge.Session, r cli.Ref, args []string) error {
			return s.IssueAssign(ctx, r.Owner, r.Repo, r.Number, args[0])
		})
}

func createTitleCmd() *cobra.Command {
	return editCmd("title <number> <title>", "Change the title of an issue", 2,
		func(ctx context.Context, s *forge.Session, r cli.Ref, args []string) error {
			return s.IssueSetTitle(ctx, r.Owner, r.Repo, r.Number, args[0])
		})
}

func createLabelCmd() *cobra.Command {
	var add, remove []string

	labelCmd := editCmd("label <number>", "Add or remove labels of an issue", 1,
		func(ctx context.Context, s *forge.Session, r cli.Ref, _ []string) error {
			if len(add) > 0 {
				if err := s.IssueAddLabels(ctx, r.Owner, r.Repo, r.Number, add); err != nil {
					return err
				}
			}
			if len(remove) > 0 {
				return s.IssueRemoveLabels(ctx, r.Owner, r.Repo, r.Number, remove)
			}
			return nil
		})
	labelCmd.Long = `Add or remove labels of an issue.

Examples:
  gcli issues label 12 --add bug,triage
  gcli issues label 12 --remove triage`

	labelCmd.Flags().StringSliceVar(&add, "add", nil, "Labels to add")
	labelCmd.Flags().StringSliceVar(&remove, "remove", nil, "Labels to remove")
	labelCmd.MarkFlagsOneRequired("add", "remove")

	return labelCmd
}

func createMilestoneCmd() *cobra.Command {
	var clearMilestone bool

	milestoneCmd := &cobra.Command{
		Use:   "milestone <number> [milestone-id]",
		Short: "Set or clear the milestone of an issue",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ref, err := cli.OpenRef(args[0])
			if err != nil {
				return err
			}
			if clearMilestone || len(args) == 1 {
				return env.Session.IssueClearMilestone(cmd.Context(), ref.Owner, ref.Repo, ref.Number)
			}
			milestone, err := cli.ParseNumber(args[1])
			if err != nil {
				return err
			}
			return env.Session.IssueSetMilestone(cmd.Context(), ref.Owner, ref.Repo, ref.Number, milestone)
		},
	}

	milestoneCmd.Flags().BoolVar(&clearMilestone, "clear", false, "Remove the milestone")

	return milestoneCmd
}
