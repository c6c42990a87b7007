package pull

import (
	"context"

	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/spf13/cobra"
)

// editCmd builds a command acting on one pull given by number.
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
	return editCmd("close <number>", "Close a pull request without merging", 1,
		func(ctx context.Context, s *forge.Session, r cli.Ref, _ []string) error {
			return s.PullClose(ctx, r.Owner, r.Repo, r.Number)
		})
}

func createReopenCmd() *cobra.Command {
	return editCmd("reopen <number>", "Reopen a closed pull request", 1,
		func(ctx context.Context, s *forge.Session, r cli.Ref, _ []string) error {
			return s.PullReopen(ctx, r.Owner, r.Repo, r.Number)
		})
}

func createTitleCmd() *cobra.Command {
	return editCmd("title <number> <title>", "Change the title of a pull request", 2,
		func(ctx context.Context, s *forge.Session, r cli.Ref, args []string) error {
			return s.PullSetTitle(ctx, r.Owner, r.Repo, r.Number, args[0])
		})
}

func createReviewerCmd() *cobra.Command {
	return editCmd("reviewer <number> <user>", "Request a review from a user", 2,
		func(ctx context.Context, s *forge.Session, r cli.Ref, args []string) error {
			return s.PullAddReviewer(ctx, r.Owner, r.Repo, r.Number, args[0])
		})
}

func createLabelCmd() *cobra.Command {
	var add, remove []string

	labelCmd := editCmd("label <number>", "Add or remove labels of a pull request", 1,
		func(ctx context.Context, s *forge.Session, r cli.Ref, _ []string) error {
			if len(add) > 0 {
				if err := s.PullAddLabels(ctx, r.Owner, r.Repo, r.Number, add); err != nil {
					return err
				}
			}
			if len(remove) > 0 {
				return s.PullRemoveLabels(ctx, r.Owner, r.Repo, r.Number, remove)
			}
			return nil
		})

	labelCmd.Flags().StringSliceVar(&add, "add", nil, "Labels to add")
	labelCmd.Flags().StringSliceVar(&remove, "remove", nil, "Labels to remove")
	labelCmd.MarkFlagsOneRequired("add", "remove")

	return labelCmd
}

func createMilestoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "milestone <number> [milestone-id]",
		Short: "Set the milestone of a pull request, or clear it when none is given",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ref, err := cli.OpenRef(args[0])
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return env.Session.PullClearMilestone(cmd.Context(), ref.Owner, ref.Repo, ref.Number)
			}
			milestone, err := cli.ParseNumber(args[1])
			if err != nil {
				return err
			}
			return env.Session.PullSetMilestone(cmd.Context(), ref.Owner, ref.Repo, ref.Number, milestone)
		},
	}
}
