// Package milestone provides the milestone commands of gcli.
package milestone

import (
	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/spf13/cobra"
)

// CreateMilestoneCmd creates the milestone command with all its subcommands.
func CreateMilestoneCmd() *cobra.Command {
	milestoneCmd := &cobra.Command{
		Use:     "milestones",
		Aliases: []string{"milestone", "ms"},
		Short:   "Manage the milestones of a repository",
	}

	milestoneCmd.AddCommand(
		createListCmd(),
		createShowCmd(),
		createCreateCmd(),
		createDeleteCmd(),
		createDueCmd(),
		createIssuesCmd(),
	)

	return milestoneCmd
}

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List milestones",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			milestones, err := env.Session.GetMilestones(cmd.Context(), env.Target.Owner, env.Target.Repo, cli.Max)
			if err != nil {
				return err
			}
			return format.Milestones(cmd.OutOrStdout(), milestones)
		},
	}
}

func createShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.ParseNumber(args[0])
			if err != nil {
				return err
			}
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			milestone, err := env.Session.GetMilestone(cmd.Context(), env.Target.Owner, env.Target.Repo, id)
			if err != nil {
				return err
			}
			return format.Milestone(cmd.OutOrStdout(), milestone)
		},
	}
}

func createCreateCmd() *cobra.Command {
	var description string

	createCmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			return env.Session.CreateMilestone(cmd.Context(), forge.CreateMilestoneOptions{
				Owner:       env.Target.Owner,
				Repo:        env.Target.Repo,
				Title:       args[0],
				Description: description,
			})
		},
	}

	createCmd.Flags().StringVarP(&description, "description", "d", "", "Description of the milestone")

	return createCmd
}

func createDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.ParseNumber(args[0])
			if err != nil {
				return err
			}
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			return env.Session.DeleteMilestone(cmd.Context(), env.Target.Owner, env.Target.Repo, id)
		},
	}
}

func createDueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "due <id> <date>",
		Short: "Set the due date of a milestone",
		Long: `Set the due date of a milestone.

Examples:
  gcli milestones due 3 2024-12-31`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.ParseNumber(args[0])
			if err != nil {
				return err
			}
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			return env.Session.MilestoneSetDueDate(cmd.Context(), env.Target.Owner, env.Target.Repo, id, args[1])
		},
	}
}

func createIssuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "issues <id>",
		Short: "List the issues of a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.ParseNumber(args[0])
			if err != nil {
				return err
			}
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			issues, err := env.Session.GetMilestoneIssues(cmd.Context(), env.Target.Owner, env.Target.Repo, id, cli.Max)
			if err != nil {
				return err
			}
			return format.Issues(cmd.OutOrStdout(), issues)
		},
	}
}
