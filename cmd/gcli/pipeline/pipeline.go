// Package pipeline provides the CI commands of gcli.
package pipeline

import (
	"context"

	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/spf13/cobra"
)

// CreatePipelineCmd creates the pipeline command with all its subcommands.
func CreatePipelineCmd() *cobra.Command {
	pipelineCmd := &cobra.Command{
		Use:     "pipelines",
		Aliases: []string{"pipeline", "ci"},
		Short:   "Inspect CI pipelines and their jobs",
	}

	pipelineCmd.AddCommand(
		createListCmd(),
		createJobsCmd(),
		jobCmd("log <job>", "Print the log of a job",
			func(ctx context.Context, s *forge.Session, t cli.Ref, job int64, cmd *cobra.Command) error {
				return s.JobGetLog(ctx, t.Owner, t.Repo, job, cmd.OutOrStdout())
			}),
		jobCmd("cancel <job>", "Cancel a running job",
			func(ctx context.Context, s *forge.Session, t cli.Ref, job int64, _ *cobra.Command) error {
				return s.JobCancel(ctx, t.Owner, t.Repo, job)
			}),
		jobCmd("retry <job>", "Run a job again",
			func(ctx context.Context, s *forge.Session, t cli.Ref, job int64, _ *cobra.Command) error {
				return s.JobRetry(ctx, t.Owner, t.Repo, job)
			}),
	)

	return pipelineCmd
}

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the pipelines of the repository",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			pipelines, err := env.Session.GetPipelines(cmd.Context(), env.Target.Owner, env.Target.Repo, cli.Max)
			if err != nil {
				return err
			}
			return format.Pipelines(cmd.OutOrStdout(), pipelines)
		},
	}
}

func createJobsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jobs <pipeline>",
		Short: "List the jobs of a pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.ParseID(args[0])
			if err != nil {
				return err
			}
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			jobs, err := env.Session.GetPipelineJobs(cmd.Context(), env.Target.Owner, env.Target.Repo, id, cli.Max)
			if err != nil {
				return err
			}
			return format.Jobs(cmd.OutOrStdout(), jobs)
		},
	}
}

func jobCmd(use, short string, fn func(ctx context.Context, s *forge.Session, t cli.Ref, job int64, cmd *cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := cli.ParseID(args[0])
			if err != nil {
				return err
			}
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			return fn(cmd.Context(), env.Session, env.Ref(0), job, cmd)
		},
	}
}
