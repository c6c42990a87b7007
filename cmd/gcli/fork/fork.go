// Package fork provides the fork commands of gcli.
package fork

import (
	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/spf13/cobra"
)

// CreateForkCmd creates the fork command with all its subcommands.
func CreateForkCmd() *cobra.Command {
	forkCmd := &cobra.Command{
		Use:     "forks",
		Aliases: []string{"fork"},
		Short:   "List and create forks",
	}

	forkCmd.AddCommand(createListCmd(), createCreateCmd())

	return forkCmd
}

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the forks of the repository",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			forks, err := env.Session.GetForks(cmd.Context(), env.Target.Owner, env.Target.Repo, cli.Max)
			if err != nil {
				return err
			}
			return format.Forks(cmd.OutOrStdout(), forks)
		},
	}
}

func createCreateCmd() *cobra.Command {
	var into string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Fork the repository",
		Long: `Fork the repository into your account, or into an organization.

Examples:
  gcli -o golang -r go forks create
  gcli forks create --into my-org`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			return env.Session.ForkCreate(cmd.Context(), env.Target.Owner, env.Target.Repo, into)
		},
	}

	createCmd.Flags().StringVar(&into, "into", "", "Organization or group receiving the fork")

	return createCmd
}
