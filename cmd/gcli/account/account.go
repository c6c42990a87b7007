// Package account provides the commands managing the gcli configuration.
package account

import (
	"fmt"
	"text/tabwriter"

	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/pkg/config"
	"github.com/spf13/cobra"
)

// CreateAccountCmd creates the account command with all its subcommands.
func CreateAccountCmd() *cobra.Command {
	accountCmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Inspect and initialise the configured accounts",
	}

	accountCmd.AddCommand(createListCmd(), createInitCmd())

	return accountCmd
}

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the configured accounts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps := cli.NewDependencies()
			cfg, err := config.LoadConfigWithFallback(deps.Config, cli.Path())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tFORGE\tAPI\tTOKEN")
			for _, name := range cfg.AccountNames() {
				a := cfg.Accounts[name]
				if name == cfg.DefaultAccount {
					name += " (default)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, a.Forge, a.APIBase, tokenSource(a))
			}
			return tw.Flush()
		},
	}
}

func tokenSource(a config.Account) string {
	switch {
	case a.Token != "":
		return "inline"
	case a.TokenEnv != "" && a.ResolveToken() != "":
		return "$" + a.TokenEnv
	case a.TokenEnv != "":
		return "$" + a.TokenEnv + " (unset)"
	}
	return "none"
}

func createInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Long: `Write the default configuration, with accounts for github.com, gitlab.com,
codeberg.org and bugzilla.mozilla.org reading their tokens from the
environment.

Examples:
  gcli accounts init
  gcli -c ./gcli.yaml accounts init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps := cli.NewDependencies()
			path, err := deps.FS.ExpandPath(cli.Path())
			if err != nil {
				return err
			}
			exists, err := deps.FS.Exists(path)
			if err != nil {
				return err
			}
			if exists && !force {
				return fmt.Errorf("%w: %s", ErrConfigExists, path)
			}
			if err := deps.Config.SaveConfig(path, deps.Config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration")

	return initCmd
}
