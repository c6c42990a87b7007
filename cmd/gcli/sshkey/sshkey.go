// Package sshkey provides the SSH key commands of gcli.
package sshkey

import (
	"fmt"
	"strings"

	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/spf13/cobra"
)

// CreateSSHKeyCmd creates the sshkey command with all its subcommands.
func CreateSSHKeyCmd() *cobra.Command {
	sshkeyCmd := &cobra.Command{
		Use:     "sshkeys",
		Aliases: []string{"sshkey", "keys"},
		Short:   "Manage the SSH keys of your account",
	}

	sshkeyCmd.AddCommand(createListCmd(), createAddCmd(), createDeleteCmd())

	return sshkeyCmd
}

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your SSH keys",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.Open()
			if err != nil {
				return err
			}
			keys, err := env.Session.GetSSHKeys(cmd.Context(), cli.Max)
			if err != nil {
				return err
			}
			return format.SSHKeys(cmd.OutOrStdout(), keys)
		},
	}
}

func createAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <public-key-file>",
		Short: "Add a public key to your account",
		Long: `Add a public key to your account.

Examples:
  gcli sshkeys add laptop ~/.ssh/id_ed25519.pub`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.Open()
			if err != nil {
				return err
			}
			key, err := env.ReadFile(args[1])
			if err != nil {
				return err
			}
			added, err := env.Session.AddSSHKey(cmd.Context(), args[0], strings.TrimSpace(key))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added key %d (%s)\n", added.ID, added.Title)
			return nil
		},
	}
}

func createDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a key from your account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.ParseID(args[0])
			if err != nil {
				return err
			}
			env, err := cli.Open()
			if err != nil {
				return err
			}
			return env.Session.DeleteSSHKey(cmd.Context(), id)
		},
	}
}
