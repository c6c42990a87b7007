// Package label provides the label commands of gcli.
package label

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/spf13/cobra"
)

// CreateLabelCmd creates the label command with all its subcommands.
func CreateLabelCmd() *cobra.Command {
	labelCmd := &cobra.Command{
		Use:     "labels",
		Aliases: []string{"label"},
		Short:   "Manage the labels of a repository",
	}

	labelCmd.AddCommand(createListCmd(), createCreateCmd(), createDeleteCmd())

	return labelCmd
}

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List labels",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			labels, err := env.Session.GetLabels(cmd.Context(), env.Target.Owner, env.Target.Repo, cli.Max)
			if err != nil {
				return err
			}
			return format.Labels(cmd.OutOrStdout(), labels)
		},
	}
}

// ParseColour reads "rrggbb" or "#rrggbb".
func ParseColour(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || v > 0xffffff {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}
	return uint32(v), nil
}

func createCreateCmd() *cobra.Command {
	var colour, description string

	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a label",
		Long: `Create a label.

Examples:
  gcli labels create bug --colour d73a4a -d "Something is broken"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ParseColour(colour)
			if err != nil {
				return err
			}
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			label, err := env.Session.CreateLabel(cmd.Context(), env.Target.Owner, env.Target.Repo, forge.Label{
				Name:        args[0],
				Description: description,
				Colour:      c,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created label %s (%s)\n", label.Name, format.Colour(label.Colour))
			return nil
		},
	}

	createCmd.Flags().StringVar(&colour, "colour", "ededed", "Colour as rrggbb")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "Description of the label")

	return createCmd
}

func createDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			return env.Session.DeleteLabel(cmd.Context(), env.Target.Owner, env.Target.Repo, args[0])
		},
	}
}
