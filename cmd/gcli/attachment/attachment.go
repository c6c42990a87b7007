// Package attachment provides the attachment commands of gcli.
package attachment

import (
	"bytes"
	"fmt"

	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/spf13/cobra"
)

// CreateAttachmentCmd creates the attachment command with all its
// subcommands.
func CreateAttachmentCmd() *cobra.Command {
	attachmentCmd := &cobra.Command{
		Use:     "attachments",
		Aliases: []string{"attachment", "att"},
		Short:   "List and download the attachments of issues",
	}

	attachmentCmd.AddCommand(createListCmd(), createGetCmd())

	return attachmentCmd
}

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list <issue>",
		Aliases: []string{"ls"},
		Short:   "List the attachments of an issue",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ref, err := cli.OpenRef(args[0])
			if err != nil {
				return err
			}
			attachments, err := env.Session.GetIssueAttachments(cmd.Context(), ref.Owner, ref.Repo, ref.Number, cli.Max)
			if err != nil {
				return err
			}
			return format.Attachments(cmd.OutOrStdout(), attachments)
		},
	}
}

func createGetCmd() *cobra.Command {
	var output string

	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Download an attachment",
		Long: `Download an attachment to standard output, or to a file.

Examples:
  gcli -a mozilla attachments get 9312345 -O crash.log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cli.ParseID(args[0])
			if err != nil {
				return err
			}
			env, err := cli.Open()
			if err != nil {
				return err
			}
			if output == "" {
				return env.Session.AttachmentGetContent(cmd.Context(), id, cmd.OutOrStdout())
			}

			var buf bytes.Buffer
			if err := env.Session.AttachmentGetContent(cmd.Context(), id, &buf); err != nil {
				return err
			}
			path, err := env.Deps.FS.ExpandPath(output)
			if err != nil {
				return err
			}
			if err := env.Deps.FS.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %s\n", buf.Len(), path)
			return nil
		},
	}

	getCmd.Flags().StringVarP(&output, "output", "O", "", "Write to this file instead of standard output")

	return getCmd
}
