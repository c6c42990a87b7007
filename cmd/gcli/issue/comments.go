package issue

import (
	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/spf13/cobra"
)

func createCommentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments <number>",
		Short: "Show the discussion of an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ref, err := cli.OpenRef(args[0])
			if err != nil {
				return err
			}
			comments, err := env.Session.GetIssueComments(cmd.Context(), ref.Owner, ref.Repo, ref.Number, cli.Max)
			if err != nil {
				return err
			}
			return format.Comments(cmd.OutOrStdout(), comments)
		},
	}
}

func createCommentCmd() *cobra.Command {
	var body, bodyFile string

	commentCmd := &cobra.Command{
		Use:   "comment <number>",
		Short: "Comment on an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, ref, err := cli.OpenRef(args[0])
			if err != nil {
				return err
			}
			text, err := env.Body(body, bodyFile)
			if err != nil {
				return err
			}
			return env.Session.SubmitComment(cmd.Context(), forge.SubmitCommentOptions{
				Owner:  ref.Owner,
				Repo:   ref.Repo,
				Target: forge.CommentOnIssue,
				Number: ref.Number,
				Body:   text,
			})
		},
	}

	commentCmd.Flags().StringVarP(&body, "body", "b", "", "Text of the comment")
	commentCmd.Flags().StringVarP(&bodyFile, "body-file", "F", "", "Read the comment from a file")
	commentCmd.MarkFlagsOneRequired("body", "body-file")

	return commentCmd
}
