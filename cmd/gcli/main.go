// Package main provides the command-line interface of gcli.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/lerenn/gcli/cmd/gcli/account"
	"github.com/lerenn/gcli/cmd/gcli/attachment"
	"github.com/lerenn/gcli/cmd/gcli/fork"
	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/issue"
	"github.com/lerenn/gcli/cmd/gcli/label"
	"github.com/lerenn/gcli/cmd/gcli/milestone"
	"github.com/lerenn/gcli/cmd/gcli/notification"
	"github.com/lerenn/gcli/cmd/gcli/pipeline"
	"github.com/lerenn/gcli/cmd/gcli/pull"
	"github.com/lerenn/gcli/cmd/gcli/release"
	"github.com/lerenn/gcli/cmd/gcli/repo"
	"github.com/lerenn/gcli/cmd/gcli/snippet"
	"github.com/lerenn/gcli/cmd/gcli/sshkey"
	"github.com/spf13/cobra"
)

func createRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gcli",
		Short: "gcli - one command line for GitHub, GitLab, Gitea and Bugzilla",
		Long: `Work with issues, pull requests, releases, pipelines and more on GitHub,
GitLab, Gitea and Bugzilla from the terminal.

The account and repository are guessed from the origin remote of the current
git repository. Use --account, --owner and --repo to pick them explicitly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVarP(&cli.Account, "account", "a", "", "Use this configured account")
	rootCmd.PersistentFlags().StringVarP(&cli.Owner, "owner", "o", "", "Owner of the repository, or Bugzilla product")
	rootCmd.PersistentFlags().StringVarP(&cli.Repo, "repo", "r", "", "Name of the repository, or Bugzilla component")
	rootCmd.PersistentFlags().IntVarP(&cli.Max, "max", "n", cli.DefaultMax, "Maximum number of items to list, -1 for all")

	// Add subcommands
	rootCmd.AddCommand(
		issue.CreateIssueCmd(),
		pull.CreatePullCmd(),
		label.CreateLabelCmd(),
		milestone.CreateMilestoneCmd(),
		release.CreateReleaseCmd(),
		fork.CreateForkCmd(),
		repo.CreateRepoCmd(),
		notification.CreateNotificationCmd(),
		sshkey.CreateSSHKeyCmd(),
		snippet.CreateSnippetCmd(),
		pipeline.CreatePipelineCmd(),
		attachment.CreateAttachmentCmd(),
		account.CreateAccountCmd(),
	)

	return rootCmd
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gcli: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := createRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		// The forge message is more useful than the status line.
		if msg := cli.LastError(); msg != "" {
			log.Fatal(msg)
		}
		log.Fatal(err)
	}
}
