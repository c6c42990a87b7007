// Package release provides the release commands of gcli.
package release

import (
	"fmt"

	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/lerenn/gcli/pkg/forge"
	"github.com/spf13/cobra"
)

// CreateReleaseCmd creates the release command with all its subcommands.
func CreateReleaseCmd() *cobra.Command {
	releaseCmd := &cobra.Command{
		Use:     "releases",
		Aliases: []string{"release", "rel"},
		Short:   "Manage the releases of a repository",
	}

	releaseCmd.AddCommand(createListCmd(), createCreateCmd(), createDeleteCmd())

	return releaseCmd
}

func createListCmd() *cobra.Command {
	var assets bool

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List releases",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			releases, err := env.Session.GetReleases(cmd.Context(), env.Target.Owner, env.Target.Repo, cli.Max)
			if err != nil {
				return err
			}
			if err := format.Releases(cmd.OutOrStdout(), releases); err != nil {
				return err
			}
			if assets {
				printAssets(cmd, releases)
			}
			return nil
		},
	}

	listCmd.Flags().BoolVar(&assets, "assets", false, "Also print the download links")

	return listCmd
}

func printAssets(cmd *cobra.Command, releases []forge.Release) {
	out := cmd.OutOrStdout()
	for _, r := range releases {
		fmt.Fprintf(out, "\n%s:\n", r.TagName)
		if r.TarballURL != "" {
			fmt.Fprintf(out, "  tarball: %s\n", r.TarballURL)
		}
		for _, a := range r.Assets {
			fmt.Fprintf(out, "  %s: %s\n", a.Name, a.URL)
		}
	}
}

func createCreateCmd() *cobra.Command {
	var opts forge.CreateReleaseOptions
	var bodyFile string

	createCmd := &cobra.Command{
		Use:   "create <tag>",
		Short: "Create a release",
		Long: `Create a release from a tag, creating the tag when it does not exist.

Examples:
  gcli releases create v1.2.0 --name "1.2.0" -F CHANGELOG.md
  gcli releases create v1.3.0-rc1 --prerelease --commitish main`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			if opts.Body, err = env.Body(opts.Body, bodyFile); err != nil {
				return err
			}
			opts.Owner, opts.Repo, opts.TagName = env.Target.Owner, env.Target.Repo, args[0]
			if opts.Name == "" {
				opts.Name = opts.TagName
			}
			release, err := env.Session.CreateRelease(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created release %s (%s)\n", release.TagName, release.ID)
			return nil
		},
	}

	createCmd.Flags().StringVar(&opts.Name, "name", "", "Name of the release, the tag by default")
	createCmd.Flags().StringVarP(&opts.Body, "body", "b", "", "Release notes")
	createCmd.Flags().StringVarP(&bodyFile, "body-file", "F", "", "Read the release notes from a file")
	createCmd.Flags().StringVar(&opts.CommitIsh, "commitish", "", "Commit or branch to tag")
	createCmd.Flags().BoolVar(&opts.Draft, "draft", false, "Create as draft")
	createCmd.Flags().BoolVar(&opts.Prerelease, "prerelease", false, "Mark as prerelease")

	return createCmd
}

func createDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a release",
		Long:  `Delete a release. The id is the one printed by "releases list" (the tag on GitLab).`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.OpenRepo()
			if err != nil {
				return err
			}
			return env.Session.DeleteRelease(cmd.Context(), env.Target.Owner, env.Target.Repo, args[0])
		},
	}
}
