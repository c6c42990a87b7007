// Package notification provides the notification commands of gcli.
package notification

import (
	"github.com/lerenn/gcli/cmd/gcli/internal/cli"
	"github.com/lerenn/gcli/cmd/gcli/internal/format"
	"github.com/spf13/cobra"
)

// CreateNotificationCmd creates the notification command with all its
// subcommands.
func CreateNotificationCmd() *cobra.Command {
	notificationCmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notification", "notifs"},
		Short:   "Read your notifications",
	}

	notificationCmd.AddCommand(createListCmd(), createReadCmd())

	return notificationCmd
}

func createListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List unread notifications",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.Open()
			if err != nil {
				return err
			}
			notifications, err := env.Session.GetNotifications(cmd.Context(), cli.Max)
			if err != nil {
				return err
			}
			return format.Notifications(cmd.OutOrStdout(), notifications)
		},
	}
}

func createReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.Open()
			if err != nil {
				return err
			}
			return env.Session.NotificationMarkAsRead(cmd.Context(), args[0])
		},
	}
}
