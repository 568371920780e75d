/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/community-pulse/cli/internal/api"
	"github.com/community-pulse/cli/types"
	"github.com/spf13/cobra"
)

// adminCmd represents the admin command
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Moderate submitted events",
	Long: `Moderation commands for administrators. The admin check here only
decides whether to attempt the call; the server is the actual authority.`,
}

var adminApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a pending event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moderate(cmd, args[0], (*api.Client).ApproveEvent)
	},
}

var adminRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a pending event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moderate(cmd, args[0], (*api.Client).RejectEvent)
	},
}

var adminFlagCmd = &cobra.Command{
	Use:   "flag <id>",
	Short: "Flag an event for attention",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moderate(cmd, args[0], (*api.Client).FlagEvent)
	},
}

var adminUnflagCmd = &cobra.Command{
	Use:   "unflag <id>",
	Short: "Clear an event's flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moderate(cmd, args[0], (*api.Client).UnflagEvent)
	},
}

func moderate(cmd *cobra.Command, id string, action func(*api.Client, context.Context, string) (types.Event, error)) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	if !client.Sessions().IsAdmin(cmd.Context()) {
		return errors.New("admin privileges required")
	}

	event, err := action(client, cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Printf("Event %d: status %s, flagged %t\n", event.ID, event.Status, event.Flag)
	return nil
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminApproveCmd)
	adminCmd.AddCommand(adminRejectCmd)
	adminCmd.AddCommand(adminFlagCmd)
	adminCmd.AddCommand(adminUnflagCmd)
}
