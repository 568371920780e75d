/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/community-pulse/cli/types"
	"github.com/spf13/cobra"
)

var whoamiCached bool

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user",
	Long: `Fetches the profile for the stored token from the server. With
--cached it prints the snapshot stored at login time without a round-trip.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if !client.Sessions().IsAuthenticated(cmd.Context()) {
			return errors.New("not logged in")
		}

		var user types.User
		if whoamiCached {
			cached, ok := client.Sessions().User(cmd.Context())
			if !ok {
				return errors.New("no cached user, log in again")
			}
			user = cached
		} else {
			user, err = client.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
		}

		fmt.Printf("id:      %d\n", user.ID)
		fmt.Printf("user:    %s\n", user.Username)
		fmt.Printf("email:   %s\n", user.Email)
		fmt.Printf("phone:   %s\n", user.PhoneNumber)
		fmt.Printf("admin:   %t\n", user.IsAdmin)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().BoolVar(&whoamiCached, "cached", false, "print the stored snapshot without contacting the server")
}
