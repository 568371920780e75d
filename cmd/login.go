/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/community-pulse/cli/internal/api"
	"github.com/spf13/cobra"
)

var loginReq api.LoginRequest

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.Login(cmd.Context(), loginReq); err != nil {
			return err
		}

		if user, ok := client.Sessions().User(cmd.Context()); ok {
			fmt.Printf("Logged in as %s\n", user.Username)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVarP(&loginReq.Username, "username", "u", "", "account username")
	loginCmd.Flags().StringVarP(&loginReq.Password, "password", "p", "", "account password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
}
