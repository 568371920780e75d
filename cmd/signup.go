/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/community-pulse/cli/internal/api"
	"github.com/spf13/cobra"
)

var signupReq api.SignupRequest

// signupCmd represents the signup command
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		signupReq.Username = strings.TrimSpace(signupReq.Username)
		signupReq.Email = strings.TrimSpace(signupReq.Email)
		signupReq.PhoneNumber = strings.TrimSpace(signupReq.PhoneNumber)
		if signupReq.Username == "" || signupReq.Email == "" || signupReq.PhoneNumber == "" || signupReq.Password == "" {
			return errors.New("username, email, phone and password are all required")
		}
		if !strings.Contains(signupReq.Email, "@") {
			return errors.New("email address is not valid")
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		user, err := client.Signup(cmd.Context(), signupReq)
		if err != nil {
			return err
		}

		// The signup form logs the new account in straight away.
		err = client.Login(cmd.Context(), api.LoginRequest{
			Username: signupReq.Username,
			Password: signupReq.Password,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Account created, logged in as %s\n", user.Username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signupCmd)

	signupCmd.Flags().StringVarP(&signupReq.Username, "username", "u", "", "account username")
	signupCmd.Flags().StringVarP(&signupReq.Email, "email", "e", "", "email address")
	signupCmd.Flags().StringVar(&signupReq.PhoneNumber, "phone", "", "contact phone number")
	signupCmd.Flags().StringVarP(&signupReq.Password, "password", "p", "", "account password")
}
