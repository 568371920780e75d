/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/community-pulse/cli/internal/api"
	"github.com/community-pulse/cli/types"
	"github.com/spf13/cobra"
)

var (
	listAll   bool
	createReq api.CreateEventRequest
)

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse, submit, and register for events",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List approved events (or every event with --all)",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		var events []types.Event
		if listAll {
			events, err = client.ListAllEvents(cmd.Context())
		} else {
			events, err = client.ListEvents(cmd.Context())
		}
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tLOCATION\tSTARTS\tSTATUS\tFLAG")
		for _, e := range events {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%t\n",
				e.ID, e.Name, e.Category, e.Location, e.StartDatetime, e.Status, e.Flag)
		}
		return w.Flush()
	},
}

var eventsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		event, err := client.GetEvent(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printEvent(event)
		return nil
	},
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit a new event for moderation",
	RunE: func(cmd *cobra.Command, args []string) error {
		createReq.Name = strings.TrimSpace(createReq.Name)
		if createReq.Name == "" {
			return errors.New("event name is required")
		}
		for _, field := range []struct{ name, value string }{
			{"start", createReq.StartDatetime},
			{"end", createReq.EndDatetime},
			{"registration-start", createReq.RegistrationStartDatetime},
			{"registration-end", createReq.RegistrationEndDatetime},
		} {
			if _, err := time.Parse(time.RFC3339, field.value); err != nil {
				return fmt.Errorf("--%s must be an RFC 3339 datetime: %w", field.name, err)
			}
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		event, err := client.CreateEvent(cmd.Context(), createReq)
		if err != nil {
			return err
		}

		fmt.Printf("Event %d submitted, status %s\n", event.ID, event.Status)
		return nil
	},
}

var eventsRegisterCmd = &cobra.Command{
	Use:   "register <id>",
	Short: "Register for an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		confirmation, err := client.RegisterForEvent(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if confirmation.Message != "" {
			fmt.Println(confirmation.Message)
		} else {
			fmt.Println("Registered")
		}
		return nil
	},
}

func printEvent(e types.Event) {
	fmt.Printf("id:            %d\n", e.ID)
	fmt.Printf("name:          %s\n", e.Name)
	if e.ShortDescription != "" {
		fmt.Printf("summary:       %s\n", e.ShortDescription)
	}
	if e.Description != "" {
		fmt.Printf("description:   %s\n", e.Description)
	}
	fmt.Printf("category:      %s\n", e.Category)
	fmt.Printf("location:      %s\n", e.Location)
	fmt.Printf("starts:        %s\n", e.StartDatetime)
	fmt.Printf("ends:          %s\n", e.EndDatetime)
	fmt.Printf("registration:  %s to %s\n", e.RegistrationStartDatetime, e.RegistrationEndDatetime)
	if e.OrganizerEmail != "" || e.OrganizerPhone != "" {
		fmt.Printf("organizer:     %s %s\n", e.OrganizerEmail, e.OrganizerPhone)
	}
	fmt.Printf("status:        %s\n", e.Status)
	fmt.Printf("flagged:       %t\n", e.Flag)
	fmt.Printf("registered:    %t\n", e.IsRegistered)
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsGetCmd)
	eventsCmd.AddCommand(eventsCreateCmd)
	eventsCmd.AddCommand(eventsRegisterCmd)

	eventsListCmd.Flags().BoolVar(&listAll, "all", false, "list every event regardless of status (admin)")

	eventsCreateCmd.Flags().StringVar(&createReq.Name, "name", "", "event name")
	eventsCreateCmd.Flags().StringVar(&createReq.Description, "description", "", "full description")
	eventsCreateCmd.Flags().StringVar(&createReq.ShortDescription, "summary", "", "one-line summary")
	eventsCreateCmd.Flags().StringVar(&createReq.Category, "category", "", "event category")
	eventsCreateCmd.Flags().StringVar(&createReq.Location, "location", "", "venue or address")
	eventsCreateCmd.Flags().StringVar(&createReq.BannerURL, "banner-url", "", "banner image URL")
	eventsCreateCmd.Flags().StringVar(&createReq.StartDatetime, "start", "", "start datetime (RFC 3339)")
	eventsCreateCmd.Flags().StringVar(&createReq.EndDatetime, "end", "", "end datetime (RFC 3339)")
	eventsCreateCmd.Flags().StringVar(&createReq.RegistrationStartDatetime, "registration-start", "", "registration opens (RFC 3339)")
	eventsCreateCmd.Flags().StringVar(&createReq.RegistrationEndDatetime, "registration-end", "", "registration closes (RFC 3339)")
	eventsCreateCmd.Flags().StringVar(&createReq.OrganizerPhone, "organizer-phone", "", "organizer contact number")
	eventsCreateCmd.Flags().StringVar(&createReq.OrganizerEmail, "organizer-email", "", "organizer contact address")
	eventsCreateCmd.Flags().StringArrayVar(&createReq.Photos, "photo", nil, "photo URL, repeatable")
	_ = eventsCreateCmd.MarkFlagRequired("name")
	_ = eventsCreateCmd.MarkFlagRequired("start")
	_ = eventsCreateCmd.MarkFlagRequired("end")
	_ = eventsCreateCmd.MarkFlagRequired("registration-start")
	_ = eventsCreateCmd.MarkFlagRequired("registration-end")
}
