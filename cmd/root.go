/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/community-pulse/cli/config"
	"github.com/community-pulse/cli/internal/api"
	"github.com/community-pulse/cli/internal/session"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Command-line client for the Community Pulse events service",
	Long: `pulse browses, submits, and moderates community events through the
Community Pulse REST API. Log in once and the session persists across
invocations; the stored token is attached to later calls automatically.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func newLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Logger()
	if verbose {
		return logger.Level(zerolog.DebugLevel)
	}
	return logger.Level(zerolog.WarnLevel)
}

func newSessionStore(cfg config.Config) (*session.Store, error) {
	switch cfg.Session.Backend {
	case "redis":
		backend, err := session.NewRedisBackend(cfg.Session.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect session store: %w", err)
		}
		return session.NewStore(backend), nil
	case "file", "":
		backend, err := session.NewFileBackend(cfg.Session.FilePath)
		if err != nil {
			return nil, err
		}
		return session.NewStore(backend), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

func newClient() (*api.Client, error) {
	cfg := config.LoadConfig()
	store, err := newSessionStore(cfg)
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.HTTPTimeout) * time.Second
	return api.NewClient(cfg.APIBaseURL, store, timeout, newLogger()), nil
}
