// Package main is the playground CLI.
//
// Each subcommand runs one group of examples:
//
//	playground serve             mock REST API over HTTP
//	playground users             Record Manager walkthrough
//	playground async             sequential vs parallel fetches
//	playground arrays|strings|calc|animals|files
//
// Settings come from the environment (see internal/config) and can be
// overridden with flags.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sakif/go-examples/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// app carries the resolved settings down to every subcommand.
type app struct {
	cfg      config.Config
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "playground",
		Short:         "Runnable Go examples",
		Long:          "A collection of small, runnable Go examples: an in-memory record manager, a mock REST API, async fetches and helper packages.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				if cfg.LogLevel, err = config.ParseLevel(a.logLevel); err != nil {
					return err
				}
			}
			a.cfg = cfg
			a.logger = cfg.NewLogger()
			return nil
		},
		// No Run: prints help by default.
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (default from LOG_LEVEL)")

	root.AddCommand(
		newServeCmd(a),
		newUsersCmd(a),
		newAsyncCmd(a),
		newArraysCmd(),
		newStringsCmd(),
		newCalcCmd(),
		newAnimalsCmd(),
		newFilesCmd(),
	)
	return root
}
