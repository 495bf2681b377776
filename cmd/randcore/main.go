// Package main implements randcore, a command line tool for generating
// cryptographically secure random strings and drawing uniform random
// selections from item lists.
//
// Usage:
//
//	randcore string --digits --lowercase --length 16
//	randcore choose --count 2 apple banana cherry
//	randcore choose --count 3 --input wordlist.txt
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pijn/randcore/internal/config"
	"github.com/pijn/randcore/internal/logging"
	"github.com/pijn/randcore/internal/service"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand builds the CLI. Configuration and the service are
// constructed once in the persistent pre-run so every subcommand shares
// the same policy and logger.
func newRootCommand() *cobra.Command {
	var verbose bool
	var svc *service.Service

	cmd := &cobra.Command{
		Use:           "randcore",
		Short:         "Generate secure random strings and uniform random selections",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(logging.NewHumanReadableHandler(cmd.ErrOrStderr(), level))
			svc = service.New(cfg, logger)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(newStringCommand(&svc))
	cmd.AddCommand(newChooseCommand(&svc))
	return cmd
}
