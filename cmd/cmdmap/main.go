// Package main is the entry point for the cmdmap CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errHalted signals that dispatch ended in Halt. Diagnostics were already
// written, so main exits non-zero without printing it.
var errHalted = errors.New("halted")

var flagLogLevel string

var rootCmd = &cobra.Command{
	Use:   "cmdmap",
	Short: "Inspect command-line dispatch",
	Long: `Inspect how an argument vector is dispatched against a command manifest.

A manifest (TOML or JSON) lists commands in registration order with their
required positional parameters, optional variadic parameter and named
parameters with defaults. The first command is the default command.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		configureLogging(flagLogLevel, cmd.ErrOrStderr())
		return nil
	},
}

var logger = log.New()

func configureLogging(level string, w io.Writer) {
	logger.SetOutput(w)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(log.InfoLevel)
		logger.Warnf("invalid log level %s, defaulting to info", level)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errHalted) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
