// Package cmd wires the dispatchsim command-line interface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Execute builds the command tree and runs it.
func Execute(logger *zap.Logger) {
	rootCmd := &cobra.Command{
		Use:   "dispatchsim",
		Short: "A priority-based job dispatch simulator",
		Long: `dispatchsim runs a synthetic job dispatch simulation: jobs arrive
with random priorities, execute one at a time in priority order, fail
with an injected probability, and retry with exponential backoff.
Every attempt and each run's summary are recorded in SQLite.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(RunCmd(logger))
	rootCmd.AddCommand(RunsCmd(logger))

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
