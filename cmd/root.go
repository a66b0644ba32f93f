// Package cmd wires the command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/formatfield/internal/log"
)

var (
	verboseFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "formatfield",
	Short: "Live-formatting text fields in the terminal",
	Long: `formatfield renders text fields that reformat on every keystroke:
casing rules, character filters, numeric clamping, and custom patterns,
with per-field undo/redo history.

Running without a subcommand opens the interactive form demo.`,
	RunE: runDemo,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			log.SetVerbose(true)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
