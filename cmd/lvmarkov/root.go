package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lvmarkov",
		Short: "lvmarkov evaluates discrete-time Markov chains",
		Long: `lvmarkov iterates p(k) = p(k-1) * P for a transition matrix P and an initial
distribution p(0), prints every intermediate distribution and checks the result
against the one-shot p(0) * P^n.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML or JSON scenario file (built-in scenario when empty)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")

	// Running the bare command behaves like "run".
	rootCmd.RunE = runChain
	bindRunFlags(rootCmd)

	rootCmd.AddCommand(newRunCmd(), newValidateCmd(), newVersionCmd())

	return rootCmd
}

// Execute builds the command tree and runs it against os.Args.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
