package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a scenario without evaluating it",
		Long: `Loads the scenario, applies the command-line overrides and builds the chain.
Nothing is printed on stdout except the final confirmation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			chain, err := cfg.NewChain()
			if err != nil {
				return err
			}
			logger.Debug("chain is valid",
				"states", chain.Size(),
				"backend", chain.Backend().Name(),
				"absorbing", chain.AbsorbingStates(),
			)

			fmt.Fprintln(cmd.OutOrStdout(), "configuration is valid")
			return nil
		},
	}
	bindScenarioFlags(cmd)

	return cmd
}
