package cmd

import (
	"github.com/spf13/cobra"
)

func CompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <environment> <agent> <agent>...",
		Short: "Run several agents on the same environment and seed and print them side by side",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.Environment = args[0]
			flags.Agents = args[1:]
			return runSimulation(cmd.OutOrStdout())
		},
	}

	return cmd
}
