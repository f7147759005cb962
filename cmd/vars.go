package cmd

import (
	"github.com/spf13/cobra"
	"github.com/zeu5/newcomb-bandits/common"
)

var (
	flags *common.Flags = common.DefaultFlags()

	arms     int
	epsilon  float64
	optimism float64
	steps    int
	runs     int
	seed     uint64
	verbose  int
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().IntVarP(&arms, "arms", "k", flags.Arms, "Number of arms")
	cmd.PersistentFlags().Float64VarP(&epsilon, "epsilon", "e", flags.Epsilon, "Parameter of epsilon-greedy policy")
	cmd.PersistentFlags().Float64VarP(&optimism, "optimism", "o", flags.Optimism, "Initial value of every estimate")
	cmd.PersistentFlags().IntVarP(&steps, "steps", "s", flags.Steps, "Number of steps to run")
	cmd.PersistentFlags().IntVarP(&runs, "runs", "r", flags.Runs, "Number of episodes to simulate")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Seed of the random generator")
	cmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Print progress (-v) and every step (-vv) to stderr")
}

func UpdateFlags() {
	flags.Arms = arms
	flags.Epsilon = epsilon
	flags.Optimism = optimism
	flags.Steps = steps
	flags.Runs = runs
	flags.Seed = seed
	flags.Verbose = verbose
}
