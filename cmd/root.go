package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zeu5/newcomb-bandits/common"
	"github.com/zeu5/newcomb-bandits/environments"
	"github.com/zeu5/newcomb-bandits/experiments"
	"github.com/zeu5/newcomb-bandits/util"
)

func RootCommand() *cobra.Command {
	common.LoadEnv(".env")
	flags = common.DefaultFlags()
	envErr := flags.ApplyEnv()

	cmd := &cobra.Command{
		Use:   "newcomb-bandits <environment> <agent>",
		Short: "RL test with multi-armed bandits and Newcomb's problem",
		Long: "Simulates an agent against an environment for a number of episodes and prints,\n" +
			"for every step, the average reward and the frequency of the best action.\n\n" +
			"Environments: " + strings.Join(environments.Names, ", ") + "\n" +
			"Agents: classic, bayes, infrabayes, bayes-thompson, infrabayes-thompson",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			UpdateFlags()
			setupLogging(flags.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.Environment = args[0]
			flags.Agents = args[1:]
			return runSimulation(cmd.OutOrStdout())
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		CompareCommand(),
	)

	return cmd
}

func setupLogging(verbosity int) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch {
	case verbosity >= 2:
		logrus.SetLevel(logrus.DebugLevel)
	case verbosity == 1:
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.WarnLevel)
	}
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runSimulation(out io.Writer) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt) // channel for interrupts from os
	defer signal.Stop(sigCh)

	doneCh := make(chan struct{}) // closed once the simulation returns
	defer close(doneCh)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-sigCh:
		case <-doneCh:
		}
		cancel()
	}()

	output := &experiments.Output{
		Out:    out,
		Logger: logrus.StandardLogger(),
	}
	if flags.Verbose > 0 {
		if stderrIsTerminal() && flags.Verbose == 1 {
			printer := util.NewTerminalPrinter(os.Stderr, true)
			printer.Start()
			defer printer.Stop()
			output.Progress = printer
		} else {
			output.Progress = os.Stderr
		}
	}
	return experiments.Run(ctx, flags, output)
}
