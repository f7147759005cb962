package experiments

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zeu5/newcomb-bandits/agents"
	"github.com/zeu5/newcomb-bandits/analysis"
	"github.com/zeu5/newcomb-bandits/common"
	"github.com/zeu5/newcomb-bandits/core"
	"github.com/zeu5/newcomb-bandits/environments"
)

// Output collects the writers a run reports to. Out receives the result
// lines; Progress, when set, one line per episode.
type Output struct {
	Out      io.Writer
	Progress io.Writer
	Logger   *logrus.Logger
}

func (o *Output) logger() *logrus.Logger {
	if o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}

// PrepareExperiment pairs the named environment with the named agent. All
// configuration errors surface here, before any generator exists.
func PrepareExperiment(envName, agentName string, flags *common.Flags) (*core.Experiment, error) {
	if err := flags.Validate(); err != nil {
		return nil, err
	}
	env, err := environments.New(envName, flags.Arms)
	if err != nil {
		return nil, err
	}
	agent, err := agents.New(agentName, agents.Params{
		Arms:     flags.Arms,
		Epsilon:  flags.Epsilon,
		Optimism: flags.Optimism,
	})
	if err != nil {
		return nil, err
	}
	return &core.Experiment{
		ID:          uuid.NewString(),
		Name:        fmt.Sprintf("%s/%s", envName, agentName),
		Environment: env,
		Agent:       agent,
	}, nil
}

// PrepareComparison builds one experiment per agent in flags.Agents, all on
// flags.Environment. A single agent prints the plain step lines, several
// agents print a table.
func PrepareComparison(flags *common.Flags, out *Output) (*core.Comparison, error) {
	if len(flags.Agents) == 0 {
		return nil, fmt.Errorf("%w: no agent given", core.ErrConfiguration)
	}
	cmp := core.NewComparison()
	for _, agentName := range flags.Agents {
		e, err := PrepareExperiment(flags.Environment, agentName, flags)
		if err != nil {
			return nil, err
		}
		cmp.AddExperiment(e)
	}

	var results core.Comparator = analysis.NewStdoutComparator(out.Out)
	if len(flags.Agents) > 1 {
		results = analysis.NewTableComparator(out.Out)
	}
	log := logrus.NewEntry(out.logger())
	cmp.AddAnalysis("results", analysis.NewStepStatsAnalyzerConstructor(flags.Steps), results)
	cmp.AddAnalysis("summary", analysis.NewStepStatsAnalyzerConstructor(flags.Steps), analysis.NewSummaryComparator(log))
	cmp.AddAnalysis("debug", analysis.NewDebugAnalyzerConstructor(log), analysis.NewNoOpComparator())
	return cmp, nil
}

// Run simulates flags.Runs episodes of every configured agent and writes the
// per-step averages to out.Out.
func Run(ctx context.Context, flags *common.Flags, out *Output) error {
	cmp, err := PrepareComparison(flags, out)
	if err != nil {
		return err
	}
	logger := out.logger()
	return cmp.Run(ctx, &core.RunConfig{
		Runs:            flags.Runs,
		Steps:           flags.Steps,
		Seed:            flags.Seed,
		Progress:        out.Progress,
		Logger:          logger,
		RecordEstimates: logger.IsLevelEnabled(logrus.DebugLevel),
	})
}
