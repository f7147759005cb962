package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

type ExperimentResult struct {
	CompletedEpisodes int
	TotalEpisodes     int
	TotalTimeSteps    int

	Error    error
	Datasets map[string]DataSet
}

func (r *ExperimentResult) IsError() bool {
	return r.Error != nil
}

// Run plays rc.Runs independent episodes of rc.Steps steps each. A single
// generator seeded with rc.Seed drives every random draw of the experiment,
// so equal configurations produce equal traces.
func (e *Experiment) Run(ctx context.Context, rc *RunConfig, analyzers map[string]Analyzer) *ExperimentResult {
	result := &ExperimentResult{
		Datasets: make(map[string]DataSet),
	}
	log := rc.logger().WithFields(logrus.Fields{
		"experiment": e.Name,
		"id":         e.ID,
	})
	// the generator only exists once environment and agent are built, so a
	// configuration failure never consumes randomness
	rand := NewRand(rc.Seed)
	for _, a := range analyzers {
		a.Reset()
	}

EpisodeLoop:
	for run := 0; run < rc.Runs; run++ {
		select {
		case <-ctx.Done():
			result.Error = ErrCancelled
			break EpisodeLoop
		default:
		}

		eCtx := NewEpisodeContext(ctx, rand)
		eCtx.Run = run
		eCtx.Steps = rc.Steps

		result.TotalEpisodes++
		if err := e.runEpisode(eCtx, rc.RecordEstimates); err != nil {
			result.Error = err
			break EpisodeLoop
		}
		result.CompletedEpisodes++
		result.TotalTimeSteps += eCtx.Trace.Len()

		for _, a := range analyzers {
			a.Analyze(eCtx, eCtx.Trace)
		}

		if rc.Progress != nil {
			fmt.Fprintf(
				rc.Progress,
				"Experiment: %s, Run %d/%d, Timesteps: %d\n",
				e.Name, run+1, rc.Runs, result.TotalTimeSteps,
			)
		}
	}
	if result.Error != nil {
		log.WithError(result.Error).Errorf("aborted after %d episodes", result.CompletedEpisodes)
	}

	for name, a := range analyzers {
		result.Datasets[name] = a.DataSet()
	}
	return result
}

func (e *Experiment) runEpisode(eCtx *EpisodeContext, recordEstimates bool) error {
	e.Environment.Reset(eCtx)
	e.Agent.Reset(eCtx)
	// the environment is stationary within an episode
	bestAction := e.Environment.BestAction()

	reporter, canReport := e.Agent.(EstimateReporter)
	for step := 0; step < eCtx.Steps; step++ {
		sCtx := &StepContext{Step: step, EpisodeContext: eCtx}

		action := e.Agent.PickAction(sCtx)
		prediction := e.Agent.GreedyAction()
		reward, err := e.Environment.Interact(sCtx, action, prediction)
		if err != nil {
			return fmt.Errorf("run %d step %d: %w", eCtx.Run, step, err)
		}
		e.Agent.Update(sCtx, action, reward, prediction)

		s := &Step{
			Action:     action,
			Prediction: prediction,
			Reward:     reward,
			Optimal:    action == bestAction,
		}
		if recordEstimates && canReport {
			s.Estimates = mat.DenseCopyOf(reporter.Estimates())
		}
		eCtx.Trace.AddStep(s)
	}
	return nil
}

// Run executes every experiment of the comparison with the same run
// configuration and hands the datasets of each analysis to its comparator.
// Experiments keep their insertion order in the comparator input.
func (c *Comparison) Run(ctx context.Context, rc *RunConfig) error {
	analysisNames := make([]string, 0, len(c.Analyzers))
	for name := range c.Analyzers {
		analysisNames = append(analysisNames, name)
	}
	sort.Strings(analysisNames)

	experimentNames := make([]string, 0, len(c.Experiments))
	datasets := make(map[string][]DataSet)
	for _, e := range c.Experiments {
		analyzers := make(map[string]Analyzer)
		for name, aC := range c.Analyzers {
			analyzers[name] = aC.NewAnalyzer(e.Name)
		}

		result := e.Run(ctx, rc, analyzers)
		if result.IsError() {
			return fmt.Errorf("experiment %s: %w", e.Name, result.Error)
		}
		experimentNames = append(experimentNames, e.Name)
		for _, name := range analysisNames {
			datasets[name] = append(datasets[name], result.Datasets[name])
		}
	}

	for _, name := range analysisNames {
		cmp, ok := c.Comparators[name]
		if !ok || cmp == nil {
			continue
		}
		if err := cmp.Compare(experimentNames, datasets[name]); err != nil {
			return fmt.Errorf("analysis %s: %w", name, err)
		}
	}
	return nil
}
