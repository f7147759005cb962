package core

import (
	"context"
	"fmt"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestRandIsReproducible(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Normal(1, 2), b.Normal(1, 2))
		require.Equal(t, a.Intn(10), b.Intn(10))
		require.Equal(t, a.Bernoulli(0.3), b.Bernoulli(0.3))
	}
	assert.Equal(t, a.Draws(), b.Draws())
	assert.NotEqual(t, NewRand(1).Float64(), NewRand(2).Float64())
}

func TestRandCountsDraws(t *testing.T) {
	r := NewRand(3)
	assert.Equal(t, uint64(0), r.Draws())
	r.Float64()
	assert.Greater(t, r.Draws(), uint64(0))
}

func TestRandBernoulliBounds(t *testing.T) {
	r := NewRand(5)
	for i := 0; i < 100; i++ {
		assert.False(t, r.Bernoulli(0))
		assert.True(t, r.Bernoulli(1))
	}
}

// scriptedEnvironment pays the action as reward and records every call.
type scriptedEnvironment struct {
	arms   int
	best   int
	resets int
	calls  []string
}

func (s *scriptedEnvironment) Reset(_ *EpisodeContext) { s.resets++ }

func (s *scriptedEnvironment) Interact(sCtx *StepContext, action, prediction int) (float64, error) {
	if action < 0 || action >= s.arms {
		return 0, fmt.Errorf("%w: action %d", ErrInvalidArgument, action)
	}
	s.calls = append(s.calls, fmt.Sprintf("%d:%d/%d", sCtx.Step, action, prediction))
	return float64(action), nil
}

func (s *scriptedEnvironment) BestAction() int     { return s.best }
func (s *scriptedEnvironment) BestReward() float64 { return float64(s.best) }
func (s *scriptedEnvironment) Arms() int           { return s.arms }

// cyclingAgent walks through the actions and always predicts greedy.
type cyclingAgent struct {
	arms    int
	greedy  int
	next    int
	resets  int
	updates []string
}

func (c *cyclingAgent) Reset(_ *EpisodeContext) {
	c.resets++
	c.next = 0
}

func (c *cyclingAgent) PickAction(_ *StepContext) int {
	a := c.next
	c.next++
	return a
}

func (c *cyclingAgent) GreedyAction() int { return c.greedy }

func (c *cyclingAgent) Update(_ *StepContext, action int, reward float64, prediction int) {
	c.updates = append(c.updates, fmt.Sprintf("%d:%g/%d", action, reward, prediction))
}

func (c *cyclingAgent) Estimates() mat.Matrix {
	return mat.NewVecDense(1, []float64{float64(c.next)})
}

type countingAnalyzer struct {
	episodes int
	steps    int
}

func (c *countingAnalyzer) Analyze(_ *EpisodeContext, trace *Trace) {
	c.episodes++
	c.steps += trace.Len()
}
func (c *countingAnalyzer) DataSet() DataSet { return c.steps }
func (c *countingAnalyzer) Reset()           { c.episodes, c.steps = 0, 0 }

func TestExperimentRunWiring(t *testing.T) {
	env := &scriptedEnvironment{arms: 3, best: 1}
	agent := &cyclingAgent{arms: 3, greedy: 2}
	logger, _ := logtest.NewNullLogger()
	analyzer := &countingAnalyzer{}

	e := &Experiment{Name: "scripted", Environment: env, Agent: agent}
	result := e.Run(context.Background(), &RunConfig{Runs: 2, Steps: 3, Logger: logger, RecordEstimates: true},
		map[string]Analyzer{"count": analyzer})

	require.False(t, result.IsError())
	assert.Equal(t, 2, result.CompletedEpisodes)
	assert.Equal(t, 6, result.TotalTimeSteps)
	assert.Equal(t, 2, env.resets)
	assert.Equal(t, 2, agent.resets)
	assert.Equal(t, []string{"0:0/2", "1:1/2", "2:2/2", "0:0/2", "1:1/2", "2:2/2"}, env.calls)
	assert.Equal(t, "1:1/2", agent.updates[1])
	assert.Equal(t, 2, analyzer.episodes)
	assert.Equal(t, 6, result.Datasets["count"])
}

func TestExperimentRunRecordsTrace(t *testing.T) {
	env := &scriptedEnvironment{arms: 3, best: 1}
	agent := &cyclingAgent{arms: 3, greedy: 0}
	var last *Trace
	e := &Experiment{Name: "trace", Environment: env, Agent: agent}
	logger, _ := logtest.NewNullLogger()
	e.Run(context.Background(), &RunConfig{Runs: 1, Steps: 3, Logger: logger, RecordEstimates: true},
		map[string]Analyzer{"keep": analyzerFunc(func(_ *EpisodeContext, tr *Trace) { last = tr })})

	require.NotNil(t, last)
	require.Equal(t, 3, last.Len())
	assert.False(t, last.Step(0).Optimal)
	assert.True(t, last.Step(1).Optimal)
	assert.Equal(t, 2.0, last.Last().Reward)
	assert.Equal(t, 3.0, last.Last().Estimates.At(0, 0))
}

type analyzerFunc func(*EpisodeContext, *Trace)

func (f analyzerFunc) Analyze(e *EpisodeContext, t *Trace) { f(e, t) }
func (f analyzerFunc) DataSet() DataSet                    { return nil }
func (f analyzerFunc) Reset()                              {}

func TestExperimentRunAbortsOnInvalidAction(t *testing.T) {
	env := &scriptedEnvironment{arms: 2}
	agent := &cyclingAgent{arms: 2}
	logger, hook := logtest.NewNullLogger()
	analyzer := &countingAnalyzer{}

	e := &Experiment{Name: "broken", Environment: env, Agent: agent}
	result := e.Run(context.Background(), &RunConfig{Runs: 3, Steps: 5, Logger: logger},
		map[string]Analyzer{"count": analyzer})

	require.True(t, result.IsError())
	assert.ErrorIs(t, result.Error, ErrInvalidArgument)
	assert.Equal(t, 0, result.CompletedEpisodes)
	assert.Equal(t, 0, analyzer.episodes)
	require.NotNil(t, hook.LastEntry())
}

type recordingComparator struct {
	names    []string
	datasets []DataSet
}

func (r *recordingComparator) Compare(names []string, datasets []DataSet) error {
	r.names, r.datasets = names, datasets
	return nil
}

type countingConstructor struct{}

func (countingConstructor) NewAnalyzer(string) Analyzer { return &countingAnalyzer{} }

func TestComparisonKeepsExperimentOrder(t *testing.T) {
	cmp := NewComparison()
	for _, name := range []string{"b", "a", "c"} {
		cmp.AddExperiment(&Experiment{
			Name:        name,
			Environment: &scriptedEnvironment{arms: 4},
			Agent:       &cyclingAgent{arms: 4},
		})
	}
	rec := &recordingComparator{}
	cmp.AddAnalysis("count", countingConstructor{}, rec)

	logger, _ := logtest.NewNullLogger()
	require.NoError(t, cmp.Run(context.Background(), &RunConfig{Runs: 2, Steps: 4, Logger: logger}))
	assert.Equal(t, []string{"b", "a", "c"}, rec.names)
	assert.Equal(t, []DataSet{8, 8, 8}, rec.datasets)
}

func TestComparisonStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmp := NewComparison()
	cmp.AddExperiment(&Experiment{Name: "x", Environment: &scriptedEnvironment{arms: 1}, Agent: &cyclingAgent{arms: 1}})
	logger, _ := logtest.NewNullLogger()
	err := cmp.Run(ctx, &RunConfig{Runs: 1, Steps: 1, Logger: logger})
	assert.ErrorIs(t, err, ErrCancelled)
}
