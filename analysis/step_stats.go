package analysis

import (
	"github.com/zeu5/newcomb-bandits/core"
	"github.com/zeu5/newcomb-bandits/util"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// StepStats holds per-step averages over all analyzed episodes.
type StepStats struct {
	Episodes            int
	AverageReward       []float64
	BestActionFrequency []float64
}

// Summary returns the mean and standard deviation of the per-step average
// reward and the best action frequency of the last step.
func (s *StepStats) Summary() (mean, std, finalFrequency float64) {
	if len(s.AverageReward) == 0 {
		return 0, 0, 0
	}
	if len(s.AverageReward) == 1 {
		mean = s.AverageReward[0]
	} else {
		mean, std = stat.MeanStdDev(s.AverageReward, nil)
	}
	return mean, std, s.BestActionFrequency[len(s.BestActionFrequency)-1]
}

// StepStatsAnalyzer sums the reward and the optimal action indicator of
// every step index across episodes.
type StepStatsAnalyzer struct {
	steps     int
	episodes  int
	rewardSum []float64
	bestSum   []float64
}

var _ core.Analyzer = &StepStatsAnalyzer{}

func NewStepStatsAnalyzer(steps int) *StepStatsAnalyzer {
	return &StepStatsAnalyzer{
		steps:     steps,
		rewardSum: make([]float64, steps),
		bestSum:   make([]float64, steps),
	}
}

func (a *StepStatsAnalyzer) Analyze(_ *core.EpisodeContext, trace *core.Trace) {
	for i := 0; i < trace.Len() && i < a.steps; i++ {
		step := trace.Step(i)
		a.rewardSum[i] += step.Reward
		if step.Optimal {
			a.bestSum[i]++
		}
	}
	a.episodes++
}

func (a *StepStatsAnalyzer) DataSet() core.DataSet {
	out := &StepStats{
		Episodes:            a.episodes,
		AverageReward:       util.CopyFloatSlice(a.rewardSum),
		BestActionFrequency: util.CopyFloatSlice(a.bestSum),
	}
	if a.episodes > 0 {
		// divide rather than scale by the reciprocal, which is inexact for
		// most episode counts
		episodes := make([]float64, a.steps)
		floats.AddConst(float64(a.episodes), episodes)
		floats.Div(out.AverageReward, episodes)
		floats.Div(out.BestActionFrequency, episodes)
	}
	return out
}

func (a *StepStatsAnalyzer) Reset() {
	a.episodes = 0
	a.rewardSum = make([]float64, a.steps)
	a.bestSum = make([]float64, a.steps)
}

type StepStatsAnalyzerConstructor struct {
	steps int
}

var _ core.AnalyzerConstructor = &StepStatsAnalyzerConstructor{}

func NewStepStatsAnalyzerConstructor(steps int) *StepStatsAnalyzerConstructor {
	return &StepStatsAnalyzerConstructor{
		steps: steps,
	}
}

func (c *StepStatsAnalyzerConstructor) NewAnalyzer(_ string) core.Analyzer {
	return NewStepStatsAnalyzer(c.steps)
}
