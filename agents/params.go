package agents

import (
	"math"

	"github.com/zeu5/newcomb-bandits/core"
)

const (
	// priorSigma is the standard deviation every Bayesian estimate starts with
	priorSigma = 1.0
	// observationSigma is the known reward noise of the environments
	observationSigma = 1.0
)

type Params struct {
	Arms     int
	Epsilon  float64
	Optimism float64
}

// epsilonGreedy explores uniformly with probability epsilon and otherwise
// returns greedy(). The exploration draw happens on every call.
func epsilonGreedy(sCtx *core.StepContext, epsilon float64, arms int, greedy func() int) int {
	if sCtx.Rand.Bernoulli(epsilon) {
		return sCtx.Rand.Intn(arms)
	}
	return greedy()
}

// conjugateUpdate folds one reward into a normal belief with mean value and
// standard deviation sigma, assuming normal observations with known variance.
func conjugateUpdate(value, sigma, reward float64) (float64, float64) {
	priorPrecision := 1 / (sigma * sigma)
	obsPrecision := 1 / (observationSigma * observationSigma)
	tmp := priorPrecision + obsPrecision
	return (value*priorPrecision + reward*obsPrecision) / tmp, 1 / math.Sqrt(tmp)
}
