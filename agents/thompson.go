package agents

import (
	"github.com/zeu5/newcomb-bandits/core"
	"github.com/zeu5/newcomb-bandits/util"
)

// ThompsonBayesianAgent learns like BayesianAgent but acts by drawing one
// sample per action from the posterior and taking the largest. Epsilon is
// not used.
type ThompsonBayesianAgent struct {
	*BayesianAgent
}

var _ core.Agent = &ThompsonBayesianAgent{}

func NewThompsonBayesianAgent(params Params) *ThompsonBayesianAgent {
	return &ThompsonBayesianAgent{
		BayesianAgent: NewBayesianAgent(params),
	}
}

func (t *ThompsonBayesianAgent) PickAction(sCtx *core.StepContext) int {
	samples := make([]float64, t.params.Arms)
	for i := range samples {
		samples[i] = sCtx.Rand.Normal(t.values.AtVec(i), t.sigma.AtVec(i))
	}
	return util.ArgMax(samples)
}

// ThompsonInfraBayesianAgent samples the diagonal of the infra-Bayesian
// posterior.
type ThompsonInfraBayesianAgent struct {
	*InfraBayesianAgent
}

var _ core.Agent = &ThompsonInfraBayesianAgent{}

func NewThompsonInfraBayesianAgent(params Params) *ThompsonInfraBayesianAgent {
	return &ThompsonInfraBayesianAgent{
		InfraBayesianAgent: NewInfraBayesianAgent(params),
	}
}

func (t *ThompsonInfraBayesianAgent) PickAction(sCtx *core.StepContext) int {
	samples := make([]float64, t.params.Arms)
	for i := range samples {
		samples[i] = sCtx.Rand.Normal(t.values.At(i, i), t.sigma.At(i, i))
	}
	return util.ArgMax(samples)
}
