package agents

import (
	"github.com/zeu5/newcomb-bandits/core"
	"github.com/zeu5/newcomb-bandits/util"
	"gonum.org/v1/gonum/mat"
)

// BayesianAgent keeps a normal posterior per action and picks the action with
// the largest posterior mean, exploring epsilon-greedily.
type BayesianAgent struct {
	params Params
	values *mat.VecDense
	sigma  *mat.VecDense
}

var _ core.Agent = &BayesianAgent{}
var _ core.EstimateReporter = &BayesianAgent{}

func NewBayesianAgent(params Params) *BayesianAgent {
	b := &BayesianAgent{
		params: params,
		values: mat.NewVecDense(params.Arms, nil),
		sigma:  mat.NewVecDense(params.Arms, nil),
	}
	b.Reset(nil)
	return b
}

func (b *BayesianAgent) Reset(_ *core.EpisodeContext) {
	for i := 0; i < b.params.Arms; i++ {
		b.values.SetVec(i, b.params.Optimism)
		b.sigma.SetVec(i, priorSigma)
	}
}

func (b *BayesianAgent) PickAction(sCtx *core.StepContext) int {
	return epsilonGreedy(sCtx, b.params.Epsilon, b.params.Arms, b.GreedyAction)
}

func (b *BayesianAgent) GreedyAction() int {
	return util.ArgMax(b.values.RawVector().Data)
}

func (b *BayesianAgent) Update(_ *core.StepContext, action int, reward float64, _ int) {
	value, sigma := conjugateUpdate(b.values.AtVec(action), b.sigma.AtVec(action), reward)
	b.values.SetVec(action, value)
	b.sigma.SetVec(action, sigma)
}

func (b *BayesianAgent) Estimates() mat.Matrix {
	return b.values
}

// Sigma is the posterior standard deviation per action.
func (b *BayesianAgent) Sigma() mat.Vector {
	return b.sigma
}
