package agents

import (
	"github.com/zeu5/newcomb-bandits/core"
	"github.com/zeu5/newcomb-bandits/util"
	"gonum.org/v1/gonum/mat"
)

// InfraBayesianAgent keeps a normal posterior for every (prediction, action)
// pair. Outcomes where the prediction differs from the action can not
// happen to an agent that acts on its own prediction, so they are sent to
// nirvana: they are learned but never compared when choosing, and the greedy
// action is the argmax over the diagonal.
type InfraBayesianAgent struct {
	params Params
	// values and sigma are indexed [prediction][action]
	values *mat.Dense
	sigma  *mat.Dense
}

var _ core.Agent = &InfraBayesianAgent{}
var _ core.EstimateReporter = &InfraBayesianAgent{}

func NewInfraBayesianAgent(params Params) *InfraBayesianAgent {
	a := &InfraBayesianAgent{
		params: params,
		values: mat.NewDense(params.Arms, params.Arms, nil),
		sigma:  mat.NewDense(params.Arms, params.Arms, nil),
	}
	a.Reset(nil)
	return a
}

func (a *InfraBayesianAgent) Reset(_ *core.EpisodeContext) {
	for i := 0; i < a.params.Arms; i++ {
		for j := 0; j < a.params.Arms; j++ {
			a.values.Set(i, j, a.params.Optimism)
			a.sigma.Set(i, j, priorSigma)
		}
	}
}

func (a *InfraBayesianAgent) PickAction(sCtx *core.StepContext) int {
	return epsilonGreedy(sCtx, a.params.Epsilon, a.params.Arms, a.GreedyAction)
}

func (a *InfraBayesianAgent) GreedyAction() int {
	return util.DiagonalArgMax(a.values)
}

// Update learns from the cell [prediction][action]. core.NoPrediction is
// read as the agent's current greedy action.
func (a *InfraBayesianAgent) Update(_ *core.StepContext, action int, reward float64, prediction int) {
	if prediction == core.NoPrediction {
		prediction = a.GreedyAction()
	}
	value, sigma := conjugateUpdate(a.values.At(prediction, action), a.sigma.At(prediction, action), reward)
	a.values.Set(prediction, action, value)
	a.sigma.Set(prediction, action, sigma)
}

func (a *InfraBayesianAgent) Estimates() mat.Matrix {
	return a.values
}

func (a *InfraBayesianAgent) Sigma() mat.Matrix {
	return a.sigma
}
