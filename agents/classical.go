package agents

import (
	"github.com/zeu5/newcomb-bandits/core"
	"github.com/zeu5/newcomb-bandits/util"
	"gonum.org/v1/gonum/mat"
)

// ClassicalAgent estimates action values as sample averages, which assumes
// stationary true values, and acts epsilon-greedily. A positive optimism
// encourages early exploration.
type ClassicalAgent struct {
	params Params
	values *mat.VecDense
	counts *mat.VecDense
}

var _ core.Agent = &ClassicalAgent{}
var _ core.EstimateReporter = &ClassicalAgent{}

func NewClassicalAgent(params Params) *ClassicalAgent {
	c := &ClassicalAgent{
		params: params,
		values: mat.NewVecDense(params.Arms, nil),
		counts: mat.NewVecDense(params.Arms, nil),
	}
	c.Reset(nil)
	return c
}

func (c *ClassicalAgent) Reset(_ *core.EpisodeContext) {
	for i := 0; i < c.params.Arms; i++ {
		c.values.SetVec(i, c.params.Optimism)
		c.counts.SetVec(i, 0)
	}
}

func (c *ClassicalAgent) PickAction(sCtx *core.StepContext) int {
	return epsilonGreedy(sCtx, c.params.Epsilon, c.params.Arms, c.GreedyAction)
}

func (c *ClassicalAgent) GreedyAction() int {
	return util.ArgMax(c.values.RawVector().Data)
}

func (c *ClassicalAgent) Update(_ *core.StepContext, action int, reward float64, _ int) {
	n := c.counts.AtVec(action) + 1
	c.counts.SetVec(action, n)
	v := c.values.AtVec(action)
	c.values.SetVec(action, v+(reward-v)/n)
}

func (c *ClassicalAgent) Estimates() mat.Matrix {
	return c.values
}
