package environments

import (
	"github.com/zeu5/newcomb-bandits/core"
	"github.com/zeu5/newcomb-bandits/util"
	"gonum.org/v1/gonum/mat"
)

const (
	OneBox = 0
	TwoBox = 1
)

// NewcombEnvironment is Newcomb's problem as a deterministic two-armed
// policy dependent bandit. Rows are the predicted choice, columns the actual
// one.
type NewcombEnvironment struct {
	payoff *mat.Dense
}

var _ core.Environment = &NewcombEnvironment{}

func NewNewcombEnvironment() *NewcombEnvironment {
	return &NewcombEnvironment{
		payoff: newcombPayoff(),
	}
}

func newcombPayoff() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		100, 101,
		0, 1,
	})
}

// Reset restores the fixed payoff matrix without drawing.
func (n *NewcombEnvironment) Reset(_ *core.EpisodeContext) {
	n.payoff = newcombPayoff()
}

func (n *NewcombEnvironment) Interact(_ *core.StepContext, action, prediction int) (float64, error) {
	if err := checkArm("action", action, 2); err != nil {
		return 0, err
	}
	if err := checkArm("prediction", prediction, 2); err != nil {
		return 0, err
	}
	return n.payoff.At(prediction, action), nil
}

func (n *NewcombEnvironment) BestAction() int {
	return util.DiagonalArgMax(n.payoff)
}

func (n *NewcombEnvironment) BestReward() float64 {
	i := n.BestAction()
	return n.payoff.At(i, i)
}

func (n *NewcombEnvironment) Arms() int {
	return 2
}
