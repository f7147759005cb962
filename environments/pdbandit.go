package environments

import (
	"github.com/zeu5/newcomb-bandits/core"
	"github.com/zeu5/newcomb-bandits/util"
	"gonum.org/v1/gonum/mat"
)

// PolicyDependentBandit pays a noisy reward centred on
// truth[prediction][action]. Only the diagonal, where the prediction came
// true, is an achievable outcome.
type PolicyDependentBandit struct {
	arms  int
	truth *mat.Dense
}

var _ core.Environment = &PolicyDependentBandit{}

func NewPolicyDependentBandit(arms int) *PolicyDependentBandit {
	return &PolicyDependentBandit{
		arms:  arms,
		truth: mat.NewDense(arms, arms, nil),
	}
}

// Reset fills the matrix row by row.
func (p *PolicyDependentBandit) Reset(eCtx *core.EpisodeContext) {
	for i := 0; i < p.arms; i++ {
		for j := 0; j < p.arms; j++ {
			p.truth.Set(i, j, eCtx.Rand.Normal(0, 1))
		}
	}
}

func (p *PolicyDependentBandit) Interact(sCtx *core.StepContext, action, prediction int) (float64, error) {
	if err := checkArm("action", action, p.arms); err != nil {
		return 0, err
	}
	if err := checkArm("prediction", prediction, p.arms); err != nil {
		return 0, err
	}
	return sCtx.Rand.Normal(p.truth.At(prediction, action), 1), nil
}

func (p *PolicyDependentBandit) BestAction() int {
	return util.DiagonalArgMax(p.truth)
}

func (p *PolicyDependentBandit) BestReward() float64 {
	i := p.BestAction()
	return p.truth.At(i, i)
}

func (p *PolicyDependentBandit) Arms() int {
	return p.arms
}

func (p *PolicyDependentBandit) Truth() mat.Matrix {
	return p.truth
}
