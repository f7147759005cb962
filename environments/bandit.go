package environments

import (
	"fmt"

	"github.com/zeu5/newcomb-bandits/core"
	"github.com/zeu5/newcomb-bandits/util"
	"gonum.org/v1/gonum/mat"
)

// BanditEnvironment is a stateless k-armed bandit. Every arm has a true value
// drawn from a standard normal at reset, and pulling it yields that value plus
// unit normal noise.
type BanditEnvironment struct {
	arms       int
	trueValues *mat.VecDense
}

var _ core.Environment = &BanditEnvironment{}

func NewBanditEnvironment(arms int) *BanditEnvironment {
	return &BanditEnvironment{
		arms:       arms,
		trueValues: mat.NewVecDense(arms, nil),
	}
}

func (b *BanditEnvironment) Reset(eCtx *core.EpisodeContext) {
	for i := 0; i < b.arms; i++ {
		b.trueValues.SetVec(i, eCtx.Rand.Normal(0, 1))
	}
}

// Interact ignores the prediction.
func (b *BanditEnvironment) Interact(sCtx *core.StepContext, action, _ int) (float64, error) {
	if err := checkArm("action", action, b.arms); err != nil {
		return 0, err
	}
	return sCtx.Rand.Normal(b.trueValues.AtVec(action), 1), nil
}

func (b *BanditEnvironment) BestAction() int {
	return util.ArgMax(b.trueValues.RawVector().Data)
}

func (b *BanditEnvironment) BestReward() float64 {
	return b.trueValues.AtVec(b.BestAction())
}

func (b *BanditEnvironment) Arms() int {
	return b.arms
}

// TrueValues returns the ground truth of the current episode.
func (b *BanditEnvironment) TrueValues() mat.Vector {
	return b.trueValues
}

func checkArm(what string, arm, arms int) error {
	if arm < 0 || arm >= arms {
		return fmt.Errorf("%w: %s %d outside [0,%d)", core.ErrInvalidArgument, what, arm, arms)
	}
	return nil
}
