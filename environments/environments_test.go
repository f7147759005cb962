package environments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeu5/newcomb-bandits/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func newStep(seed uint64) *core.StepContext {
	eCtx := core.NewEpisodeContext(context.Background(), core.NewRand(seed))
	return &core.StepContext{EpisodeContext: eCtx}
}

func TestBanditBestActionIsArgMaxOfTruth(t *testing.T) {
	sCtx := newStep(42)
	env := NewBanditEnvironment(10)
	for episode := 0; episode < 50; episode++ {
		env.Reset(sCtx.EpisodeContext)
		truth := mat.Col(nil, 0, env.TrueValues())
		best := env.BestAction()
		assert.Equal(t, floats.Max(truth), truth[best])
		assert.Equal(t, truth[best], env.BestReward())
		for i := 0; i < best; i++ {
			assert.Less(t, truth[i], truth[best])
		}
	}
}

func TestBanditResetDrawsFreshTruth(t *testing.T) {
	sCtx := newStep(1)
	env := NewBanditEnvironment(5)
	env.Reset(sCtx.EpisodeContext)
	first := mat.Col(nil, 0, env.TrueValues())
	env.Reset(sCtx.EpisodeContext)
	second := mat.Col(nil, 0, env.TrueValues())
	assert.NotEqual(t, first, second)
}

func TestBanditInteractIsStationary(t *testing.T) {
	sCtx := newStep(7)
	env := NewBanditEnvironment(3)
	env.Reset(sCtx.EpisodeContext)
	truth := mat.Col(nil, 0, env.TrueValues())

	sum := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		r, err := env.Interact(sCtx, 2, core.NoPrediction)
		require.NoError(t, err)
		sum += r
	}
	assert.InDelta(t, truth[2], sum/n, 0.05)
	assert.Equal(t, truth, mat.Col(nil, 0, env.TrueValues()))
}

func TestInteractRejectsOutOfRange(t *testing.T) {
	sCtx := newStep(3)
	envs := map[string]core.Environment{
		"bandit":   NewBanditEnvironment(4),
		"pdbandit": NewPolicyDependentBandit(4),
		"newcomb":  NewNewcombEnvironment(),
	}
	for name, env := range envs {
		t.Run(name, func(t *testing.T) {
			env.Reset(sCtx.EpisodeContext)
			_, err := env.Interact(sCtx, env.Arms(), 0)
			assert.ErrorIs(t, err, core.ErrInvalidArgument)
			_, err = env.Interact(sCtx, -1, 0)
			assert.ErrorIs(t, err, core.ErrInvalidArgument)
		})
	}

	t.Run("prediction", func(t *testing.T) {
		pd := NewPolicyDependentBandit(4)
		pd.Reset(sCtx.EpisodeContext)
		_, err := pd.Interact(sCtx, 0, 4)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)
		_, err = pd.Interact(sCtx, 0, core.NoPrediction)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)

		_, err = NewNewcombEnvironment().Interact(sCtx, 1, 2)
		assert.ErrorIs(t, err, core.ErrInvalidArgument)
	})
}

func TestPolicyDependentBanditBestActionOnDiagonal(t *testing.T) {
	sCtx := newStep(11)
	env := NewPolicyDependentBandit(6)
	for episode := 0; episode < 20; episode++ {
		env.Reset(sCtx.EpisodeContext)
		best := env.BestAction()
		for i := 0; i < 6; i++ {
			assert.LessOrEqual(t, env.Truth().At(i, i), env.BestReward())
		}
		assert.Equal(t, env.Truth().At(best, best), env.BestReward())
	}
}

func TestPolicyDependentBanditUsesPredictionRow(t *testing.T) {
	sCtx := newStep(5)
	env := NewPolicyDependentBandit(2)
	env.Reset(sCtx.EpisodeContext)
	env.truth = mat.NewDense(2, 2, []float64{10, -10, 20, -20})

	sum := 0.0
	const n = 5000
	for i := 0; i < n; i++ {
		r, err := env.Interact(sCtx, 0, 1)
		require.NoError(t, err)
		sum += r
	}
	assert.InDelta(t, 20, sum/n, 0.1)
}

func TestNewcombPayoffsAreExact(t *testing.T) {
	rand := core.NewRand(42)
	sCtx := &core.StepContext{EpisodeContext: core.NewEpisodeContext(context.Background(), rand)}
	env := NewNewcombEnvironment()
	env.Reset(sCtx.EpisodeContext)

	cases := []struct {
		action, prediction int
		reward             float64
	}{
		{OneBox, OneBox, 100},
		{TwoBox, OneBox, 101},
		{OneBox, TwoBox, 0},
		{TwoBox, TwoBox, 1},
	}
	for _, c := range cases {
		r, err := env.Interact(sCtx, c.action, c.prediction)
		require.NoError(t, err)
		assert.Equal(t, c.reward, r)
	}
	assert.Equal(t, uint64(0), rand.Draws())
	assert.Equal(t, OneBox, env.BestAction())
	assert.Equal(t, 100.0, env.BestReward())
}

func TestNew(t *testing.T) {
	for _, name := range Names {
		env, err := New(name, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, env.Arms())
	}

	_, err := New("foo", 10)
	assert.ErrorIs(t, err, core.ErrConfiguration)

	_, err = New("newcomb", 10)
	assert.ErrorIs(t, err, core.ErrConfiguration)

	_, err = New("bandit", 0)
	assert.ErrorIs(t, err, core.ErrConfiguration)
}
