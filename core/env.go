package core

import "context"

// NoPrediction stands in for a missing prediction. Environments that ignore
// predictions accept it, and agents that track predictions substitute their
// own greedy action.
const NoPrediction = -1

// Environment is a stationary reward generating process over Arms() actions.
type Environment interface {
	// Reset draws a fresh ground truth for the next episode.
	Reset(*EpisodeContext)
	// Interact returns the reward for taking action when the agent was
	// predicted to take prediction.
	Interact(sCtx *StepContext, action, prediction int) (float64, error)
	BestAction() int
	BestReward() float64
	Arms() int
}

type EpisodeContext struct {
	Context context.Context
	Run     int
	Steps   int
	Rand    *Rand

	Trace *Trace
}

func NewEpisodeContext(ctx context.Context, rand *Rand) *EpisodeContext {
	return &EpisodeContext{
		Context: ctx,
		Rand:    rand,
		Trace:   NewTrace(),
	}
}

type StepContext struct {
	Step int
	*EpisodeContext
}
