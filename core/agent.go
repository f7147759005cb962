package core

import "gonum.org/v1/gonum/mat"

type Agent interface {
	Reset(*EpisodeContext)
	// PickAction returns the action to execute, exploring if the agent
	// chooses to.
	PickAction(*StepContext) int
	// GreedyAction is the action the agent currently believes is best. It
	// doubles as the agent's prediction of itself.
	GreedyAction() int
	Update(sCtx *StepContext, action int, reward float64, prediction int)
}

// EstimateReporter is implemented by agents that can expose their current
// estimate store, a k vector or a k x k matrix indexed [prediction][action].
type EstimateReporter interface {
	Estimates() mat.Matrix
}
