package core

import "gonum.org/v1/gonum/mat"

type Step struct {
	Action     int
	Prediction int
	Reward     float64
	// Optimal is true when Action matched the environment's best action
	Optimal bool

	// Estimates is a copy of the agent's estimates after the update, only
	// recorded when RunConfig.RecordEstimates is set
	Estimates *mat.Dense
}

type Trace struct {
	steps []*Step
}

func NewTrace() *Trace {
	return &Trace{
		steps: make([]*Step, 0),
	}
}

func (t *Trace) AddStep(s *Step) {
	t.steps = append(t.steps, s)
}

func (t *Trace) Step(i int) *Step {
	return t.steps[i]
}

func (t *Trace) Len() int {
	return len(t.steps)
}

func (t *Trace) Last() *Step {
	return t.steps[len(t.steps)-1]
}
