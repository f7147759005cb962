package agents

import (
	"fmt"
	"strings"

	"github.com/zeu5/newcomb-bandits/core"
)

// New builds an agent from a name. The family is chosen by prefix
// (classic, bayes, infrabayes), so "classical" and "bayesian" work too. A
// name containing "thompson" or ending in "-ts" selects Thompson sampling.
func New(name string, params Params) (core.Agent, error) {
	if params.Arms < 1 {
		return nil, fmt.Errorf("%w: need at least one arm, got %d", core.ErrConfiguration, params.Arms)
	}
	thompson := strings.Contains(name, "thompson") || strings.HasSuffix(name, "-ts")

	switch {
	case strings.HasPrefix(name, "classic"):
		if thompson {
			return nil, fmt.Errorf("%w: classical agent has no posterior to sample: %q", core.ErrConfiguration, name)
		}
		return NewClassicalAgent(params), nil
	case strings.HasPrefix(name, "bayes"):
		if thompson {
			return NewThompsonBayesianAgent(params), nil
		}
		return NewBayesianAgent(params), nil
	case strings.HasPrefix(name, "infrabayes"):
		if thompson {
			return NewThompsonInfraBayesianAgent(params), nil
		}
		return NewInfraBayesianAgent(params), nil
	}
	return nil, fmt.Errorf("%w: invalid agent type: %q", core.ErrConfiguration, name)
}
