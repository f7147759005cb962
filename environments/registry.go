package environments

import (
	"fmt"

	"github.com/zeu5/newcomb-bandits/core"
)

// Names lists the environments New understands.
var Names = []string{"bandit", "pdbandit", "newcomb"}

// New builds the named environment. Construction does not touch any
// generator; the ground truth is drawn by Reset.
func New(name string, arms int) (core.Environment, error) {
	if arms < 1 {
		return nil, fmt.Errorf("%w: need at least one arm, got %d", core.ErrConfiguration, arms)
	}
	switch name {
	case "bandit":
		return NewBanditEnvironment(arms), nil
	case "pdbandit":
		return NewPolicyDependentBandit(arms), nil
	case "newcomb":
		if arms != 2 {
			return nil, fmt.Errorf("%w: newcomb requires 2 arms, got %d", core.ErrConfiguration, arms)
		}
		return NewNewcombEnvironment(), nil
	}
	return nil, fmt.Errorf("%w: invalid environment type: %q", core.ErrConfiguration, name)
}
