package analysis

import "github.com/zeu5/newcomb-bandits/core"

// NoOpComparator discards datasets, for analyses that only log.
type NoOpComparator struct {
}

var _ core.Comparator = &NoOpComparator{}

func NewNoOpComparator() *NoOpComparator {
	return &NoOpComparator{}
}

func (n *NoOpComparator) Compare(_ []string, _ []core.DataSet) error {
	return nil
}
