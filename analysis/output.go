package analysis

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zeu5/newcomb-bandits/core"
)

var ErrUnexpectedDataSet = errors.New("unexpected dataset")

func stepStatsOf(name string, ds core.DataSet) (*StepStats, error) {
	stats, ok := ds.(*StepStats)
	if !ok || stats == nil {
		return nil, fmt.Errorf("%w: experiment %s produced %T", ErrUnexpectedDataSet, name, ds)
	}
	return stats, nil
}

// StdoutComparator writes "step reward frequency" lines for the first
// experiment it is given.
type StdoutComparator struct {
	out io.Writer
}

var _ core.Comparator = &StdoutComparator{}

func NewStdoutComparator(out io.Writer) *StdoutComparator {
	return &StdoutComparator{
		out: out,
	}
}

func (s *StdoutComparator) Compare(experimentNames []string, datasets []core.DataSet) error {
	if len(datasets) == 0 {
		return nil
	}
	stats, err := stepStatsOf(experimentNames[0], datasets[0])
	if err != nil {
		return err
	}
	w := bufio.NewWriter(s.out)
	for i := range stats.AverageReward {
		fmt.Fprintln(w, i, stats.AverageReward[i], stats.BestActionFrequency[i])
	}
	return w.Flush()
}

// TableComparator prints one row per step with a reward and a frequency
// column for every experiment, after a commented header.
type TableComparator struct {
	out io.Writer
}

var _ core.Comparator = &TableComparator{}

func NewTableComparator(out io.Writer) *TableComparator {
	return &TableComparator{
		out: out,
	}
}

func (t *TableComparator) Compare(experimentNames []string, datasets []core.DataSet) error {
	all := make([]*StepStats, len(datasets))
	for i, ds := range datasets {
		stats, err := stepStatsOf(experimentNames[i], ds)
		if err != nil {
			return err
		}
		if i > 0 && len(stats.AverageReward) != len(all[0].AverageReward) {
			return fmt.Errorf("%w: experiment %s has %d steps, expected %d",
				ErrUnexpectedDataSet, experimentNames[i], len(stats.AverageReward), len(all[0].AverageReward))
		}
		all[i] = stats
	}

	w := bufio.NewWriter(t.out)
	header := []string{"# step"}
	for _, name := range experimentNames {
		header = append(header, name+":reward", name+":best")
	}
	fmt.Fprintln(w, strings.Join(header, " "))
	if len(all) == 0 {
		return w.Flush()
	}
	for i := range all[0].AverageReward {
		row := make([]interface{}, 0, 1+2*len(all))
		row = append(row, i)
		for _, stats := range all {
			row = append(row, stats.AverageReward[i], stats.BestActionFrequency[i])
		}
		fmt.Fprintln(w, row...)
	}
	return w.Flush()
}
