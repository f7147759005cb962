package analysis

import (
	"github.com/sirupsen/logrus"
	"github.com/zeu5/newcomb-bandits/core"
)

// SummaryComparator logs one info line per experiment with the mean and
// spread of the per-step average reward.
type SummaryComparator struct {
	log *logrus.Entry
}

var _ core.Comparator = &SummaryComparator{}

func NewSummaryComparator(log *logrus.Entry) *SummaryComparator {
	return &SummaryComparator{
		log: log,
	}
}

func (s *SummaryComparator) Compare(experimentNames []string, datasets []core.DataSet) error {
	for i, name := range experimentNames {
		stats, err := stepStatsOf(name, datasets[i])
		if err != nil {
			return err
		}
		mean, std, final := stats.Summary()
		s.log.WithFields(logrus.Fields{
			"experiment":      name,
			"episodes":        stats.Episodes,
			"mean_reward":     mean,
			"std_reward":      std,
			"final_best_freq": final,
		}).Info("summary")
	}
	return nil
}
