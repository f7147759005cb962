package analysis

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zeu5/newcomb-bandits/core"
	"gonum.org/v1/gonum/mat"
)

// DebugAnalyzer logs one line per step with the action, the prediction,
// the reward and the agent estimates after the update. Estimates are only
// present when the run records them.
type DebugAnalyzer struct {
	log *logrus.Entry
}

var _ core.Analyzer = &DebugAnalyzer{}

func NewDebugAnalyzer(log *logrus.Entry) *DebugAnalyzer {
	return &DebugAnalyzer{
		log: log,
	}
}

func (d *DebugAnalyzer) Analyze(eCtx *core.EpisodeContext, trace *core.Trace) {
	if !d.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	for i := 0; i < trace.Len(); i++ {
		step := trace.Step(i)
		entry := d.log.WithFields(logrus.Fields{
			"run":        eCtx.Run,
			"step":       i,
			"action":     step.Action,
			"prediction": step.Prediction,
			"reward":     step.Reward,
		})
		if step.Estimates != nil {
			entry = entry.WithField("estimates", estimatesToString(step.Estimates))
		}
		entry.Debug("step")
	}
}

func estimatesToString(m *mat.Dense) string {
	_, c := m.Dims()
	if c == 1 {
		return fmt.Sprintf("%v", mat.Formatted(m.T(), mat.Squeeze()))
	}
	return fmt.Sprintf("%v", mat.Formatted(m, mat.Squeeze(), mat.FormatMATLAB()))
}

func (*DebugAnalyzer) DataSet() core.DataSet {
	return nil
}

func (*DebugAnalyzer) Reset() {}

type DebugAnalyzerConstructor struct {
	log *logrus.Entry
}

var _ core.AnalyzerConstructor = &DebugAnalyzerConstructor{}

func NewDebugAnalyzerConstructor(log *logrus.Entry) *DebugAnalyzerConstructor {
	return &DebugAnalyzerConstructor{
		log: log,
	}
}

func (d *DebugAnalyzerConstructor) NewAnalyzer(exp string) core.Analyzer {
	return NewDebugAnalyzer(d.log.WithField("experiment", exp))
}
