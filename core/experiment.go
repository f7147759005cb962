package core

import (
	"io"

	"github.com/sirupsen/logrus"
)

type DataSet interface{}

type Analyzer interface {
	Analyze(*EpisodeContext, *Trace)
	DataSet() DataSet
	Reset()
}

type AnalyzerConstructor interface {
	// new analyzer for the named experiment
	NewAnalyzer(string) Analyzer
}

type Comparator interface {
	Compare([]string, []DataSet) error
}

type RunConfig struct {
	Runs  int
	Steps int
	Seed  uint64

	// Progress receives one line per completed episode when set
	Progress io.Writer
	Logger   *logrus.Logger
	// RecordEstimates copies the agent estimates into every trace step
	RecordEstimates bool
}

func (r *RunConfig) logger() *logrus.Logger {
	if r.Logger == nil {
		return logrus.StandardLogger()
	}
	return r.Logger
}

type Experiment struct {
	ID          string
	Name        string
	Environment Environment
	Agent       Agent
}

type Comparison struct {
	Experiments []*Experiment
	Analyzers   map[string]AnalyzerConstructor
	Comparators map[string]Comparator
}

func NewComparison() *Comparison {
	return &Comparison{
		Analyzers:   make(map[string]AnalyzerConstructor),
		Comparators: make(map[string]Comparator),
		Experiments: make([]*Experiment, 0),
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison) AddAnalysis(name string, a AnalyzerConstructor, cmp Comparator) {
	c.Analyzers[name] = a
	c.Comparators[name] = cmp
}
