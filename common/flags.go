package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/zeu5/newcomb-bandits/core"
)

const envPrefix = "NEWCOMB_"

type Flags struct {
	Environment string
	Agents      []string

	AgentFlags
	RunFlags
	Verbose int
}

type AgentFlags struct {
	Arms     int
	Epsilon  float64
	Optimism float64
}

type RunFlags struct {
	Steps int
	Runs  int
	Seed  uint64
}

func DefaultFlags() *Flags {
	return &Flags{
		AgentFlags: AgentFlags{
			Arms:     10,
			Epsilon:  0.1,
			Optimism: 0,
		},
		RunFlags: RunFlags{
			Steps: 1000,
			Runs:  1,
			Seed:  42,
		},
		Verbose: 0,
	}
}

// LoadEnv reads the first .env file found in paths into the process
// environment. Variables that are already set win over the file.
func LoadEnv(paths ...string) {
	for _, p := range paths {
		if err := godotenv.Load(p); err == nil {
			return
		}
	}
}

// ApplyEnv overrides defaults with NEWCOMB_* environment variables.
func (f *Flags) ApplyEnv() error {
	ints := map[string]*int{
		"ARMS":  &f.Arms,
		"STEPS": &f.Steps,
		"RUNS":  &f.Runs,
	}
	for name, dst := range ints {
		val, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", core.ErrConfiguration, envPrefix, name, val, err)
		}
		*dst = i
	}

	floats := map[string]*float64{
		"EPSILON":  &f.Epsilon,
		"OPTIMISM": &f.Optimism,
	}
	for name, dst := range floats {
		val, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", core.ErrConfiguration, envPrefix, name, val, err)
		}
		*dst = v
	}

	if val, ok := os.LookupEnv(envPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q: %v", core.ErrConfiguration, envPrefix, val, err)
		}
		f.Seed = seed
	}
	return nil
}

func (f *Flags) Validate() error {
	switch {
	case f.Arms < 1:
		return fmt.Errorf("%w: arms must be at least 1, got %d", core.ErrConfiguration, f.Arms)
	case f.Epsilon < 0 || f.Epsilon > 1:
		return fmt.Errorf("%w: epsilon must be in [0,1], got %g", core.ErrConfiguration, f.Epsilon)
	case f.Steps < 0:
		return fmt.Errorf("%w: steps must not be negative, got %d", core.ErrConfiguration, f.Steps)
	case f.Runs < 1:
		return fmt.Errorf("%w: runs must be at least 1, got %d", core.ErrConfiguration, f.Runs)
	}
	return nil
}
