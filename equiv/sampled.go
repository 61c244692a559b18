package equiv

import (
	"fmt"

	"github.com/qdiff-xyz/go-qdiff/circuit"
	"github.com/qdiff-xyz/go-qdiff/counts"
	"github.com/qdiff-xyz/go-qdiff/stats"
	"github.com/qdiff-xyz/go-qdiff/transform"
)

// DefaultShots is the shot count per comparison.
const DefaultShots = 1024

// DefaultAlpha is the significance threshold applied to p-values.
const DefaultAlpha = 0.05

// Executor is the sampled-execution collaborator: one call runs a circuit
// for a shot count and returns the raw outcome histogram.
type Executor interface {
	Run(c *circuit.Circuit, shots int) (map[string]int, error)
}

// Plotter renders an outcome distribution to an image artifact identified
// by the circuit and a variant suffix ("_original", "_o1", ...).
type Plotter interface {
	PlotDistribution(m counts.FrequencyMap, circuitID, variant string) error
}

// SampledRunner compares the outcome distribution of a circuit at
// optimization levels 1..3 against the level-0 baseline on a probabilistic
// backend. A fresh executor is constructed per Run call.
type SampledRunner struct {
	Compiler    transform.Compiler
	NewExecutor func(numQubits int) (Executor, error)
	Shots       int
	Alpha       float64
	Plotter     Plotter // optional
}

// NewSampledRunner creates a runner with default shots and alpha.
func NewSampledRunner(comp transform.Compiler, newExec func(int) (Executor, error)) *SampledRunner {
	return &SampledRunner{
		Compiler:    comp,
		NewExecutor: newExec,
		Shots:       DefaultShots,
		Alpha:       DefaultAlpha,
	}
}

// Run executes the circuit at level 0 for the baseline distribution, then
// at levels 1..3, comparing each by KS p-value. circuitID names the plot
// artifacts when a Plotter is configured.
func (r *SampledRunner) Run(c *circuit.Circuit, circuitID string) ([]Result, error) {
	exec, err := r.NewExecutor(c.NumQubits)
	if err != nil {
		return nil, fmt.Errorf("create executor: %w", err)
	}

	base, err := r.execute(exec, c, transform.Options{Level: transform.Level0})
	if err != nil {
		return nil, fmt.Errorf("baseline at o0: %w", err)
	}
	if err := r.plot(base, circuitID, "_original"); err != nil {
		return nil, err
	}

	results := make([]Result, 0, transform.NumLevels-1)
	for level := transform.Level1; level < transform.NumLevels; level++ {
		fm, err := r.execute(exec, c, transform.Options{Level: level})
		if err != nil {
			return nil, fmt.Errorf("at %s: %w", level.Label(), err)
		}
		if err := r.plot(fm, circuitID, "_"+level.Label()); err != nil {
			return nil, err
		}
		p, err := stats.PValue(base, fm, r.Shots)
		if err != nil {
			return nil, fmt.Errorf("ks test at %s: %w", level.Label(), err)
		}
		results = append(results, pValueResult(level.Label(), p, r.Alpha))
	}
	return results, nil
}

// execute transpiles, runs, and normalizes one variant of the circuit.
func (r *SampledRunner) execute(exec Executor, c *circuit.Circuit, opts transform.Options) (counts.FrequencyMap, error) {
	tc, err := r.Compiler.Transpile(c, opts)
	if err != nil {
		return nil, fmt.Errorf("transpile: %w", err)
	}
	raw, err := exec.Run(tc, r.Shots)
	if err != nil {
		return nil, &SimulationError{Stage: opts.Level.Label(), Err: err}
	}
	fm, err := counts.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize counts: %w", err)
	}
	return fm, nil
}

func (r *SampledRunner) plot(fm counts.FrequencyMap, circuitID, variant string) error {
	if r.Plotter == nil {
		return nil
	}
	if err := r.Plotter.PlotDistribution(fm, circuitID, variant); err != nil {
		return fmt.Errorf("plot %s%s: %w", circuitID, variant, err)
	}
	return nil
}
