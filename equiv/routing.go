package equiv

import (
	"fmt"

	"github.com/qdiff-xyz/go-qdiff/circuit"
	"github.com/qdiff-xyz/go-qdiff/counts"
	"github.com/qdiff-xyz/go-qdiff/coupling"
	"github.com/qdiff-xyz/go-qdiff/stats"
	"github.com/qdiff-xyz/go-qdiff/transform"
)

// RoutingRunner validates that routing a circuit onto a randomly restricted
// connectivity preserves its measurement-outcome distribution. The
// unrestricted target at level 0 is the reference; the restricted target is
// compared at every level.
type RoutingRunner struct {
	Compiler   transform.Compiler
	NewBackend func(numQubits int, g *coupling.Graph) (Executor, error)
	Sampler    *coupling.Sampler
	Shots      int
	Alpha      float64
	Plotter    Plotter // optional
}

// NewRoutingRunner creates a runner with default shots and alpha.
func NewRoutingRunner(comp transform.Compiler, newBackend func(int, *coupling.Graph) (Executor, error), sampler *coupling.Sampler) *RoutingRunner {
	return &RoutingRunner{
		Compiler:   comp,
		NewBackend: newBackend,
		Sampler:    sampler,
		Shots:      DefaultShots,
		Alpha:      DefaultAlpha,
	}
}

// RoutingReport holds the sampled coupling graph and the per-level results
// of one routing comparison.
type RoutingReport struct {
	Graph   *coupling.Graph `json:"graph"`
	Results []Result        `json:"results"`
}

// Run builds an unrestricted backend sized to the circuit for the level-0
// reference distribution, samples a random coupling graph, and compares the
// restricted backend's distribution at levels 0..3 by KS p-value.
func (r *RoutingRunner) Run(c *circuit.Circuit, circuitID string) (*RoutingReport, error) {
	unrestricted, err := r.NewBackend(c.NumQubits, nil)
	if err != nil {
		return nil, fmt.Errorf("create unrestricted backend: %w", err)
	}
	ref, err := r.execute(unrestricted, c, transform.Options{Level: transform.Level0})
	if err != nil {
		return nil, fmt.Errorf("reference at o0: %w", err)
	}
	if err := r.plot(ref, circuitID, "_original"); err != nil {
		return nil, err
	}

	g, err := r.Sampler.Sample(c.NumQubits)
	if err != nil {
		return nil, fmt.Errorf("sample coupling graph: %w", err)
	}
	restricted, err := r.NewBackend(c.NumQubits, g)
	if err != nil {
		return nil, fmt.Errorf("create restricted backend: %w", err)
	}

	report := &RoutingReport{Graph: g}
	for level := transform.Level0; level < transform.NumLevels; level++ {
		fm, err := r.execute(restricted, c, transform.Options{Level: level, Coupling: g})
		if err != nil {
			return nil, fmt.Errorf("restricted at %s: %w", level.Label(), err)
		}
		if err := r.plot(fm, circuitID, "_routed_"+level.Label()); err != nil {
			return nil, err
		}
		p, err := stats.PValue(ref, fm, r.Shots)
		if err != nil {
			return nil, fmt.Errorf("ks test at %s: %w", level.Label(), err)
		}
		report.Results = append(report.Results, pValueResult(level.Label(), p, r.Alpha))
	}
	return report, nil
}

func (r *RoutingRunner) execute(exec Executor, c *circuit.Circuit, opts transform.Options) (counts.FrequencyMap, error) {
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

func (r *RoutingRunner) plot(fm counts.FrequencyMap, circuitID, variant string) error {
	if r.Plotter == nil {
		return nil
	}
	if err := r.Plotter.PlotDistribution(fm, circuitID, variant); err != nil {
		return fmt.Errorf("plot %s%s: %w", circuitID, variant, err)
	}
	return nil
}
