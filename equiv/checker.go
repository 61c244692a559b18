package equiv

import (
	"fmt"

	"github.com/qdiff-xyz/go-qdiff/circuit"
	"github.com/qdiff-xyz/go-qdiff/sim"
	"github.com/qdiff-xyz/go-qdiff/transform"
)

// DefaultTolerance is the absolute tolerance on |1 - fidelity| for exact
// equivalence verdicts.
const DefaultTolerance = 1e-8

// Checker compares statevectors before and after a transformation. The
// compiler and registry are injected; simulation failures propagate to the
// caller unretried.
type Checker struct {
	Compiler  transform.Compiler
	Registry  *transform.Registry
	Tolerance float64
}

// NewChecker creates a checker with the default tolerance.
func NewChecker(comp transform.Compiler, reg *transform.Registry) *Checker {
	return &Checker{
		Compiler:  comp,
		Registry:  reg,
		Tolerance: DefaultTolerance,
	}
}

// CompareAllLevels transpiles the circuit at every preset optimization
// level under pinned options and compares each result's statevector against
// the untransformed baseline. One Result per level, in level order.
func (ch *Checker) CompareAllLevels(c *circuit.Circuit) ([]Result, error) {
	base, err := sim.Simulate(c)
	if err != nil {
		return nil, &SimulationError{Stage: "baseline", Err: err}
	}

	results := make([]Result, 0, transform.NumLevels)
	for level := transform.Level0; level < transform.NumLevels; level++ {
		tc, err := ch.Compiler.Transpile(c, transform.PinnedOptions(level, nil))
		if err != nil {
			return nil, fmt.Errorf("transpile at %s: %w", level.Label(), err)
		}
		sv, err := sim.Simulate(tc)
		if err != nil {
			return nil, &SimulationError{Stage: level.Label(), Err: err}
		}
		fidelity, err := base.Fidelity(sv)
		if err != nil {
			return nil, fmt.Errorf("fidelity at %s: %w", level.Label(), err)
		}
		results = append(results, fidelityResult(level.Label(), fidelity, ch.Tolerance))
	}
	return results, nil
}

// CompareTransform looks up a named transformation, applies it exactly
// once, and compares statevectors before and after. An unknown name is a
// transform.UnknownTransformationError.
func (ch *Checker) CompareTransform(c *circuit.Circuit, name string) (Result, error) {
	tr, err := ch.Registry.Lookup(name)
	if err != nil {
		return Result{}, err
	}

	tc, err := tr.Apply(c, ch.Compiler)
	if err != nil {
		return Result{}, fmt.Errorf("apply %s: %w", name, err)
	}

	base, err := sim.Simulate(c)
	if err != nil {
		return Result{}, &SimulationError{Stage: "baseline", Err: err}
	}
	sv, err := sim.Simulate(tc)
	if err != nil {
		return Result{}, &SimulationError{Stage: name, Err: err}
	}
	fidelity, err := base.Fidelity(sv)
	if err != nil {
		return Result{}, fmt.Errorf("fidelity: %w", err)
	}

	return fidelityResult(name, fidelity, ch.Tolerance), nil
}
