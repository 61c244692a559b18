// Package equiv orchestrates the equivalence comparisons at the heart of
// the differential tester: exact statevector fidelity under a named
// transformation or across optimization levels, and statistical comparison
// of sampled outcome distributions, plain and under restricted routing.
//
// Every comparison yields a Result record carrying the metric, its value,
// and the explicit threshold it was judged against. The package never
// prints; presentation belongs to callers.
package equiv

import (
	"fmt"
	"math"
)

// SimulationError wraps any failure raised by a simulation or execution
// collaborator. It is never recovered locally; a multi-circuit driver can
// catch it, log, and continue with the next circuit.
type SimulationError struct {
	Stage string // "baseline", "o1", "Identity", ...
	Err   error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("simulation failed at %s: %v", e.Stage, e.Err)
}

func (e *SimulationError) Unwrap() error { return e.Err }

// Metric identifies what a Result's value measures.
type Metric string

const (
	// MetricFidelity is the magnitude of the statevector inner product
	// against the untransformed baseline.
	MetricFidelity Metric = "fidelity"
	// MetricPValue is the two-sample KS p-value against the baseline
	// outcome distribution.
	MetricPValue Metric = "p-value"
)

// Result records a single comparison: which transformation or level was
// tested, the metric computed, and the verdict against the threshold the
// caller configured.
type Result struct {
	ID        string  `json:"id"`
	Metric    Metric  `json:"metric"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
	Pass      bool    `json:"pass"`
}

// fidelityResult passes iff the fidelity is within tol of 1.0, absolute.
func fidelityResult(id string, fidelity, tol float64) Result {
	return Result{
		ID:        id,
		Metric:    MetricFidelity,
		Value:     fidelity,
		Threshold: tol,
		Pass:      math.Abs(1.0-fidelity) <= tol,
	}
}

// pValueResult passes iff the p-value is at least alpha, i.e. the null
// hypothesis of identical distributions is not rejected.
func pValueResult(id string, p, alpha float64) Result {
	return Result{
		ID:        id,
		Metric:    MetricPValue,
		Value:     p,
		Threshold: alpha,
		Pass:      p >= alpha,
	}
}
