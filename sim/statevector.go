// Package sim provides the reference simulation collaborator: exact
// statevector evolution of a circuit from the all-zero basis state, fidelity
// between statevectors, and a seedable sampled backend that can enforce a
// restricted coupling map.
//
// Memory and time scale O(2^n) in the qubit count. Simulators hold no state
// between calls; backends hold only their random source.
package sim

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/qdiff-xyz/go-qdiff/circuit"
)

// ErrMidCircuitMeasurement is returned for circuits that use a qubit after
// measuring it. Measurement collapse is not modeled; such circuits must be
// excluded upstream.
var ErrMidCircuitMeasurement = errors.New("mid-circuit measurement is not supported")

// StateVector holds the complex amplitudes of an n-qubit state, indexed by
// basis state. Qubit q corresponds to bit q of the index.
type StateVector struct {
	Amps      []complex128
	NumQubits int
}

// NewStateVector returns the all-zero basis state |0...0> on n qubits.
func NewStateVector(numQubits int) *StateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amps: amps, NumQubits: numQubits}
}

// Simulate evolves the all-zero state through the circuit's unitary action
// and returns the final statevector. Terminal measurements are ignored;
// mid-circuit measurement is a hard error.
func Simulate(c *circuit.Circuit) (*StateVector, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid circuit: %w", err)
	}
	if c.HasMidCircuitMeasurement() {
		return nil, ErrMidCircuitMeasurement
	}

	sv := NewStateVector(c.NumQubits)
	for i, g := range c.Gates {
		if g.IsMeasure() {
			continue
		}
		if err := sv.apply(g); err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return sv, nil
}

// Fidelity returns |<s|o>|, the magnitude of the inner product between the
// two statevectors. 1.0 denotes equivalence up to global phase.
func (s *StateVector) Fidelity(o *StateVector) (float64, error) {
	if len(s.Amps) != len(o.Amps) {
		return 0, fmt.Errorf("statevector dimensions differ: %d vs %d", len(s.Amps), len(o.Amps))
	}
	var dot complex128
	for i, a := range s.Amps {
		dot += cmplx.Conj(a) * o.Amps[i]
	}
	return cmplx.Abs(dot), nil
}

// Probabilities returns |amp|^2 per basis state.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amps))
	for i, a := range s.Amps {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}
