package sim

import (
	"fmt"
	"math/rand"

	"github.com/qdiff-xyz/go-qdiff/circuit"
	"github.com/qdiff-xyz/go-qdiff/coupling"
)

// CouplingError reports a two-qubit gate placed on a pair the backend's
// coupling map does not connect. It signals a circuit that was not routed
// for the target, an upstream compiler bug.
type CouplingError struct {
	Gate string
	A, B int
}

func (e *CouplingError) Error() string {
	return fmt.Sprintf("gate %s on qubits (%d,%d) is not permitted by the coupling map", e.Gate, e.A, e.B)
}

// Backend is a probabilistic sampled-execution target. It simulates the
// circuit exactly and draws measurement outcomes from the final-state
// distribution using its own seeded random source, so two backends with the
// same seed produce identical counts.
type Backend struct {
	NumQubits int
	Coupling  *coupling.Graph // nil means all-to-all connectivity
	rng       *rand.Rand
}

// NewBackend creates a sampled backend with the given size, optional
// coupling restriction, and random seed.
func NewBackend(numQubits int, g *coupling.Graph, seed int64) (*Backend, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("backend must have at least one qubit, got %d", numQubits)
	}
	if g != nil {
		if g.NumQubits != numQubits {
			return nil, fmt.Errorf("coupling map covers %d qubits, backend has %d", g.NumQubits, numQubits)
		}
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("invalid coupling map: %w", err)
		}
	}
	return &Backend{
		NumQubits: numQubits,
		Coupling:  g,
		rng:       rand.New(rand.NewSource(seed)),
	}, nil
}

// Run executes the circuit for the given shot count and returns the raw
// outcome histogram, keyed by classical-register bitstrings with clbit 0 as
// the rightmost character.
func (b *Backend) Run(c *circuit.Circuit, shots int) (map[string]int, error) {
	if shots < 1 {
		return nil, fmt.Errorf("shot count must be positive, got %d", shots)
	}
	if c.NumQubits > b.NumQubits {
		return nil, fmt.Errorf("circuit has %d qubits, backend has %d", c.NumQubits, b.NumQubits)
	}
	measures := c.Measurements()
	if len(measures) == 0 {
		return nil, fmt.Errorf("circuit has no measurements")
	}
	if b.Coupling != nil {
		for _, g := range c.Gates {
			if len(g.Qubits) == 2 && !b.Coupling.Allows(g.Qubits[0], g.Qubits[1]) {
				return nil, &CouplingError{Gate: g.Name, A: g.Qubits[0], B: g.Qubits[1]}
			}
		}
	}

	sv, err := Simulate(c)
	if err != nil {
		return nil, err
	}
	probs := sv.Probabilities()

	raw := make(map[string]int)
	key := make([]byte, c.NumClbits)
	for shot := 0; shot < shots; shot++ {
		basis := b.sample(probs)
		for i := range key {
			key[i] = '0'
		}
		for _, m := range measures {
			if basis&(1<<m[0]) != 0 {
				key[c.NumClbits-1-m[1]] = '1'
			}
		}
		raw[string(key)]++
	}
	return raw, nil
}

// sample draws one basis-state index from the probability vector.
func (b *Backend) sample(probs []float64) int {
	r := b.rng.Float64()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if r < acc {
			return i
		}
	}
	// Rounding can leave acc slightly below 1.
	return len(probs) - 1
}
