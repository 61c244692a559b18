package coupling

import (
	"fmt"
	"math/rand"
)

// selfLoopRetries bounds the rejection loop for extra-edge candidates. For
// two or more placed qubits the expected number of attempts is below two.
const selfLoopRetries = 64

// DegenerateConnectivityError is returned when the sampler cannot draw a
// non-self-loop edge within the retry bound.
type DegenerateConnectivityError struct {
	NumQubits int
}

func (e *DegenerateConnectivityError) Error() string {
	return fmt.Sprintf("could not sample a non-degenerate edge over %d qubits", e.NumQubits)
}

// Sampler generates random connectivity graphs from a seeded source, so
// routing tests are reproducible.
type Sampler struct {
	MaxExtraEdges int // inclusive upper bound on extra edges beyond the spanning tree
	rng           *rand.Rand
}

// NewSampler creates a graph sampler with the given seed.
func NewSampler(seed int64) *Sampler {
	return &Sampler{
		MaxExtraEdges: 10,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Sample generates a random connected graph over numQubits qubits: a random
// spanning tree built by attaching each unplaced qubit to a uniformly random
// placed one, followed by K ~ U[0, MaxExtraEdges] extra edges between placed
// qubits. Extra edges may duplicate tree edges but never form self-loops.
func (s *Sampler) Sample(numQubits int) (*Graph, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("graph must cover at least one qubit, got %d", numQubits)
	}

	free := make([]int, 0, numQubits-1)
	for q := 1; q < numQubits; q++ {
		free = append(free, q)
	}
	placed := []int{0}

	g := &Graph{NumQubits: numQubits}
	for len(free) > 0 {
		i := s.rng.Intn(len(free))
		q0 := free[i]
		free = append(free[:i], free[i+1:]...)
		q1 := placed[s.rng.Intn(len(placed))]
		placed = append(placed, q0)
		g.Edges = append(g.Edges, Edge{q0, q1})
	}

	// Extra edges need at least two distinct endpoints.
	if numQubits < 2 {
		return g, nil
	}

	extra := s.rng.Intn(s.MaxExtraEdges + 1)
	for i := 0; i < extra; i++ {
		q0 := placed[s.rng.Intn(len(placed))]
		q1, err := s.drawOther(placed, q0)
		if err != nil {
			return nil, err
		}
		g.Edges = append(g.Edges, Edge{q0, q1})
	}

	return g, nil
}

// drawOther draws a placed qubit distinct from q0, rejecting self-loops with
// a bounded retry count.
func (s *Sampler) drawOther(placed []int, q0 int) (int, error) {
	for attempt := 0; attempt < selfLoopRetries; attempt++ {
		q1 := placed[s.rng.Intn(len(placed))]
		if q1 != q0 {
			return q1, nil
		}
	}
	return 0, &DegenerateConnectivityError{NumQubits: len(placed)}
}
