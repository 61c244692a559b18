// Package coupling models restricted qubit connectivity: the set of qubit
// pairs a target permits direct two-qubit interaction on. Limited coupling
// forces the compiler to insert swap networks, which is what the routing
// equivalence tests stress.
package coupling

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Edge is an undirected qubit pair, serialized as [a, b].
type Edge [2]int

// Graph is an ordered edge list over qubits 0..NumQubits-1. Duplicate edges
// are permitted; self-loops are not.
type Graph struct {
	NumQubits int    `json:"num_qubits"`
	Edges     []Edge `json:"edges"`
}

// Allows reports whether the pair (a, b) is connected, in either direction.
func (g *Graph) Allows(a, b int) bool {
	for _, e := range g.Edges {
		if (e[0] == a && e[1] == b) || (e[0] == b && e[1] == a) {
			return true
		}
	}
	return false
}

// Validate checks the graph invariants: indices in range, no self-loops,
// and every qubit reachable from every other (single connected component).
func (g *Graph) Validate() error {
	if g.NumQubits < 1 {
		return fmt.Errorf("graph must cover at least one qubit, got %d", g.NumQubits)
	}

	ug := simple.NewUndirectedGraph()
	for q := 0; q < g.NumQubits; q++ {
		ug.AddNode(simple.Node(q))
	}
	for _, e := range g.Edges {
		if e[0] == e[1] {
			return fmt.Errorf("self-loop on qubit %d", e[0])
		}
		for _, q := range e {
			if q < 0 || q >= g.NumQubits {
				return fmt.Errorf("edge %v references qubit outside [0,%d)", e, g.NumQubits)
			}
		}
		ug.SetEdge(simple.Edge{F: simple.Node(e[0]), T: simple.Node(e[1])})
	}

	if comps := topo.ConnectedComponents(ug); len(comps) != 1 {
		return fmt.Errorf("graph is not connected: %d components", len(comps))
	}
	return nil
}
