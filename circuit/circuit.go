// Package circuit implements the gate-level quantum circuit model exchanged
// between the program generator, compiler collaborators, and simulators.
// A circuit is an ordered list of gates over a fixed qubit register, with
// measurements writing into a classical bit register.
package circuit

import "fmt"

// Gate represents a single operation placed on the circuit.
// Clbit is only meaningful for "measure" gates and names the classical bit
// the measured value is written to.
type Gate struct {
	Name   string    `json:"name"`
	Qubits []int     `json:"qubits"`
	Params []float64 `json:"params,omitempty"`
	Clbit  int       `json:"clbit,omitempty"`
}

// Circuit holds a quantum circuit: a qubit register, a classical register,
// and the ordered gate sequence.
type Circuit struct {
	Name      string `json:"name,omitempty"`
	NumQubits int    `json:"num_qubits"`
	NumClbits int    `json:"num_clbits,omitempty"`
	Gates     []Gate `json:"gates"`
}

// gateArity maps supported gate names to the number of qubit operands.
var gateArity = map[string]int{
	"h": 1, "x": 1, "y": 1, "z": 1,
	"s": 1, "sdg": 1, "t": 1, "tdg": 1,
	"rx": 1, "ry": 1, "rz": 1, "p": 1,
	"cx": 2, "cz": 2, "swap": 2,
	"measure": 1,
}

// gateParamCount maps parameterized gate names to their parameter count.
var gateParamCount = map[string]int{
	"rx": 1, "ry": 1, "rz": 1, "p": 1,
}

// IsMeasure reports whether the gate is a measurement.
func (g Gate) IsMeasure() bool {
	return g.Name == "measure"
}

// References reports whether the gate acts on the given qubit.
func (g Gate) References(qubit int) bool {
	for _, q := range g.Qubits {
		if q == qubit {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the circuit.
func (c *Circuit) Clone() *Circuit {
	out := &Circuit{
		Name:      c.Name,
		NumQubits: c.NumQubits,
		NumClbits: c.NumClbits,
		Gates:     make([]Gate, len(c.Gates)),
	}
	for i, g := range c.Gates {
		ng := g
		ng.Qubits = append([]int(nil), g.Qubits...)
		if g.Params != nil {
			ng.Params = append([]float64(nil), g.Params...)
		}
		out.Gates[i] = ng
	}
	return out
}

// Validate checks the circuit structure: known gate names, operand arity,
// parameter counts, and register bounds.
func (c *Circuit) Validate() error {
	if c.NumQubits < 1 {
		return fmt.Errorf("circuit must have at least one qubit, got %d", c.NumQubits)
	}
	for i, g := range c.Gates {
		arity, ok := gateArity[g.Name]
		if !ok {
			return fmt.Errorf("gate %d: unknown gate %q", i, g.Name)
		}
		if len(g.Qubits) != arity {
			return fmt.Errorf("gate %d: %s expects %d qubit(s), got %d", i, g.Name, arity, len(g.Qubits))
		}
		for _, q := range g.Qubits {
			if q < 0 || q >= c.NumQubits {
				return fmt.Errorf("gate %d: qubit %d out of range [0,%d)", i, q, c.NumQubits)
			}
		}
		if arity == 2 && g.Qubits[0] == g.Qubits[1] {
			return fmt.Errorf("gate %d: %s operands must be distinct, got qubit %d twice", i, g.Name, g.Qubits[0])
		}
		if want := gateParamCount[g.Name]; len(g.Params) != want {
			return fmt.Errorf("gate %d: %s expects %d parameter(s), got %d", i, g.Name, want, len(g.Params))
		}
		if g.IsMeasure() {
			if g.Clbit < 0 || g.Clbit >= c.NumClbits {
				return fmt.Errorf("gate %d: clbit %d out of range [0,%d)", i, g.Clbit, c.NumClbits)
			}
		}
	}
	return nil
}

// HasMidCircuitMeasurement reports whether any qubit is used again after
// being measured. Such circuits are rejected by statevector simulation.
func (c *Circuit) HasMidCircuitMeasurement() bool {
	measured := make(map[int]bool)
	for _, g := range c.Gates {
		for _, q := range g.Qubits {
			if measured[q] {
				return true
			}
		}
		if g.IsMeasure() {
			measured[g.Qubits[0]] = true
		}
	}
	return false
}

// Measurements returns the (qubit, clbit) pairs of all measure gates in
// circuit order.
func (c *Circuit) Measurements() [][2]int {
	var out [][2]int
	for _, g := range c.Gates {
		if g.IsMeasure() {
			out = append(out, [2]int{g.Qubits[0], g.Clbit})
		}
	}
	return out
}
