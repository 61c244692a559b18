package circuit

// New creates an empty circuit over the given number of qubits.
// Gates are appended with the fluent methods below:
//
//	c := circuit.New(2).H(0).CX(0, 1).MeasureAll()
func New(numQubits int) *Circuit {
	return &Circuit{NumQubits: numQubits}
}

// WithName sets the circuit identifier used in reports and plot filenames.
func (c *Circuit) WithName(name string) *Circuit {
	c.Name = name
	return c
}

func (c *Circuit) add(name string, qubits []int, params []float64) *Circuit {
	c.Gates = append(c.Gates, Gate{Name: name, Qubits: qubits, Params: params})
	return c
}

// H appends a Hadamard gate on qubit q.
func (c *Circuit) H(q int) *Circuit { return c.add("h", []int{q}, nil) }

// X appends a Pauli-X gate on qubit q.
func (c *Circuit) X(q int) *Circuit { return c.add("x", []int{q}, nil) }

// Y appends a Pauli-Y gate on qubit q.
func (c *Circuit) Y(q int) *Circuit { return c.add("y", []int{q}, nil) }

// Z appends a Pauli-Z gate on qubit q.
func (c *Circuit) Z(q int) *Circuit { return c.add("z", []int{q}, nil) }

// S appends a phase gate on qubit q.
func (c *Circuit) S(q int) *Circuit { return c.add("s", []int{q}, nil) }

// Sdg appends an inverse phase gate on qubit q.
func (c *Circuit) Sdg(q int) *Circuit { return c.add("sdg", []int{q}, nil) }

// T appends a T gate on qubit q.
func (c *Circuit) T(q int) *Circuit { return c.add("t", []int{q}, nil) }

// Tdg appends an inverse T gate on qubit q.
func (c *Circuit) Tdg(q int) *Circuit { return c.add("tdg", []int{q}, nil) }

// RX appends an X-axis rotation by theta on qubit q.
func (c *Circuit) RX(q int, theta float64) *Circuit { return c.add("rx", []int{q}, []float64{theta}) }

// RY appends a Y-axis rotation by theta on qubit q.
func (c *Circuit) RY(q int, theta float64) *Circuit { return c.add("ry", []int{q}, []float64{theta}) }

// RZ appends a Z-axis rotation by theta on qubit q.
func (c *Circuit) RZ(q int, theta float64) *Circuit { return c.add("rz", []int{q}, []float64{theta}) }

// P appends a phase rotation by theta on qubit q.
func (c *Circuit) P(q int, theta float64) *Circuit { return c.add("p", []int{q}, []float64{theta}) }

// CX appends a controlled-X gate with the given control and target.
func (c *Circuit) CX(control, target int) *Circuit {
	return c.add("cx", []int{control, target}, nil)
}

// CZ appends a controlled-Z gate on the given qubit pair.
func (c *Circuit) CZ(a, b int) *Circuit { return c.add("cz", []int{a, b}, nil) }

// Swap appends a swap gate on the given qubit pair.
func (c *Circuit) Swap(a, b int) *Circuit { return c.add("swap", []int{a, b}, nil) }

// Measure appends a measurement of qubit q into classical bit cl, growing
// the classical register as needed.
func (c *Circuit) Measure(q, cl int) *Circuit {
	if cl >= c.NumClbits {
		c.NumClbits = cl + 1
	}
	c.Gates = append(c.Gates, Gate{Name: "measure", Qubits: []int{q}, Clbit: cl})
	return c
}

// MeasureAll measures every qubit into the classical bit of the same index.
func (c *Circuit) MeasureAll() *Circuit {
	for q := 0; q < c.NumQubits; q++ {
		c.Measure(q, q)
	}
	return c
}
