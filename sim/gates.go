package sim

import (
	"fmt"
	"math"

	"github.com/qdiff-xyz/go-qdiff/circuit"
)

// apply mutates the statevector by one gate. Gate names and operand counts
// are assumed valid (checked by circuit.Validate).
func (s *StateVector) apply(g circuit.Gate) error {
	switch g.Name {
	case "h":
		s.applyH(g.Qubits[0])
	case "x":
		s.applyX(g.Qubits[0])
	case "y":
		s.applyY(g.Qubits[0])
	case "z":
		s.applyPhase(g.Qubits[0], -1)
	case "s":
		s.applyPhase(g.Qubits[0], 1i)
	case "sdg":
		s.applyPhase(g.Qubits[0], -1i)
	case "t":
		s.applyPhase(g.Qubits[0], phase(math.Pi/4))
	case "tdg":
		s.applyPhase(g.Qubits[0], phase(-math.Pi/4))
	case "rx":
		s.applyRX(g.Qubits[0], g.Params[0])
	case "ry":
		s.applyRY(g.Qubits[0], g.Params[0])
	case "rz":
		s.applyRZ(g.Qubits[0], g.Params[0])
	case "p":
		s.applyPhase(g.Qubits[0], phase(g.Params[0]))
	case "cx":
		s.applyCX(g.Qubits[0], g.Qubits[1])
	case "cz":
		s.applyCZ(g.Qubits[0], g.Qubits[1])
	case "swap":
		s.applySwap(g.Qubits[0], g.Qubits[1])
	default:
		return fmt.Errorf("gate %q has no simulation kernel", g.Name)
	}
	return nil
}

func phase(theta float64) complex128 {
	return complex(math.Cos(theta), math.Sin(theta))
}

func (s *StateVector) applyH(q int) {
	f := complex(1.0/math.Sqrt2, 0)
	bit := 1 << q
	for i := range s.Amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.Amps[i], s.Amps[j]
			s.Amps[i] = f * (a0 + a1)
			s.Amps[j] = f * (a0 - a1)
		}
	}
}

func (s *StateVector) applyX(q int) {
	bit := 1 << q
	for i := range s.Amps {
		if i&bit == 0 {
			j := i | bit
			s.Amps[i], s.Amps[j] = s.Amps[j], s.Amps[i]
		}
	}
}

func (s *StateVector) applyY(q int) {
	bit := 1 << q
	for i := range s.Amps {
		if i&bit == 0 {
			j := i | bit
			s.Amps[i], s.Amps[j] = -1i*s.Amps[j], 1i*s.Amps[i]
		}
	}
}

// applyPhase multiplies the |1> amplitude of qubit q by the given factor.
// Covers z, s, sdg, t, tdg and p as diagonal single-qubit gates.
func (s *StateVector) applyPhase(q int, factor complex128) {
	bit := 1 << q
	for i := range s.Amps {
		if i&bit != 0 {
			s.Amps[i] *= factor
		}
	}
}

func (s *StateVector) applyRX(q int, theta float64) {
	c := complex(math.Cos(theta/2), 0)
	js := complex(0, math.Sin(theta/2))
	bit := 1 << q
	for i := range s.Amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.Amps[i], s.Amps[j]
			s.Amps[i] = c*a0 - js*a1
			s.Amps[j] = -js*a0 + c*a1
		}
	}
}

func (s *StateVector) applyRY(q int, theta float64) {
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	bit := 1 << q
	for i := range s.Amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.Amps[i], s.Amps[j]
			s.Amps[i] = c*a0 - sn*a1
			s.Amps[j] = sn*a0 + c*a1
		}
	}
}

func (s *StateVector) applyRZ(q int, theta float64) {
	neg := phase(-theta / 2)
	pos := phase(theta / 2)
	bit := 1 << q
	for i := range s.Amps {
		if i&bit == 0 {
			s.Amps[i] *= neg
		} else {
			s.Amps[i] *= pos
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	cbit := 1 << control
	tbit := 1 << target
	for i := range s.Amps {
		if i&cbit != 0 && i&tbit == 0 {
			j := i | tbit
			s.Amps[i], s.Amps[j] = s.Amps[j], s.Amps[i]
		}
	}
}

func (s *StateVector) applyCZ(a, b int) {
	abit := 1 << a
	bbit := 1 << b
	for i := range s.Amps {
		if i&abit != 0 && i&bbit != 0 {
			s.Amps[i] *= -1
		}
	}
}

func (s *StateVector) applySwap(a, b int) {
	abit := 1 << a
	bbit := 1 << b
	for i := range s.Amps {
		if i&abit != 0 && i&bbit == 0 {
			j := i &^ abit | bbit
			s.Amps[i], s.Amps[j] = s.Amps[j], s.Amps[i]
		}
	}
}
