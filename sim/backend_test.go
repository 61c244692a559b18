package sim

import (
	"errors"
	"testing"

	"github.com/qdiff-xyz/go-qdiff/circuit"
	"github.com/qdiff-xyz/go-qdiff/coupling"
)

func TestBackendHadamardCounts(t *testing.T) {
	b, err := NewBackend(1, nil, 1234)
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}

	raw, err := b.Run(circuit.New(1).H(0).MeasureAll(), 1024)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	total := 0
	for k, v := range raw {
		if k != "0" && k != "1" {
			t.Errorf("Unexpected outcome key %q", k)
		}
		total += v
	}
	if total != 1024 {
		t.Errorf("Counts sum to %d, expected 1024", total)
	}
	// 5 sigma around the binomial mean of 512.
	if raw["0"] < 432 || raw["0"] > 592 {
		t.Errorf("Count of outcome 0 far from 512: %d", raw["0"])
	}
}

func TestBackendDeterministicWithSeed(t *testing.T) {
	c := circuit.New(2).H(0).CX(0, 1).MeasureAll()

	run := func() map[string]int {
		b, err := NewBackend(2, nil, 99)
		if err != nil {
			t.Fatalf("NewBackend failed: %v", err)
		}
		raw, err := b.Run(c, 512)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return raw
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("Seeded runs differ in key count: %d vs %d", len(a), len(b))
	}
	for k, v := range a {
		if b[k] != v {
			t.Errorf("Seeded runs differ at %q: %d vs %d", k, v, b[k])
		}
	}
}

func TestBackendBellStateKeys(t *testing.T) {
	b, err := NewBackend(2, nil, 7)
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	raw, err := b.Run(circuit.New(2).H(0).CX(0, 1).MeasureAll(), 1024)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for k := range raw {
		if k != "00" && k != "11" {
			t.Errorf("Bell state produced outcome %q", k)
		}
	}
}

func TestBackendClbitOrder(t *testing.T) {
	// X on qubit 0 only; clbit 0 is the rightmost character.
	b, err := NewBackend(2, nil, 1)
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	raw, err := b.Run(circuit.New(2).X(0).MeasureAll(), 16)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if raw["01"] != 16 {
		t.Errorf("Expected all 16 shots on \"01\", got %v", raw)
	}
}

func TestBackendRejectsUncoupledGate(t *testing.T) {
	g := &coupling.Graph{NumQubits: 3, Edges: []coupling.Edge{{0, 1}, {1, 2}}}
	b, err := NewBackend(3, g, 1)
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}

	_, err = b.Run(circuit.New(3).H(0).CX(0, 2).MeasureAll(), 128)
	var ce *CouplingError
	if !errors.As(err, &ce) {
		t.Fatalf("Expected CouplingError, got %v", err)
	}
	if ce.A != 0 || ce.B != 2 {
		t.Errorf("CouplingError names wrong pair: %+v", ce)
	}

	// The coupled pair works in either direction.
	if _, err := b.Run(circuit.New(3).H(2).CX(2, 1).MeasureAll(), 128); err != nil {
		t.Errorf("Coupled gate rejected: %v", err)
	}
}

func TestBackendRequiresMeasurement(t *testing.T) {
	b, err := NewBackend(1, nil, 1)
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	if _, err := b.Run(circuit.New(1).H(0), 16); err == nil {
		t.Error("Expected error for circuit without measurements")
	}
}

func TestBackendSizeChecks(t *testing.T) {
	if _, err := NewBackend(0, nil, 1); err == nil {
		t.Error("Expected error for zero-qubit backend")
	}

	g := &coupling.Graph{NumQubits: 2, Edges: []coupling.Edge{{0, 1}}}
	if _, err := NewBackend(3, g, 1); err == nil {
		t.Error("Expected error for coupling map smaller than backend")
	}

	b, err := NewBackend(1, nil, 1)
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	if _, err := b.Run(circuit.New(2).H(0).MeasureAll(), 16); err == nil {
		t.Error("Expected error for circuit larger than backend")
	}
}
