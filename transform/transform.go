// Package transform models the compiler collaborator: named transformations
// of circuits, optimization levels, and the pinned transpile options that
// keep internally randomized compiler heuristics reproducible.
//
// Compiler passes themselves are external. This package defines the
// Transformation variants the equivalence checkers dispatch on and the
// Compiler interface optimizing compilers implement.
package transform

import (
	"fmt"

	"github.com/qdiff-xyz/go-qdiff/circuit"
	"github.com/qdiff-xyz/go-qdiff/coupling"
)

// Level is a preset optimization level, O0 through O3.
type Level int

const (
	Level0 Level = iota
	Level1
	Level2
	Level3
)

// NumLevels is the number of preset optimization levels.
const NumLevels = 4

// Label returns the level label used in reports ("o0".."o3").
func (l Level) Label() string {
	return fmt.Sprintf("o%d", int(l))
}

// Valid reports whether the level is one of the four presets.
func (l Level) Valid() bool {
	return l >= Level0 && l < NumLevels
}

// Options configures a transpile call.
type Options struct {
	Level             Level
	LayoutMethod      string
	RoutingMethod     string
	TranslationMethod string
	SeedTranspiler    int64
	Coupling          *coupling.Graph // nil means unrestricted connectivity
}

// PinnedOptions returns the fixed sub-configuration used for statevector
// comparisons across levels: trivial layout and a pinned transpiler seed so
// preset pass managers produce identical qubit assignments at every level.
func PinnedOptions(level Level, g *coupling.Graph) Options {
	return Options{
		Level:             level,
		LayoutMethod:      "trivial",
		RoutingMethod:     "stochastic",
		TranslationMethod: "translator",
		SeedTranspiler:    1235,
		Coupling:          g,
	}
}

// Compiler transforms circuits at a preset optimization level, optionally
// constrained to a coupling map. Implementations are external; Passthrough
// below is the identity reference.
type Compiler interface {
	Transpile(c *circuit.Circuit, opts Options) (*circuit.Circuit, error)
}

// Passthrough is a Compiler that returns the circuit unchanged at every
// level.
type Passthrough struct{}

// Transpile returns a copy of the input circuit.
func (Passthrough) Transpile(c *circuit.Circuit, _ Options) (*circuit.Circuit, error) {
	return c.Clone(), nil
}

// PassFunc is a single named rewrite of a circuit.
type PassFunc func(*circuit.Circuit) (*circuit.Circuit, error)

// Kind tags the transformation variants.
type Kind int

const (
	// KindPass applies a single named pass exactly once.
	KindPass Kind = iota
	// KindLevel applies a full preset optimization level with pinned
	// options.
	KindLevel
)

func (k Kind) String() string {
	switch k {
	case KindPass:
		return "pass"
	case KindLevel:
		return "level"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Transformation is a tagged variant: either a single pass or a preset
// optimization level. Construct with Pass or AtLevel; NewRegistry validates
// variants when the registry is built.
type Transformation struct {
	name  string
	kind  Kind
	pass  PassFunc
	level Level
}

// Pass creates a single-pass transformation.
func Pass(name string, fn PassFunc) Transformation {
	return Transformation{name: name, kind: KindPass, pass: fn}
}

// AtLevel creates a preset-level transformation.
func AtLevel(name string, level Level) Transformation {
	return Transformation{name: name, kind: KindLevel, level: level}
}

// Identity returns the no-op transformation. Any correct compiler pass is
// expected to be observationally equivalent to it.
func Identity() Transformation {
	return Pass("Identity", func(c *circuit.Circuit) (*circuit.Circuit, error) {
		return c.Clone(), nil
	})
}

// Name returns the registry name of the transformation.
func (t Transformation) Name() string { return t.name }

// Kind returns the variant tag.
func (t Transformation) Kind() Kind { return t.kind }

// Apply runs the transformation on a circuit, using the compiler for
// level-kind transformations.
func (t Transformation) Apply(c *circuit.Circuit, comp Compiler) (*circuit.Circuit, error) {
	switch t.kind {
	case KindPass:
		out, err := t.pass(c)
		if err != nil {
			return nil, fmt.Errorf("pass %s: %w", t.name, err)
		}
		return out, nil
	case KindLevel:
		out, err := comp.Transpile(c, PinnedOptions(t.level, nil))
		if err != nil {
			return nil, fmt.Errorf("transpile %s at %s: %w", t.name, t.level.Label(), err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("transformation %s has invalid kind %v", t.name, t.kind)
	}
}
