package transform

import "fmt"

// UnknownTransformationError reports a lookup of a name absent from the
// registry.
type UnknownTransformationError struct {
	Name string
}

func (e *UnknownTransformationError) Error() string {
	return fmt.Sprintf("unknown transformation %q", e.Name)
}

// Registry is an immutable name-to-transformation mapping. It is built once
// at startup and injected into checkers, so there is no hidden global state
// and test runs can carry their own registries.
type Registry struct {
	names  []string
	byName map[string]Transformation
}

// NewRegistry builds a registry, validating every transformation up front:
// names must be non-empty and unique, pass transformations must carry a
// pass function, and level transformations a valid level.
func NewRegistry(ts ...Transformation) (*Registry, error) {
	r := &Registry{byName: make(map[string]Transformation, len(ts))}
	for _, t := range ts {
		if t.name == "" {
			return nil, fmt.Errorf("transformation with empty name")
		}
		if _, dup := r.byName[t.name]; dup {
			return nil, fmt.Errorf("duplicate transformation %q", t.name)
		}
		switch t.kind {
		case KindPass:
			if t.pass == nil {
				return nil, fmt.Errorf("transformation %q has no pass function", t.name)
			}
		case KindLevel:
			if !t.level.Valid() {
				return nil, fmt.Errorf("transformation %q has invalid level %d", t.name, int(t.level))
			}
		default:
			return nil, fmt.Errorf("transformation %q has invalid kind %v", t.name, t.kind)
		}
		r.names = append(r.names, t.name)
		r.byName[t.name] = t
	}
	return r, nil
}

// Lookup returns the named transformation or an UnknownTransformationError.
func (r *Registry) Lookup(name string) (Transformation, error) {
	t, ok := r.byName[name]
	if !ok {
		return Transformation{}, &UnknownTransformationError{Name: name}
	}
	return t, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of registered transformations.
func (r *Registry) Len() int {
	return len(r.names)
}
