// Package provider merges leaf generators supplied by independent sources
// into a single read-only lookup table keyed by reflect.Type.
package provider

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

var (
	ErrDuplicateGenerator = errors.New("duplicate generator")
	ErrNilGenerator       = errors.New("nil generator")
)

// Func produces a ready value for a terminal type. It never recurses.
type Func func() any

// Source supplies leaf generators for a set of types.
type Source interface {
	Generators() map[reflect.Type]Func
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func() map[reflect.Type]Func

func (f SourceFunc) Generators() map[reflect.Type]Func { return f() }

// Map is a Source backed by a literal map.
type Map map[reflect.Type]Func

func (m Map) Generators() map[reflect.Type]Func { return m }

// Of returns a single-entry Map registering fn for T.
func Of[T any](fn func() T) Map {
	return Map{
		reflect.TypeFor[T](): func() any { return fn() },
	}
}

// Registry is an immutable type -> generator table.
type Registry struct {
	generators map[reflect.Type]Func
}

// Build merges the generators of all sources in order. Registering the same
// type from two sources, or registering a nil Func, is a configuration error
// reported here rather than at generation time.
func Build(sources ...Source) (*Registry, error) {
	merged := make(map[reflect.Type]Func)

	for _, source := range sources {
		if source == nil {
			continue
		}

		for t, fn := range source.Generators() {
			if fn == nil {
				return nil, fmt.Errorf("%w: source supplies nil generator for type %s",
					ErrNilGenerator, typeName(t))
			}

			if _, exists := merged[t]; exists {
				return nil, fmt.Errorf("%w: multiple sources supply generator for type %s",
					ErrDuplicateGenerator, typeName(t))
			}

			merged[t] = fn
		}
	}

	return &Registry{generators: merged}, nil
}

// Lookup returns the generator registered for t.
func (r *Registry) Lookup(t reflect.Type) (Func, bool) {
	if r == nil {
		return nil, false
	}

	fn, ok := r.generators[t]

	return fn, ok
}

// Has reports whether a generator is registered for t.
func (r *Registry) Has(t reflect.Type) bool {
	_, ok := r.Lookup(t)
	return ok
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.generators)
}

// Types returns the registered types sorted by their qualified name.
func (r *Registry) Types() []reflect.Type {
	if r == nil {
		return nil
	}

	out := make([]reflect.Type, 0, len(r.generators))
	for t := range r.generators {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		return typeName(out[i]) < typeName(out[j])
	})

	return out
}

func typeName(t reflect.Type) string {
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}
