package fixture

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/sirupsen/logrus"

	"fixturegen/node"
	"fixturegen/primitive"
	"fixturegen/provider"
	"fixturegen/random"
)

// Generator produces random values of arbitrary types. It is immutable after
// construction and safe for concurrent use.
type Generator struct {
	registry  *provider.Registry
	describer *node.Describer
	rng       random.Source
	logger    logrus.FieldLogger

	maxDepth       int
	minLen, maxLen int

	enums        map[reflect.Type][]reflect.Value
	composites   map[reflect.Type]struct{}
	constructors map[reflect.Type][]node.Constructor
	errs         []error
}

// New builds a Generator from leaf sources. maxDepth bounds recursion and
// must be positive. Two sources registering the same type are rejected.
func New(sources []provider.Source, maxDepth int, opts ...Option) (*Generator, error) {
	g, err := configure(maxDepth, opts)
	if err != nil {
		return nil, err
	}

	if err := g.build(sources); err != nil {
		return nil, err
	}

	return g, nil
}

// NewDefault builds a Generator over the primitive leaf sources drawing from
// the generator's own randomness, so WithSeed covers leaf values too.
func NewDefault(maxDepth int, opts ...Option) (*Generator, error) {
	g, err := configure(maxDepth, opts)
	if err != nil {
		return nil, err
	}

	if err := g.build(primitive.DefaultSources(g.rng)); err != nil {
		return nil, err
	}

	return g, nil
}

func configure(maxDepth int, opts []Option) (*Generator, error) {
	if maxDepth <= 0 {
		return nil, fmt.Errorf("%w: maxDepth expected to be more than 0, but got %d", ErrInvalidConfiguration, maxDepth)
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	g := &Generator{
		logger:       discard,
		maxDepth:     maxDepth,
		minLen:       DefaultMinLength,
		maxLen:       DefaultMaxLength,
		enums:        make(map[reflect.Type][]reflect.Value),
		composites:   make(map[reflect.Type]struct{}),
		constructors: make(map[reflect.Type][]node.Constructor),
	}

	for _, opt := range opts {
		opt(g)
	}

	if err := errors.Join(g.errs...); err != nil {
		return nil, err
	}

	if g.rng == nil {
		g.rng = random.NewFromTime()
	}

	return g, nil
}

func (g *Generator) build(sources []provider.Source) error {
	registry, err := provider.Build(sources...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	g.registry = registry
	g.describer = node.NewDescriber(node.Config{
		Leaves:       registry,
		Enums:        g.enums,
		Composites:   g.composites,
		Constructors: g.constructors,
	})

	return nil
}

// MaxDepth returns the configured recursion bound.
func (g *Generator) MaxDepth() int {
	return g.maxDepth
}

// Generate returns a random value of type t.
func (g *Generator) Generate(t reflect.Type) (any, error) {
	v, err := g.GenerateValue(t)
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

// GenerateValue is Generate returning the reflect.Value. The value is always
// of type t.
func (g *Generator) GenerateValue(t reflect.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, fmt.Errorf("%w: nil type", ErrNotGeneratable)
	}

	return generation{g: g}.generate(t)
}

// CanGenerate reports whether t has a generation strategy. It does not look
// into the types t is built from; see Check.
func (g *Generator) CanGenerate(t reflect.Type) bool {
	return t != nil && g.describer.Dispatch(t) != node.DispatcherUnsupported
}

// Describe exposes the cached descriptor of t.
func (g *Generator) Describe(t reflect.Type) *node.Descriptor {
	return g.describer.Describe(t)
}

// Generate returns a random value of type T.
func Generate[T any](g *Generator) (T, error) {
	var out T

	v, err := g.GenerateValue(reflect.TypeFor[T]())
	if err != nil {
		return out, err
	}

	reflect.ValueOf(&out).Elem().Set(v)

	return out, nil
}

// MustGenerate is Generate panicking on error. Intended for tests.
func MustGenerate[T any](g *Generator) T {
	out, err := Generate[T](g)
	if err != nil {
		panic(err)
	}

	return out
}
