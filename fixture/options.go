package fixture

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"

	"fixturegen/node"
	"fixturegen/random"
	"fixturegen/utils"
)

const (
	DefaultMinLength = 1
	DefaultMaxLength = 9
)

type Option func(g *Generator)

// WithRandom sets the randomness used for lengths, enum choices and sizes.
func WithRandom(src random.Source) Option {
	return func(g *Generator) {
		if src == nil {
			g.errs = append(g.errs, fmt.Errorf("%w: nil random source", ErrInvalidConfiguration))
			return
		}

		g.rng = src
	}
}

// WithSeed makes generation reproducible for single-goroutine use.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = random.New(seed)
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithLengthRange sets the inclusive range of slice lengths and of the number
// of elements put into container fields.
func WithLengthRange(minLen, maxLen int) Option {
	return func(g *Generator) {
		if !utils.IsInRange(0, minLen, maxLen) {
			g.errs = append(g.errs, fmt.Errorf("%w: length range [%d, %d] expected to satisfy 0 <= min <= max",
				ErrInvalidConfiguration, minLen, maxLen))
			return
		}

		g.minLen, g.maxLen = minLen, maxLen
	}
}

// WithConstructors registers constructor functions. Constructors of the same
// type are tried in registration order. Registering a constructor makes its
// type eligible for composite generation.
func WithConstructors(fns ...any) Option {
	return func(g *Generator) {
		for _, fn := range fns {
			ctor, err := node.ParseConstructor(fn)
			if err != nil {
				g.errs = append(g.errs, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err))
				continue
			}

			g.constructors[ctor.Target] = append(g.constructors[ctor.Target], ctor)
		}
	}
}

// WithComposite marks types as eligible for composite generation without
// requiring them to implement node.Generatable. Pointer types mark their base.
func WithComposite(types ...reflect.Type) Option {
	return func(g *Generator) {
		for _, t := range types {
			if t == nil {
				g.errs = append(g.errs, fmt.Errorf("%w: nil composite type", ErrInvalidConfiguration))
				continue
			}

			for t.Kind() == reflect.Pointer {
				t = t.Elem()
			}

			g.composites[t] = struct{}{}
		}
	}
}

// WithEnum declares the values of enum type T, overriding any EnumValues
// method. Declaring no values makes generating T fail with ErrEmptyEnum.
func WithEnum[T any](values ...T) Option {
	return func(g *Generator) {
		list := make([]reflect.Value, len(values))
		for i := range values {
			list[i] = reflect.ValueOf(&values[i]).Elem()
		}

		g.enums[reflect.TypeFor[T]()] = list
	}
}
