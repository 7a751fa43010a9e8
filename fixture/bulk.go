package fixture

import (
	"context"
	"fmt"
	"reflect"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fixturegen/node"
)

// GenerateAll generates one value per type concurrently. Results keep the
// order of types. The first failure or a cancelled ctx stops the remaining
// work; a value already being generated is finished first.
func GenerateAll(ctx context.Context, g *Generator, types []reflect.Type) ([]any, error) {
	out := make([]any, len(types))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, t := range types {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v, err := g.Generate(t)
			if err != nil {
				return fmt.Errorf("generate %s: %w", node.TypeName(t), err)
			}

			out[i] = v

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// GenerateInOrder generates one value per type on the calling goroutine, so a
// seeded Generator yields the same values on every run. It stops at the first
// failure or when ctx is cancelled.
func GenerateInOrder(ctx context.Context, g *Generator, types []reflect.Type) ([]any, error) {
	out := make([]any, len(types))

	for i, t := range types {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v, err := g.Generate(t)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", node.TypeName(t), err)
		}

		out[i] = v
	}

	return out, nil
}
