package fixture

import (
	"errors"
	"fmt"
	"reflect"

	"fixturegen/container"
	"fixturegen/node"
)

// Check walks every type reachable from t through array elements,
// constructor parameters, fields and container type arguments, and reports
// each one that cannot be generated. Problems that depend on runtime values,
// such as a constructor returning an error, are not detected.
func (g *Generator) Check(t reflect.Type) error {
	if t == nil {
		return fmt.Errorf("%w: nil type", ErrNotGeneratable)
	}

	var (
		dealer node.Dealer
		errs   []error
	)

	dealer.Needs(t)
	for next, ok := dealer.NextNeeds(); ok; next, ok = dealer.NextNeeds() {
		desc := g.describer.Describe(next)

		switch desc.Kind {
		case node.DispatcherUnsupported:
			errs = append(errs, fmt.Errorf("%w: %s", ErrNotGeneratable, node.TypeName(next)))

		case node.DispatcherEnumerated:
			if len(desc.EnumValues) == 0 {
				errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyEnum, node.TypeName(desc.Base)))
			}

		case node.DispatcherArray:
			dealer.Needs(desc.Base.Elem())

		case node.DispatcherComposite:
			if len(desc.Constructors) == 0 {
				errs = append(errs, fmt.Errorf("%w: %s declares no constructors",
					ErrNoSuitableConstructor, node.TypeName(desc.Base)))
			}

			for _, ctor := range desc.Constructors {
				dealer.Needs(ctor.Params...)
			}

			for _, field := range desc.Fields {
				switch {
				case field.Container == container.KindNone:
					dealer.Needs(field.Type)
				case field.Resolvable:
					dealer.Needs(field.TypeArgs...)
				}
			}
		}
	}

	return errors.Join(errs...)
}
