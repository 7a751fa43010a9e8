package fixture

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"

	"fixturegen/container"
	"fixturegen/node"
	"fixturegen/random"
)

// generation is the state of one top-level Generate call at one depth.
type generation struct {
	g     *Generator
	depth int
}

func (c generation) deeper() generation {
	return generation{g: c.g, depth: c.depth + 1}
}

func (c generation) log(t reflect.Type) logrus.FieldLogger {
	return c.g.logger.WithFields(logrus.Fields{
		"type":  node.TypeName(t),
		"depth": c.depth,
	})
}

func (c generation) generate(t reflect.Type) (reflect.Value, error) {
	desc := c.g.describer.Describe(t)
	if desc.Kind == node.DispatcherUnsupported {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotGeneratable, node.TypeName(t))
	}

	if c.depth > c.g.maxDepth {
		return reflect.Zero(t), nil
	}

	v, err := c.generateBase(desc)
	if err != nil {
		return reflect.Value{}, err
	}

	for range desc.Indirect {
		ptr := reflect.New(v.Type())
		ptr.Elem().Set(v)
		v = ptr
	}

	return v, nil
}

func (c generation) generateBase(desc *node.Descriptor) (reflect.Value, error) {
	switch desc.Kind {
	case node.DispatcherLeaf:
		return c.leaf(desc.Base)
	case node.DispatcherEnumerated:
		return c.enum(desc)
	case node.DispatcherArray:
		return c.array(desc.Base)
	case node.DispatcherContainer:
		return c.emptyContainer(desc)
	case node.DispatcherComposite:
		return c.construct(desc)
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotGeneratable, node.TypeName(desc.Type))
	}
}

func (c generation) leaf(t reflect.Type) (reflect.Value, error) {
	fn, _ := c.g.registry.Lookup(t)

	out := reflect.New(t).Elem()

	raw := fn()
	if raw == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return out, nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: %s: got nil", ErrLeafMismatch, node.TypeName(t))
		}
	}

	v := reflect.ValueOf(raw)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: %s: got %s", ErrLeafMismatch, node.TypeName(t), node.TypeName(v.Type()))
	}

	out.Set(v)

	return out, nil
}

func (c generation) enum(desc *node.Descriptor) (reflect.Value, error) {
	if len(desc.EnumValues) == 0 {
		return reflect.Value{}, fmt.Errorf("%w: enum '%s' cannot be generated, because it declares no values",
			ErrEmptyEnum, node.TypeName(desc.Base))
	}

	out := reflect.New(desc.Base).Elem()
	out.Set(desc.EnumValues[c.g.rng.IntN(len(desc.EnumValues))])

	return out, nil
}

func (c generation) array(t reflect.Type) (reflect.Value, error) {
	var out reflect.Value

	if t.Kind() == reflect.Array {
		out = reflect.New(t).Elem()
	} else {
		n, err := c.size()
		if err != nil {
			return reflect.Value{}, err
		}

		out = reflect.MakeSlice(t, n, n)
	}

	next := c.deeper()
	for i := range out.Len() {
		elem, err := next.generate(t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		out.Index(i).Set(elem)
	}

	return out, nil
}

// emptyContainer serves containers requested directly. They are never populated.
func (c generation) emptyContainer(desc *node.Descriptor) (reflect.Value, error) {
	var (
		v  reflect.Value
		ok bool
	)

	if desc.Container.IsMap() {
		v, ok = container.EmptyMap(desc.Base)
	} else {
		v, ok = container.EmptyCollection(desc.Base)
	}

	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s: cannot instantiate %s",
			ErrNotGeneratable, node.TypeName(desc.Base), desc.Container)
	}

	return v, nil
}

func (c generation) size() (int, error) {
	n, err := random.Between(c.g.rng, c.g.minLen, c.g.maxLen)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return n, nil
}
