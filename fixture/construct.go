package fixture

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"

	"fixturegen/container"
	"fixturegen/node"
)

// construct tries the constructors of a composite type in order. The first
// one whose arguments, invocation and field population all succeed wins.
// Only the last failure is reported.
func (c generation) construct(desc *node.Descriptor) (reflect.Value, error) {
	if len(desc.Constructors) == 0 {
		return reflect.Value{}, fmt.Errorf("%w: %s declares no constructors",
			ErrNoSuitableConstructor, node.TypeName(desc.Base))
	}

	var lastErr error
	for _, ctor := range desc.Constructors {
		v, err := c.tryConstructor(desc, ctor)
		if err == nil {
			return v, nil
		}

		c.log(desc.Base).WithError(err).WithField("constructor", ctor.String()).Debug("constructor failed")
		lastErr = err
	}

	return reflect.Value{}, fmt.Errorf("%w: %s: %w", ErrNoSuitableConstructor, node.TypeName(desc.Base), lastErr)
}

func (c generation) tryConstructor(desc *node.Descriptor, ctor node.Constructor) (reflect.Value, error) {
	next := c.deeper()

	args := make([]reflect.Value, len(ctor.Params))
	for i, param := range ctor.Params {
		arg, err := next.generate(param)
		if err != nil {
			return reflect.Value{}, err
		}

		args[i] = arg
	}

	v, err := ctor.Call(args)
	if err != nil {
		return reflect.Value{}, err
	}

	if v.Kind() != reflect.Struct {
		return v, nil
	}

	if err := c.populate(v, desc.Fields); err != nil {
		return reflect.Value{}, err
	}

	return v, nil
}

// populate overwrites the exported fields of the struct v.
func (c generation) populate(v reflect.Value, fields []node.Field) error {
	next := c.deeper()

	for _, field := range fields {
		var (
			fv  reflect.Value
			err error
		)

		switch {
		case field.Container.IsMap():
			fv, err = next.fillMap(field)
		case field.Container.IsCollection():
			fv, err = next.fillCollection(field)
		default:
			fv, err = next.generate(field.Type)
		}

		if err != nil {
			c.log(v.Type()).WithError(err).WithField("field", field.Name).Debug("field failed")
			return err
		}

		v.Field(field.Index).Set(fv)
	}

	return nil
}

// fillCollection creates an empty collection of the field's declared kind
// and adds a random number of generated elements.
func (c generation) fillCollection(field node.Field) (reflect.Value, error) {
	coll, ok := container.EmptyCollection(field.Type)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s: cannot instantiate %s",
			ErrNotGeneratable, node.TypeName(field.Type), field.Container)
	}

	if !field.Resolvable {
		c.unresolvable(field)
		return coll, nil
	}

	n, err := c.size()
	if err != nil {
		return reflect.Value{}, err
	}

	for range n {
		elem, err := c.generate(field.TypeArgs[0])
		if err != nil {
			return reflect.Value{}, err
		}

		container.Add(coll, elem)
	}

	return coll, nil
}

// fillMap creates an empty map of the field's declared kind and puts a random
// number of generated pairs. Colliding keys keep the last value.
func (c generation) fillMap(field node.Field) (reflect.Value, error) {
	m, ok := container.EmptyMap(field.Type)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s: cannot instantiate %s",
			ErrNotGeneratable, node.TypeName(field.Type), field.Container)
	}

	if !field.Resolvable {
		c.unresolvable(field)
		return m, nil
	}

	n, err := c.size()
	if err != nil {
		return reflect.Value{}, err
	}

	for range n {
		key, err := c.generate(field.TypeArgs[0])
		if err != nil {
			return reflect.Value{}, err
		}

		value, err := c.generate(field.TypeArgs[1])
		if err != nil {
			return reflect.Value{}, err
		}

		container.Put(m, key, value)
	}

	return m, nil
}

func (c generation) unresolvable(field node.Field) {
	c.log(field.Type).WithFields(logrus.Fields{
		"field": field.Name,
		"kind":  field.Container.String(),
	}).WithError(ErrUnresolvableGenericElement).Debug("leaving container empty")
}
