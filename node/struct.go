package node

import (
	"reflect"
	"strings"

	"fixturegen/container"
)

// TagName is the struct tag consulted during field population.
// `fixture:"-"` excludes a field.
const TagName = "fixture"

// Field is an exported struct field the generator populates after construction.
type Field struct {
	Name      string
	Index     int
	Type      reflect.Type
	Container container.Kind
	// TypeArgs holds the element type, or the key and value types, of a
	// container field.
	TypeArgs []reflect.Type
	// Resolvable is false for container fields whose type arguments cannot be
	// generated as plain values. Such containers are left empty.
	Resolvable bool
}

// structFields lists the populatable fields of a struct type in declaration order.
func structFields(t reflect.Type) []Field {
	if t.Kind() != reflect.Struct {
		return nil
	}

	var out []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || skipped(sf) {
			continue
		}

		field := Field{
			Name:      sf.Name,
			Index:     i,
			Type:      sf.Type,
			Container: container.KindOf(sf.Type),
		}

		if field.Container != container.KindNone {
			field.TypeArgs, field.Resolvable = container.TypeArgs(sf.Type)
			for _, arg := range field.TypeArgs {
				field.Resolvable = field.Resolvable && resolvable(arg)
			}
		}

		out = append(out, field)
	}

	return out
}

func skipped(f reflect.StructField) bool {
	tag := f.Tag.Get(TagName)
	// trim options
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}

	return tag == "-"
}

// resolvable reports whether a container type argument can be generated as a
// plain value: nested containers and interfaces cannot.
func resolvable(arg reflect.Type) bool {
	return arg.Kind() != reflect.Interface && container.KindOf(arg) == container.KindNone
}
