package node

import (
	"reflect"
	"strconv"
)

// TypeName renders t with fully qualified named types.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		return "[]" + TypeName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + TypeName(t.Elem())
	case reflect.Map:
		return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
	default:
		if t.PkgPath() == "" {
			return t.String()
		}
		return t.PkgPath() + "." + t.Name()
	}
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeFor[error]()

	return t.Implements(terr)
}
