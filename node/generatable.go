package node

import "reflect"

// Generatable marks a type as eligible for composite generation. The method
// may be declared on T or on *T; it is never called.
type Generatable interface {
	Generatable()
}

var (
	generatableType = reflect.TypeFor[Generatable]()
	emptyStructType = reflect.TypeFor[struct{}]()
)

// IsMarked reports whether t or *t implements Generatable.
func IsMarked(t reflect.Type) bool {
	if t == nil || t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return false
	}

	return t.Implements(generatableType) || reflect.PointerTo(t).Implements(generatableType)
}

// EnumValues returns the values declared by an EnumValues() []T method on t
// or *t. ok is false when t declares no such method.
func EnumValues(t reflect.Type) (values []reflect.Value, ok bool) {
	if t == nil || t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return nil, false
	}

	method := reflect.New(t).MethodByName("EnumValues")
	if !method.IsValid() {
		return nil, false
	}

	mt := method.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0) != reflect.SliceOf(t) {
		return nil, false
	}

	list := method.Call(nil)[0]
	values = make([]reflect.Value, list.Len())
	for i := range values {
		values[i] = list.Index(i)
	}

	return values, true
}
