package container

import (
	"container/list"
	"reflect"
)

// Collection is the type-erased view of a generic collection. Kind, ElemType
// and New must not touch the receiver so they can be called on a typed nil.
type Collection interface {
	Kind() Kind
	ElemType() reflect.Type
	New() Collection
	Len() int
	AddValue(v reflect.Value)
}

// Map is the type-erased view of a generic map. Kind, KeyType, ValueType and
// New must not touch the receiver so they can be called on a typed nil.
type Map interface {
	Kind() Kind
	KeyType() reflect.Type
	ValueType() reflect.Type
	New() Map
	Len() int
	PutValue(key, value reflect.Value)
}

var (
	collectionType = reflect.TypeFor[Collection]()
	mapType        = reflect.TypeFor[Map]()

	// RawQueueType carries no element type and is always produced empty.
	RawQueueType = reflect.TypeFor[*list.List]()
)

// KindOf classifies t. Types that implement Collection but report a
// non-collection kind are treated as lists, and likewise maps as hash maps.
func KindOf(t reflect.Type) Kind {
	switch {
	case t == nil:
		return KindNone
	case t == RawQueueType:
		return KindQueue
	case t.Kind() == reflect.Map:
		return KindHashMap
	}

	if c, ok := collectionOf(t); ok {
		if k := c.Kind(); k.IsCollection() {
			return k
		}

		return KindList
	}

	if m, ok := mapOf(t); ok {
		if k := m.Kind(); k.IsMap() {
			return k
		}

		return KindHashMap
	}

	return KindNone
}

func IsCollection(t reflect.Type) bool { return KindOf(t).IsCollection() }

func IsMap(t reflect.Type) bool { return KindOf(t).IsMap() }

// TypeArgs returns the element type of a collection, or the key and value
// types of a map. ok is false when t is not a container or carries no type
// arguments.
func TypeArgs(t reflect.Type) (args []reflect.Type, ok bool) {
	switch {
	case t == nil, t == RawQueueType:
		return nil, false
	case t.Kind() == reflect.Map:
		return []reflect.Type{t.Key(), t.Elem()}, true
	}

	if c, ok := collectionOf(t); ok {
		return []reflect.Type{c.ElemType()}, true
	}

	if m, ok := mapOf(t); ok {
		return []reflect.Type{m.KeyType(), m.ValueType()}, true
	}

	return nil, false
}

// EmptyCollection returns a new empty instance of the collection type t.
func EmptyCollection(t reflect.Type) (reflect.Value, bool) {
	if t == RawQueueType {
		return reflect.ValueOf(list.New()), true
	}

	c, ok := collectionOf(t)
	if !ok {
		return reflect.Value{}, false
	}

	return assignable(reflect.ValueOf(c.New()), t)
}

// EmptyMap returns a new empty instance of the map type t.
func EmptyMap(t reflect.Type) (reflect.Value, bool) {
	if t != nil && t.Kind() == reflect.Map {
		return reflect.MakeMap(t), true
	}

	m, ok := mapOf(t)
	if !ok {
		return reflect.Value{}, false
	}

	return assignable(reflect.ValueOf(m.New()), t)
}

// Add appends elem to the collection held in c.
func Add(c, elem reflect.Value) {
	if c.Type() == RawQueueType {
		c.Interface().(*list.List).PushBack(elem.Interface())
		return
	}

	c.Interface().(Collection).AddValue(elem)
}

// Put stores value under key in the map held in m.
func Put(m, key, value reflect.Value) {
	if m.Kind() == reflect.Map {
		m.SetMapIndex(key, value)
		return
	}

	m.Interface().(Map).PutValue(key, value)
}

// Len reports the number of elements held by any container value.
func Len(v reflect.Value) int {
	switch {
	case !v.IsValid():
		return 0
	case v.Kind() == reflect.Map:
		return v.Len()
	case v.Type() == RawQueueType:
		if v.IsNil() {
			return 0
		}

		return v.Interface().(*list.List).Len()
	}

	switch c := v.Interface().(type) {
	case Collection:
		return c.Len()
	case Map:
		return c.Len()
	default:
		return 0
	}
}

func collectionOf(t reflect.Type) (Collection, bool) {
	if t.Kind() != reflect.Pointer || !t.Implements(collectionType) {
		return nil, false
	}

	return reflect.Zero(t).Interface().(Collection), true
}

func mapOf(t reflect.Type) (Map, bool) {
	if t.Kind() != reflect.Pointer || !t.Implements(mapType) {
		return nil, false
	}

	return reflect.Zero(t).Interface().(Map), true
}

func assignable(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	if !v.IsValid() || !v.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}

	return v, true
}

// valueAs unwraps v into T. An invalid value yields the zero T.
func valueAs[T any](v reflect.Value) T {
	var out T
	if v.IsValid() {
		reflect.ValueOf(&out).Elem().Set(v)
	}

	return out
}
