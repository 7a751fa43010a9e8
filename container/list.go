package container

import "reflect"

// List is a growable ordered sequence.
type List[T any] struct {
	items []T
}

func NewList[T any](items ...T) *List[T] {
	return &List[T]{items: append([]T(nil), items...)}
}

func (*List[T]) Kind() Kind             { return KindList }
func (*List[T]) ElemType() reflect.Type { return reflect.TypeFor[T]() }
func (*List[T]) New() Collection        { return NewList[T]() }

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return len(l.items)
}

func (l *List[T]) Add(v T) {
	l.items = append(l.items, v)
}

func (l *List[T]) AddValue(v reflect.Value) {
	l.Add(valueAs[T](v))
}

// At returns the i-th element. It panics when i is out of range.
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Values returns a copy of the elements in insertion order.
func (l *List[T]) Values() []T {
	if l == nil {
		return nil
	}

	return append([]T(nil), l.items...)
}
