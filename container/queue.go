package container

import (
	"reflect"

	list "github.com/bahlo/generic-list-go"
)

// Queue is an insertion-ordered FIFO backed by a doubly linked list.
type Queue[T any] struct {
	items *list.List[T]
}

func NewQueue[T any](items ...T) *Queue[T] {
	q := &Queue[T]{items: list.New[T]()}
	for _, item := range items {
		q.Push(item)
	}

	return q
}

func (*Queue[T]) Kind() Kind             { return KindQueue }
func (*Queue[T]) ElemType() reflect.Type { return reflect.TypeFor[T]() }
func (*Queue[T]) New() Collection        { return NewQueue[T]() }

func (q *Queue[T]) Len() int {
	if q == nil || q.items == nil {
		return 0
	}

	return q.items.Len()
}

func (q *Queue[T]) Push(v T) {
	if q.items == nil {
		q.items = list.New[T]()
	}

	q.items.PushBack(v)
}

func (q *Queue[T]) AddValue(v reflect.Value) {
	q.Push(valueAs[T](v))
}

// Pop removes and returns the oldest element.
func (q *Queue[T]) Pop() (T, bool) {
	if q.Len() == 0 {
		var zero T
		return zero, false
	}

	front := q.items.Front()
	q.items.Remove(front)

	return front.Value, true
}

// Values returns the elements from oldest to newest without consuming them.
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.Len())
	if q.Len() == 0 {
		return out
	}

	for e := q.items.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value)
	}

	return out
}
