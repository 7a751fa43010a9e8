package container

import "reflect"

// Set is a hash-based set. Iteration order is unspecified.
type Set[T comparable] struct {
	items map[T]struct{}
}

func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}

	return s
}

func (*Set[T]) Kind() Kind             { return KindSet }
func (*Set[T]) ElemType() reflect.Type { return reflect.TypeFor[T]() }
func (*Set[T]) New() Collection        { return NewSet[T]() }

func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// Add inserts v and reports whether it was not present yet.
func (s *Set[T]) Add(v T) bool {
	if s.items == nil {
		s.items = make(map[T]struct{})
	}

	if _, ok := s.items[v]; ok {
		return false
	}

	s.items[v] = struct{}{}

	return true
}

func (s *Set[T]) AddValue(v reflect.Value) {
	s.Add(valueAs[T](v))
}

func (s *Set[T]) Contains(v T) bool {
	if s == nil {
		return false
	}

	_, ok := s.items[v]

	return ok
}

func (s *Set[T]) Values() []T {
	if s == nil {
		return nil
	}

	out := make([]T, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}

	return out
}
