package container

import (
	"cmp"
	"reflect"

	"github.com/google/btree"
)

const btreeDegree = 8

type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// SortedMap keeps its entries ordered by key.
type SortedMap[K cmp.Ordered, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

func NewSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{tree: newTree[K, V]()}
}

func newTree[K cmp.Ordered, V any]() *btree.BTreeG[entry[K, V]] {
	return btree.NewG(btreeDegree, func(a, b entry[K, V]) bool {
		return cmp.Less(a.key, b.key)
	})
}

func (*SortedMap[K, V]) Kind() Kind              { return KindSortedMap }
func (*SortedMap[K, V]) KeyType() reflect.Type   { return reflect.TypeFor[K]() }
func (*SortedMap[K, V]) ValueType() reflect.Type { return reflect.TypeFor[V]() }
func (*SortedMap[K, V]) New() Map                { return NewSortedMap[K, V]() }

func (m *SortedMap[K, V]) Len() int {
	if m == nil || m.tree == nil {
		return 0
	}

	return m.tree.Len()
}

// Put stores value under key, replacing any previous value.
func (m *SortedMap[K, V]) Put(key K, value V) {
	if m.tree == nil {
		m.tree = newTree[K, V]()
	}

	m.tree.ReplaceOrInsert(entry[K, V]{key: key, value: value})
}

func (m *SortedMap[K, V]) PutValue(key, value reflect.Value) {
	m.Put(valueAs[K](key), valueAs[V](value))
}

func (m *SortedMap[K, V]) Get(key K) (V, bool) {
	if m.Len() == 0 {
		var zero V
		return zero, false
	}

	found, ok := m.tree.Get(entry[K, V]{key: key})

	return found.value, ok
}

// Ascend calls fn for every entry in key order until fn returns false.
func (m *SortedMap[K, V]) Ascend(fn func(key K, value V) bool) {
	if m.Len() == 0 {
		return
	}

	m.tree.Ascend(func(e entry[K, V]) bool {
		return fn(e.key, e.value)
	})
}

func (m *SortedMap[K, V]) Keys() []K {
	out := make([]K, 0, m.Len())
	m.Ascend(func(key K, _ V) bool {
		out = append(out, key)
		return true
	})

	return out
}
