package container_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fixturegen/container"
)

func TestList(t *testing.T) {
	t.Parallel()

	l := container.NewList(1, 2)
	l.Add(3)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 2, l.At(1))
	assert.Equal(t, []int{1, 2, 3}, l.Values())

	var zero container.List[int]
	zero.Add(5)
	assert.Equal(t, []int{5}, zero.Values())
}

func TestSet(t *testing.T) {
	t.Parallel()

	s := container.NewSet("a", "b", "a")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("c"))
	assert.False(t, s.Add("b"))
	assert.True(t, s.Add("c"))
	assert.ElementsMatch(t, []string{"a", "b", "c"}, s.Values())

	var zero container.Set[int]
	assert.True(t, zero.Add(1))
	assert.Equal(t, 1, zero.Len())
}

func TestQueue(t *testing.T) {
	t.Parallel()

	q := container.NewQueue("first")
	q.Push("second")
	assert.Equal(t, []string{"first", "second"}, q.Values())

	v, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, q.Len())

	_, _ = q.Pop()
	_, ok = q.Pop()
	assert.False(t, ok)

	var zero container.Queue[int]
	assert.Empty(t, zero.Values())
	zero.Push(1)
	assert.Equal(t, 1, zero.Len())
}

func TestSortedMap(t *testing.T) {
	t.Parallel()

	m := container.NewSortedMap[string, int]()
	m.Put("b", 2)
	m.Put("a", 1)
	m.Put("b", 20)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"a", "b"}, m.Keys())

	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = m.Get("z")
	assert.False(t, ok)

	var zero container.SortedMap[int, int]
	_, ok = zero.Get(1)
	assert.False(t, ok)
	zero.Put(1, 1)
	assert.Equal(t, 1, zero.Len())
}

func ExampleSortedMap_Ascend() {
	m := container.NewSortedMap[int, string]()
	m.Put(3, "c")
	m.Put(1, "a")
	m.Put(2, "b")

	m.Ascend(func(k int, v string) bool {
		fmt.Println(k, v)
		return k < 2
	})

	// Output:
	// 1 a
	// 2 b
}
