package node_test

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixturegen/node"
)

type point struct{ X, Y int }

func newPoint(x, y int) point          { return point{X: x, Y: y} }
func newPointPtr(x int) *point         { return &point{X: x} }
func nilPoint() *point                 { return nil }
func failingPoint() (point, error)     { return point{}, errors.New("boom") }
func panickingPoint() point            { panic("no points today") }
func pointOrErr(x int) (*point, error) { return &point{X: x}, nil }
func doublePoint() **point             { panic("not implemented") }
func variadicPoint(...int) point       { panic("not implemented") }
func notErr() (point, bool)            { panic("not implemented") }
func noResults(int)                    { panic("not implemented") }
func tooMany() (point, error, error)   { panic("not implemented") }

func ExampleParseConstructor() {
	desc, err := node.ParseConstructor(newPoint)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Target.Name(), len(desc.Params), desc.Indirect, desc.HasErr)

	desc, err = node.ParseConstructor(pointOrErr)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Target.Name(), len(desc.Params), desc.Indirect, desc.HasErr)

	desc, err = node.ParseConstructor(strconv.Itoa)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Target.Kind(), len(desc.Params), desc.Indirect, desc.HasErr)

	for _, fn := range []any{variadicPoint, notErr, noResults, tooMany, doublePoint, 42} {
		_, err = node.ParseConstructor(fn)
		fmt.Println(err)
	}

	// Output:
	// <nil> node_test newPoint point 2 false false
	// <nil> node_test pointOrErr point 1 true true
	// <nil> strconv Itoa string 1 false false
	// provided function is not a recognizable constructor
	// provided function is not a recognizable constructor
	// provided function is not a recognizable constructor
	// provided function is not a recognizable constructor
	// constructor function does not support double pointers
	// provided constructor is not a function
}

func TestConstructor_Call(t *testing.T) {
	t.Parallel()

	ctor, err := node.ParseConstructor(newPoint)
	require.NoError(t, err)

	v, err := ctor.Call([]reflect.Value{reflect.ValueOf(1), reflect.ValueOf(2)})
	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Y: 2}, v.Interface())
	assert.True(t, v.CanSet())

	ctor, err = node.ParseConstructor(newPointPtr)
	require.NoError(t, err)

	v, err = ctor.Call([]reflect.Value{reflect.ValueOf(3)})
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[point](), v.Type())
	assert.Equal(t, 3, v.Interface().(point).X)
}

func TestConstructor_CallFailures(t *testing.T) {
	t.Parallel()

	for _, fn := range []any{nilPoint, failingPoint, panickingPoint} {
		ctor, err := node.ParseConstructor(fn)
		require.NoError(t, err)

		_, err = ctor.Call(nil)
		require.ErrorIs(t, err, node.ErrConstructorFailed, ctor.String())
		assert.Contains(t, err.Error(), ctor.Name)
	}
}

func TestZeroConstructor(t *testing.T) {
	t.Parallel()

	ctor := node.ZeroConstructor(reflect.TypeFor[point]())
	assert.True(t, ctor.IsImplicit())
	assert.Empty(t, ctor.Params)

	v, err := ctor.Call(nil)
	require.NoError(t, err)
	assert.Equal(t, point{}, v.Interface())
	assert.True(t, v.CanSet())
}
