package node

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"
)

var (
	ErrIsNotAConstructor         = errors.New("provided function is not a recognizable constructor")
	ErrConstructorIsNotAFunction = errors.New("provided constructor is not a function")
	ErrDoublePointer             = errors.New("constructor function does not support double pointers")
	ErrConstructorFailed         = errors.New("constructor failed")
)

const implicitName = "zero value"

// Constructor is a parsed constructor function producing values of Target.
type Constructor struct {
	Target       reflect.Type
	Params       []reflect.Type
	PackageAlias string
	Name         string
	Indirect     bool
	HasErr       bool

	fn reflect.Value
}

// ParseConstructor inspects fn and returns a Constructor if fn is a valid
// constructor function.
//
// Supports signatures:
//   - func(params...) T
//   - func(params...) *T
//   - func(params...) (T, error)
//   - func(params...) (*T, error)
//
// Constructors returning *T produce values of T.
func ParseConstructor(fn any) (Constructor, error) {
	if fn == nil {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func || fnVal.IsNil() {
		return Constructor{}, ErrConstructorIsNotAFunction
	}

	if fnType.IsVariadic() || fnType.NumOut() == 0 || fnType.NumOut() > 2 {
		return Constructor{}, ErrIsNotAConstructor
	}

	out := fnType.Out(0)
	if out.Kind() == reflect.Pointer && out.Elem().Kind() == reflect.Pointer {
		return Constructor{}, ErrDoublePointer
	}

	ctor := Constructor{
		Target: out,
		Params: make([]reflect.Type, fnType.NumIn()),
		fn:     fnVal,
	}

	if out.Kind() == reflect.Pointer {
		ctor.Target, ctor.Indirect = out.Elem(), true
	}

	for i := range ctor.Params {
		ctor.Params[i] = fnType.In(i)
	}

	if fnType.NumOut() == 2 {
		if !isError(fnType.Out(1)) {
			return Constructor{}, ErrIsNotAConstructor
		}

		ctor.HasErr = true
	}

	if fnPC := runtime.FuncForPC(fnVal.Pointer()); fnPC != nil {
		// "fixturegen/store.NewParcel" -> "store", "NewParcel"
		_, qualified := path.Split(fnPC.Name())
		ctor.PackageAlias, ctor.Name, _ = strings.Cut(qualified, ".")
	}

	return ctor, nil
}

// ZeroConstructor returns the implicit constructor of a struct type: it takes
// no parameters and yields the zero value, leaving fields to be populated.
func ZeroConstructor(t reflect.Type) Constructor {
	return Constructor{Target: t, Name: implicitName}
}

// IsImplicit reports whether c is the zero-value constructor.
func (c Constructor) IsImplicit() bool {
	return !c.fn.IsValid()
}

func (c Constructor) String() string {
	if c.PackageAlias == "" {
		return c.Name
	}

	return c.PackageAlias + "." + c.Name
}

// Call invokes the constructor. A returned error, a panic and a nil pointer
// result are all reported as errors. The result is always of type Target.
func (c Constructor) Call(args []reflect.Value) (result reflect.Value, err error) {
	if c.IsImplicit() {
		return reflect.New(c.Target).Elem(), nil
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = reflect.Value{}, fmt.Errorf("%w: %s panicked: %v", ErrConstructorFailed, c, r)
		}
	}()

	out := c.fn.Call(args)

	if c.HasErr && !out[1].IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %s: %w", ErrConstructorFailed, c, out[1].Interface().(error))
	}

	result = out[0]
	if c.Indirect {
		if result.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: %s returned nil", ErrConstructorFailed, c)
		}

		result = result.Elem()
	}

	// copy so callers may set fields without aliasing the constructor's result
	copied := reflect.New(c.Target).Elem()
	copied.Set(result)

	return copied, nil
}
