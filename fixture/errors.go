package fixture

import "errors"

var (
	ErrInvalidConfiguration  = errors.New("invalid configuration")
	ErrNotGeneratable        = errors.New("type cannot be generated")
	ErrEmptyEnum             = errors.New("enum has no values")
	ErrNoSuitableConstructor = errors.New("no suitable constructor")
	ErrLeafMismatch          = errors.New("leaf generator returned a value of the wrong type")

	// ErrUnresolvableGenericElement is logged, never returned: a container
	// field whose type arguments cannot be generated is left empty.
	ErrUnresolvableGenericElement = errors.New("container type arguments cannot be resolved")
)
