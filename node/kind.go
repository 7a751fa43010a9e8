package node

import "fixturegen/internal/common"

// DispatcherEnum is the closed set of generation strategies a type can take.
type DispatcherEnum int

const (
	DispatcherUnsupported DispatcherEnum = iota
	DispatcherLeaf
	DispatcherEnumerated
	DispatcherArray
	DispatcherContainer
	DispatcherComposite

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)

func (d DispatcherEnum) String() string {
	switch d {
	case DispatcherUnsupported:
		return "unsupported"
	case DispatcherLeaf:
		return "leaf"
	case DispatcherEnumerated:
		return "enum"
	case DispatcherArray:
		return "array"
	case DispatcherContainer:
		return "container"
	case DispatcherComposite:
		return "composite"
	default:
		return common.UnknownStr
	}
}
