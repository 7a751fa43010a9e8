package primitive

import (
	"math/bits"
	"reflect"
	"time"

	"github.com/google/uuid"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindBytes
	KindTime
	KindDuration
	KindUUID

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// Bits is the size of a numeric kind. It panics for other kinds.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		return bits.UintSize
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}
}

var reflectTypes = map[KindEnum]reflect.Type{
	KindInt:      reflect.TypeFor[int](),
	KindInt8:     reflect.TypeFor[int8](),
	KindInt16:    reflect.TypeFor[int16](),
	KindInt32:    reflect.TypeFor[int32](),
	KindInt64:    reflect.TypeFor[int64](),
	KindUint:     reflect.TypeFor[uint](),
	KindUint8:    reflect.TypeFor[uint8](),
	KindUint16:   reflect.TypeFor[uint16](),
	KindUint32:   reflect.TypeFor[uint32](),
	KindUint64:   reflect.TypeFor[uint64](),
	KindFloat32:  reflect.TypeFor[float32](),
	KindFloat64:  reflect.TypeFor[float64](),
	KindBool:     reflect.TypeFor[bool](),
	KindString:   reflect.TypeFor[string](),
	KindBytes:    reflect.TypeFor[[]byte](),
	KindTime:     reflect.TypeFor[time.Time](),
	KindDuration: reflect.TypeFor[time.Duration](),
	KindUUID:     reflect.TypeFor[uuid.UUID](),
}

// ReflectType returns the exact type a leaf generator of kind k is registered for.
func (k KindEnum) ReflectType() reflect.Type {
	return reflectTypes[k]
}

// FromReflectType maps an exact type to its kind. Named types derived from a
// primitive (type Status string) are not primitives and yield the zero kind.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	for kind, t := range reflectTypes {
		if t == rtype {
			return kind
		}
	}

	return 0
}
