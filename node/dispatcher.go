package node

import (
	"reflect"
	"sync"

	"fixturegen/container"
)

// LeafSet reports whether a leaf generator is registered for a type.
type LeafSet interface {
	Has(t reflect.Type) bool
}

// Config holds the explicit registrations a Describer classifies against.
// It must not be modified after NewDescriber.
type Config struct {
	Leaves       LeafSet
	Enums        map[reflect.Type][]reflect.Value
	Composites   map[reflect.Type]struct{}
	Constructors map[reflect.Type][]Constructor
}

// Descriptor is everything the generator needs to know about a type.
type Descriptor struct {
	Type reflect.Type
	// Base is Type with Indirect pointer levels stripped; Kind describes Base.
	Base     reflect.Type
	Indirect int
	Kind     DispatcherEnum

	Container    container.Kind
	EnumValues   []reflect.Value
	Constructors []Constructor
	Fields       []Field
}

// Describer classifies types and caches the resulting descriptors.
// It is safe for concurrent use.
type Describer struct {
	cfg   Config
	cache sync.Map // reflect.Type -> *Descriptor
}

func NewDescriber(cfg Config) *Describer {
	return &Describer{cfg: cfg}
}

// Dispatch returns the generation strategy for t.
func (d *Describer) Dispatch(t reflect.Type) DispatcherEnum {
	return d.Describe(t).Kind
}

// Describe returns the cached descriptor of t, computing it on first use.
func (d *Describer) Describe(t reflect.Type) *Descriptor {
	if cached, ok := d.cache.Load(t); ok {
		return cached.(*Descriptor)
	}

	desc, _ := d.cache.LoadOrStore(t, d.describe(t))

	return desc.(*Descriptor)
}

func (d *Describer) describe(t reflect.Type) *Descriptor {
	desc := &Descriptor{Type: t, Base: t}
	if t == nil {
		return desc
	}

	// a pointer level is only stripped when the pointer type itself is not
	// classifiable, so registered leaves and containers like *List[T] win
	seen := map[reflect.Type]struct{}{t: {}}
	for {
		desc.Kind = d.classify(desc.Base)
		if desc.Kind != DispatcherUnsupported || desc.Base.Kind() != reflect.Pointer {
			break
		}

		// type P *P and longer pointer cycles never reach a base type
		if _, cyclic := seen[desc.Base.Elem()]; cyclic {
			return &Descriptor{Type: t, Base: t, Kind: DispatcherUnsupported}
		}

		desc.Base = desc.Base.Elem()
		desc.Indirect++
		seen[desc.Base] = struct{}{}
	}

	switch desc.Kind {
	case DispatcherEnumerated:
		desc.EnumValues = d.enumValues(desc.Base)
	case DispatcherContainer:
		desc.Container = container.KindOf(desc.Base)
	case DispatcherComposite:
		desc.Constructors = d.cfg.Constructors[desc.Base]
		if len(desc.Constructors) == 0 && desc.Base.Kind() == reflect.Struct {
			desc.Constructors = []Constructor{ZeroConstructor(desc.Base)}
		}

		desc.Fields = structFields(desc.Base)
	}

	return desc
}

func (d *Describer) classify(t reflect.Type) DispatcherEnum {
	switch {
	case d.cfg.Leaves != nil && d.cfg.Leaves.Has(t):
		return DispatcherLeaf
	case d.isEnum(t):
		return DispatcherEnumerated
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		return DispatcherArray
	case container.KindOf(t) != container.KindNone:
		return DispatcherContainer
	case d.isComposite(t):
		return DispatcherComposite
	default:
		return DispatcherUnsupported
	}
}

func (d *Describer) isEnum(t reflect.Type) bool {
	if _, ok := d.cfg.Enums[t]; ok {
		return true
	}

	_, ok := EnumValues(t)

	return ok
}

func (d *Describer) enumValues(t reflect.Type) []reflect.Value {
	if values, ok := d.cfg.Enums[t]; ok {
		return values
	}

	values, _ := EnumValues(t)

	return values
}

func (d *Describer) isComposite(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		return false
	}

	if _, ok := d.cfg.Constructors[t]; ok {
		return true
	}

	if _, ok := d.cfg.Composites[t]; ok {
		return true
	}

	return t == emptyStructType || IsMarked(t)
}
