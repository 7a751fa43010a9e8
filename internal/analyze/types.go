package analyze

import (
	"go/types"
	"reflect"
	"sort"
	"strings"

	"fixturegen/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "fixturegen/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// FuncID identifies a package level function.
type FuncID struct {
	PkgPath string
	Name    string
}

func (f FuncID) String() string {
	return f.PkgPath + "." + f.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown     TypeKind = iota
	TypeKindBasic                // int, string, bool, etc.
	TypeKindStruct               // struct type
	TypeKindPointer              // pointer to another type
	TypeKindSlice                // slice of another type
	TypeKindArray                // array of another type
	TypeKindAlias                // named type wrapping a non-struct type
	TypeKindExternal             // external/opaque type (e.g., time.Time)
	TypeKindMap                  // builtin map
	TypeKindContainer            // generic container from fixturegen/container, or *list.List
	TypeKindInterface            // interface type
	TypeKindUnsupported          // channels and functions
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	case TypeKindMap:
		return "map"
	case TypeKindContainer:
		return "container"
	case TypeKindInterface:
		return "interface"
	case TypeKindUnsupported:
		return "unsupported"
	default:
		return common.UnknownStr
	}
}

// Eligibility is how the generator can build a named type.
type Eligibility int

const (
	EligibilityNone Eligibility = iota
	// EligibilityEnum: the type declares EnumValues() []T.
	EligibilityEnum
	// EligibilityComposite: the type declares the Generatable() marker.
	EligibilityComposite
	// EligibilityConstructor: no marker, but constructors were discovered.
	EligibilityConstructor
)

func (e Eligibility) String() string {
	switch e {
	case EligibilityNone:
		return "none"
	case EligibilityEnum:
		return "enum"
	case EligibilityComposite:
		return "composite"
	case EligibilityConstructor:
		return "constructor"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID           TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind         TypeKind    // Kind of type
	Underlying   *TypeInfo   // For named types, the underlying type
	ElemType     *TypeInfo   // For pointers, slices, arrays and maps, the element type
	KeyType      *TypeInfo   // For maps, the key type
	TypeArgs     []*TypeInfo // For instantiated generic types, the type arguments
	Fields       []FieldInfo // For structs, the list of fields
	GoType       types.Type  // The original go/types.Type
	Eligibility  Eligibility // How the generator builds the type
	Generic      bool        // True if the type declares type parameters
	Constructors []FuncID    // Discovered constructor functions, in source order
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Catalogable reports whether the type can be listed in a generated catalog.
func (t *TypeInfo) Catalogable() bool {
	return t.IsNamed() && !t.Generic && t.Eligibility != EligibilityNone
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// Skipped reports whether the field is excluded from population with `fixture:"-"`.
func (f *FieldInfo) Skipped() bool {
	tag, _, _ := strings.Cut(f.GetTag("fixture"), ",")
	return tag == "-"
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	return f.Tag.Get(key) != ""
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Sorted returns all types ordered by package path and name.
func (g *TypeGraph) Sorted() []*TypeInfo {
	out := make([]*TypeInfo, 0, len(g.Types))
	for _, info := range g.Types {
		out = append(out, info)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})

	return out
}

// Catalogable returns the types a catalog can list, ordered like Sorted.
func (g *TypeGraph) Catalogable() []*TypeInfo {
	var out []*TypeInfo
	for _, info := range g.Sorted() {
		if info.Catalogable() {
			out = append(out, info)
		}
	}

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
