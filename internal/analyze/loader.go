package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports

const (
	containerPkgPath = "fixturegen/container"
	rawListPkgPath   = "container/list"

	markerMethod = "Generatable"
	enumMethod   = "EnumValues"
)

var containerNames = map[string]struct{}{
	"List":      {},
	"Set":       {},
	"Queue":     {},
	"SortedMap": {},
}

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	named     map[TypeID]*types.Named
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
		named:     make(map[TypeID]*types.Named),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./store", "fixturegen/warehouse").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{
			Path: pkg.PkgPath,
			Name: pkg.Name,
		}
	}

	// Process each package
	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	// Constructors may return types of any loaded package.
	for _, pkg := range pkgs {
		a.collectConstructors(pkg)
	}

	for id, info := range a.graph.Types {
		info.Eligibility = a.eligibility(a.named[id], info)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := a.graph.Packages[pkg.PkgPath]

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		// Only process exported types
		if !typeName.Exported() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		typeInfo := a.analyzeType(named)
		typeInfo.ID = typeID
		typeInfo.Generic = named.TypeParams().Len() > 0

		a.graph.Types[typeID] = typeInfo
		a.named[typeID] = named
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}
}

// collectConstructors attaches exported, non-generic functions returning T,
// *T, (T, error) or (*T, error) to T.
func (a *Analyzer) collectConstructors(pkg *packages.Package) {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		sig := fn.Type().(*types.Signature)
		if sig.Variadic() || sig.TypeParams().Len() > 0 || sig.Recv() != nil {
			continue
		}

		id, ok := constructedType(sig)
		if !ok {
			continue
		}

		if info := a.graph.GetType(id); info != nil && !info.Generic {
			info.Constructors = append(info.Constructors, FuncID{PkgPath: pkg.PkgPath, Name: name})
		}
	}
}

func constructedType(sig *types.Signature) (TypeID, bool) {
	results := sig.Results()
	switch results.Len() {
	case 1:
	case 2:
		if !types.Identical(results.At(1).Type(), types.Universe.Lookup("error").Type()) {
			return TypeID{}, false
		}
	default:
		return TypeID{}, false
	}

	out := results.At(0).Type()
	if ptr, ok := out.(*types.Pointer); ok {
		out = ptr.Elem()
	}

	named, ok := out.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return TypeID{}, false
	}

	return TypeID{PkgPath: named.Obj().Pkg().Path(), Name: named.Obj().Name()}, true
}

// eligibility mirrors the runtime classification: enums first, then the
// composite marker, then discovered constructors.
func (a *Analyzer) eligibility(named *types.Named, info *TypeInfo) Eligibility {
	if named == nil || info.Kind == TypeKindInterface {
		return EligibilityNone
	}

	mset := types.NewMethodSet(types.NewPointer(named))

	if sig := methodSig(mset, enumMethod); sig != nil &&
		sig.Params().Len() == 0 && sig.Results().Len() == 1 &&
		types.Identical(sig.Results().At(0).Type(), types.NewSlice(named)) {
		return EligibilityEnum
	}

	if sig := methodSig(mset, markerMethod); sig != nil && sig.Params().Len() == 0 && sig.Results().Len() == 0 {
		return EligibilityComposite
	}

	if len(info.Constructors) > 0 {
		return EligibilityConstructor
	}

	return EligibilityNone
}

func methodSig(mset *types.MethodSet, name string) *types.Signature {
	for i := range mset.Len() {
		fn := mset.At(i).Obj()
		if fn.Name() == name {
			sig, _ := fn.Type().(*types.Signature)
			return sig
		}
	}

	return nil
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	t = types.Unalias(t)

	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Map:
		info.Kind = TypeKindMap
		info.KeyType = a.analyzeType(tt.Key())
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	case *types.Interface:
		info.Kind = TypeKindInterface

	case *types.Chan, *types.Signature:
		info.Kind = TypeKindUnsupported

	default:
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() == nil {
		// predeclared error
		info.ID = TypeID{Name: obj.Name()}
		info.Kind = TypeKindInterface

		return
	}

	info.ID = TypeID{
		PkgPath: obj.Pkg().Path(),
		Name:    obj.Name(),
	}

	for i := range named.TypeArgs().Len() {
		info.TypeArgs = append(info.TypeArgs, a.analyzeType(named.TypeArgs().At(i)))
	}

	if isContainer(obj) {
		info.Kind = TypeKindContainer
		return
	}

	underlying := named.Underlying()

	switch ut := underlying.(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)

	case *types.Interface:
		info.Kind = TypeKindInterface

	case *types.Basic:
		// Named basic type (e.g., type OrderStatus string)
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)

	default:
		// External/opaque type (e.g., uuid.UUID, or complex named types)
		// We check if it's from an external package
		if a.isExternalPackage(obj.Pkg().Path()) {
			info.Kind = TypeKindExternal
		} else {
			// Named type wrapping something else in our packages
			info.Kind = TypeKindAlias
			info.Underlying = a.analyzeType(ut)
		}
	}
}

func isContainer(obj *types.TypeName) bool {
	switch obj.Pkg().Path() {
	case containerPkgPath:
		_, ok := containerNames[obj.Name()]
		return ok
	case rawListPkgPath:
		return obj.Name() == "List"
	default:
		return false
	}
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// analyzeStructFields extracts fields from a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		// Unexported fields are never populated
		if !field.Exported() {
			continue
		}

		fieldInfo := FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		}

		info.Fields = append(info.Fields, fieldInfo)
	}
}

// GetStruct returns the TypeInfo for a named struct by its package path and name.
func (a *Analyzer) GetStruct(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}
	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}
	if info.Kind != TypeKindStruct {
		return nil, fmt.Errorf("type %s is not a struct (kind: %s)", id, info.Kind)
	}
	return info, nil
}
