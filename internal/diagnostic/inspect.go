package diagnostic

import (
	"fmt"

	"fixturegen/internal/analyze"
)

// Diagnostic codes reported by Inspect.
const (
	CodeUnsupportedField      = "unsupported_field"
	CodeValueContainer        = "value_container"
	CodeUnresolvableContainer = "unresolvable_container"
	CodeIneligibleField       = "ineligible_field"
	CodeIneligibleType        = "ineligible_type"
	CodeNamedBasic            = "named_basic"
	CodeGenericType           = "generic_type"
	CodeSkippedField          = "skipped_field"
)

const (
	rawListPkgPath = "container/list"

	markerHint  = "add a Generatable() method or register the type with fixture.WithComposite"
	enumHint    = "add an EnumValues() method or register values with fixture.WithEnum"
	leafHint    = "register a leaf provider for the type"
	pointerHint = "hold the container by pointer"
)

// Inspect reports, for every type of graph, what a generator built with the
// default leaf providers would do with it.
func Inspect(graph *analyze.TypeGraph) Diagnostics {
	var diags Diagnostics

	stringer := analyze.NewTypeStringer()

	for _, info := range graph.Sorted() {
		name := info.ID.String()

		if info.Generic {
			diags.Add(Diagnostic{
				Severity: SeverityInfo,
				Code:     CodeGenericType,
				Message:  "generic type is skipped, generate one of its instantiations instead",
				Type:     name,
			})

			continue
		}

		switch {
		case info.Kind == analyze.TypeKindAlias && info.Underlying != nil &&
			info.Underlying.Kind == analyze.TypeKindBasic && info.Eligibility == analyze.EligibilityNone:
			diags.Add(Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeNamedBasic,
				Message:  "named basic type has no leaf provider by default",
				Type:     name,
				Hints:    []string{enumHint, leafHint},
			})

		case info.Kind == analyze.TypeKindStruct && info.Eligibility == analyze.EligibilityNone:
			diags.Add(Diagnostic{
				Severity: SeverityInfo,
				Code:     CodeIneligibleType,
				Message:  "struct type is not eligible for generation",
				Type:     name,
				Hints:    []string{markerHint},
			})
		}

		if info.Kind != analyze.TypeKindStruct {
			continue
		}

		for i := range info.Fields {
			inspectField(&diags, graph, stringer, info, &info.Fields[i])
		}
	}

	return diags
}

func inspectField(
	diags *Diagnostics,
	graph *analyze.TypeGraph,
	stringer *analyze.TypeStringer,
	owner *analyze.TypeInfo,
	field *analyze.FieldInfo,
) {
	name := owner.ID.String()
	path := stringer.FieldPath(owner.ID.Name, field.Name)

	if field.Skipped() {
		diags.Add(Diagnostic{
			Severity: SeverityInfo,
			Code:     CodeSkippedField,
			Message:  "field is excluded from population",
			Type:     name,
			Field:    path,
		})
		return
	}

	t := field.Type
	if cont, ok := heldContainer(t); ok {
		if !resolvableArgs(cont) {
			diags.Add(Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeUnresolvableContainer,
				Message: fmt.Sprintf("element type of %s cannot be generated, the container is left empty",
					stringer.TypeString(t)),
				Type:  name,
				Field: path,
			})

			return
		}

		for _, arg := range containerArgs(cont) {
			checkEligible(diags, graph, stringer, arg, name, path)
		}

		return
	}

	for isWrapper(t) {
		t = t.ElemType

		// nested containers are produced empty
		if _, ok := heldContainer(t); ok {
			return
		}
	}

	switch t.Kind {
	case analyze.TypeKindInterface, analyze.TypeKindUnsupported:
		diags.Add(Diagnostic{
			Severity: SeverityError,
			Code:     CodeUnsupportedField,
			Message:  fmt.Sprintf("field of type %s cannot be generated", stringer.TypeString(field.Type)),
			Type:     name,
			Field:    path,
		})

	case analyze.TypeKindContainer:
		diags.Add(Diagnostic{
			Severity: SeverityError,
			Code:     CodeValueContainer,
			Message:  fmt.Sprintf("container %s is held by value", stringer.TypeString(t)),
			Type:     name,
			Field:    path,
			Hints:    []string{pointerHint},
		})

	case analyze.TypeKindStruct, analyze.TypeKindAlias:
		checkEligible(diags, graph, stringer, t, name, path)

	default:
	}
}

func isWrapper(t *analyze.TypeInfo) bool {
	switch t.Kind {
	case analyze.TypeKindPointer, analyze.TypeKindSlice, analyze.TypeKindArray:
		return t.ElemType != nil
	default:
		return false
	}
}

// checkEligible warns when t is a scanned named type the generator cannot
// build. Types outside the scanned packages may be leaves.
func checkEligible(
	diags *Diagnostics,
	graph *analyze.TypeGraph,
	stringer *analyze.TypeStringer,
	t *analyze.TypeInfo,
	name, path string,
) {
	for t != nil && t.Kind == analyze.TypeKindPointer {
		t = t.ElemType
	}

	if t == nil || !t.IsNamed() {
		return
	}

	if scanned := graph.GetType(t.ID); scanned != nil && scanned.Eligibility == analyze.EligibilityNone {
		diags.Add(Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeIneligibleField,
			Message:  fmt.Sprintf("type %s is not eligible for generation", stringer.TypeString(t)),
			Type:     name,
			Field:    path,
			Hints:    []string{markerHint},
		})
	}
}

// heldContainer returns the container a field type denotes: a builtin map, or
// a generic container behind exactly one pointer.
func heldContainer(t *analyze.TypeInfo) (*analyze.TypeInfo, bool) {
	switch {
	case t.Kind == analyze.TypeKindMap:
		return t, true
	case t.Kind == analyze.TypeKindPointer && t.ElemType != nil && t.ElemType.Kind == analyze.TypeKindContainer:
		return t.ElemType, true
	default:
		return nil, false
	}
}

func containerArgs(cont *analyze.TypeInfo) []*analyze.TypeInfo {
	if cont.Kind == analyze.TypeKindMap {
		return []*analyze.TypeInfo{cont.KeyType, cont.ElemType}
	}

	return cont.TypeArgs
}

func resolvableArgs(cont *analyze.TypeInfo) bool {
	if cont.ID.PkgPath == rawListPkgPath {
		return false
	}

	args := containerArgs(cont)
	if len(args) == 0 {
		return false
	}

	for _, arg := range args {
		if arg == nil || arg.Kind == analyze.TypeKindInterface || arg.Kind == analyze.TypeKindMap {
			return false
		}

		if _, ok := heldContainer(arg); ok {
			return false
		}
	}

	return true
}
