package diagnostic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixturegen/internal/analyze"
	"fixturegen/internal/diagnostic"
)

func codes(list []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(list))
	for _, d := range list {
		out = append(out, d.Code+" "+d.Field)
	}

	return out
}

func TestInspect_Store(t *testing.T) {
	graph, err := analyze.NewAnalyzer().LoadPackages("fixturegen/store")
	require.NoError(t, err)

	diags := diagnostic.Inspect(graph)

	assert.False(t, diags.HasErrors())
	assert.Equal(t, []string{"unresolvable_container Cart.Bundles"}, codes(diags.Warnings))
	assert.Equal(t, []string{"skipped_field Cart.Note"}, codes(diags.Infos))
	assert.Len(t, diags.For("fixturegen/store.Cart"), 2)
	assert.Empty(t, diags.For("fixturegen/store.Parcel"))
}

func TestInspect_Warehouse(t *testing.T) {
	graph, err := analyze.NewAnalyzer().LoadPackages("fixturegen/warehouse")
	require.NoError(t, err)

	diags := diagnostic.Inspect(graph)

	assert.False(t, diags.HasErrors())
	assert.Equal(t, []string{
		"ineligible_field ReturnRequest.Original",
		"ineligible_field Shipment.Destination",
		"ineligible_field Shipment.Lines",
		"ineligible_field Shipment.Returned",
		"ineligible_field Stock.Warehouse",
		"ineligible_field Stock.Bins",
		"ineligible_field Stock.Inbound",
	}, codes(diags.Warnings))

	assert.Len(t, diags.Infos, 6)
	for _, info := range diags.Infos {
		assert.Equal(t, diagnostic.CodeIneligibleType, info.Code)
		assert.NotEmpty(t, info.Hints)
	}
}

func TestInspect_Synthetic(t *testing.T) {
	str := &analyze.TypeInfo{Kind: analyze.TypeKindBasic}
	iface := &analyze.TypeInfo{Kind: analyze.TypeKindInterface}
	list := &analyze.TypeInfo{
		ID:       analyze.TypeID{PkgPath: "fixturegen/container", Name: "List"},
		Kind:     analyze.TypeKindContainer,
		TypeArgs: []*analyze.TypeInfo{str},
	}
	rawList := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "container/list", Name: "List"},
		Kind: analyze.TypeKindContainer,
	}

	label := &analyze.TypeInfo{
		ID:         analyze.TypeID{PkgPath: "example.com/p", Name: "Label"},
		Kind:       analyze.TypeKindAlias,
		Underlying: str,
	}
	box := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "example.com/p", Name: "Box"},
		Kind: analyze.TypeKindStruct,
		Fields: []analyze.FieldInfo{
			{Name: "Any", Type: iface},
			{Name: "Fn", Type: &analyze.TypeInfo{Kind: analyze.TypeKindUnsupported}},
			{Name: "Items", Type: list},
			{Name: "Raw", Type: &analyze.TypeInfo{Kind: analyze.TypeKindPointer, ElemType: rawList}},
			{Name: "Lookup", Type: &analyze.TypeInfo{Kind: analyze.TypeKindMap, KeyType: str, ElemType: iface}},
			{Name: "Lists", Type: &analyze.TypeInfo{
				Kind:     analyze.TypeKindSlice,
				ElemType: &analyze.TypeInfo{Kind: analyze.TypeKindPointer, ElemType: list},
			}},
		},
		Eligibility: analyze.EligibilityComposite,
	}
	pair := &analyze.TypeInfo{
		ID:      analyze.TypeID{PkgPath: "example.com/p", Name: "Pair"},
		Kind:    analyze.TypeKindStruct,
		Generic: true,
	}

	graph := analyze.NewTypeGraph()
	for _, info := range []*analyze.TypeInfo{label, box, pair} {
		graph.Types[info.ID] = info
	}

	diags := diagnostic.Inspect(graph)

	assert.Equal(t, []string{
		"unsupported_field Box.Any",
		"unsupported_field Box.Fn",
		"value_container Box.Items",
	}, codes(diags.Errors))
	assert.Equal(t, []string{
		"unresolvable_container Box.Raw",
		"unresolvable_container Box.Lookup",
		"named_basic ",
	}, codes(diags.Warnings))
	assert.Equal(t, []string{"generic_type "}, codes(diags.Infos))

	require.Error(t, diags.Error())
	assert.Contains(t, diags.Error().Error(), "[example.com/p.Box] Box.Any: [unsupported_field]")
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b diagnostic.Diagnostics
	a.Add(diagnostic.Diagnostic{Severity: diagnostic.SeverityWarning, Code: "w", Message: "first", Type: "T"})
	b.Add(diagnostic.Diagnostic{Severity: diagnostic.SeverityError, Code: "e", Message: "second", Type: "T", Field: "T.F"})
	b.Add(diagnostic.Diagnostic{Severity: diagnostic.SeverityInfo, Code: "i", Message: "third", Type: "U"})

	assert.False(t, a.HasErrors())
	require.NoError(t, a.Error())

	a.Merge(b)

	assert.True(t, a.HasErrors())
	assert.Len(t, a.All(), 3)
	assert.Equal(t, []string{"e T.F", "w "}, codes(a.For("T")))
	assert.Equal(t, "[T] T.F: [e] second", a.Errors[0].String())
	assert.Equal(t, "[T]: [w] first", a.Warnings[0].String())
	assert.Equal(t, "error", a.Errors[0].Severity.String())
	assert.EqualError(t, a.Error(), "[T] T.F: [e] second")
}

func TestInspect_Hints(t *testing.T) {
	graph, err := analyze.NewAnalyzer().LoadPackages("fixturegen/warehouse")
	require.NoError(t, err)

	diags := diagnostic.Inspect(graph)
	for _, diag := range diags.All() {
		if diag.Code == diagnostic.CodeIneligibleField || diag.Code == diagnostic.CodeIneligibleType {
			assert.NotEmpty(t, diag.Hints, diag.String())
		}
	}
}
