package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	storePkg     = "fixturegen/store"
	warehousePkg = "fixturegen/warehouse"
)

func loadGraph(t *testing.T, patterns ...string) *TypeGraph {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(patterns...)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func findField(t *testing.T, info *TypeInfo, name string) *FieldInfo {
	t.Helper()

	for i := range info.Fields {
		if info.Fields[i].Name == name {
			return &info.Fields[i]
		}
	}

	require.Failf(t, "field not found", "%s has no field %s", info.ID, name)

	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadGraph(t, storePkg, warehousePkg)

	// Check that packages were loaded
	assert.Contains(t, graph.Packages, storePkg)
	assert.Contains(t, graph.Packages, warehousePkg)

	// Check that types were extracted
	assert.Contains(t, graph.Types, TypeID{PkgPath: storePkg, Name: "Order"})
	assert.Contains(t, graph.Types, TypeID{PkgPath: warehousePkg, Name: "Shipment"})
	assert.Contains(t, graph.Packages[storePkg].Types, TypeID{PkgPath: storePkg, Name: "Cart"})
}

func TestAnalyzer_LoadPackages_Missing(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("fixturegen/does/not/exist")
	require.Error(t, err)
}

func TestAnalyzer_StoreOrderFields(t *testing.T) {
	graph := loadGraph(t, storePkg)

	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NotNil(t, order)
	assert.Equal(t, TypeKindStruct, order.Kind)

	var names []string
	for _, f := range order.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"ID", "Customer", "Status", "TotalCents", "Items", "OrderedAt"}, names)
}

func TestAnalyzer_UnexportedFieldsDropped(t *testing.T) {
	graph := loadGraph(t, storePkg)

	customer := graph.GetType(TypeID{PkgPath: storePkg, Name: "Customer"})
	require.NotNil(t, customer)

	for _, f := range customer.Fields {
		assert.NotEqual(t, "passwordHash", f.Name)
		assert.True(t, f.Exported)
	}
}

func TestAnalyzer_FieldTags(t *testing.T) {
	graph := loadGraph(t, storePkg)

	cart := graph.GetType(TypeID{PkgPath: storePkg, Name: "Cart"})
	require.NotNil(t, cart)

	note := findField(t, cart, "Note")
	assert.True(t, note.Skipped())
	assert.True(t, note.HasTag("json"))
	assert.Equal(t, "note", note.GetTag("json"))

	assert.False(t, findField(t, cart, "Owner").Skipped())
}

func TestAnalyzer_SliceField(t *testing.T) {
	graph := loadGraph(t, storePkg)

	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NotNil(t, order)

	items := findField(t, order, "Items")
	assert.Equal(t, TypeKindSlice, items.Type.Kind)
	require.NotNil(t, items.Type.ElemType)
	assert.Equal(t, TypeKindStruct, items.Type.ElemType.Kind)
}

func TestAnalyzer_PointerField(t *testing.T) {
	graph := loadGraph(t, storePkg)

	customer := graph.GetType(TypeID{PkgPath: storePkg, Name: "Customer"})
	require.NotNil(t, customer)

	address := findField(t, customer, "Address")
	assert.Equal(t, TypeKindPointer, address.Type.Kind)
	require.NotNil(t, address.Type.ElemType)
	assert.Equal(t, TypeKindBasic, address.Type.ElemType.Kind)
}

func TestAnalyzer_RecursiveType(t *testing.T) {
	graph := loadGraph(t, storePkg)

	category := graph.GetType(TypeID{PkgPath: storePkg, Name: "Category"})
	require.NotNil(t, category)

	left := findField(t, category, "Left")
	require.Equal(t, TypeKindPointer, left.Type.Kind)
	assert.Same(t, category, left.Type.ElemType)
}

func TestAnalyzer_Containers(t *testing.T) {
	graph := loadGraph(t, storePkg)

	cart := graph.GetType(TypeID{PkgPath: storePkg, Name: "Cart"})
	require.NotNil(t, cart)

	items := findField(t, cart, "Items").Type
	require.Equal(t, TypeKindPointer, items.Kind)
	assert.Equal(t, TypeKindContainer, items.ElemType.Kind)
	assert.Equal(t, "List", items.ElemType.ID.Name)
	require.Len(t, items.ElemType.TypeArgs, 1)
	assert.Equal(t, "Product", items.ElemType.TypeArgs[0].ID.Name)

	catalog := graph.GetType(TypeID{PkgPath: storePkg, Name: "Catalog"})
	require.NotNil(t, catalog)

	prices := findField(t, catalog, "Prices").Type.ElemType
	assert.Equal(t, TypeKindContainer, prices.Kind)
	assert.Len(t, prices.TypeArgs, 2)

	titles := findField(t, catalog, "Titles").Type
	assert.Equal(t, TypeKindMap, titles.Kind)
	assert.Equal(t, TypeKindStruct, titles.KeyType.Kind)
	assert.Equal(t, TypeKindBasic, titles.ElemType.Kind)
}

func TestAnalyzer_ArrayAndExternal(t *testing.T) {
	graph := loadGraph(t, warehousePkg)

	shipment := graph.GetType(TypeID{PkgPath: warehousePkg, Name: "Shipment"})
	require.NotNil(t, shipment)

	assert.Equal(t, TypeKindArray, findField(t, shipment, "Tracking").Type.Kind)
	assert.Equal(t, TypeKindAlias, findField(t, shipment, "Transit").Type.Kind)

	store := loadGraph(t, storePkg)
	customer := store.GetType(TypeID{PkgPath: storePkg, Name: "Customer"})
	require.NotNil(t, customer)
	assert.Equal(t, TypeKindExternal, findField(t, customer, "ID").Type.Kind)
}

func TestAnalyzer_TypeAlias(t *testing.T) {
	graph := loadGraph(t, storePkg)

	status := graph.GetType(TypeID{PkgPath: storePkg, Name: "OrderStatus"})
	require.NotNil(t, status)

	// OrderStatus is a named string
	assert.Equal(t, TypeKindAlias, status.Kind)
	require.NotNil(t, status.Underlying)
	assert.Equal(t, TypeKindBasic, status.Underlying.Kind)
}

func TestAnalyzer_Eligibility(t *testing.T) {
	graph := loadGraph(t, storePkg, warehousePkg)

	cases := map[TypeID]Eligibility{
		{PkgPath: storePkg, Name: "OrderStatus"}:  EligibilityEnum,
		{PkgPath: storePkg, Name: "Product"}:      EligibilityComposite,
		{PkgPath: storePkg, Name: "Customer"}:     EligibilityComposite,
		{PkgPath: storePkg, Name: "Parcel"}:       EligibilityConstructor,
		{PkgPath: warehousePkg, Name: "Carrier"}:  EligibilityEnum,
		{PkgPath: warehousePkg, Name: "Shipment"}: EligibilityNone,
	}

	for id, want := range cases {
		info := graph.GetType(id)
		require.NotNil(t, info, id.String())
		assert.Equal(t, want, info.Eligibility, id.String())
	}
}

func TestAnalyzer_Constructors(t *testing.T) {
	graph := loadGraph(t, storePkg)

	parcel := graph.GetType(TypeID{PkgPath: storePkg, Name: "Parcel"})
	require.NotNil(t, parcel)

	assert.Equal(t, []FuncID{
		{PkgPath: storePkg, Name: "NewEnvelope"},
		{PkgPath: storePkg, Name: "NewParcel"},
	}, parcel.Constructors)

	order := graph.GetType(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NotNil(t, order)
	assert.Empty(t, order.Constructors)
}

func TestTypeGraph_Catalogable(t *testing.T) {
	graph := loadGraph(t, warehousePkg)

	var names []string
	for _, info := range graph.Catalogable() {
		names = append(names, info.ID.Name)
	}

	assert.Equal(t, []string{"Carrier"}, names)
}

func TestTypeGraph_Sorted(t *testing.T) {
	graph := loadGraph(t, storePkg)

	sorted := graph.Sorted()
	require.Len(t, sorted, len(graph.Types))

	for i := 1; i < len(sorted); i++ {
		assert.Less(t, sorted[i-1].ID.String(), sorted[i].ID.String())
	}
}

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: storePkg, Name: "Order"}
	assert.Equal(t, "fixturegen/store.Order", id.String())

	// Empty package path
	idNoPkg := TypeID{Name: "int"}
	assert.Equal(t, "int", idNoPkg.String())
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "basic", TypeKindBasic.String())
	assert.Equal(t, "struct", TypeKindStruct.String())
	assert.Equal(t, "pointer", TypeKindPointer.String())
	assert.Equal(t, "slice", TypeKindSlice.String())
	assert.Equal(t, "alias", TypeKindAlias.String())
	assert.Equal(t, "external", TypeKindExternal.String())
	assert.Equal(t, "container", TypeKindContainer.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}

func TestEligibility_String(t *testing.T) {
	assert.Equal(t, "none", EligibilityNone.String())
	assert.Equal(t, "enum", EligibilityEnum.String())
	assert.Equal(t, "constructor", EligibilityConstructor.String())
	assert.Equal(t, "unknown", Eligibility(42).String())
}

func TestFieldInfo_Skipped(t *testing.T) {
	f1 := FieldInfo{Name: "MyField", Tag: `fixture:"-"`}
	assert.True(t, f1.Skipped())

	f2 := FieldInfo{Name: "MyField", Tag: `fixture:"-,reason"`}
	assert.True(t, f2.Skipped())

	f3 := FieldInfo{Name: "MyField", Tag: `json:"-"`}
	assert.False(t, f3.Skipped())

	f4 := FieldInfo{Name: "MyField", Tag: ""}
	assert.False(t, f4.Skipped())
}
