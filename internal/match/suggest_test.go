package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleTypeNames = []string{
	"store.Cart", "store.Catalog", "store.Category", "store.Customer", "store.Order",
	"store.OrderItem", "store.OrderStatus", "store.Parcel", "store.Product",
	"warehouse.Address", "warehouse.Bin", "warehouse.Carrier", "warehouse.Line",
	"warehouse.ReturnRequest", "warehouse.Shipment", "warehouse.Stock",
}

func TestSuggest(t *testing.T) {
	got := Suggest("store.order", sampleTypeNames, DefaultMinScore, 2)
	assert.Equal(t, []string{"store.Order", "store.OrderItem"}, Names(got))
	assert.InDelta(t, 1.0, got[0].Score, 1e-9)

	got = Suggest("store.OrderItme", sampleTypeNames, DefaultMinScore, 0)
	assert.Equal(t, "store.OrderItem", got[0].Name)

	assert.Equal(t, []string{"store.Order"}, Names(Suggest("store.Ordr", sampleTypeNames, DefaultMinScore, 1)))
	assert.Empty(t, Suggest("zzz", sampleTypeNames, DefaultMinScore, 3))
}

func TestSuggest_Unqualified(t *testing.T) {
	assert.Equal(t, []string{"warehouse.Line"}, Names(Suggest("Line", sampleTypeNames, DefaultMinScore, 3)))
	assert.Equal(t, []string{"warehouse.Shipment"}, Names(Suggest("shipmnt", sampleTypeNames, DefaultMinScore, 3)))
}

func TestSuggest_TiesKeepOrder(t *testing.T) {
	got := Suggest("Cart", []string{"b.Cart", "a.Cart", "a.Card"}, DefaultMinScore, 0)
	assert.Equal(t, []string{"b.Cart", "a.Cart", "a.Card"}, Names(got))
}

func TestNames_Empty(t *testing.T) {
	assert.Empty(t, Names(nil))
}
