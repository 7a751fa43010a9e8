// Package warehouse is a fulfilment domain whose types carry no generation
// markers. Generators opt its types in with fixture.WithComposite.
package warehouse

import (
	"time"

	"fixturegen/container"
)

// Address represents a physical or billing/shipping address.
type Address struct {
	ID         uint      `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
}

// Bin is a storage location inside a warehouse.
type Bin struct {
	Code     string `json:"code"`
	Aisle    uint8  `json:"aisle"`
	Capacity int32  `json:"capacity"`
}

// Stock tracks quantities per SKU and the bins that hold them.
type Stock struct {
	Warehouse Address                           `json:"warehouse"`
	Levels    *container.SortedMap[string, int] `json:"levels"`
	Bins      map[string]Bin                    `json:"bins"`
	Inbound   *container.Queue[Shipment]        `json:"inbound"`
	Reserved  *container.Set[uint]              `json:"reserved"`
	UpdatedAt time.Time                         `json:"updated_at"`
}

// Shipment is a parcel moving between a warehouse and a customer.
type Shipment struct {
	ID          uint           `json:"id"`
	Carrier     Carrier        `json:"carrier"`
	Destination Address        `json:"destination"`
	Lines       []Line         `json:"lines"`
	Weight      float64        `json:"weight"` // in grams
	Transit     time.Duration  `json:"transit"`
	ShippedAt   *time.Time     `json:"shipped_at,omitempty"`
	Tracking    [2]string      `json:"tracking"`
	Returned    *ReturnRequest `json:"returned,omitempty"`
}

// Line is a single SKU entry of a shipment.
type Line struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// ReturnRequest points back to the shipment being returned.
type ReturnRequest struct {
	Reason   string    `json:"reason"`
	Original *Shipment `json:"original"`
}

type Carrier int

const (
	CarrierPost Carrier = iota + 1
	CarrierCourier
	CarrierFreight
)

func (Carrier) EnumValues() []Carrier {
	return []Carrier{CarrierPost, CarrierCourier, CarrierFreight}
}

func (c Carrier) String() string {
	switch c {
	case CarrierPost:
		return "post"
	case CarrierCourier:
		return "courier"
	case CarrierFreight:
		return "freight"
	default:
		return "unknown"
	}
}
