// Package store is a small retail domain used as generation target by tests
// and by the sample command.
package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fixturegen/container"
)

// Product is an individual item available for sale.
// Price is kept in cents to avoid floating-point errors.
type Product struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Inventory   int       `json:"inventory_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Product) Generatable() {}

// Customer is the user placing orders.
type Customer struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Address  *string   `json:"address"`
	IsActive bool      `json:"is_active"`

	passwordHash string
}

func (*Customer) Generatable() {}

// Order is a transaction made by a customer.
type Order struct {
	ID         int64       `json:"id"`
	Customer   *Customer   `json:"customer"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	Items      []OrderItem `json:"items"`
	OrderedAt  time.Time   `json:"ordered_at"`
}

func (Order) Generatable() {}

// OrderItem is a product line within an order. It snapshots the price at the
// time of purchase.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

func (OrderItem) Generatable() {}

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (OrderStatus) EnumValues() []OrderStatus {
	return []OrderStatus{StatusPending, StatusPaid, StatusShipped, StatusCancelled}
}

// Cart holds the products a customer is about to order.
type Cart struct {
	Owner   Customer                  `json:"owner"`
	Items   *container.List[Product]  `json:"items"`
	Coupons *container.Set[string]    `json:"coupons"`
	History *container.Queue[Order]   `json:"history"`
	Saved   *container.List[[]string] `json:"saved"`

	// Bundles cannot be populated: its elements are containers themselves.
	Bundles *container.List[*container.List[Product]] `json:"bundles"`

	Note string `fixture:"-" json:"note"`
}

func (*Cart) Generatable() {}

// Catalog indexes products by value and prices by SKU.
type Catalog struct {
	Titles map[Product]string                  `json:"titles"`
	Prices *container.SortedMap[string, int64] `json:"prices"`
}

func (Catalog) Generatable() {}

// Category is a node of the product category tree.
type Category struct {
	Name  string    `json:"name"`
	Left  *Category `json:"left"`
	Right *Category `json:"right"`
}

func (Category) Generatable() {}

// Depth returns the number of levels below and including c.
func (c *Category) Depth() int {
	if c == nil {
		return 0
	}

	return 1 + max(c.Left.Depth(), c.Right.Depth())
}

var ErrEmptyParcel = errors.New("parcel dimensions must be positive")

// Parcel is a shipping box. Its dimensions are only set through constructors.
type Parcel struct {
	width, height uint16
	Label         string
}

// NewParcel builds a parcel of the given dimensions in centimeters.
func NewParcel(width, height uint16) (*Parcel, error) {
	if width == 0 || height == 0 {
		return nil, ErrEmptyParcel
	}

	return &Parcel{width: width, height: height}, nil
}

// NewEnvelope builds the flat parcel used when no dimensions are known.
func NewEnvelope() Parcel {
	return Parcel{width: 1, height: 1}
}

func (p Parcel) Area() int {
	return int(p.width) * int(p.height)
}
