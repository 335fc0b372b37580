package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a read-only projection of one product row.
type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Order carries the order-level columns only; the list endpoint returns
// these without item expansion.
type Order struct {
	OrderNumber   int             `json:"order_number"`
	OrderDateTime time.Time       `json:"order_date_time"`
	Amount        decimal.Decimal `json:"amount"`
}

// OrderDetail is an order with its line items joined in. OrderItems is
// always non-nil so an order without items serializes as an empty array.
type OrderDetail struct {
	Order
	OrderItems []OrderItem `json:"order_items"`
}

// OrderItem is one line of an order. Amount is the item's own amount,
// not the parent order total.
type OrderItem struct {
	OrderItemNumber int             `json:"order_item_number"`
	ProductID       int             `json:"product_id"`
	Quantity        int             `json:"quantity"`
	Amount          decimal.Decimal `json:"amount"`
}
