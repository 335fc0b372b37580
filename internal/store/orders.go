package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkgan/ccassign2api/internal/model"
)

// orderJoinQuery left-joins order to order_item so that an order without
// items still yields one row, with all item columns null. "order" needs
// quoting because it is a reserved word.
const orderJoinQuery = `
SELECT o.order_number, o.order_date_time, o.amount,
       oi.order_item_number, oi.product_id, oi.quantity, oi.amount AS item_amount
FROM "order" o
LEFT JOIN order_item oi ON o.order_number = oi.order_number
WHERE o.order_number = $1`

// joinedRow is one row of the order/order_item join. The item columns are
// nullable: a row where ItemNumber is invalid is the outer-join sentinel
// for an order with no items.
type joinedRow struct {
	OrderNumber   int
	OrderDateTime time.Time
	Amount        decimal.Decimal
	ItemNumber    sql.NullInt64
	ProductID     sql.NullInt64
	Quantity      sql.NullInt64
	ItemAmount    decimal.NullDecimal
}

func (s *Store) ListOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT order_number, order_date_time, amount FROM "order"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.OrderNumber, &o.OrderDateTime, &o.Amount); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// GetOrderWithItems fetches one order and its items in a single query and
// rebuilds the nested shape from the flat join. Zero joined rows means the
// order does not exist; that case is ErrNotFound, never an empty order.
func (s *Store) GetOrderWithItems(ctx context.Context, orderNumber int) (*model.OrderDetail, error) {
	rows, err := s.db.QueryContext(ctx, orderJoinQuery, orderNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var joined []joinedRow
	for rows.Next() {
		var r joinedRow
		if err := rows.Scan(&r.OrderNumber, &r.OrderDateTime, &r.Amount,
			&r.ItemNumber, &r.ProductID, &r.Quantity, &r.ItemAmount); err != nil {
			return nil, err
		}
		joined = append(joined, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assembleOrder(joined)
}

// assembleOrder groups the joined rows into one order with a nested item
// list. Order-level columns are identical on every row by construction of
// the join, so they are read from the first row only. Each order gets a
// freshly allocated item slice.
func assembleOrder(joined []joinedRow) (*model.OrderDetail, error) {
	if len(joined) == 0 {
		return nil, ErrNotFound
	}

	detail := &model.OrderDetail{
		Order: model.Order{
			OrderNumber:   joined[0].OrderNumber,
			OrderDateTime: joined[0].OrderDateTime,
			Amount:        joined[0].Amount,
		},
		OrderItems: []model.OrderItem{},
	}

	for _, r := range joined {
		if !r.ItemNumber.Valid {
			// Outer-join sentinel: the order exists but has no items.
			continue
		}
		detail.OrderItems = append(detail.OrderItems, model.OrderItem{
			OrderItemNumber: int(r.ItemNumber.Int64),
			ProductID:       int(r.ProductID.Int64),
			Quantity:        int(r.Quantity.Int64),
			Amount:          r.ItemAmount.Decimal,
		})
	}

	return detail, nil
}
