package store

import (
	"database/sql"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

func itemRow(orderNumber int, date time.Time, amount string, item, product, qty int, itemAmount string) joinedRow {
	return joinedRow{
		OrderNumber:   orderNumber,
		OrderDateTime: date,
		Amount:        decimal.RequireFromString(amount),
		ItemNumber:    sql.NullInt64{Int64: int64(item), Valid: true},
		ProductID:     sql.NullInt64{Int64: int64(product), Valid: true},
		Quantity:      sql.NullInt64{Int64: int64(qty), Valid: true},
		ItemAmount:    decimal.NullDecimal{Decimal: decimal.RequireFromString(itemAmount), Valid: true},
	}
}

var _ = Describe("assembleOrder", func() {
	date := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	Context("with no joined rows", func() {
		It("reports not found", func() {
			order, err := assembleOrder(nil)
			Expect(err).To(MatchError(ErrNotFound))
			Expect(order).To(BeNil())
		})
	})

	Context("with one all-null sentinel row", func() {
		It("returns the order with an empty item list", func() {
			order, err := assembleOrder([]joinedRow{{
				OrderNumber:   2002,
				OrderDateTime: date,
				Amount:        decimal.RequireFromString("0.00"),
			}})
			Expect(err).NotTo(HaveOccurred())
			Expect(order.OrderNumber).To(Equal(2002))
			Expect(order.OrderItems).NotTo(BeNil())
			Expect(order.OrderItems).To(BeEmpty())
		})
	})

	Context("with multiple item rows", func() {
		rows := []joinedRow{
			itemRow(1001, date, "15.00", 1, 55, 2, "10.00"),
			itemRow(1001, date, "15.00", 2, 56, 1, "5.00"),
		}

		It("takes the order fields from the first row", func() {
			order, err := assembleOrder(rows)
			Expect(err).NotTo(HaveOccurred())
			Expect(order.OrderNumber).To(Equal(1001))
			Expect(order.OrderDateTime).To(Equal(date))
			Expect(order.Amount.Equal(decimal.RequireFromString("15.00"))).To(BeTrue())
		})

		It("appends one item per row in row order", func() {
			order, err := assembleOrder(rows)
			Expect(err).NotTo(HaveOccurred())
			Expect(order.OrderItems).To(HaveLen(2))
			Expect(order.OrderItems[0].OrderItemNumber).To(Equal(1))
			Expect(order.OrderItems[0].ProductID).To(Equal(55))
			Expect(order.OrderItems[0].Quantity).To(Equal(2))
			Expect(order.OrderItems[1].OrderItemNumber).To(Equal(2))
			Expect(order.OrderItems[1].ProductID).To(Equal(56))
		})

		It("allocates a fresh item list per call", func() {
			first, err := assembleOrder(rows)
			Expect(err).NotTo(HaveOccurred())
			second, err := assembleOrder(rows)
			Expect(err).NotTo(HaveOccurred())

			first.OrderItems[0].Quantity = 99
			Expect(second.OrderItems[0].Quantity).To(Equal(2))
		})
	})
})
