package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jumjum/admin-api/internal/domain/entity"
	"github.com/jumjum/admin-api/internal/domain/enum"
)

// UnknownItemName is the display fallback for line items without a name.
// Items missing both itemId and name all merge under this key; that
// merge ambiguity is accepted, not an error.
const UnknownItemName = "Unknown Item"

// gstRate is the fixed 5% GST applied to the aggregated subtotal.
// Changing it is a deployment-time code change, not configuration.
var gstRate = decimal.NewFromFloat(0.05)

// AggregateItems folds the line items of the given bills into one row per
// item identity (itemId when present, display name otherwise), filtered by
// category. Quantities and amounts sum across occurrences; descriptive
// fields keep the first-seen values. Rows come back sorted by total amount
// descending, ties keeping first-encounter order.
func AggregateItems(bills []entity.Bill, category enum.Category) []entity.AggregatedRow {
	rows := make([]entity.AggregatedRow, 0)
	index := make(map[string]int)

	for _, bill := range bills {
		for _, item := range bill.Items {
			if !category.Includes(item.IsKitchen) {
				continue
			}

			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			amount := item.Price.Mul(decimal.NewFromInt(int64(qty)))

			key := item.ItemID
			if key == "" {
				key = item.Name
			}
			if key == "" {
				key = UnknownItemName
			}

			if i, ok := index[key]; ok {
				rows[i].Quantity += qty
				rows[i].TotalAmount = rows[i].TotalAmount.Add(amount)
				continue
			}

			name := item.Name
			if name == "" {
				name = UnknownItemName
			}
			packSize := item.PackSize
			if packSize == "" {
				packSize = "-"
			}
			itemCategory := item.Category
			if itemCategory == "" {
				itemCategory = enum.CategoryFromKitchenFlag(item.IsKitchen).String()
			}

			index[key] = len(rows)
			rows = append(rows, entity.AggregatedRow{
				ItemID:      item.ItemID,
				Name:        name,
				PackSize:    packSize,
				Category:    itemCategory,
				Price:       item.Price,
				Quantity:    qty,
				TotalAmount: amount,
			})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalAmount.GreaterThan(rows[j].TotalAmount)
	})

	return rows
}

// CalculateTotals derives report totals from an aggregated row set.
// All-zero totals for empty input; never fails.
func CalculateTotals(rows []entity.AggregatedRow) entity.Totals {
	subtotal := decimal.Zero
	totalQuantity := 0
	for _, row := range rows {
		subtotal = subtotal.Add(row.TotalAmount)
		totalQuantity += row.Quantity
	}

	gst := subtotal.Mul(gstRate).Round(2)

	return entity.Totals{
		Subtotal:      subtotal,
		TotalQuantity: totalQuantity,
		GST:           gst,
		GrandTotal:    subtotal.Add(gst),
		ItemCount:     len(rows),
	}
}
