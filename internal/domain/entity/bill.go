package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillLineItem is one product entry within a bill as returned by the
// upstream billing API. Legacy records may lack the catalog identifier,
// pack size, price or quantity; aggregation applies the documented
// defaults rather than rejecting such rows.
type BillLineItem struct {
	ItemID    string          `json:"itemId,omitempty"`
	Name      string          `json:"name"`
	PackSize  string          `json:"packSize,omitempty"`
	Category  string          `json:"category,omitempty"`
	IsKitchen bool            `json:"isKitchen"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// BillCustomer is the optional customer block on a bill.
type BillCustomer struct {
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	TableNumber string `json:"tableNumber,omitempty"`
}

// Bill is one completed checkout transaction.
type Bill struct {
	BillID    string          `json:"billId"`
	CreatedAt time.Time       `json:"createdAt"`
	Items     []BillLineItem  `json:"items"`
	Customer  *BillCustomer   `json:"customer,omitempty"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status,omitempty"`
}

// EffectiveStatus returns the lifecycle tag, defaulting to "open" for
// records that predate the status field. Display-only.
func (b *Bill) EffectiveStatus() string {
	if b.Status == "" {
		return "open"
	}
	return b.Status
}

// CustomerName returns the customer name or an empty string.
func (b *Bill) CustomerName() string {
	if b.Customer == nil {
		return ""
	}
	return b.Customer.Name
}
