package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// AggregatedRow is one report row: all line items sharing an identity key
// merged across bills. Descriptive fields come from the first contributing
// item; quantity and total amount are running sums.
type AggregatedRow struct {
	ItemID      string          `json:"item_id"`
	Name        string          `json:"name"`
	PackSize    string          `json:"pack_size"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"-"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"-"`
}

// MarshalJSON custom marshaler to emit amounts as plain JSON numbers
func (r AggregatedRow) MarshalJSON() ([]byte, error) {
	type Alias AggregatedRow
	return json.Marshal(&struct {
		Alias
		Price       float64 `json:"price"`
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(r),
		Price:       r.Price.InexactFloat64(),
		TotalAmount: r.TotalAmount.InexactFloat64(),
	})
}

// Totals are derived from a row set on every report request, never persisted.
type Totals struct {
	Subtotal      decimal.Decimal `json:"-"`
	TotalQuantity int             `json:"total_quantity"`
	GST           decimal.Decimal `json:"-"`
	GrandTotal    decimal.Decimal `json:"-"`
	ItemCount     int             `json:"item_count"`
}

// MarshalJSON custom marshaler to emit amounts as plain JSON numbers
func (t Totals) MarshalJSON() ([]byte, error) {
	type Alias Totals
	return json.Marshal(&struct {
		Alias
		Subtotal   float64 `json:"subtotal"`
		GST        float64 `json:"gst"`
		GrandTotal float64 `json:"grand_total"`
	}{
		Alias:      Alias(t),
		Subtotal:   t.Subtotal.InexactFloat64(),
		GST:        t.GST.InexactFloat64(),
		GrandTotal: t.GrandTotal.InexactFloat64(),
	})
}

// ReportHeader holds the business identity printed at the top of a report.
type ReportHeader struct {
	BusinessName string `json:"business_name"`
	GSTIN        string `json:"gstin,omitempty"`
}

// Report is a value object representing one generated billing report.
// It is composed from freshly fetched bills on every request and is
// never cached or mutated in place.
type Report struct {
	Header         ReportHeader    `json:"header"`
	Period         string          `json:"period"`
	Category       string          `json:"category"`
	DateRangeLabel string          `json:"date_range"`
	GeneratedAt    string          `json:"generated_at"`
	InvoiceNo      string          `json:"invoice_no"`
	BillCount      int             `json:"bill_count"`
	Rows           []AggregatedRow `json:"rows"`
	Totals         Totals          `json:"totals"`
}
