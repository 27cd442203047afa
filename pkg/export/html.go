package export

import (
	"html/template"
	"strings"

	"github.com/jumjum/admin-api/internal/domain/entity"
)

type htmlRow struct {
	No       int
	ItemID   string
	Name     string
	PackSize string
	Category string
	Quantity int
	Rate     string
	Amount   string
}

type htmlReport struct {
	BusinessName  string
	GSTIN         string
	Category      string
	DateRange     string
	InvoiceNo     string
	GeneratedAt   string
	ItemCount     int
	Rows          []htmlRow
	TotalQuantity int
	Subtotal      string
	GSTCaption    string
	GST           string
	GrandTotal    string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.BusinessName}} - Billing Report</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: Arial, sans-serif; font-size: 12px; padding: 20px; }
.header { text-align: center; margin-bottom: 20px; border-bottom: 2px solid #333; padding-bottom: 15px; }
.header h1 { font-size: 18px; margin-bottom: 5px; }
.header p { margin: 2px 0; color: #555; }
.meta { display: flex; justify-content: space-between; margin-bottom: 20px; }
.meta-right { text-align: right; }
table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
th, td { border: 1px solid #333; padding: 8px; text-align: left; }
th { background: #f5f5f5; font-weight: bold; }
.text-right { text-align: right; }
.totals-row { font-weight: bold; background: #f9f9f9; }
.grand-total { font-size: 14px; background: #e8e8e8; }
.footer { margin-top: 30px; display: flex; justify-content: space-between; }
.signature { text-align: center; padding-top: 40px; border-top: 1px solid #333; width: 200px; }
@media print { body { padding: 10px; } }
</style>
</head>
<body>
<div class="header">
<h1>{{.BusinessName}} - BILLING REPORT</h1>
<p>GSTIN: {{.GSTIN}}</p>
</div>
<div class="meta">
<div class="meta-left">
<p><strong>Report Type:</strong> {{.Category}} ITEMS</p>
<p><strong>Date Range:</strong> {{.DateRange}}</p>
<p><strong>Total Items:</strong> {{.ItemCount}}</p>
</div>
<div class="meta-right">
<p><strong>Invoice No:</strong> {{.InvoiceNo}}</p>
<p><strong>Generated:</strong> {{.GeneratedAt}}</p>
</div>
</div>
<table>
<thead>
<tr>
<th width="5%">S.No</th>
<th width="12%">Item ID</th>
<th width="30%">Item Name</th>
<th width="10%">Pack Size</th>
<th width="10%">Category</th>
<th width="8%" class="text-right">Qty</th>
<th width="12%" class="text-right">Rate</th>
<th width="13%" class="text-right">Amount</th>
</tr>
</thead>
<tbody>
{{range .Rows}}<tr>
<td>{{.No}}</td>
<td>{{if .ItemID}}{{.ItemID}}{{else}}-{{end}}</td>
<td>{{.Name}}</td>
<td>{{.PackSize}}</td>
<td>{{.Category}}</td>
<td class="text-right">{{.Quantity}}</td>
<td class="text-right">{{.Rate}}</td>
<td class="text-right">{{.Amount}}</td>
</tr>
{{end}}<tr class="totals-row">
<td colspan="5" class="text-right">SUBTOTAL</td>
<td class="text-right">{{.TotalQuantity}}</td>
<td></td>
<td class="text-right">{{.Subtotal}}</td>
</tr>
<tr class="totals-row">
<td colspan="7" class="text-right">{{.GSTCaption}}</td>
<td class="text-right">{{.GST}}</td>
</tr>
<tr class="totals-row grand-total">
<td colspan="7" class="text-right">GRAND TOTAL</td>
<td class="text-right">{{.GrandTotal}}</td>
</tr>
</tbody>
</table>
<div class="footer">
<div class="signature">Prepared By</div>
<div class="signature">Authorized Signatory</div>
</div>
</body>
</html>
`))

// GeneratePrintableHTML renders a report as a self-contained printable
// document with a receipt-style layout and two empty signature blocks.
// Pure string formatting over a well-typed report; cannot fail.
func GeneratePrintableHTML(report *entity.Report) string {
	view := htmlReport{
		BusinessName:  report.Header.BusinessName,
		GSTIN:         report.Header.GSTIN,
		Category:      strings.ToUpper(report.Category),
		DateRange:     report.DateRangeLabel,
		InvoiceNo:     report.InvoiceNo,
		GeneratedAt:   report.GeneratedAt,
		ItemCount:     report.Totals.ItemCount,
		TotalQuantity: report.Totals.TotalQuantity,
		Subtotal:      FormatINR(report.Totals.Subtotal),
		GSTCaption:    GSTCaption,
		GST:           FormatINR(report.Totals.GST),
		GrandTotal:    FormatINR(report.Totals.GrandTotal),
	}

	for i, row := range report.Rows {
		view.Rows = append(view.Rows, htmlRow{
			No:       i + 1,
			ItemID:   row.ItemID,
			Name:     row.Name,
			PackSize: row.PackSize,
			Category: row.Category,
			Quantity: row.Quantity,
			Rate:     FormatINR(row.Price),
			Amount:   FormatINR(row.TotalAmount),
		})
	}

	var b strings.Builder
	// Execute cannot fail here: the view model is a plain value struct.
	_ = reportTemplate.Execute(&b, view)
	return b.String()
}
