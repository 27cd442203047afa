package export

import (
	"fmt"
	"strings"

	"github.com/jumjum/admin-api/internal/domain/entity"
)

// GSTCaption labels the tax summary line on exports.
const GSTCaption = "GST (5%)"

// GenerateCSV renders a report as CSV text: a business header block,
// the column header row, one numbered row per aggregated item, and the
// three summary rows. Item names are wrapped in quotes to tolerate
// embedded commas; embedded quotes or newlines in names are not escaped.
func GenerateCSV(report *entity.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s - BILLING REPORT\n", report.Header.BusinessName)
	fmt.Fprintf(&b, "Date Range: %s\n", report.DateRangeLabel)
	fmt.Fprintf(&b, "Category: %s\n", report.Category)
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt)

	b.WriteString("S.No,Item ID,Item Name,Pack Size,Category,Quantity,Rate,Amount\n")

	for i, row := range report.Rows {
		fmt.Fprintf(&b, "%d,%s,\"%s\",%s,%s,%d,%s,%s\n",
			i+1,
			row.ItemID,
			row.Name,
			row.PackSize,
			row.Category,
			row.Quantity,
			FormatAmount(row.Price),
			FormatAmount(row.TotalAmount),
		)
	}

	totals := report.Totals
	fmt.Fprintf(&b, "\nTOTAL,,,,,%d,,%s\n", totals.TotalQuantity, FormatAmount(totals.Subtotal))
	fmt.Fprintf(&b, "%s,,,,,,,%s\n", GSTCaption, FormatAmount(totals.GST))
	fmt.Fprintf(&b, "GRAND TOTAL,,,,,,,%s\n", FormatAmount(totals.GrandTotal))

	return b.String()
}
