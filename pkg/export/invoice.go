package export

import (
	"fmt"
	"math/rand"
	"time"
)

// InvoiceNumber builds a display invoice number: prefix, two-digit year,
// month and day, then a zero-padded four-digit random suffix.
// It is a render-time display artifact, not a persisted identifier;
// collisions across renders are possible and acceptable.
func InvoiceNumber(prefix string, now time.Time, rnd *rand.Rand) string {
	return fmt.Sprintf("%s%s%04d", prefix, now.Format("060102"), rnd.Intn(10000))
}

// CSVFileName builds the download name for a CSV export:
// <brand>-report-<period>-<category>-<timestamp>.csv
func CSVFileName(brand, period, category string, now time.Time) string {
	return fmt.Sprintf("%s-report-%s-%s-%d.csv", brand, period, category, now.UnixMilli())
}
