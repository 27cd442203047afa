package export

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumber(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		assert.Regexp(t, `^JJ250315\d{4}$`, InvoiceNumber("JJ", now, rnd))
	}
}

func TestInvoiceNumber_PadsShortSuffix(t *testing.T) {
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.Local)
	rnd := rand.New(rand.NewSource(1))

	found := false
	for i := 0; i < 200; i++ {
		n := InvoiceNumber("JJ", now, rnd)
		assert.Len(t, n, 12)
		if n[8] == '0' {
			found = true
		}
	}
	assert.True(t, found, "expected at least one zero-padded suffix in 200 draws")
}

func TestCSVFileName(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)

	name := CSVFileName("jumjum", "weekly", "bar", now)

	assert.Equal(t, "jumjum-report-weekly-bar-1742049000000.csv", name)
}
