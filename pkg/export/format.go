package export

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyGlyph prefixes every on-screen and printable amount.
const CurrencyGlyph = "₹"

// FormatINR renders an amount with the rupee glyph, en-IN digit grouping
// (last three digits, then groups of two) and exactly two decimals.
// 1234567.5 => "₹12,34,567.50"
func FormatINR(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:] // includes the dot

	return CurrencyGlyph + sign + groupIndian(intPart) + fracPart
}

// FormatAmount renders a plain fixed-2 amount with no glyph or grouping,
// the form used in CSV cells.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatDate renders a calendar date as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// groupIndian inserts commas per the Indian numbering system: the last
// group has three digits, every group before it has two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
