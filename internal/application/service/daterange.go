package service

import (
	"time"

	"github.com/jumjum/admin-api/internal/domain/enum"
)

// DateRange is a concrete inclusive date interval in local time, with
// Start normalized to 00:00:00.000 and End to 23:59:59.999 of its day.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// StartOfDay returns t at 00:00:00.000 local time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns t at 23:59:59.999 local time.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// ResolveDateRange maps a named period onto a concrete interval relative
// to now. The weekly window is the trailing 7 calendar days including
// today (today-6 .. today). The second return value is false when the
// period has no resolvable range: a custom period missing either bound
// (the caller shows an empty report rather than fetching), or the
// unfiltered "all" period.
func ResolveDateRange(period enum.Period, now time.Time, customStart, customEnd *time.Time) (DateRange, bool) {
	switch period {
	case enum.PeriodToday:
		return DateRange{Start: StartOfDay(now), End: EndOfDay(now)}, true
	case enum.PeriodWeekly:
		return DateRange{Start: StartOfDay(now.AddDate(0, 0, -6)), End: EndOfDay(now)}, true
	case enum.PeriodMonthly:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return DateRange{Start: first, End: EndOfDay(last)}, true
	case enum.PeriodYearly:
		first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		last := time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
		return DateRange{Start: first, End: EndOfDay(last)}, true
	case enum.PeriodCustom:
		if customStart == nil || customEnd == nil {
			return DateRange{}, false
		}
		return DateRange{Start: StartOfDay(*customStart), End: EndOfDay(*customEnd)}, true
	default:
		return DateRange{}, false
	}
}

// DateRangeLabel renders the interval for report headers, DD/MM/YYYY.
func DateRangeLabel(period enum.Period, now time.Time, customStart, customEnd *time.Time) string {
	switch period {
	case enum.PeriodAll:
		return "All Time"
	case enum.PeriodCustom:
		if customStart == nil || customEnd == nil {
			return "Select dates"
		}
	}
	r, ok := ResolveDateRange(period, now, customStart, customEnd)
	if !ok {
		return "All Time"
	}
	if r.Start.Year() == r.End.Year() && r.Start.YearDay() == r.End.YearDay() {
		return r.Start.Format("02/01/2006")
	}
	return r.Start.Format("02/01/2006") + " - " + r.End.Format("02/01/2006")
}
