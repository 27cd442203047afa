package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jumjum/admin-api/internal/domain/enum"
)

func TestResolveDateRange(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name      string
		period    enum.Period
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "today",
			period:    enum.PeriodToday,
			wantStart: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, time.March, 15, 23, 59, 59, int(999*time.Millisecond), time.Local),
		},
		{
			name:      "weekly trailing seven days",
			period:    enum.PeriodWeekly,
			wantStart: time.Date(2025, time.March, 9, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, time.March, 15, 23, 59, 59, int(999*time.Millisecond), time.Local),
		},
		{
			name:      "monthly calendar month",
			period:    enum.PeriodMonthly,
			wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, time.March, 31, 23, 59, 59, int(999*time.Millisecond), time.Local),
		},
		{
			name:      "yearly calendar year",
			period:    enum.PeriodYearly,
			wantStart: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local),
			wantEnd:   time.Date(2025, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := ResolveDateRange(tt.period, now, nil, nil)
			require.True(t, ok)
			assert.True(t, r.Start.Equal(tt.wantStart), "start = %s", r.Start)
			assert.True(t, r.End.Equal(tt.wantEnd), "end = %s", r.End)
		})
	}
}

func TestResolveDateRange_MonthlyHandlesShortMonths(t *testing.T) {
	now := time.Date(2024, time.February, 10, 9, 0, 0, 0, time.Local)

	r, ok := ResolveDateRange(enum.PeriodMonthly, now, nil, nil)

	require.True(t, ok)
	assert.Equal(t, 29, r.End.Day(), "leap February ends on the 29th")
	assert.Equal(t, time.February, r.End.Month())
}

func TestResolveDateRange_WeeklyCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2025, time.April, 2, 12, 0, 0, 0, time.Local)

	r, ok := ResolveDateRange(enum.PeriodWeekly, now, nil, nil)

	require.True(t, ok)
	assert.Equal(t, time.March, r.Start.Month())
	assert.Equal(t, 27, r.Start.Day())
}

func TestResolveDateRange_Custom(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)
	start := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.Local)
	end := time.Date(2025, time.March, 7, 18, 0, 0, 0, time.Local)

	r, ok := ResolveDateRange(enum.PeriodCustom, now, &start, &end)

	require.True(t, ok)
	assert.True(t, r.Start.Equal(StartOfDay(start)))
	assert.True(t, r.End.Equal(EndOfDay(end)))
}

func TestResolveDateRange_CustomMissingBound(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)

	_, ok := ResolveDateRange(enum.PeriodCustom, now, &start, nil)
	assert.False(t, ok)

	_, ok = ResolveDateRange(enum.PeriodCustom, now, nil, &start)
	assert.False(t, ok)

	_, ok = ResolveDateRange(enum.PeriodCustom, now, nil, nil)
	assert.False(t, ok)
}

func TestResolveDateRange_AllHasNoRange(t *testing.T) {
	_, ok := ResolveDateRange(enum.PeriodAll, time.Now(), nil, nil)
	assert.False(t, ok)
}

func TestDateRangeLabel(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "15/03/2025", DateRangeLabel(enum.PeriodToday, now, nil, nil))
	assert.Equal(t, "09/03/2025 - 15/03/2025", DateRangeLabel(enum.PeriodWeekly, now, nil, nil))
	assert.Equal(t, "01/03/2025 - 31/03/2025", DateRangeLabel(enum.PeriodMonthly, now, nil, nil))
	assert.Equal(t, "All Time", DateRangeLabel(enum.PeriodAll, now, nil, nil))
	assert.Equal(t, "01/03/2025 - 07/03/2025", DateRangeLabel(enum.PeriodCustom, now, &start, &end))
	assert.Equal(t, "Select dates", DateRangeLabel(enum.PeriodCustom, now, &start, nil))
	assert.Equal(t, "Select dates", DateRangeLabel(enum.PeriodCustom, now, nil, nil))
}

func TestDateRangeLabel_SingleDayCustomRange(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)
	day := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "05/03/2025", DateRangeLabel(enum.PeriodCustom, now, &day, &day))
}
