package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jumjum/admin-api/internal/domain/entity"
)

func newTestStatsService(repo *fakeBillRepo, now time.Time) *StatsService {
	s := NewStatsService(repo, 500)
	s.now = func() time.Time { return now }
	return s
}

func TestGetDashboardStats(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)

	todayBill := bill(item("B1", "Beer", 180, 2, false))
	todayBill.CreatedAt = now.Add(-2 * time.Hour)
	todayBill.Total = decimal.NewFromInt(360)

	oldBill := bill(item("K1", "Paneer Tikka", 200, 1, true))
	oldBill.CreatedAt = yesterday
	oldBill.Total = decimal.NewFromInt(200)

	repo := &fakeBillRepo{bills: []entity.Bill{todayBill, oldBill}}
	s := newTestStatsService(repo, now)

	stats := s.GetDashboardStats(context.Background())

	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.TotalBills)
	assert.InDelta(t, 560.0, stats.TotalRevenue, 0.001)
	assert.Equal(t, 1, stats.TodayBills)
	assert.InDelta(t, 360.0, stats.TodayRevenue, 0.001)
	assert.InDelta(t, 280.0, stats.AvgBillValue, 0.001)
	assert.InDelta(t, 210.0, stats.KitchenRevenue, 0.001)
	assert.InDelta(t, 378.0, stats.BarRevenue, 0.001)

	require.Len(t, stats.DailySales, 7)
	assert.Equal(t, "Mar 09", stats.DailySales[0].Date)
	assert.Equal(t, "Mar 15", stats.DailySales[6].Date)
	assert.InDelta(t, 200.0, stats.DailySales[5].Revenue, 0.001)
	assert.InDelta(t, 360.0, stats.DailySales[6].Revenue, 0.001)
	assert.Equal(t, 1, stats.DailySales[6].Bills)
}

func TestGetDashboardStats_TopItemsByQuantity(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 0, 0, 0, time.Local)
	b := bill(
		item("A", "Soda", 20, 10, false),
		item("B", "Brandy", 300, 2, false),
		item("C", "Beer", 180, 6, false),
	)
	b.CreatedAt = now
	repo := &fakeBillRepo{bills: []entity.Bill{b}}
	s := newTestStatsService(repo, now)

	stats := s.GetDashboardStats(context.Background())

	require.Len(t, stats.TopItems, 3)
	assert.Equal(t, "Soda", stats.TopItems[0].Name)
	assert.Equal(t, 10, stats.TopItems[0].Quantity)
	assert.Equal(t, "Beer", stats.TopItems[1].Name)
	assert.Equal(t, "Brandy", stats.TopItems[2].Name)
}

func TestGetDashboardStats_FetchFailureDegradesToZero(t *testing.T) {
	repo := &fakeBillRepo{err: errors.New("timeout")}
	s := newTestStatsService(repo, time.Now())

	stats := s.GetDashboardStats(context.Background())

	require.NotNil(t, stats)
	assert.Zero(t, stats.TotalBills)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.AvgBillValue)
	assert.Len(t, stats.DailySales, 7)
	assert.Empty(t, stats.TopItems)
}
