package service

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jumjum/admin-api/internal/domain/entity"
	"github.com/jumjum/admin-api/internal/domain/enum"
	"github.com/jumjum/admin-api/internal/domain/repository"
)

// StatsService provides dashboard statistics over recent bills.
type StatsService struct {
	bills         repository.BillRepository
	allBillsLimit int
	now           func() time.Time
}

// NewStatsService creates a new stats service.
func NewStatsService(bills repository.BillRepository, allBillsLimit int) *StatsService {
	return &StatsService{
		bills:         bills,
		allBillsLimit: allBillsLimit,
		now:           time.Now,
	}
}

// DashboardStats represents dashboard statistics.
type DashboardStats struct {
	TotalRevenue   float64           `json:"total_revenue"`
	TotalBills     int               `json:"total_bills"`
	TodayRevenue   float64           `json:"today_revenue"`
	TodayBills     int               `json:"today_bills"`
	KitchenRevenue float64           `json:"kitchen_revenue"`
	BarRevenue     float64           `json:"bar_revenue"`
	AvgBillValue   float64           `json:"avg_bill_value"`
	DailySales     []DailySalesPoint `json:"daily_sales"`
	TopItems       []TopItemPoint    `json:"top_items"`
}

// DailySalesPoint is one day of revenue in the trailing week.
type DailySalesPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Bills   int     `json:"bills"`
}

// TopItemPoint is one entry in the top-sellers list.
type TopItemPoint struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// GetDashboardStats computes the dashboard overview from the most recent
// bills. A fetch failure degrades to all-zero stats with a logged
// diagnostic, matching the report pipeline's behavior.
func (s *StatsService) GetDashboardStats(ctx context.Context) *DashboardStats {
	bills, err := s.bills.FetchAll(ctx, s.allBillsLimit)
	if err != nil {
		log.Printf("dashboard: bill fetch failed: %v", err)
		bills = nil
	}

	stats := &DashboardStats{
		TotalBills: len(bills),
		DailySales: make([]DailySalesPoint, 0, 7),
	}

	now := s.now()
	today := StartOfDay(now)

	totalRevenue := decimal.Zero
	todayRevenue := decimal.Zero
	for _, bill := range bills {
		totalRevenue = totalRevenue.Add(bill.Total)
		if StartOfDay(bill.CreatedAt.In(now.Location())).Equal(today) {
			todayRevenue = todayRevenue.Add(bill.Total)
			stats.TodayBills++
		}
	}
	stats.TotalRevenue = totalRevenue.InexactFloat64()
	stats.TodayRevenue = todayRevenue.InexactFloat64()
	if len(bills) > 0 {
		stats.AvgBillValue = totalRevenue.Div(decimal.NewFromInt(int64(len(bills)))).Round(2).InexactFloat64()
	}

	stats.KitchenRevenue = CalculateTotals(AggregateItems(bills, enum.CategoryKitchen)).GrandTotal.InexactFloat64()
	stats.BarRevenue = CalculateTotals(AggregateItems(bills, enum.CategoryBar)).GrandTotal.InexactFloat64()

	// Daily sales for the trailing 7 days, oldest first
	for i := 6; i >= 0; i-- {
		day := StartOfDay(now.AddDate(0, 0, -i))

		dayRevenue := decimal.Zero
		dayBills := 0
		for _, bill := range bills {
			if StartOfDay(bill.CreatedAt.In(now.Location())).Equal(day) {
				dayRevenue = dayRevenue.Add(bill.Total)
				dayBills++
			}
		}

		stats.DailySales = append(stats.DailySales, DailySalesPoint{
			Date:    day.Format("Jan 02"),
			Revenue: dayRevenue.InexactFloat64(),
			Bills:   dayBills,
		})
	}

	stats.TopItems = topItems(bills, 5)
	return stats
}

// topItems returns the highest-selling items by quantity.
func topItems(bills []entity.Bill, limit int) []TopItemPoint {
	rows := AggregateItems(bills, enum.CategoryAll)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Quantity > rows[j].Quantity
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	points := make([]TopItemPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, TopItemPoint{
			Name:     row.Name,
			Quantity: row.Quantity,
			Revenue:  row.TotalAmount.InexactFloat64(),
		})
	}
	return points
}
