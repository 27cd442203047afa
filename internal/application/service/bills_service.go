package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jumjum/admin-api/internal/domain/entity"
	"github.com/jumjum/admin-api/internal/domain/enum"
	"github.com/jumjum/admin-api/internal/domain/repository"
	"github.com/jumjum/admin-api/pkg/pagination"
)

// BillsService serves the bill history view.
type BillsService struct {
	bills         repository.BillRepository
	allBillsLimit int
	now           func() time.Time
}

// NewBillsService creates a new bills service.
func NewBillsService(bills repository.BillRepository, allBillsLimit int) *BillsService {
	return &BillsService{
		bills:         bills,
		allBillsLimit: allBillsLimit,
		now:           time.Now,
	}
}

// BillHistoryQuery filters the bill history listing.
type BillHistoryQuery struct {
	Period     enum.Period
	Search     string
	Pagination *pagination.PaginationParams
}

// BillHistoryPage is one page of bill history plus the revenue sum of the
// whole filtered set.
type BillHistoryPage struct {
	*pagination.PaginatedResult[entity.Bill]
	TotalRevenue float64 `json:"total_revenue"`
}

// ListBills returns bills newest-first, filtered by period and an optional
// case-insensitive search over customer name and bill ID. A fetch failure
// degrades to an empty page, same as the report pipeline.
func (s *BillsService) ListBills(ctx context.Context, q BillHistoryQuery) *BillHistoryPage {
	bills := fetchBillsForPeriod(ctx, s.bills, ReportQuery{Period: q.Period}, s.now(), s.allBillsLimit)

	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		filtered := bills[:0:0]
		for _, bill := range bills {
			if strings.Contains(strings.ToLower(bill.CustomerName()), search) ||
				strings.Contains(strings.ToLower(bill.BillID), search) {
				filtered = append(filtered, bill)
			}
		}
		bills = filtered
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].CreatedAt.After(bills[j].CreatedAt)
	})

	revenue := decimal.Zero
	for _, bill := range bills {
		revenue = revenue.Add(bill.Total)
	}

	params := q.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	items, page := pagination.Page(bills, params)

	return &BillHistoryPage{
		PaginatedResult: pagination.NewPaginatedResult(items, page),
		TotalRevenue:    revenue.InexactFloat64(),
	}
}
