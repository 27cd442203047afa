package service

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/jumjum/admin-api/internal/config"
	"github.com/jumjum/admin-api/internal/domain/entity"
	"github.com/jumjum/admin-api/internal/domain/enum"
	"github.com/jumjum/admin-api/internal/domain/repository"
	"github.com/jumjum/admin-api/pkg/export"
)

// ReportQuery selects which bills feed a report and how they are grouped.
type ReportQuery struct {
	Period   enum.Period
	Category enum.Category
	Start    *time.Time
	End      *time.Time
}

// ReportService runs the resolve/fetch/aggregate/render pipeline.
type ReportService struct {
	bills         repository.BillRepository
	business      config.BusinessConfig
	allBillsLimit int

	now func() time.Time

	rndMu sync.Mutex
	rnd   *rand.Rand

	// Each generation is tagged with a monotonic sequence number so a
	// stale completion never replaces the snapshot of a newer request.
	seqMu     sync.Mutex
	nextSeq   uint64
	latestSeq uint64
	latest    *entity.Report
}

// NewReportService creates a new report service.
func NewReportService(bills repository.BillRepository, business config.BusinessConfig, allBillsLimit int) *ReportService {
	return &ReportService{
		bills:         bills,
		business:      business,
		allBillsLimit: allBillsLimit,
		now:           time.Now,
		rnd:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateReport recomputes a report from freshly fetched bills. A fetch
// failure degrades to zero bills with a logged diagnostic; an incomplete
// custom range performs no fetch at all. The method never fails.
func (s *ReportService) GenerateReport(ctx context.Context, q ReportQuery) *entity.Report {
	s.seqMu.Lock()
	s.nextSeq++
	gen := s.nextSeq
	s.seqMu.Unlock()

	bills := s.fetchBills(ctx, q)

	rows := AggregateItems(bills, q.Category)
	totals := CalculateTotals(rows)

	now := s.now()
	report := &entity.Report{
		Header: entity.ReportHeader{
			BusinessName: s.business.Name,
			GSTIN:        s.business.GSTIN,
		},
		Period:         q.Period.String(),
		Category:       q.Category.String(),
		DateRangeLabel: DateRangeLabel(q.Period, now, q.Start, q.End),
		GeneratedAt:    export.FormatDate(now),
		InvoiceNo:      s.newInvoiceNumber(now),
		BillCount:      len(bills),
		Rows:           rows,
		Totals:         totals,
	}

	s.storeLatest(gen, report)
	return report
}

// ReportSummary backs the all/kitchen/bar revenue cards of the report view.
type ReportSummary struct {
	Period         string  `json:"period"`
	DateRange      string  `json:"date_range"`
	BillCount      int     `json:"bill_count"`
	TotalRevenue   float64 `json:"total_revenue"`
	KitchenRevenue float64 `json:"kitchen_revenue"`
	BarRevenue     float64 `json:"bar_revenue"`
}

// GenerateSummary computes per-category grand totals over one fetch of the
// selected bill set.
func (s *ReportService) GenerateSummary(ctx context.Context, q ReportQuery) *ReportSummary {
	bills := s.fetchBills(ctx, q)

	grandTotal := func(category enum.Category) float64 {
		return CalculateTotals(AggregateItems(bills, category)).GrandTotal.InexactFloat64()
	}

	return &ReportSummary{
		Period:         q.Period.String(),
		DateRange:      DateRangeLabel(q.Period, s.now(), q.Start, q.End),
		BillCount:      len(bills),
		TotalRevenue:   grandTotal(enum.CategoryAll),
		KitchenRevenue: grandTotal(enum.CategoryKitchen),
		BarRevenue:     grandTotal(enum.CategoryBar),
	}
}

// RenderCSV renders a generated report as CSV text.
func (s *ReportService) RenderCSV(report *entity.Report) string {
	return export.GenerateCSV(report)
}

// RenderHTML renders a generated report as a printable HTML document.
func (s *ReportService) RenderHTML(report *entity.Report) string {
	return export.GeneratePrintableHTML(report)
}

// CSVFileName builds the download name for a CSV export of q.
func (s *ReportService) CSVFileName(q ReportQuery) string {
	return export.CSVFileName(s.business.Brand, q.Period.Slug(), q.Category.Slug(), s.now())
}

// LatestReport returns the most recently stored report snapshot, or nil
// before the first generation.
func (s *ReportService) LatestReport() *entity.Report {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	return s.latest
}

func (s *ReportService) storeLatest(gen uint64, report *entity.Report) {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	if gen > s.latestSeq {
		s.latestSeq = gen
		s.latest = report
	}
}

func (s *ReportService) newInvoiceNumber(now time.Time) string {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return export.InvoiceNumber(s.business.InvoicePrefix, now, s.rnd)
}

// fetchBills selects the upstream call for the query period. Weekly,
// monthly and yearly windows are resolved locally and pushed down as
// explicit date ranges.
func (s *ReportService) fetchBills(ctx context.Context, q ReportQuery) []entity.Bill {
	return fetchBillsForPeriod(ctx, s.bills, q, s.now(), s.allBillsLimit)
}

func fetchBillsForPeriod(ctx context.Context, repo repository.BillRepository, q ReportQuery, now time.Time, allLimit int) []entity.Bill {
	var (
		bills []entity.Bill
		err   error
	)

	switch q.Period {
	case enum.PeriodAll:
		bills, err = repo.FetchAll(ctx, allLimit)
	case enum.PeriodToday:
		bills, err = repo.FetchToday(ctx)
	default:
		r, ok := ResolveDateRange(q.Period, now, q.Start, q.End)
		if !ok {
			// Incomplete custom range: no data to fetch, empty report.
			return nil
		}
		bills, err = repo.FetchByDateRange(ctx, r.Start, r.End)
	}

	if err != nil {
		log.Printf("report: bill fetch failed (%s): %v", q.Period.Slug(), err)
		return nil
	}
	return bills
}
