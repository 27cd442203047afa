package repository

import (
	"context"
	"time"

	"github.com/jumjum/admin-api/internal/domain/entity"
)

// BillRepository fetches completed bills from the upstream billing API.
// Weekly/monthly/yearly report windows are resolved by the caller and
// pushed down here as explicit date ranges.
type BillRepository interface {
	// FetchAll returns the most recent bills, capped at limit.
	FetchAll(ctx context.Context, limit int) ([]entity.Bill, error)

	// FetchToday returns bills created on the current calendar day.
	FetchToday(ctx context.Context) ([]entity.Bill, error)

	// FetchByDateRange returns bills whose creation timestamp falls within
	// the inclusive local calendar-day interval [start, end].
	FetchByDateRange(ctx context.Context, start, end time.Time) ([]entity.Bill, error)
}
