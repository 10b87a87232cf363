package analytics

import (
	"context"
	"time"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"
)

// Store is the read side of the transaction store the engine folds over.
// ScanRange is inclusive on both ends at date granularity.
type Store interface {
	ScanRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error)
}

// MetricsCache materializes per-day rollups. It is an optimization: a
// miss or a cache failure degrades to recomputation, never to an error.
type MetricsCache interface {
	GetDailyMetrics(ctx context.Context, date string) (*models.DailyMetrics, error)
	CacheDailyMetrics(ctx context.Context, m models.DailyMetrics) error
}

// Service computes per-day performance metrics and derives SLA action
// items from them.
type Service interface {
	// AnalyzePerformance returns one entry per calendar date in
	// [start, end] that has at least one transaction, ascending by date.
	// Days without transactions are omitted, not zero-filled.
	AnalyzePerformance(ctx context.Context, start, end time.Time) ([]models.DailyMetrics, error)

	// DailyMetrics returns a single day's rollup, or nil when the day has
	// no transactions.
	DailyMetrics(ctx context.Context, date time.Time) (*models.DailyMetrics, error)

	// Summarize rolls a date range up for the dashboard summary panel, or
	// nil when no day in the range has data.
	Summarize(ctx context.Context, start, end time.Time) (*models.RangeSummary, error)

	// ActionItems evaluates one day's metrics against the SLA thresholds.
	ActionItems(m models.DailyMetrics) []string
}
