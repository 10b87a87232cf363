// Package analytics turns raw transaction history into per-day
// performance metrics and SLA action items. The engine is stateless: it
// takes a store handle and computes fresh on every call.
package analytics

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/validation"
)

type service struct {
	store Store
	cache MetricsCache
}

// NewService creates a new analytics service. The cache may be nil when
// no metrics materialization is wired.
func NewService(store Store, cache MetricsCache) Service {
	if store == nil {
		panic("store is required")
	}
	if cache == nil {
		cache = noopCache{}
	}
	return &service{store: store, cache: cache}
}

type dayBucket struct {
	count     int
	failures  int
	breaches  int
	totalTime float64
}

func (s *service) AnalyzePerformance(ctx context.Context, start, end time.Time) ([]models.DailyMetrics, error) {
	txs, err := s.store.ScanRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	buckets := make(map[string]*dayBucket)
	for i := range txs {
		tx := &txs[i]
		b := buckets[tx.Date()]
		if b == nil {
			b = &dayBucket{}
			buckets[tx.Date()] = b
		}
		b.count++
		b.totalTime += tx.ProcessingTime
		if tx.Failed() {
			b.failures++
		}
		if tx.ProcessingTime > validation.ResponseTimeSLASeconds {
			b.breaches++
		}
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	metrics := make([]models.DailyMetrics, 0, len(dates))
	for _, date := range dates {
		b := buckets[date]
		metrics = append(metrics, models.DailyMetrics{
			Date:              date,
			TotalTransactions: b.count,
			AvgResponseTime:   b.totalTime / float64(b.count),
			ErrorRate:         100 * float64(b.failures) / float64(b.count),
			SLABreaches:       b.breaches,
		})
	}
	return metrics, nil
}

func (s *service) DailyMetrics(ctx context.Context, date time.Time) (*models.DailyMetrics, error) {
	day := date.UTC().Format(DateLayout)

	if cached, err := s.cache.GetDailyMetrics(ctx, day); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("metrics cache read failed for %s: %v", day, err)
	}

	metrics, err := s.AnalyzePerformance(ctx, date, date)
	if err != nil {
		return nil, err
	}
	if len(metrics) == 0 {
		return nil, nil
	}

	m := metrics[0]
	if elapsedDay(day) {
		if err := s.cache.CacheDailyMetrics(ctx, m); err != nil {
			log.Printf("metrics cache write failed for %s: %v", day, err)
		}
	}
	return &m, nil
}

func (s *service) Summarize(ctx context.Context, start, end time.Time) (*models.RangeSummary, error) {
	metrics, err := s.AnalyzePerformance(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(metrics) == 0 {
		return nil, nil
	}

	summary := &models.RangeSummary{
		StartDate:    start.UTC().Format(DateLayout),
		EndDate:      end.UTC().Format(DateLayout),
		DaysWithData: len(metrics),
	}
	var rateSum, timeSum float64
	for _, m := range metrics {
		summary.TotalTransactions += m.TotalTransactions
		summary.TotalSLABreaches += m.SLABreaches
		rateSum += m.ErrorRate
		timeSum += m.AvgResponseTime
	}
	summary.AvgErrorRate = rateSum / float64(len(metrics))
	summary.AvgResponseTime = timeSum / float64(len(metrics))
	return summary, nil
}

// ActionItems applies the SLA rules to one day's metrics. Rules are
// independent and evaluated in order; all firing rules contribute an item.
func (s *service) ActionItems(m models.DailyMetrics) []string {
	var actions []string

	if m.AvgResponseTime > ResponseTimeSLA {
		actions = append(actions, ActionHighResponseTime)
	}
	if m.ErrorRate > ErrorRateSLA {
		actions = append(actions, ActionErrorPatterns)
	}
	if m.SLABreaches > 0 {
		actions = append(actions, fmt.Sprintf("Review %d transactions exceeding response time SLA", m.SLABreaches))
	}

	if len(actions) == 0 {
		return []string{ActionNoneRequired}
	}
	return actions
}

// elapsedDay reports whether the UTC calendar date is fully in the past,
// i.e. its rollup can no longer change under append-only history.
func elapsedDay(day string) bool {
	return day < time.Now().UTC().Format(DateLayout)
}

type noopCache struct{}

func (noopCache) GetDailyMetrics(ctx context.Context, date string) (*models.DailyMetrics, error) {
	return nil, nil
}

func (noopCache) CacheDailyMetrics(ctx context.Context, m models.DailyMetrics) error {
	return nil
}
