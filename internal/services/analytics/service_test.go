package analytics

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func addTx(t *testing.T, store *repositories.MemoryTransactionRepository, id string, ts time.Time, processingTime float64, errorCode *string) {
	t.Helper()
	err := store.Append(context.Background(), &models.Transaction{
		TransactionID:  id,
		Timestamp:      ts,
		MerchantID:     strPtr("M1"),
		Amount:         floatPtr(20),
		Currency:       strPtr("USD"),
		CardType:       strPtr("credit"),
		ErrorCode:      errorCode,
		ProcessingTime: processingTime,
	})
	require.NoError(t, err)
}

func TestAnalyzePerformanceRollsUpByDay(t *testing.T) {
	store := repositories.NewMemoryTransactionRepository()
	svc := NewService(store, nil)

	day1 := time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)
	day3 := time.Date(2026, 8, 12, 22, 30, 0, 0, time.UTC)

	// Day 1: two transactions, one failed, no breaches.
	addTx(t, store, "a1", day1, 1.0, strPtr("E051"))
	addTx(t, store, "a2", day1.Add(2*time.Hour), 3.0, nil)
	// Day 3: one breaching transaction. Day 2 stays empty.
	addTx(t, store, "c1", day3, 5.0, nil)

	metrics, err := svc.AnalyzePerformance(context.Background(),
		time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, metrics, 2, "empty days must be omitted, not zero-filled")
	assert.Equal(t, "2026-08-10", metrics[0].Date)
	assert.Equal(t, "2026-08-12", metrics[1].Date)

	assert.Equal(t, 2, metrics[0].TotalTransactions)
	assert.InDelta(t, 2.0, metrics[0].AvgResponseTime, 1e-9)
	assert.InDelta(t, 50.0, metrics[0].ErrorRate, 1e-9)
	assert.Equal(t, 0, metrics[0].SLABreaches)

	assert.Equal(t, 1, metrics[1].TotalTransactions)
	assert.Equal(t, 1, metrics[1].SLABreaches)
}

func TestAnalyzePerformanceBoundariesAreDateGranular(t *testing.T) {
	store := repositories.NewMemoryTransactionRepository()
	svc := NewService(store, nil)

	// Late on the end date, early on the start date: both inside the range
	// even though the range timestamps carry midday times.
	addTx(t, store, "early", time.Date(2026, 8, 10, 0, 5, 0, 0, time.UTC), 1.0, nil)
	addTx(t, store, "late", time.Date(2026, 8, 11, 23, 55, 0, 0, time.UTC), 1.0, nil)
	addTx(t, store, "outside", time.Date(2026, 8, 12, 0, 5, 0, 0, time.UTC), 1.0, nil)

	metrics, err := svc.AnalyzePerformance(context.Background(),
		time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 11, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, metrics, 2)
	assert.Equal(t, "2026-08-10", metrics[0].Date)
	assert.Equal(t, "2026-08-11", metrics[1].Date)
}

func TestAnalyzePerformanceEmptyStore(t *testing.T) {
	svc := NewService(repositories.NewMemoryTransactionRepository(), nil)

	metrics, err := svc.AnalyzePerformance(context.Background(),
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, metrics)
}

func TestMetricsInvariants(t *testing.T) {
	store := repositories.NewMemoryTransactionRepository()
	svc := NewService(store, nil)

	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 40; i++ {
		var errCode *string
		if i%4 == 0 {
			errCode = strPtr("E100")
		}
		pt := 0.5
		if i%10 == 0 {
			pt = 6.0
		}
		addTx(t, store, fmt.Sprintf("t%d", i), day.Add(time.Duration(i)*time.Minute), pt, errCode)
	}

	metrics, err := svc.AnalyzePerformance(context.Background(), day, day)
	require.NoError(t, err)
	require.Len(t, metrics, 1)

	m := metrics[0]
	assert.GreaterOrEqual(t, m.ErrorRate, 0.0)
	assert.LessOrEqual(t, m.ErrorRate, 100.0)
	assert.LessOrEqual(t, m.SLABreaches, m.TotalTransactions)
}

// The per-transaction 4s threshold and the 4s threshold on the daily mean
// are distinct checks: a day can have individual breaches while its mean
// stays comfortably under the SLA.
func TestDualThresholdDay(t *testing.T) {
	store := repositories.NewMemoryTransactionRepository()
	svc := NewService(store, nil)

	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		var errCode *string
		if i < 2 {
			errCode = strPtr("E200")
		}
		pt := 1.7
		if i < 3 {
			pt = 5.0
		}
		addTx(t, store, fmt.Sprintf("d%d", i), day.Add(time.Duration(i)*time.Minute), pt, errCode)
	}

	metrics, err := svc.AnalyzePerformance(context.Background(), day, day)
	require.NoError(t, err)
	require.Len(t, metrics, 1)

	m := metrics[0]
	assert.Equal(t, 100, m.TotalTransactions)
	assert.InDelta(t, 2.0, m.ErrorRate, 1e-9)
	assert.Equal(t, 3, m.SLABreaches)
	assert.Less(t, m.AvgResponseTime, ResponseTimeSLA)

	actions := svc.ActionItems(m)
	assert.Equal(t, []string{
		ActionErrorPatterns,
		"Review 3 transactions exceeding response time SLA",
	}, actions)
	assert.NotContains(t, actions, ActionHighResponseTime)
}

func TestActionItems(t *testing.T) {
	svc := NewService(repositories.NewMemoryTransactionRepository(), nil)

	tests := []struct {
		name    string
		metrics models.DailyMetrics
		want    []string
	}{
		{
			name:    "quiet day requires no action",
			metrics: models.DailyMetrics{TotalTransactions: 10, AvgResponseTime: 1.2, ErrorRate: 0.5},
			want:    []string{ActionNoneRequired},
		},
		{
			name:    "slow mean alone",
			metrics: models.DailyMetrics{TotalTransactions: 10, AvgResponseTime: 4.5, ErrorRate: 0.5},
			want:    []string{ActionHighResponseTime},
		},
		{
			name:    "all three rules fire in order",
			metrics: models.DailyMetrics{TotalTransactions: 10, AvgResponseTime: 6.0, ErrorRate: 8.0, SLABreaches: 7},
			want: []string{
				ActionHighResponseTime,
				ActionErrorPatterns,
				"Review 7 transactions exceeding response time SLA",
			},
		},
		{
			name:    "thresholds are strict",
			metrics: models.DailyMetrics{TotalTransactions: 10, AvgResponseTime: 4.0, ErrorRate: 1.0},
			want:    []string{ActionNoneRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.ActionItems(tt.metrics))
		})
	}
}

func TestDailyMetricsNoData(t *testing.T) {
	svc := NewService(repositories.NewMemoryTransactionRepository(), nil)

	m, err := svc.DailyMetrics(context.Background(), time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestSummarize(t *testing.T) {
	store := repositories.NewMemoryTransactionRepository()
	svc := NewService(store, nil)

	addTx(t, store, "s1", time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC), 1.0, nil)
	addTx(t, store, "s2", time.Date(2026, 8, 10, 10, 0, 0, 0, time.UTC), 5.0, strPtr("E1"))
	addTx(t, store, "s3", time.Date(2026, 8, 11, 9, 0, 0, 0, time.UTC), 2.0, nil)

	summary, err := svc.Summarize(context.Background(),
		time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, 2, summary.DaysWithData)
	assert.Equal(t, 3, summary.TotalTransactions)
	assert.Equal(t, 1, summary.TotalSLABreaches)
	assert.InDelta(t, 25.0, summary.AvgErrorRate, 1e-9)
	assert.InDelta(t, 2.5, summary.AvgResponseTime, 1e-9)
}

func TestSummarizeEmptyRange(t *testing.T) {
	svc := NewService(repositories.NewMemoryTransactionRepository(), nil)

	summary, err := svc.Summarize(context.Background(),
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestConcurrentAggregationIsSafe(t *testing.T) {
	store := repositories.NewMemoryTransactionRepository()
	svc := NewService(store, nil)

	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		addTx(t, store, fmt.Sprintf("p%d", i), day.Add(time.Duration(i)*time.Minute), 1.0, nil)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			metrics, err := svc.AnalyzePerformance(context.Background(), day, day)
			assert.NoError(t, err)
			assert.Len(t, metrics, 1)
		}()
	}
	wg.Wait()
}
