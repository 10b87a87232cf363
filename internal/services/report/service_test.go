package report

import (
	"context"
	"testing"
	"time"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/repositories"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/services/analytics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestDailyReportNoData(t *testing.T) {
	svc := NewService(analytics.NewService(repositories.NewMemoryTransactionRepository(), nil))

	out, err := svc.Daily(context.Background(), time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, NoDataMessage, out)
}

func TestDailyReportRendersMetricsAndActions(t *testing.T) {
	store := repositories.NewMemoryTransactionRepository()
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	for i, pt := range []float64{1.0, 2.0, 6.0} {
		var errCode *string
		if i == 0 {
			errCode = strPtr("E1")
		}
		err := store.Append(context.Background(), &models.Transaction{
			TransactionID:  string(rune('a' + i)),
			Timestamp:      day.Add(time.Duration(i) * time.Hour),
			MerchantID:     strPtr("M1"),
			Amount:         floatPtr(12),
			Currency:       strPtr("USD"),
			CardType:       strPtr("credit"),
			ErrorCode:      errCode,
			ProcessingTime: pt,
		})
		require.NoError(t, err)
	}

	svc := NewService(analytics.NewService(store, nil))
	out, err := svc.Daily(context.Background(), day)
	require.NoError(t, err)

	assert.Contains(t, out, "Data Integrity Daily Report - 2026-08-10")
	assert.Contains(t, out, "- Total Transactions: 3")
	assert.Contains(t, out, "- Average Response Time: 3.00s")
	assert.Contains(t, out, "- Error Rate: 33.33%")
	assert.Contains(t, out, "- SLA Breaches: 1")
	assert.Contains(t, out, "- Response Time SLA (4s): ✓ Met")
	assert.Contains(t, out, "- Error Rate SLA (1%): ✗ Not Met")
	assert.Contains(t, out, "- "+analytics.ActionErrorPatterns)
	assert.Contains(t, out, "- Review 1 transactions exceeding response time SLA")
	assert.NotContains(t, out, analytics.ActionHighResponseTime)
}

func TestFormatSLALinesPassOnEquality(t *testing.T) {
	m := models.DailyMetrics{
		Date:              "2026-08-10",
		TotalTransactions: 50,
		AvgResponseTime:   4.0,
		ErrorRate:         1.0,
	}

	out := Format(m, []string{analytics.ActionNoneRequired})

	assert.Contains(t, out, "- Response Time SLA (4s): ✓ Met")
	assert.Contains(t, out, "- Error Rate SLA (1%): ✓ Met")
	assert.Contains(t, out, "- "+analytics.ActionNoneRequired)
}

func TestFormatFailingSLALines(t *testing.T) {
	m := models.DailyMetrics{
		Date:              "2026-08-10",
		TotalTransactions: 50,
		AvgResponseTime:   4.01,
		ErrorRate:         1.2,
		SLABreaches:       5,
	}

	out := Format(m, []string{analytics.ActionHighResponseTime})

	assert.Contains(t, out, "- Response Time SLA (4s): ✗ Not Met")
	assert.Contains(t, out, "- Error Rate SLA (1%): ✗ Not Met")
}
