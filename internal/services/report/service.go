// Package report renders daily performance reports as human-readable
// text. It formats metrics the analytics service already computed and
// never touches the transaction store itself.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/services/analytics"
)

// NoDataMessage signals a day without transactions. It is a report
// outcome, not an error.
const NoDataMessage = "No data available for specified date"

// Service renders a single day's report.
type Service interface {
	Daily(ctx context.Context, date time.Time) (string, error)
}

type service struct {
	analytics analytics.Service
}

// NewService creates a new report service.
func NewService(a analytics.Service) Service {
	if a == nil {
		panic("analytics service is required")
	}
	return &service{analytics: a}
}

func (s *service) Daily(ctx context.Context, date time.Time) (string, error) {
	m, err := s.analytics.DailyMetrics(ctx, date)
	if err != nil {
		return "", fmt.Errorf("failed to build daily report: %w", err)
	}
	if m == nil {
		return NoDataMessage, nil
	}
	return Format(*m, s.analytics.ActionItems(*m)), nil
}

// Format renders one day's metrics and action items. Both SLA lines pass
// on <=: the response-time line compares the daily mean, the error-rate
// line compares the rate.
func Format(m models.DailyMetrics, actions []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Data Integrity Daily Report - %s\n", m.Date)
	b.WriteString("=====================================\n\n")

	b.WriteString("Transaction Summary:\n")
	fmt.Fprintf(&b, "- Total Transactions: %d\n", m.TotalTransactions)
	fmt.Fprintf(&b, "- Average Response Time: %.2fs\n", m.AvgResponseTime)
	fmt.Fprintf(&b, "- Error Rate: %.2f%%\n", m.ErrorRate)
	fmt.Fprintf(&b, "- SLA Breaches: %d\n\n", m.SLABreaches)

	b.WriteString("Performance Against SLA:\n")
	fmt.Fprintf(&b, "- Response Time SLA (4s): %s\n", metStatus(m.AvgResponseTime <= analytics.ResponseTimeSLA))
	fmt.Fprintf(&b, "- Error Rate SLA (1%%): %s\n\n", metStatus(m.ErrorRate <= analytics.ErrorRateSLA))

	b.WriteString("Action Items:\n")
	for _, action := range actions {
		fmt.Fprintf(&b, "- %s\n", action)
	}

	return b.String()
}

func metStatus(met bool) string {
	if met {
		return "✓ Met"
	}
	return "✗ Not Met"
}
