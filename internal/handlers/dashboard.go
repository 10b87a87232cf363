package handlers

import (
	"time"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/services/analytics"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/services/report"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// defaultRangeDays matches the dashboard's trailing-30-days date picker.
const defaultRangeDays = 30

type DashboardHandler struct {
	analyticsService analytics.Service
	reportService    report.Service
}

func NewDashboardHandler(analyticsService analytics.Service, reportService report.Service) *DashboardHandler {
	return &DashboardHandler{
		analyticsService: analyticsService,
		reportService:    reportService,
	}
}

// GetDailyMetrics returns per-day metrics for a date range. Days without
// transactions are omitted; an empty range yields an empty list, not an
// error.
func (h *DashboardHandler) GetDailyMetrics(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	metrics, err := h.analyticsService.AnalyzePerformance(c.Context(), start, end)
	if err != nil {
		return response.ServerError(c, "Failed to analyze performance")
	}

	return response.Success(c, "Daily metrics retrieved", metrics)
}

// GetRangeSummary returns the SLA summary panel for a date range.
func (h *DashboardHandler) GetRangeSummary(c *fiber.Ctx) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	summary, err := h.analyticsService.Summarize(c.Context(), start, end)
	if err != nil {
		return response.ServerError(c, "Failed to summarize range")
	}
	if summary == nil {
		return response.Success(c, "No data available for specified range", nil)
	}

	return response.Success(c, "Range summary retrieved", summary)
}

// GetDailyReport returns the plain-text daily report.
func (h *DashboardHandler) GetDailyReport(c *fiber.Ctx) error {
	date, err := parseDate(c.Query("date", time.Now().UTC().Format(analytics.DateLayout)))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	text, err := h.reportService.Daily(c.Context(), date)
	if err != nil {
		return response.ServerError(c, "Failed to generate report")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}

func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	start, err := parseDate(c.Query("start_date", now.AddDate(0, 0, -defaultRangeDays).Format(analytics.DateLayout)))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate(c.Query("end_date", now.Format(analytics.DateLayout)))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errInvalidRange
	}
	return start, end, nil
}

var errInvalidRange = fiber.NewError(fiber.StatusBadRequest, "end_date must not precede start_date")

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(analytics.DateLayout, s)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "dates must use the YYYY-MM-DD format")
	}
	return t, nil
}
