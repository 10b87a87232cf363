package models

// DailyMetrics is the per-day performance rollup derived from the
// transaction store. It is computed fresh on every aggregation call; the
// store stays authoritative and any cached copy is an optimization only.
type DailyMetrics struct {
	Date              string  `json:"date"`
	TotalTransactions int     `json:"total_transactions"`
	AvgResponseTime   float64 `json:"avg_response_time"`
	ErrorRate         float64 `json:"error_rate"`
	SLABreaches       int     `json:"sla_breaches"`
}

// RangeSummary aggregates a date range for the dashboard's summary panel.
type RangeSummary struct {
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	DaysWithData      int     `json:"days_with_data"`
	TotalTransactions int     `json:"total_transactions"`
	TotalSLABreaches  int     `json:"total_sla_breaches"`
	AvgErrorRate      float64 `json:"avg_error_rate"`
	AvgResponseTime   float64 `json:"avg_response_time"`
}
