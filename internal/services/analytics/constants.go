package analytics

// SLA thresholds. The response-time SLA here applies to a day's mean
// processing time; the per-transaction breach threshold lives in the
// validation package. The two checks are deliberately distinct.
const (
	ResponseTimeSLA = 4.0 // seconds, on the daily mean
	ErrorRateSLA    = 1.0 // percent

	DateLayout = "2006-01-02"
)

// Action item text, emitted in rule order.
const (
	ActionHighResponseTime = "URGENT: Investigate high response times - SLA breach detected"
	ActionErrorPatterns    = "Analyze error patterns and implement corrective measures"
	ActionNoneRequired     = "No immediate actions required"
)
