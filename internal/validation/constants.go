package validation

const (
	// ResponseTimeSLASeconds is the per-transaction processing time ceiling.
	// A transaction above it is an SLA breach no matter what else holds.
	ResponseTimeSLASeconds = 4.0

	// CurrencyCodeLength is the ISO 4217 alpha code length. Only the shape
	// is checked; codes are not looked up against a currency table.
	CurrencyCodeLength = 3
)
