package ingest

import "errors"

// Service errors
var (
	ErrNilTransaction = errors.New("transaction is required")
	ErrEmptyBatch     = errors.New("batch contains no transactions")
)
