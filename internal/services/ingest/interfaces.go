package ingest

import (
	"context"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/validation"
)

// Store is the write side of the transaction store.
type Store interface {
	Append(ctx context.Context, tx *models.Transaction) error
	AppendBatch(ctx context.Context, txs []*models.Transaction) error
}

// Invalidator drops cached rollups for dates touched by new transactions.
type Invalidator interface {
	InvalidateDay(ctx context.Context, date string) error
}

// Service records transactions. Validation and append are one logical
// unit: an invalid transaction is still recorded for audit, flagged with
// its violation codes, never silently treated as valid downstream.
type Service interface {
	Record(ctx context.Context, tx *models.Transaction) (validation.Result, error)
	RecordBatch(ctx context.Context, txs []*models.Transaction) ([]validation.Result, error)
}
