package ingest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/validation"

	"github.com/google/uuid"
)

type service struct {
	store Store
	cache Invalidator
}

// NewService creates a new ingest service. The cache may be nil when no
// metrics materialization is wired.
func NewService(store Store, cache Invalidator) Service {
	if store == nil {
		panic("store is required")
	}
	if cache == nil {
		cache = noopInvalidator{}
	}
	return &service{store: store, cache: cache}
}

func (s *service) Record(ctx context.Context, tx *models.Transaction) (validation.Result, error) {
	if tx == nil {
		return validation.Result{}, ErrNilTransaction
	}
	res := s.prepare(tx)

	if err := s.store.Append(ctx, tx); err != nil {
		return res, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.invalidate(ctx, tx.Date())
	return res, nil
}

func (s *service) RecordBatch(ctx context.Context, txs []*models.Transaction) ([]validation.Result, error) {
	if len(txs) == 0 {
		return nil, ErrEmptyBatch
	}

	results := make([]validation.Result, len(txs))
	days := make(map[string]struct{})
	for i, tx := range txs {
		if tx == nil {
			return nil, fmt.Errorf("transaction %d: %w", i, ErrNilTransaction)
		}
		results[i] = s.prepare(tx)
		days[tx.Date()] = struct{}{}
	}

	if err := s.store.AppendBatch(ctx, txs); err != nil {
		return results, fmt.Errorf("failed to record batch: %w", err)
	}

	for day := range days {
		s.invalidate(ctx, day)
	}
	return results, nil
}

// prepare stamps identity, receipt time and the validation verdict.
func (s *service) prepare(tx *models.Transaction) validation.Result {
	if tx.TransactionID == "" {
		tx.TransactionID = uuid.NewString()
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now().UTC()
	}

	res := validation.Validate(tx)
	tx.IsValid = res.Valid
	tx.ErrorCodes = models.StringList(res.ErrorCodes)
	return res
}

func (s *service) invalidate(ctx context.Context, day string) {
	if err := s.cache.InvalidateDay(ctx, day); err != nil {
		// The cache is an optimization; a stale entry expires on TTL.
		log.Printf("failed to invalidate metrics cache for %s: %v", day, err)
	}
}

type noopInvalidator struct{}

func (noopInvalidator) InvalidateDay(ctx context.Context, date string) error { return nil }
