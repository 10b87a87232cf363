package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"
)

// MemoryTransactionRepository is an in-memory transaction store used by
// tests and local runs without Postgres. Reads take a shared lock, so
// concurrent aggregation over the store is safe.
type MemoryTransactionRepository struct {
	mu   sync.RWMutex
	txs  []models.Transaction
	seen map[string]struct{}
}

// NewMemoryTransactionRepository creates an empty in-memory store.
func NewMemoryTransactionRepository() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{seen: make(map[string]struct{})}
}

func (r *MemoryTransactionRepository) Append(ctx context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.append(tx)
}

func (r *MemoryTransactionRepository) AppendBatch(ctx context.Context, txs []*models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tx := range txs {
		if err := r.append(tx); err != nil {
			return err
		}
	}
	return nil
}

// append assumes the write lock is held.
func (r *MemoryTransactionRepository) append(tx *models.Transaction) error {
	if _, ok := r.seen[tx.TransactionID]; ok {
		return ErrDuplicateTransaction
	}
	stored := *tx
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.seen[stored.TransactionID] = struct{}{}
	r.txs = append(r.txs, stored)
	return nil
}

func (r *MemoryTransactionRepository) ScanRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	from, to := DayBounds(start, end)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Transaction
	for _, tx := range r.txs {
		ts := tx.Timestamp.UTC()
		if !ts.Before(from) && ts.Before(to) {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *MemoryTransactionRepository) Recent(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := make([]models.Transaction, len(r.txs))
	copy(sorted, r.txs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	if offset >= len(sorted) {
		return nil, nil
	}
	sorted = sorted[offset:]
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *MemoryTransactionRepository) CountAll(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.txs)), nil
}
