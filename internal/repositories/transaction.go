package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateTransaction is returned when a transaction ID is already recorded.
var ErrDuplicateTransaction = errors.New("transaction already recorded")

const appendBatchSize = 500

// TransactionRepository is the store handle the engine reads from and the
// ingest path appends to. Scans are inclusive on both ends at date
// granularity; time of day on the boundary dates is ignored.
type TransactionRepository interface {
	Append(ctx context.Context, tx *models.Transaction) error
	AppendBatch(ctx context.Context, txs []*models.Transaction) error
	ScanRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error)
	Recent(ctx context.Context, limit, offset int) ([]models.Transaction, error)
	CountAll(ctx context.Context) (int64, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a Postgres-backed transaction store.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Append(ctx context.Context, tx *models.Transaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTransaction
		}
		return err
	}
	return nil
}

func (r *transactionRepository) AppendBatch(ctx context.Context, txs []*models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(txs, appendBatchSize).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateTransaction
		}
		return err
	}
	return nil
}

func (r *transactionRepository) ScanRange(ctx context.Context, start, end time.Time) ([]models.Transaction, error) {
	from, to := DayBounds(start, end)

	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp < ?", from, to).
		Order("timestamp ASC").
		Find(&txs).Error
	return txs, err
}

func (r *transactionRepository) Recent(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).Offset(offset).
		Find(&txs).Error
	return txs, err
}

func (r *transactionRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Transaction{}).Count(&count).Error
	return count, err
}

// DayBounds widens [start, end] to UTC calendar-date granularity: the
// returned range is [start's midnight, the midnight after end), so both
// boundary dates are fully included whatever their time of day.
func DayBounds(start, end time.Time) (time.Time, time.Time) {
	s, e := start.UTC(), end.UTC()
	from := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return from, to
}
