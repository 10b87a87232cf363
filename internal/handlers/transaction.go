package handlers

import (
	"errors"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/repositories"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/services/ingest"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type TransactionHandler struct {
	ingestService ingest.Service
	repo          repositories.TransactionRepository
}

func NewTransactionHandler(ingestService ingest.Service, repo repositories.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{
		ingestService: ingestService,
		repo:          repo,
	}
}

type batchRequest struct {
	Transactions []models.TransactionInput `json:"transactions"`
}

// RecordTransaction ingests a single transaction and returns its verdict.
// Invalid transactions are still recorded, flagged with their codes.
func (h *TransactionHandler) RecordTransaction(c *fiber.Ctx) error {
	var in models.TransactionInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tx := in.Transaction()
	res, err := h.ingestService.Record(c.Context(), tx)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateTransaction) {
			return response.Conflict(c, "Transaction already recorded")
		}
		return response.ServerError(c, "Failed to record transaction")
	}

	// StringList keeps the wire shape aligned with the stored column:
	// a clean verdict serializes as [], never null.
	return response.Created(c, "Transaction recorded", fiber.Map{
		"transaction_id": tx.TransactionID,
		"is_valid":       res.Valid,
		"error_codes":    models.StringList(res.ErrorCodes),
	})
}

// RecordBatch ingests a batch and returns per-element verdicts.
func (h *TransactionHandler) RecordBatch(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(req.Transactions) == 0 {
		return response.BadRequest(c, "Batch contains no transactions")
	}

	txs := make([]*models.Transaction, len(req.Transactions))
	for i := range req.Transactions {
		txs[i] = req.Transactions[i].Transaction()
	}

	results, err := h.ingestService.RecordBatch(c.Context(), txs)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateTransaction) {
			return response.Conflict(c, "Batch contains an already recorded transaction")
		}
		return response.ServerError(c, "Failed to record batch")
	}

	verdicts := make([]fiber.Map, len(results))
	for i, res := range results {
		verdicts[i] = fiber.Map{
			"transaction_id": txs[i].TransactionID,
			"is_valid":       res.Valid,
			"error_codes":    models.StringList(res.ErrorCodes),
		}
	}
	return response.Created(c, "Batch recorded", verdicts)
}

// ListTransactions returns recent transactions for the audit view.
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultListLimit)
	offset := c.QueryInt("offset", 0)
	if limit < 1 || limit > maxListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	txs, err := h.repo.Recent(c.Context(), limit, offset)
	if err != nil {
		return response.ServerError(c, "Failed to list transactions")
	}
	total, err := h.repo.CountAll(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to count transactions")
	}

	return response.Success(c, "Transactions retrieved", fiber.Map{
		"transactions": txs,
		"total":        total,
		"limit":        limit,
		"offset":       offset,
	})
}
