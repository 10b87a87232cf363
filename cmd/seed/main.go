// Package main seeds the transaction store with generated sample data so
// the dashboard and reports have something to show in a fresh environment.
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/config"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/repositories"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/services/ingest"

	"github.com/google/uuid"
)

var (
	merchants  = []string{"M1001", "M1002", "M1003", "M2001", "M2002"}
	cardTypes  = []string{"credit", "debit", "prepaid"}
	regions    = []string{"NA", "EU", "APAC", "LATAM"}
	currencies = []string{"USD", "EUR", "GBP", "INR"}
	errorCodes = []string{"E051", "E104", "E200"}
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			sqlDB.Close()
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	count := config.GetIntEnv("SEED_COUNT", 500)
	days := config.GetIntEnv("SEED_DAYS", 30)

	txRepo := repositories.NewTransactionRepository(repositories.DB)

	var invalidator ingest.Invalidator
	if repositories.CacheService != nil {
		// Seeding rewrites history wholesale, so drop every cached
		// metrics entry instead of invalidating day by day.
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			log.Printf("Failed to flush metrics cache before seeding: %v", err)
		}
		invalidator = repositories.CacheService
	}
	svc := ingest.NewService(txRepo, invalidator)

	txs := make([]*models.Transaction, 0, count)
	now := time.Now().UTC()
	for i := 0; i < count; i++ {
		txs = append(txs, sample(now, days))
	}

	results, err := svc.RecordBatch(context.Background(), txs)
	if err != nil {
		log.Fatalf("Failed to seed transactions: %v", err)
	}

	invalid := 0
	for _, res := range results {
		if !res.Valid {
			invalid++
		}
	}
	log.Printf("Seeded %d transactions (%d flagged invalid) across the past %d days", len(results), invalid, days)
}

func sample(now time.Time, days int) *models.Transaction {
	ts := now.AddDate(0, 0, -rand.Intn(days)).Add(-time.Duration(rand.Intn(86400)) * time.Second)

	amount := 5 + rand.Float64()*495
	tx := &models.Transaction{
		TransactionID:  "TXN-" + uuid.NewString(),
		Timestamp:      ts,
		MerchantID:     pick(merchants),
		Amount:         &amount,
		Currency:       pick(currencies),
		CardType:       pick(cardTypes),
		Region:         pick(regions),
		ProcessingTime: 0.2 + rand.Float64()*2.5,
	}

	// A few slow, failed, or malformed records keep the SLA views honest.
	switch {
	case rand.Float64() < 0.03:
		tx.ProcessingTime = 4.0 + rand.Float64()*4
	case rand.Float64() < 0.02:
		code := errorCodes[rand.Intn(len(errorCodes))]
		tx.ErrorCode = &code
	case rand.Float64() < 0.02:
		tx.Amount = nil
	case rand.Float64() < 0.01:
		bad := "US"
		tx.Currency = &bad
	}
	return tx
}

func pick(values []string) *string {
	v := values[rand.Intn(len(values))]
	return &v
}
