// Package routes defines the API routing configuration.
// It wires repositories into services and services into handlers, keeping
// the engine services dependent on store handles, never on connections.
package routes

import (
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/handlers"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/repositories"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/services/analytics"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/services/ingest"
	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/services/report"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	txRepo := repositories.NewTransactionRepository(db)

	var invalidator ingest.Invalidator
	var metricsCache analytics.MetricsCache
	if repositories.CacheService != nil {
		invalidator = repositories.CacheService
		metricsCache = repositories.CacheService
	}

	ingestService := ingest.NewService(txRepo, invalidator)
	analyticsService := analytics.NewService(txRepo, metricsCache)
	reportService := report.NewService(analyticsService)

	txHandler := handlers.NewTransactionHandler(ingestService, txRepo)
	dashboardHandler := handlers.NewDashboardHandler(analyticsService, reportService)

	app.Get("/health", handlers.HealthCheck)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Transaction Data Integrity Monitoring System",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")

	api.Post("/transactions", txHandler.RecordTransaction)
	api.Post("/transactions/batch", txHandler.RecordBatch)
	api.Get("/transactions", txHandler.ListTransactions)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/metrics", dashboardHandler.GetDailyMetrics)
	dashboard.Get("/summary", dashboardHandler.GetRangeSummary)

	api.Get("/reports/daily", dashboardHandler.GetDailyReport)
}
