package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/spendwise/spendwise/internal/config"
	"github.com/spendwise/spendwise/internal/database"
	spendwiseHttp "github.com/spendwise/spendwise/internal/http"
	analyticsHandler "github.com/spendwise/spendwise/internal/http/analytics"
	importHandler "github.com/spendwise/spendwise/internal/http/importcsv"
	txHandler "github.com/spendwise/spendwise/internal/http/transaction"
	"github.com/spendwise/spendwise/internal/importer"
	"github.com/spendwise/spendwise/internal/importer/csvfile"
	"github.com/spendwise/spendwise/internal/transaction"
	txStore "github.com/spendwise/spendwise/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	// Amounts go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		transactionService = transaction.NewService(txStore.New(db))
		importService      = importer.NewService(csvfile.NewParser())
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		analyticsH   = analyticsHandler.NewHandler(transactionService)
		importH      = importHandler.NewHandler(importService, transactionService)
	)

	router := spendwiseHttp.New(cfg.Auth.Secret, cfg.CORS.AllowedOrigins, transactionH, analyticsH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
