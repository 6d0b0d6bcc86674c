package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/jmarques/retailingest/internal/config"
	"github.com/jmarques/retailingest/internal/database"
	"github.com/jmarques/retailingest/internal/importer"
	"github.com/jmarques/retailingest/internal/transaction"
	txStore "github.com/jmarques/retailingest/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

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

	ctx := context.Background()

	transactionService := transaction.NewService(txStore.New(db))

	if err := transactionService.EnsureSchema(ctx); err != nil {
		slog.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	importService := importer.NewService(transactionService)

	slog.Info("starting import", "file", cfg.Import.File)

	res, err := importService.ImportFile(ctx, cfg.Import.File)
	if err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}

	slog.Info("import complete",
		"run_id", res.RunID,
		"rows", res.Loaded,
		"duration", res.Duration,
	)
}
