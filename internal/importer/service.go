package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/jmarques/retailingest/internal/importer/retail"
	"github.com/jmarques/retailingest/internal/transaction"
)

type Service struct {
	parser       Parser
	transactions *transaction.Service
}

func NewService(transactions *transaction.Service) *Service {
	return &Service{
		parser:       retail.NewParser(),
		transactions: transactions,
	}
}

// Result summarizes one completed import run.
type Result struct {
	RunID    uuid.UUID
	Staged   int
	Loaded   int
	Duration time.Duration
}

// ImportFile runs the whole pipeline for one export file: stage, transform,
// load, discard staging. Any failure aborts the run with nothing committed.
func (s *Service) ImportFile(ctx context.Context, path string) (*Result, error) {
	start := time.Now()
	runID := uuid.New()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	batch, err := s.parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", filepath.Base(path), err)
	}

	staged := batch.Len()

	params, err := s.parser.Transform(batch)
	if err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}

	txs, err := s.transactions.LoadBatch(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	// The staging data has served its purpose; drop it before reporting.
	batch.Discard()

	return &Result{
		RunID:    runID,
		Staged:   staged,
		Loaded:   len(txs),
		Duration: time.Since(start),
	}, nil
}
