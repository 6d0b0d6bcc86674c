package transaction

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	EnsureSchema(ctx context.Context) error
	CountTransactions(ctx context.Context) (int64, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)

	BeginLoad(ctx context.Context) (LoadTx, error)
}

// LoadTx is a database transaction scoped to one batch load.
type LoadTx interface {
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	Country   *string
	StartDate *time.Time
	EndDate   *time.Time
}

// EnsureSchema creates the destination table when it does not exist yet.
func (s *Service) EnsureSchema(ctx context.Context) error {
	return s.repo.EnsureSchema(ctx)
}

// LoadBatch inserts every record inside one database transaction. Either
// every record lands or none does; there is no per-row skip. The store
// assigns ids in insert order.
func (s *Service) LoadBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	ltx, err := s.repo.BeginLoad(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin load: %w", err)
	}
	defer ltx.Rollback()

	txs := paramsToTransactions(params)
	if err := ltx.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	if err := ltx.Commit(); err != nil {
		return nil, fmt.Errorf("commit load: %w", err)
	}

	return txs, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.CountTransactions(ctx)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func paramsToTransactions(params []CreateParams) []*Transaction {
	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = &Transaction{
			BillNo:     p.BillNo,
			Itemname:   p.Itemname,
			Quantity:   p.Quantity,
			Date:       p.Date,
			PriceCents: p.PriceCents,
			CustomerID: p.CustomerID,
			Country:    p.Country,
		}
	}

	return txs
}
