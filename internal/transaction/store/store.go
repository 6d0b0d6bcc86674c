package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jmarques/retailingest/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS transactions (
		id          BIGSERIAL PRIMARY KEY,
		bill_no     TEXT,
		itemname    TEXT,
		quantity    BIGINT,
		date        TIMESTAMP,
		price       NUMERIC(10,2),
		customer_id TEXT,
		country     TEXT
	)
`

// EnsureSchema creates the destination table. Idempotent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("creating transactions table: %w", err)
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	id, bill_no, itemname, quantity, date, price, customer_id, country
`

// scanTransaction reads one row in selectTransactionColumns order.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var (
		billNo     sql.NullString
		itemname   sql.NullString
		quantity   sql.NullInt64
		price      sql.NullString
		customerID sql.NullString
		country    sql.NullString
	)

	if err := s.Scan(
		&tx.ID, &billNo, &itemname, &quantity, &tx.Date, &price, &customerID, &country,
	); err != nil {
		return nil, err
	}

	tx.BillNo = billNo.String
	tx.Itemname = itemname.String
	tx.CustomerID = customerID.String
	tx.Country = country.String

	if quantity.Valid {
		q := quantity.Int64
		tx.Quantity = &q
	}

	if price.Valid {
		cents, err := priceToCents(price.String)
		if err != nil {
			return nil, fmt.Errorf("price column %q: %w", price.String, err)
		}

		tx.PriceCents = cents
	}

	return &tx, nil
}

// priceToCents converts the NUMERIC(10,2) wire value (e.g. "2.55") to cents.
func priceToCents(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

func (s *Store) CountTransactions(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting transactions: %w", err)
	}

	return count, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Country != nil {
		query += fmt.Sprintf(" AND country = $%d", argIdx)

		args = append(args, *filter.Country)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY date ASC, id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

type loadTx struct {
	tx *sql.Tx
}

// BeginLoad opens the database transaction that scopes one batch load.
func (s *Store) BeginLoad(ctx context.Context) (transaction.LoadTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning load tx: %w", err)
	}

	return &loadTx{tx: dbTx}, nil
}

func (ltx *loadTx) Commit() error   { return ltx.tx.Commit() }
func (ltx *loadTx) Rollback() error { return ltx.tx.Rollback() }

// CreateTransactions inserts every record inside the load transaction and
// fills in the generated ids, in insert order.
func (ltx *loadTx) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	query := `
		INSERT INTO transactions (bill_no, itemname, quantity, date, price, customer_id, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	for _, tx := range txs {
		err := ltx.tx.QueryRowContext(ctx, query,
			tx.BillNo,
			tx.Itemname,
			tx.Quantity,
			tx.Date,
			transaction.FormatPrice(tx.PriceCents),
			tx.CustomerID,
			tx.Country,
		).Scan(&tx.ID)
		if err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
	}

	return nil
}
