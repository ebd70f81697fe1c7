// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/budget-forecaster/infrastructure/database/postgres"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

const (
	ledgerTransactionsTable = "ledger_transactions lt"
)

type TransactionRepository interface {
	ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error)
	SaveTransactions(ctx context.Context, records []domain.TransactionRecord) error
}

type transactionRepository struct {
	conn postgres.Queryer
}

func NewTransactionRepository(conn postgres.Queryer) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error) {
	sqlQuery, args, err := squirrel.
		Select("lt.date", "lt.category", "lt.amount").
		From(ledgerTransactionsTable).
		OrderBy("lt.date ASC", "lt.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lançamentos: %w", err)
	}
	defer rows.Close()

	records := make([]domain.TransactionRecord, 0)
	row := 1
	for rows.Next() {
		row++

		var (
			date     time.Time
			category string
			amount   decimal.NullDecimal
		)
		if err := rows.Scan(&date, &category, &amount); err != nil {
			return nil, &domain.IngestError{Row: row, Err: err}
		}
		if category == "" {
			return nil, &domain.IngestError{Row: row, Field: "category", Err: fmt.Errorf("empty value")}
		}
		if !amount.Valid {
			return nil, &domain.IngestError{Row: row, Field: "amount", Err: fmt.Errorf("empty value")}
		}

		records = append(records, domain.TransactionRecord{
			Date:     date.UTC(),
			Category: category,
			Amount:   amount.Decimal,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar lançamentos: %w", err)
	}

	return records, nil
}

func (r *transactionRepository) SaveTransactions(ctx context.Context, records []domain.TransactionRecord) error {
	for start := 0; start < len(records); start += insertBatchSize {
		end := min(start+insertBatchSize, len(records))

		query := squirrel.StatementBuilder.
			Insert("ledger_transactions").
			Columns("date", "category", "amount").
			PlaceholderFormat(squirrel.Dollar)

		for _, record := range records[start:end] {
			query = query.Values(record.Date, record.Category, record.Amount)
		}

		if err := execInsert(ctx, r.conn, query); err != nil {
			return err
		}
	}

	return nil
}
