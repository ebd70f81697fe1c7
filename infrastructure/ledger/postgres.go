package ledger

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/infrastructure/database/postgres"
	"github.com/vfg2006/budget-forecaster/infrastructure/repository"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

// PostgresReader lê o livro-razão da tabela ledger_transactions do banco indicado pela DSN
type PostgresReader struct{}

func NewPostgresReader() *PostgresReader {
	return &PostgresReader{}
}

func (p *PostgresReader) ReadLedger(ctx context.Context, location string) ([]domain.TransactionRecord, error) {
	conn, err := postgres.NewConnection(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("connecting to ledger database: %w", err)
	}
	defer conn.Close()

	records, err := repository.NewTransactionRepository(conn).ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	logrus.WithField("records", len(records)).Debug("Livro-razão carregado do Postgres")

	return records, nil
}
