package report

import (
	"context"
	"fmt"

	"github.com/vfg2006/budget-forecaster/infrastructure/database/postgres"
	"github.com/vfg2006/budget-forecaster/infrastructure/repository"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

// PostgresSink grava o relatório nas tabelas forecast_* do banco indicado pela DSN
type PostgresSink struct{}

func NewPostgresSink() *PostgresSink {
	return &PostgresSink{}
}

func (s *PostgresSink) WriteReport(ctx context.Context, location string, report domain.ForecastReport) error {
	if err := postgres.RunMigrations(location); err != nil {
		return err
	}

	conn, err := postgres.NewConnection(ctx, location)
	if err != nil {
		return fmt.Errorf("connecting to report database: %w", err)
	}
	defer conn.Close()

	return repository.NewForecastReportRepository(conn).SaveReport(ctx, report)
}
