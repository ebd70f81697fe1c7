package report

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/budget-forecaster/infrastructure/database/sqlite"
	"github.com/vfg2006/budget-forecaster/infrastructure/repository"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/pkg/utils"
)

const sqliteScheme = "sqlite://"

// SQLiteSink grava o relatório em um arquivo SQLite (sqlite://caminho/para/arquivo.db)
type SQLiteSink struct{}

func NewSQLiteSink() *SQLiteSink {
	return &SQLiteSink{}
}

func (s *SQLiteSink) WriteReport(ctx context.Context, location string, report domain.ForecastReport) error {
	path, ok := utils.TrimScheme(location, sqliteScheme)
	if !ok || path == "" {
		return fmt.Errorf("sqlite location must be sqlite://path: %s", location)
	}

	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := repository.SaveReportTx(ctx, tx, squirrel.Question, report); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
