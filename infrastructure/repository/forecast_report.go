package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/infrastructure/database/postgres"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

const (
	forecastRunsTable    = "forecast_runs"
	forecastActualsTable = "forecast_actuals"
	forecastValuesTable  = "forecast_values"

	// linhas por INSERT, abaixo do limite de parâmetros do Postgres
	insertBatchSize = 1000
)

// ForecastReportRepository persiste relatórios de previsão, um registro em forecast_runs por execução
type ForecastReportRepository interface {
	SaveReport(ctx context.Context, report domain.ForecastReport) error
}

type forecastReportRepository struct {
	conn        postgres.Conn
	placeholder squirrel.PlaceholderFormat
}

func NewForecastReportRepository(conn postgres.Conn) ForecastReportRepository {
	return &forecastReportRepository{
		conn:        conn,
		placeholder: squirrel.Dollar,
	}
}

func (r *forecastReportRepository) SaveReport(ctx context.Context, report domain.ForecastReport) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return SaveReportTx(ctx, tx, r.placeholder, report)
	})
}

// SaveReportTx grava o relatório dentro de uma transação já aberta. É compartilhado com o
// destino SQLite, que usa o mesmo esquema com outro formato de placeholder.
func SaveReportTx(ctx context.Context, tx postgres.Queryer, placeholder squirrel.PlaceholderFormat, report domain.ForecastReport) error {
	runSQL, runArgs, err := squirrel.
		Insert(forecastRunsTable).
		Columns("id", "periods", "generated_at").
		Values(report.RunID, report.Periods, report.GeneratedAt).
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, runSQL, runArgs...); err != nil {
		return wrapDatabaseError(err)
	}

	for start := 0; start < len(report.Actuals); start += insertBatchSize {
		query := squirrel.
			Insert(forecastActualsTable).
			Columns("run_id", "month", "category", "amount").
			PlaceholderFormat(placeholder)
		for _, row := range report.Actuals[start:min(start+insertBatchSize, len(report.Actuals))] {
			query = query.Values(report.RunID, monthDate(row.Month), row.Category, row.Total.String())
		}

		if err := execInsert(ctx, tx, query); err != nil {
			return err
		}
	}

	for start := 0; start < len(report.Forecast); start += insertBatchSize {
		query := squirrel.
			Insert(forecastValuesTable).
			Columns("run_id", "month", "category", "forecast", "method").
			PlaceholderFormat(placeholder)
		for _, row := range report.Forecast[start:min(start+insertBatchSize, len(report.Forecast))] {
			query = query.Values(report.RunID, monthDate(row.Month), row.Category, row.Value, string(report.Methods[row.Category]))
		}

		if err := execInsert(ctx, tx, query); err != nil {
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   report.RunID,
		"actuals":  len(report.Actuals),
		"forecast": len(report.Forecast),
	}).Debug("Relatório de previsão gravado")

	return nil
}

func execInsert(ctx context.Context, tx postgres.Queryer, query squirrel.InsertBuilder) error {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return wrapDatabaseError(err)
	}

	return nil
}

// monthDate representa o mês como o primeiro dia, no formato aceito por DATE e por TEXT
func monthDate(m domain.MonthKey) string {
	return m.Time().Format("2006-01-02")
}

func wrapDatabaseError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}
