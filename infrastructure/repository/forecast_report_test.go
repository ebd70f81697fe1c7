package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

type execCall struct {
	query string
	args  []interface{}
}

// recordingQueryer registra os comandos executados sem banco real
type recordingQueryer struct {
	calls  []execCall
	failOn string
}

func (q *recordingQueryer) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	q.calls = append(q.calls, execCall{query: query, args: args})
	if q.failOn != "" && strings.Contains(query, q.failOn) {
		return nil, errors.New("relation does not exist")
	}
	return driver.RowsAffected(1), nil
}

func (q *recordingQueryer) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (q *recordingQueryer) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func sampleReport(actuals int) domain.ForecastReport {
	start := domain.MonthKey{Year: 2020, Month: time.January}
	report := domain.ForecastReport{
		RunID:       "run-42",
		Periods:     2,
		GeneratedAt: time.Date(2024, 9, 1, 6, 0, 0, 0, time.UTC),
		Methods:     map[string]domain.ForecastMethod{"Rent": domain.ForecastMethodFallback},
	}
	for i := 0; i < actuals; i++ {
		report.Actuals = append(report.Actuals, domain.ActualsRow{Month: start.AddMonths(i), Category: "Rent", Total: decimal.NewFromInt(-1000)})
	}
	last := start.AddMonths(actuals - 1)
	report.Forecast = []domain.ForecastRow{
		{Month: last.AddMonths(1), Category: "Rent", Value: -1000},
		{Month: last.AddMonths(2), Category: "Rent", Value: -1000},
	}
	return report
}

func TestSaveReportTx(t *testing.T) {
	tests := []struct {
		name          string
		report        domain.ForecastReport
		placeholder   squirrel.PlaceholderFormat
		expectedCalls int
		validate      func(t *testing.T, calls []execCall)
	}{
		{
			name:          "Relatório pequeno gera um insert por tabela",
			report:        sampleReport(3),
			placeholder:   squirrel.Dollar,
			expectedCalls: 3,
			validate: func(t *testing.T, calls []execCall) {
				assert.Contains(t, calls[0].query, "INSERT INTO forecast_runs")
				assert.Contains(t, calls[0].query, "$1")
				assert.Equal(t, "run-42", calls[0].args[0])

				assert.Contains(t, calls[1].query, "INSERT INTO forecast_actuals")
				assert.Equal(t, []interface{}{"run-42", "2020-01-01", "Rent", "-1000"}, calls[1].args[:4])

				assert.Contains(t, calls[2].query, "INSERT INTO forecast_values")
				assert.Equal(t, []interface{}{"run-42", "2020-04-01", "Rent", -1000.0, "last_value"}, calls[2].args[:5])
			},
		},
		{
			name:          "Muitos realizados são gravados em lotes",
			report:        sampleReport(2500),
			placeholder:   squirrel.Question,
			expectedCalls: 5,
			validate: func(t *testing.T, calls []execCall) {
				assert.Len(t, calls[1].args, 4*insertBatchSize)
				assert.Len(t, calls[3].args, 4*500)
				assert.NotContains(t, calls[1].query, "$1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &recordingQueryer{}

			err := SaveReportTx(context.Background(), q, tt.placeholder, tt.report)
			require.NoError(t, err)
			require.Len(t, q.calls, tt.expectedCalls)
			tt.validate(t, q.calls)
		})
	}
}

func TestSaveReportTx_StopsOnError(t *testing.T) {
	q := &recordingQueryer{failOn: "forecast_actuals"}

	err := SaveReportTx(context.Background(), q, squirrel.Dollar, sampleReport(2))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute query")
	assert.Len(t, q.calls, 2)
}

func TestMonthDate(t *testing.T) {
	assert.Equal(t, "2024-02-01", monthDate(domain.MonthKey{Year: 2024, Month: time.February}))
	assert.Equal(t, "1999-12-01", monthDate(domain.MonthKey{Year: 1999, Month: time.December}))
}
