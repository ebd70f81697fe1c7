package forecasting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/internal/usecases/forecasting"
)

func TestAssembleForecast(t *testing.T) {
	series := domain.CategorySeries{
		Category: "Utilities",
		Points: []domain.SeriesPoint{
			{Month: month(2024, time.October), Total: decimal.NewFromInt(-80)},
			{Month: month(2024, time.November), Total: decimal.NewFromInt(-95)},
		},
	}

	rows := forecasting.AssembleForecast(series, []float64{-90, -91, -92, -93})

	require.Len(t, rows, 4)
	expectedMonths := []domain.MonthKey{
		month(2024, time.December),
		month(2025, time.January),
		month(2025, time.February),
		month(2025, time.March),
	}
	for i, row := range rows {
		assert.Equal(t, expectedMonths[i], row.Month)
		assert.Equal(t, "Utilities", row.Category)
		assert.True(t, row.Month.After(series.Last().Month), "previsão não pode sobrepor realizados")
	}
	assert.Equal(t, -93.0, rows[3].Value)
}
