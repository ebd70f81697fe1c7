package forecasting

import (
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

// AssembleForecast associa cada valor previsto ao mês correspondente,
// começando no mês seguinte ao último realizado da série.
func AssembleForecast(series domain.CategorySeries, values []float64) []domain.ForecastRow {
	rows := make([]domain.ForecastRow, len(values))
	month := series.Last().Month
	for i, value := range values {
		month = month.Next()
		rows[i] = domain.ForecastRow{
			Month:    month,
			Category: series.Category,
			Value:    value,
		}
	}
	return rows
}
