package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastMethod identifica a estratégia usada para prever uma categoria
type ForecastMethod string

const (
	ForecastMethodARIMA    ForecastMethod = "arima"
	ForecastMethodFallback ForecastMethod = "last_value"
)

// ActualsRow é o total realizado de uma categoria em um mês
type ActualsRow struct {
	Month    MonthKey        `json:"month"`
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// SeriesPoint é um ponto da série mensal de uma categoria
type SeriesPoint struct {
	Month MonthKey
	Total decimal.Decimal
}

// CategorySeries é a série mensal contígua de uma categoria, do primeiro ao último mês observado.
// Meses sem lançamentos aparecem com total zero.
type CategorySeries struct {
	Category string
	Points   []SeriesPoint
}

func (s CategorySeries) Len() int {
	return len(s.Points)
}

func (s CategorySeries) First() SeriesPoint {
	return s.Points[0]
}

func (s CategorySeries) Last() SeriesPoint {
	return s.Points[len(s.Points)-1]
}

// Values retorna os totais da série como float64, na ordem cronológica
func (s CategorySeries) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Total.InexactFloat64()
	}
	return values
}

// ForecastRow é o valor previsto de uma categoria em um mês futuro
type ForecastRow struct {
	Month    MonthKey `json:"month"`
	Category string   `json:"category"`
	Value    float64  `json:"value"`
}

// ForecastReport é o artefato final de uma execução: realizados e previstos
type ForecastReport struct {
	RunID       string                    `json:"run_id"`
	Periods     int                       `json:"periods"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Methods     map[string]ForecastMethod `json:"methods,omitempty"`
	Actuals     []ActualsRow              `json:"actuals"`
	Forecast    []ForecastRow             `json:"forecast"`
}

// Categories retorna as categorias previstas na ordem em que foram processadas
func (r ForecastReport) Categories() []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, row := range r.Forecast {
		if !seen[row.Category] {
			seen[row.Category] = true
			categories = append(categories, row.Category)
		}
	}
	return categories
}

// ForecastRun resume uma execução concluída do pipeline
type ForecastRun struct {
	RunID       string    `json:"run_id"`
	Input       string    `json:"input"`
	Output      string    `json:"output"`
	Periods     int       `json:"periods"`
	Records     int       `json:"records"`
	Categories  int       `json:"categories"`
	ARIMAFits   int       `json:"arima_fits"`
	Fallbacks   int       `json:"fallbacks"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}
