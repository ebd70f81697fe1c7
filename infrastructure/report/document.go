package report

import (
	"time"

	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/pkg/utils"
)

const (
	ActualsSheet  = "Actuals"
	ForecastSheet = "Forecast"
)

var (
	actualsHeader  = []interface{}{"Month", "Category", "Amount"}
	forecastHeader = []interface{}{"Month", "Category", "Forecast"}
)

// Document é a forma serializada do relatório, usada no destino JSON e nas respostas da API
type Document struct {
	RunID       string                           `json:"run_id"`
	Periods     int                              `json:"periods"`
	GeneratedAt time.Time                        `json:"generated_at"`
	Methods     map[string]domain.ForecastMethod `json:"methods"`
	Actuals     []ActualsEntry                   `json:"actuals"`
	Forecast    []ForecastEntry                  `json:"forecast"`
}

type ActualsEntry struct {
	Month    domain.MonthKey `json:"month"`
	Category string          `json:"category"`
	Amount   float64         `json:"amount"`
}

type ForecastEntry struct {
	Month    domain.MonthKey `json:"month"`
	Category string          `json:"category"`
	Forecast float64         `json:"forecast"`
}

// NewDocument converte o relatório arredondando valores para duas casas
func NewDocument(report domain.ForecastReport) Document {
	doc := Document{
		RunID:       report.RunID,
		Periods:     report.Periods,
		GeneratedAt: report.GeneratedAt,
		Methods:     report.Methods,
		Actuals:     make([]ActualsEntry, 0, len(report.Actuals)),
		Forecast:    make([]ForecastEntry, 0, len(report.Forecast)),
	}
	if doc.Methods == nil {
		doc.Methods = map[string]domain.ForecastMethod{}
	}

	for _, row := range report.Actuals {
		doc.Actuals = append(doc.Actuals, ActualsEntry{
			Month:    row.Month,
			Category: row.Category,
			Amount:   row.Total.Round(2).InexactFloat64(),
		})
	}

	for _, row := range report.Forecast {
		doc.Forecast = append(doc.Forecast, ForecastEntry{
			Month:    row.Month,
			Category: row.Category,
			Forecast: utils.RoundWithTwoDecimalPlace(row.Value),
		})
	}

	return doc
}

// monthCell define como o mês é representado na célula de cada destino
type monthCell func(domain.MonthKey) interface{}

func monthText(m domain.MonthKey) interface{} {
	return m.String()
}

func monthDate(m domain.MonthKey) interface{} {
	return m.Time()
}

func actualsRows(report domain.ForecastReport, month monthCell) [][]interface{} {
	rows := make([][]interface{}, 0, len(report.Actuals)+1)
	rows = append(rows, actualsHeader)
	for _, row := range report.Actuals {
		rows = append(rows, []interface{}{month(row.Month), row.Category, row.Total.Round(2).InexactFloat64()})
	}
	return rows
}

func forecastRows(report domain.ForecastReport, month monthCell) [][]interface{} {
	rows := make([][]interface{}, 0, len(report.Forecast)+1)
	rows = append(rows, forecastHeader)
	for _, row := range report.Forecast {
		rows = append(rows, []interface{}{month(row.Month), row.Category, utils.RoundWithTwoDecimalPlace(row.Value)})
	}
	return rows
}
