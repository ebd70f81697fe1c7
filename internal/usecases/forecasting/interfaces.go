package forecasting

import (
	"context"

	"github.com/vfg2006/budget-forecaster/internal/domain"
)

// LedgerReader lê os lançamentos do livro-razão a partir de uma localização (arquivo, gs://, postgres://)
type LedgerReader interface {
	ReadLedger(ctx context.Context, location string) ([]domain.TransactionRecord, error)
}

// ReportSink persiste o relatório de previsão em uma localização (xlsx, json, sqlite://, postgres://, sheets://)
type ReportSink interface {
	WriteReport(ctx context.Context, location string, report domain.ForecastReport) error
}

// RunNotifier publica o resumo de uma execução concluída
type RunNotifier interface {
	PublishRunCompleted(ctx context.Context, run domain.ForecastRun) error
}

// FittingEngine ajusta o modelo ARIMA(1,1,1) sobre a série e devolve as previsões pontuais
type FittingEngine interface {
	FitForecast(values []float64, periods int) ([]float64, error)
}

// Forecasting é o contrato do pipeline completo usado pela CLI, pela API e pelo agendador
type Forecasting interface {
	// Run lê o livro-razão, gera a previsão e persiste o relatório
	Run(ctx context.Context, req RunRequest) (*domain.ForecastRun, error)

	// BuildReport gera o relatório a partir de lançamentos já carregados, sem persistir
	BuildReport(ctx context.Context, records []domain.TransactionRecord, periods int) (*domain.ForecastReport, error)
}

// RunRequest descreve uma execução do pipeline
type RunRequest struct {
	Input   string
	Output  string
	Periods int
}
