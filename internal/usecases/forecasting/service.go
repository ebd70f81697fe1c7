package forecasting

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/pkg/log"
	"github.com/vfg2006/budget-forecaster/pkg/utils"
)

// Service executa o pipeline ingestão → agregação → séries → previsão → montagem → persistência
type Service struct {
	reader     LedgerReader
	sink       ReportSink
	notifier   RunNotifier
	forecaster *Forecaster
	now        func() time.Time
	newID      func() (string, error)
}

type ServiceOption func(*Service)

// WithNotifier publica um evento ao final de cada execução bem-sucedida
func WithNotifier(notifier RunNotifier) ServiceOption {
	return func(s *Service) {
		s.notifier = notifier
	}
}

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func WithIDGenerator(newID func() (string, error)) ServiceOption {
	return func(s *Service) {
		s.newID = newID
	}
}

// NewService cria uma nova instância do pipeline de previsão
func NewService(reader LedgerReader, sink ReportSink, forecaster *Forecaster, opts ...ServiceOption) *Service {
	s := &Service{
		reader:     reader,
		sink:       sink,
		forecaster: forecaster,
		now:        time.Now,
		newID:      utils.GenerateID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

var _ Forecasting = (*Service)(nil)

// Run executa o pipeline completo para uma entrada e uma saída
func (s *Service) Run(ctx context.Context, req RunRequest) (*domain.ForecastRun, error) {
	startedAt := s.now()
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"input":   req.Input,
		"output":  req.Output,
		"periods": req.Periods,
	})

	if req.Periods < 1 {
		return nil, domain.ErrInvalidHorizon
	}

	logger.Info("Iniciando execução do pipeline de previsão")

	records, err := s.reader.ReadLedger(ctx, req.Input)
	if err != nil {
		logger.WithError(err).Error("Erro ao ler o livro-razão")
		return nil, pkgerrors.Wrapf(err, "lendo livro-razão %s", req.Input)
	}

	report, err := s.BuildReport(ctx, records, req.Periods)
	if err != nil {
		return nil, err
	}

	ctx = log.WithRunID(ctx, report.RunID)
	logger = log.ForContext(ctx).WithField("output", req.Output)

	if err := s.sink.WriteReport(ctx, req.Output, *report); err != nil {
		logger.WithError(err).Error("Erro ao persistir o relatório de previsão")
		var sinkErr *domain.SinkError
		if errors.As(err, &sinkErr) {
			return nil, err
		}
		return nil, &domain.SinkError{Location: req.Output, Err: err}
	}

	run := &domain.ForecastRun{
		RunID:       report.RunID,
		Input:       req.Input,
		Output:      req.Output,
		Periods:     req.Periods,
		Records:     len(records),
		Categories:  len(report.Methods),
		StartedAt:   startedAt,
		CompletedAt: s.now(),
	}
	for _, method := range report.Methods {
		if method == domain.ForecastMethodARIMA {
			run.ARIMAFits++
		} else {
			run.Fallbacks++
		}
	}

	logger.WithFields(log.Fields{
		"forecast_categories": run.Categories,
		"forecast_arima":      run.ARIMAFits,
		"forecast_fallback":   run.Fallbacks,
	}).Info("Previsão concluída e relatório persistido")

	if s.notifier != nil {
		if err := s.notifier.PublishRunCompleted(ctx, *run); err != nil {
			// o relatório já foi persistido; a falha de notificação não desfaz a execução
			logger.WithError(err).Error("Erro ao publicar conclusão da execução")
		}
	}

	return run, nil
}

// BuildReport agrega os lançamentos e prevê cada categoria, na ordem alfabética das categorias
func (s *Service) BuildReport(ctx context.Context, records []domain.TransactionRecord, periods int) (*domain.ForecastReport, error) {
	if periods < 1 {
		return nil, domain.ErrInvalidHorizon
	}

	runID, err := s.newID()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "gerando ID da execução")
	}
	logger := log.ForContext(log.WithRunID(ctx, runID))

	actuals := Aggregate(records)
	groups := SplitByCategory(actuals)

	logger.WithFields(log.Fields{
		"forecast_records":    len(records),
		"forecast_rows":       len(actuals),
		"forecast_categories": len(groups),
	}).Debug("Lançamentos agregados por mês e categoria")

	report := &domain.ForecastReport{
		RunID:       runID,
		Periods:     periods,
		GeneratedAt: s.now().UTC(),
		Methods:     make(map[string]domain.ForecastMethod, len(groups)),
		Actuals:     actuals,
		Forecast:    make([]domain.ForecastRow, 0, len(groups)*periods),
	}

	for _, group := range groups {
		series, err := BuildSeries(group.Category, group.Rows)
		if err != nil {
			return nil, err
		}

		result, err := s.forecaster.Forecast(series, periods)
		if err != nil {
			logger.WithField("category", group.Category).WithError(err).Error("Erro ao prever categoria")
			return nil, err
		}

		logger.WithFields(log.Fields{
			"category":        group.Category,
			"forecast_points": series.Len(),
			"forecast_method": result.Method,
		}).Debug("Categoria prevista")

		report.Methods[group.Category] = result.Method
		report.Forecast = append(report.Forecast, AssembleForecast(series, result.Values)...)
	}

	return report, nil
}
