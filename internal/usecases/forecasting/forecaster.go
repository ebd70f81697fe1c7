package forecasting

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/pkg/utils"
)

// DefaultMinObservations é o tamanho mínimo da série para usar o modelo estatístico
const DefaultMinObservations = 6

// FitFailurePolicy define o que acontece quando o ajuste do modelo falha em tempo de execução
type FitFailurePolicy string

const (
	// FitFailureFail interrompe a execução com ModelFitError (padrão)
	FitFailureFail FitFailurePolicy = "fail"
	// FitFailureFallback registra um aviso e prevê a categoria repetindo o último valor
	FitFailureFallback FitFailurePolicy = "fallback"
)

// Strategy é o contrato comum das estratégias de previsão
type Strategy interface {
	Method() domain.ForecastMethod
	Forecast(values []float64, periods int) ([]float64, error)
}

// FallbackStrategy repete o último valor da série
type FallbackStrategy struct{}

func (FallbackStrategy) Method() domain.ForecastMethod {
	return domain.ForecastMethodFallback
}

func (FallbackStrategy) Forecast(values []float64, periods int) ([]float64, error) {
	if periods < 1 {
		return nil, domain.ErrInvalidHorizon
	}
	if len(values) == 0 {
		return nil, errors.New("série vazia")
	}

	last := values[len(values)-1]
	forecast := make([]float64, periods)
	for i := range forecast {
		forecast[i] = last
	}
	return forecast, nil
}

// StatisticalStrategy delega o ajuste ARIMA(1,1,1) ao motor de ajuste
type StatisticalStrategy struct {
	engine FittingEngine
}

func NewStatisticalStrategy(engine FittingEngine) *StatisticalStrategy {
	return &StatisticalStrategy{engine: engine}
}

func (s *StatisticalStrategy) Method() domain.ForecastMethod {
	return domain.ForecastMethodARIMA
}

func (s *StatisticalStrategy) Forecast(values []float64, periods int) ([]float64, error) {
	if periods < 1 {
		return nil, domain.ErrInvalidHorizon
	}

	forecast, err := s.engine.FitForecast(values, periods)
	if err != nil {
		return nil, err
	}

	if len(forecast) != periods {
		return nil, fmt.Errorf("motor retornou %d previsões, esperado %d", len(forecast), periods)
	}
	for i, value := range forecast {
		if !utils.IsFinite(value) {
			return nil, fmt.Errorf("previsão %d não é um número finito", i+1)
		}
	}

	return forecast, nil
}

// CategoryForecast é o resultado da previsão de uma categoria
type CategoryForecast struct {
	Method domain.ForecastMethod
	Values []float64
}

// Forecaster escolhe a estratégia de cada série: estatística quando o motor está disponível
// e a série tem observações suficientes, repetição do último valor nos demais casos.
type Forecaster struct {
	statistical      Strategy
	fallback         Strategy
	minObservations  int
	fitFailurePolicy FitFailurePolicy
}

type ForecasterOption func(*Forecaster)

func WithMinObservations(n int) ForecasterOption {
	return func(f *Forecaster) {
		if n > 0 {
			f.minObservations = n
		}
	}
}

func WithFitFailurePolicy(policy FitFailurePolicy) ForecasterOption {
	return func(f *Forecaster) {
		f.fitFailurePolicy = policy
	}
}

// NewForecaster cria o Forecaster. engine nil significa que o motor de ajuste não está
// disponível neste processo e todas as séries usam a estratégia de fallback.
func NewForecaster(engine FittingEngine, opts ...ForecasterOption) *Forecaster {
	f := &Forecaster{
		fallback:         FallbackStrategy{},
		minObservations:  DefaultMinObservations,
		fitFailurePolicy: FitFailureFail,
	}
	if engine != nil {
		f.statistical = NewStatisticalStrategy(engine)
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// EngineAvailable indica se o caminho estatístico pode ser usado
func (f *Forecaster) EngineAvailable() bool {
	return f.statistical != nil
}

// SelectStrategy aplica a regra de elegibilidade para a série
func (f *Forecaster) SelectStrategy(series domain.CategorySeries) Strategy {
	if f.statistical != nil && series.Len() >= f.minObservations {
		return f.statistical
	}
	return f.fallback
}

// Forecast gera exatamente periods valores para a série
func (f *Forecaster) Forecast(series domain.CategorySeries, periods int) (CategoryForecast, error) {
	if periods < 1 {
		return CategoryForecast{}, domain.ErrInvalidHorizon
	}

	values := series.Values()
	strategy := f.SelectStrategy(series)

	forecast, err := strategy.Forecast(values, periods)
	if err == nil {
		return CategoryForecast{Method: strategy.Method(), Values: forecast}, nil
	}

	if strategy.Method() != domain.ForecastMethodARIMA {
		return CategoryForecast{}, err
	}

	fitErr := &domain.ModelFitError{Category: series.Category, Err: err}
	if f.fitFailurePolicy != FitFailureFallback {
		return CategoryForecast{}, fitErr
	}

	logrus.WithFields(logrus.Fields{
		"category":     series.Category,
		"observations": len(values),
	}).WithError(err).Warn("Ajuste do modelo falhou, usando repetição do último valor")

	forecast, err = f.fallback.Forecast(values, periods)
	if err != nil {
		return CategoryForecast{}, err
	}
	return CategoryForecast{Method: f.fallback.Method(), Values: forecast}, nil
}
