package arima

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

const (
	// MinObservations é o menor tamanho de série que o motor aceita ajustar
	MinObservations = 3

	defaultMaxEvaluations = 10000

	// limite para manter phi e theta estritamente dentro de (-1, 1)
	maxCoefficient = 0.9999

	minSigma2 = 1e-12

	// valor devolvido ao otimizador para parâmetros em que o filtro degenera
	penalty = 1e12
)

var (
	ErrSeriesTooShort = errors.New("arima: series too short to fit")
	ErrInvalidPeriods = errors.New("arima: periods must be at least 1")
)

// Params são os parâmetros ajustados de um ARIMA(1,1,1) sem constante
type Params struct {
	Phi           float64
	Theta         float64
	Sigma2        float64
	LogLikelihood float64
	Evaluations   int
}

// Model é o resultado de um ajuste, pronto para gerar previsões
type Model struct {
	Params Params

	last  float64
	state [2]float64
}

// Engine ajusta ARIMA(1,1,1) por máxima verossimilhança exata (filtro de Kalman sobre a série
// diferenciada) e otimiza com Nelder-Mead.
type Engine struct {
	maxEvaluations int
}

type Option func(*Engine)

func WithMaxEvaluations(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxEvaluations = n
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{maxEvaluations: defaultMaxEvaluations}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FitForecast ajusta o modelo e devolve periods previsões pontuais em nível
func (e *Engine) FitForecast(values []float64, periods int) ([]float64, error) {
	if periods < 1 {
		return nil, ErrInvalidPeriods
	}

	model, err := e.Fit(values)
	if err != nil {
		return nil, err
	}

	return model.Forecast(periods), nil
}

// Fit estima phi, theta e sigma² para a série em nível
func (e *Engine) Fit(values []float64) (*Model, error) {
	if len(values) < MinObservations {
		return nil, fmt.Errorf("%w: %d observations, need %d", ErrSeriesTooShort, len(values), MinObservations)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("arima: observation %d is not finite", i)
		}
	}

	w := difference(values)
	last := values[len(values)-1]

	// série constante: a previsão é o último valor
	if isZero(w) {
		return &Model{Params: Params{Sigma2: 0}, last: last}, nil
	}

	objective := func(x []float64) float64 {
		res, ok := kalmanFilter(w, constrain(x[0]), constrain(x[1]))
		if !ok {
			return penalty
		}
		return -res.loglik
	}

	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{FuncEvaluations: e.maxEvaluations}

	result, err := optimize.Minimize(problem, initialGuess(w), settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("arima: optimizer: %w", err)
	}
	if result == nil || len(result.X) != 2 {
		return nil, errors.New("arima: optimizer returned no solution")
	}

	phi, theta := constrain(result.X[0]), constrain(result.X[1])
	res, ok := kalmanFilter(w, phi, theta)
	if !ok || math.IsNaN(res.loglik) || math.IsInf(res.loglik, 0) {
		return nil, fmt.Errorf("arima: likelihood not finite at phi=%.4f theta=%.4f", phi, theta)
	}

	logrus.WithFields(logrus.Fields{
		"phi":         phi,
		"theta":       theta,
		"sigma2":      res.sigma2,
		"loglik":      res.loglik,
		"evaluations": result.Stats.FuncEvaluations,
		"status":      result.Status.String(),
	}).Debug("Modelo ARIMA(1,1,1) ajustado")

	return &Model{
		Params: Params{
			Phi:           phi,
			Theta:         theta,
			Sigma2:        res.sigma2,
			LogLikelihood: res.loglik,
			Evaluations:   result.Stats.FuncEvaluations,
		},
		last:  last,
		state: res.state,
	}, nil
}

// Forecast projeta a série diferenciada e integra de volta ao nível
func (m *Model) Forecast(periods int) []float64 {
	forecast := make([]float64, periods)
	level := m.last
	a := m.state

	for h := 0; h < periods; h++ {
		level += a[0]
		forecast[h] = level
		a = [2]float64{m.Params.Phi*a[0] + a[1], 0}
	}

	return forecast
}

type filterResult struct {
	sigma2 float64
	loglik float64
	// previsão um passo à frente do estado após a última observação
	state [2]float64
}

// kalmanFilter avalia a verossimilhança concentrada do ARMA(1,1) na forma de espaço de estados
// de Harvey: estado [w_t, theta*e_t], T = [[phi,1],[0,0]], R = [1,theta], Z = [1,0].
func kalmanFilter(w []float64, phi, theta float64) (filterResult, bool) {
	n := len(w)
	if n == 0 || math.Abs(phi) >= 1 || math.Abs(theta) >= 1 {
		return filterResult{}, false
	}

	var a [2]float64
	p00 := (1 + 2*phi*theta + theta*theta) / (1 - phi*phi)
	p01 := theta
	p11 := theta * theta

	var sumSquares, sumLogF float64
	for _, obs := range w {
		f := p00
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return filterResult{}, false
		}

		v := obs - a[0]
		sumSquares += v * v / f
		sumLogF += math.Log(f)

		g := phi*p00 + p01
		a = [2]float64{phi*a[0] + a[1] + g*v/f, 0}

		p00 = phi*phi*p00 + 2*phi*p01 + p11 + 1 - g*g/f
		p01 = theta
		p11 = theta * theta
	}

	sigma2 := sumSquares / float64(n)
	if sigma2 < minSigma2 {
		sigma2 = minSigma2
	}

	loglik := -float64(n)/2*(math.Log(2*math.Pi)+math.Log(sigma2)+1) - sumLogF/2

	return filterResult{sigma2: sigma2, loglik: loglik, state: a}, true
}

func initialGuess(w []float64) []float64 {
	phi := 0.0
	if len(w) > 2 {
		if r := stat.Correlation(w[:len(w)-1], w[1:], nil); !math.IsNaN(r) {
			phi = math.Max(-0.9, math.Min(0.9, r))
		}
	}
	return []float64{unconstrain(phi), 0}
}

func difference(values []float64) []float64 {
	w := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		w[i-1] = values[i] - values[i-1]
	}
	return w
}

func isZero(w []float64) bool {
	for _, v := range w {
		if v != 0 {
			return false
		}
	}
	return true
}

// constrain leva um real qualquer para (-1, 1)
func constrain(x float64) float64 {
	y := x / math.Sqrt(1+x*x)
	return math.Max(-maxCoefficient, math.Min(maxCoefficient, y))
}

func unconstrain(y float64) float64 {
	return y / math.Sqrt(1-y*y)
}
