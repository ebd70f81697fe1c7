// Package app monta o pipeline de previsão a partir da configuração, compartilhado pela CLI e pela API.
package app

import (
	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/infrastructure/arima"
	"github.com/vfg2006/budget-forecaster/infrastructure/gcp"
	"github.com/vfg2006/budget-forecaster/infrastructure/ledger"
	"github.com/vfg2006/budget-forecaster/infrastructure/notifier/amqp"
	"github.com/vfg2006/budget-forecaster/infrastructure/report"
	"github.com/vfg2006/budget-forecaster/internal/config"
	"github.com/vfg2006/budget-forecaster/internal/usecases/forecasting"
	gsheet "google.golang.org/api/sheets/v4"
)

// Components agrupa o serviço montado e os recursos que precisam ser fechados
type Components struct {
	Service *forecasting.Service
	closers []func() error
}

// Close libera as conexões abertas na montagem
func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			logrus.WithError(err).Warn("Erro ao liberar recurso")
		}
	}
}

// NewForecaster resolve a disponibilidade do motor ARIMA uma única vez, na inicialização
func NewForecaster(cfg *config.Config) *forecasting.Forecaster {
	var engine forecasting.FittingEngine
	if cfg.Forecast.EngineEnabled {
		engine = arima.New()
	} else {
		logrus.Warn("Motor ARIMA desabilitado, todas as categorias usarão o último valor")
	}

	opts := []forecasting.ForecasterOption{
		forecasting.WithFitFailurePolicy(forecasting.FitFailurePolicy(cfg.Forecast.FitFailurePolicy)),
	}
	if cfg.Forecast.MinObservations > 0 {
		opts = append(opts, forecasting.WithMinObservations(cfg.Forecast.MinObservations))
	}

	return forecasting.NewForecaster(engine, opts...)
}

// NewForecastService monta leitores, destinos e notificador conforme a configuração
func NewForecastService(cfg *config.Config) (*Components, error) {
	components := &Components{}

	storageOpts, err := gcp.ClientOptions(cfg.Google, storage.ScopeReadOnly)
	if err != nil {
		return nil, err
	}
	sheetsOpts, err := gcp.ClientOptions(cfg.Google, gsheet.SpreadsheetsScope)
	if err != nil {
		return nil, err
	}

	reader := ledger.NewRouter(
		ledger.WithGCS(ledger.NewGCSReader(storageOpts...)),
		ledger.WithPostgres(ledger.NewPostgresReader()),
	)
	sink := report.NewRouter(
		report.WithSheets(report.NewSheetsSink(sheetsOpts...)),
	)

	serviceOpts := []forecasting.ServiceOption{}
	if cfg.AMQP.Enabled {
		publisher, err := amqp.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.RoutingKey)
		if err != nil {
			logrus.WithError(err).Error("Erro ao conectar ao broker AMQP, execuções não serão notificadas")
		} else {
			components.closers = append(components.closers, publisher.Close)
			serviceOpts = append(serviceOpts, forecasting.WithNotifier(publisher))
			logrus.WithField("exchange", cfg.AMQP.Exchange).Info("Notificações AMQP habilitadas")
		}
	}

	components.Service = forecasting.NewService(reader, sink, NewForecaster(cfg), serviceOpts...)

	return components, nil
}
