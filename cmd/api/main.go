package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/internal/api"
	"github.com/vfg2006/budget-forecaster/internal/app"
	"github.com/vfg2006/budget-forecaster/internal/config"
	"github.com/vfg2006/budget-forecaster/internal/scheduler"
	"github.com/vfg2006/budget-forecaster/internal/usecases/authenticating"
	"github.com/vfg2006/budget-forecaster/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	components, err := app.NewForecastService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o pipeline de previsão")
	}
	defer components.Close()

	authenticator := authenticating.NewService(cfg)

	forecastSyncService := scheduler.NewForecastSyncService(components.Service, cfg)
	if err := forecastSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de previsões")
	} else {
		logrus.Info("Agendador de previsões iniciado com sucesso")
	}

	server, err := api.New(cfg, components.Service, authenticator, forecastSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
