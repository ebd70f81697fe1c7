package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/vfg2006/budget-forecaster/internal/app"
	"github.com/vfg2006/budget-forecaster/internal/config"
	"github.com/vfg2006/budget-forecaster/internal/usecases/forecasting"
	"github.com/vfg2006/budget-forecaster/pkg/log"
)

func main() {
	flags := pflag.NewFlagSet("forecast", pflag.ExitOnError)
	input := flags.String("input", "", "livro-razão: arquivo CSV, gs://bucket/objeto ou postgres://...")
	output := flags.String("output", "", "destino: .xlsx, .json, sqlite://, postgres:// ou sheets://")
	flags.Int("periods", 6, "meses a prever por categoria")
	flags.Parse(os.Args[1:])

	// --periods sobrepõe FORECAST_PERIODS somente quando informado
	if err := viper.BindPFlag("FORECAST_PERIODS", flags.Lookup("periods")); err != nil {
		logrus.Fatal(err)
	}

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "uso: forecast --input <ledger> --output <destino> [--periods N]")
		flags.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := app.NewForecastService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o pipeline de previsão")
	}

	ctx, _ = log.WithCorrelationID(ctx)
	_, err = components.Service.Run(ctx, forecasting.RunRequest{
		Input:   *input,
		Output:  *output,
		Periods: cfg.Forecast.Periods,
	})
	components.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Forecast failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Forecast saved to %s\n", *output)
}
