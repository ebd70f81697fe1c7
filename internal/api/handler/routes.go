package handler

import (
	"net/http"

	"github.com/vfg2006/budget-forecaster/internal/api/handler/router"
	"github.com/vfg2006/budget-forecaster/internal/usecases/forecasting"
	"github.com/vfg2006/budget-forecaster/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Forecasts(service forecasting.Forecasting, defaultPeriods int) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/forecasts",
			Method:      http.MethodPost,
			Handler:     CreateForecast(service, defaultPeriods),
			Middlewares: []func(http.Handler) http.Handler{middleware.RunForecasts()},
		},
	}
}

func CronJobs(service SyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/forecasts/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RunForecasts()},
		},
	}
}
