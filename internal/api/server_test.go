package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-forecaster/internal/config"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/internal/usecases/authenticating"
	"github.com/vfg2006/budget-forecaster/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

type idleSync struct{}

func (idleSync) TriggerManualSync() bool    { return true }
func (idleSync) GetStatus() map[string]any { return map[string]any{} }

func TestServer_Handler(t *testing.T) {
	cfg := &config.Config{
		Server:    config.Server{Host: "localhost", Port: "0"},
		Forecast:  config.Forecast{Periods: 6},
		SecretKey: "test-secret",
	}
	authenticator := authenticating.NewService(cfg)
	token, err := authenticator.GenerateToken("pipeline", []string{authenticating.ScopeForecastRun}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name         string
		method       string
		path         string
		token        string
		expectedCode int
	}{
		{name: "Healthcheck é público", method: http.MethodGet, path: "/healthcheck", expectedCode: http.StatusOK},
		{name: "Rota protegida sem token", method: http.MethodGet, path: "/v1/forecasts/status", expectedCode: http.StatusUnauthorized},
		{name: "Token inválido", method: http.MethodGet, path: "/v1/forecasts/status", token: "invalid", expectedCode: http.StatusUnauthorized},
		{name: "Token válido consulta status", method: http.MethodGet, path: "/v1/forecasts/status", token: token, expectedCode: http.StatusOK},
		{name: "Token de execução não dispara cron", method: http.MethodPost, path: "/v1/cron/forecast", token: token, expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			srv, err := New(cfg, mocks.NewMockForecasting(ctrl), authenticator, idleSync{})
			require.NoError(t, err)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestServer_CreateForecastEndToEnd(t *testing.T) {
	cfg := &config.Config{Forecast: config.Forecast{Periods: 6}, SecretKey: "test-secret"}
	authenticator := authenticating.NewService(cfg)
	token, err := authenticator.GenerateToken("pipeline", []string{authenticating.ScopeForecastRun}, time.Hour)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockForecasting(ctrl)
	service.EXPECT().BuildReport(gomock.Any(), gomock.Len(1), 3).Return(&domain.ForecastReport{RunID: "run-x", Periods: 3}, nil)

	srv, err := New(cfg, service, authenticator, idleSync{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/forecasts?periods=3", strings.NewReader("Date,Category,Amount\n2024-01-15,Rent,-1000\n"))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"run_id":"run-x"`)
}
