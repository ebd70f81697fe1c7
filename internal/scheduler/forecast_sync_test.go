package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-forecaster/internal/config"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/internal/usecases/forecasting"
	"github.com/vfg2006/budget-forecaster/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Forecast: config.Forecast{Periods: 6},
		ForecastSync: config.ForecastSync{
			CronSchedule: "0 6 1 * *",
			Enabled:      true,
			Input:        "ledger.csv",
			Output:       "forecast.xlsx",
		},
	}
}

func TestForecastSyncService_RunNow(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *mocks.MockForecasting)
		wantErr  bool
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Execução bem-sucedida atualiza o status",
			setup: func(m *mocks.MockForecasting) {
				m.EXPECT().
					Run(gomock.Any(), forecasting.RunRequest{Input: "ledger.csv", Output: "forecast.xlsx", Periods: 6}).
					Return(&domain.ForecastRun{RunID: "run-1"}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, false, status["sync_running"])
				assert.Equal(t, "", status["last_error"])
				run, ok := status["last_run"].(*domain.ForecastRun)
				require.True(t, ok)
				assert.Equal(t, "run-1", run.RunID)
			},
		},
		{
			name: "Falha registra o último erro",
			setup: func(m *mocks.MockForecasting) {
				m.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("ledger not found"))
			},
			wantErr: true,
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, false, status["sync_running"])
				assert.Equal(t, "ledger not found", status["last_error"])
				assert.Nil(t, status["last_run"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			forecaster := mocks.NewMockForecasting(ctrl)
			tt.setup(forecaster)

			service := NewForecastSyncService(forecaster, testConfig())

			_, err := service.RunNow(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			tt.validate(t, service.GetStatus())
		})
	}
}

func TestForecastSyncService_RejectsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	forecaster := mocks.NewMockForecasting(ctrl)
	forecaster.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, forecasting.RunRequest) (*domain.ForecastRun, error) {
			close(started)
			<-release
			return &domain.ForecastRun{RunID: "run-long"}, nil
		}).
		Times(1)

	service := NewForecastSyncService(forecaster, testConfig())

	done := make(chan error, 1)
	go func() {
		_, err := service.RunNow(context.Background())
		done <- err
	}()

	<-started
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	_, err := service.RunNow(context.Background())
	assert.ErrorIs(t, err, ErrSyncRunning)
	assert.False(t, service.TriggerManualSync())

	close(release)
	assert.NoError(t, <-done)
	assert.Equal(t, false, service.GetStatus()["sync_running"])
}

func TestForecastSyncService_StartDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.ForecastSync.Enabled = false

	service := NewForecastSyncService(nil, cfg)

	assert.NoError(t, service.Start(context.Background()))
}
