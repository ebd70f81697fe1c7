package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/internal/config"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/internal/usecases/forecasting"
	"github.com/vfg2006/budget-forecaster/pkg/log"
)

// ErrSyncRunning indica que já existe uma execução em andamento
var ErrSyncRunning = errors.New("forecast sync already running")

// ForecastSyncConfig representa a configuração do agendador de previsões
type ForecastSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Input        string
	Output       string
	Periods      int
}

// ForecastSyncService agenda e executa o pipeline de previsão periodicamente
type ForecastSyncService struct {
	scheduler           *gocron.Scheduler
	config              ForecastSyncConfig
	forecaster          forecasting.Forecasting
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRun             *domain.ForecastRun
	lastError           string
}

// NewForecastSyncService cria uma nova instância do agendador de previsões
func NewForecastSyncService(forecaster forecasting.Forecasting, appConfig *config.Config) *ForecastSyncService {
	syncConfig := ForecastSyncConfig{
		CronSchedule: appConfig.ForecastSync.CronSchedule,
		SyncEnabled:  appConfig.ForecastSync.Enabled,
		Input:        appConfig.ForecastSync.Input,
		Output:       appConfig.ForecastSync.Output,
		Periods:      appConfig.Forecast.Periods,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"input":         syncConfig.Input,
		"output":        syncConfig.Output,
		"periods":       syncConfig.Periods,
	}).Info("Configuração do agendador de previsões carregada")

	return &ForecastSyncService{
		scheduler:  scheduler,
		config:     syncConfig,
		forecaster: forecaster,
	}
}

// Start inicia o agendador
func (s *ForecastSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Previsão agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de previsões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		_, _ = s.RunNow(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar previsão: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de previsões")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa o pipeline de forma síncrona, recusando execuções sobrepostas
func (s *ForecastSyncService) RunNow(ctx context.Context) (*domain.ForecastRun, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Previsão já em andamento, ignorando")
		return nil, ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	ctx, _ = log.WithCorrelationID(ctx)
	startTime := time.Now()

	run, err := s.forecaster.Run(ctx, forecasting.RunRequest{
		Input:   s.config.Input,
		Output:  s.config.Output,
		Periods: s.config.Periods,
	})

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		log.ForContext(ctx).WithError(err).Error("Erro na previsão agendada")
		return nil, err
	}

	s.lastError = ""
	s.lastRun = run
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"run_id":   run.RunID,
	}).Info("Previsão agendada concluída")

	return run, nil
}

// TriggerManualSync inicia manualmente uma previsão em segundo plano.
// Retorna false quando já existe uma execução em andamento.
func (s *ForecastSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Previsão já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando previsão manual")
	go func() {
		_, _ = s.RunNow(context.Background())
	}()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ForecastSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run":               s.lastRun,
		"last_error":             s.lastError,
	}
}
