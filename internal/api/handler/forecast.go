package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/budget-forecaster/infrastructure/ledger"
	"github.com/vfg2006/budget-forecaster/infrastructure/report"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/internal/usecases/forecasting"
	"github.com/vfg2006/budget-forecaster/pkg/apiErrors"
	"github.com/vfg2006/budget-forecaster/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxLedgerBody limita o tamanho do CSV aceito no corpo da requisição
const maxLedgerBody = 10 << 20

// CreateForecast recebe o livro-razão em CSV no corpo e devolve o relatório sem persisti-lo
func CreateForecast(service forecasting.Forecasting, defaultPeriods int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periods := defaultPeriods
		if raw := r.URL.Query().Get("periods"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro periods deve ser um inteiro", map[string]any{"periods": raw})
				return
			}
			periods = parsed
		}

		if periods < 1 {
			apiErrors.WriteDomainError(w, domain.ErrInvalidHorizon)
			return
		}

		records, err := ledger.ParseCSV(http.MaxBytesReader(w, r.Body, maxLedgerBody))
		if err != nil {
			logger.WithError(err).Warn("Livro-razão rejeitado")
			apiErrors.WriteDomainError(w, err)
			return
		}

		forecastReport, err := service.BuildReport(r.Context(), records, periods)
		if err != nil {
			logger.WithError(err).Error("Erro ao gerar previsão")
			apiErrors.WriteDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(report.NewDocument(*forecastReport)); err != nil {
			logger.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}
