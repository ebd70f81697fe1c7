package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

func TestWriteDomainError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
		status       int
	}{
		{name: "Horizonte inválido", err: domain.ErrInvalidHorizon, expectedCode: ErrInvalidHorizon, status: http.StatusBadRequest},
		{name: "Erro de ingestão", err: &domain.IngestError{Row: 4, Field: "Amount", Value: "x", Err: errors.New("bad")}, expectedCode: ErrIngest, status: http.StatusUnprocessableEntity},
		{name: "Falha de ajuste", err: &domain.ModelFitError{Category: "Sales", Err: errors.New("nan")}, expectedCode: ErrModelFit, status: http.StatusUnprocessableEntity},
		{name: "Falha do destino", err: &domain.SinkError{Location: "out.xlsx", Err: errors.New("denied")}, expectedCode: ErrSink, status: http.StatusBadGateway},
		{name: "Erro desconhecido", err: errors.New("boom"), expectedCode: ErrInternalServer, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteDomainError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedCode, body.Code)
		})
	}
}

func TestStatusFor_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ"))
}
