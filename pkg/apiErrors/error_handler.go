package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidHorizon      = "VAL_004" // Horizonte de previsão inválido
	ErrNotFound            = "VAL_005" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_006" // Método não suportado pela rota

	// Erros do pipeline de previsão
	ErrIngest     = "FCT_001" // Livro-razão malformado
	ErrModelFit   = "FCT_002" // Falha no ajuste do modelo
	ErrSink       = "FCT_003" // Falha ao persistir o relatório
	ErrSyncActive = "FCT_004" // Execução já em andamento

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidHorizon:        http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrIngest:                http.StatusUnprocessableEntity,
	ErrModelFit:              http.StatusUnprocessableEntity,
	ErrSink:                  http.StatusBadGateway,
	ErrSyncActive:            http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP do código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// WriteDomainError traduz os erros do pipeline de previsão em respostas padronizadas
func WriteDomainError(w http.ResponseWriter, err error) {
	var (
		ingestErr *domain.IngestError
		fitErr    *domain.ModelFitError
		sinkErr   *domain.SinkError
	)

	switch {
	case errors.Is(err, domain.ErrInvalidHorizon):
		WriteError(w, ErrInvalidHorizon, err.Error(), nil)
	case errors.As(err, &ingestErr):
		WriteError(w, ErrIngest, ingestErr.Error(), map[string]any{
			"row":   ingestErr.Row,
			"field": ingestErr.Field,
			"value": ingestErr.Value,
		})
	case errors.As(err, &fitErr):
		WriteError(w, ErrModelFit, fitErr.Error(), map[string]any{"category": fitErr.Category})
	case errors.As(err, &sinkErr):
		WriteError(w, ErrSink, "Erro ao persistir o relatório", map[string]any{"location": sinkErr.Location})
	default:
		WriteError(w, ErrInternalServer, "Erro interno ao gerar previsão", nil)
	}
}
