package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/internal/usecases/authenticating"
	"github.com/vfg2006/budget-forecaster/pkg/apiErrors"
)

// ScopeMiddleware restringe a rota aos tokens que possuem ao menos um dos escopos informados
func ScopeMiddleware(allowedScopes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cliente não autenticado", nil)
				return
			}

			for _, scope := range allowedScopes {
				if claims.HasScope(scope) {
					next.ServeHTTP(w, r)
					return
				}
			}

			logrus.Warningf("Acesso negado para cliente %s, escopos=%v", claims.Name, claims.Scopes)
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		})
	}
}

// RunForecasts permite executar previsões
func RunForecasts() func(http.Handler) http.Handler {
	return ScopeMiddleware(authenticating.ScopeForecastRun, authenticating.ScopeForecastAdmin)
}

// AdminOnly permite acesso apenas a tokens administrativos
func AdminOnly() func(http.Handler) http.Handler {
	return ScopeMiddleware(authenticating.ScopeForecastAdmin)
}
