package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims representa o token de acesso da API de previsões
type Claims struct {
	Name   string   `json:"name"`
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// HasScope verifica se o token concede o escopo informado
func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
