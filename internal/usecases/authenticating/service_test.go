package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-forecaster/internal/config"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

func newTestService(secret string, now time.Time) *Service {
	return &Service{
		cfg: &config.Config{SecretKey: secret},
		now: func() time.Time { return now },
	}
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	now := time.Now()
	service := newTestService("segredo", now)

	token, err := service.GenerateToken("scheduler", []string{ScopeForecastRun}, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "scheduler", claims.Name)
	assert.True(t, claims.HasScope(ScopeForecastRun))
	assert.False(t, claims.HasScope(ScopeForecastAdmin))
}

func TestService_ValidateToken(t *testing.T) {
	now := time.Now()
	issuer := newTestService("segredo", now)
	valid, err := issuer.GenerateToken("ci", []string{ScopeForecastAdmin}, time.Hour)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{Name: "ci"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name     string
		service  *Service
		token    string
		expected error
	}{
		{name: "Assinatura com outro segredo", service: newTestService("outro", now), token: valid, expected: ErrInvalidToken},
		{name: "Token expirado", service: newTestService("segredo", now.Add(2*time.Hour)), token: valid, expected: ErrExpiredToken},
		{name: "Token sem assinatura", service: issuer, token: unsigned, expected: ErrInvalidToken},
		{name: "Texto qualquer", service: issuer, token: "abc.def", expected: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.expected)
			assert.True(t, IsTokenError(err))
		})
	}
}

func TestService_GenerateToken_RequiresName(t *testing.T) {
	_, err := newTestService("segredo", time.Now()).GenerateToken("", nil, 0)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}
