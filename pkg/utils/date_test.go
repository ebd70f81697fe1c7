package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "Formato ISO simples",
			input:    "2024-01-15",
			expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 com fuso mantém a data como escrita",
			input:    "2024-03-01T02:00:00-03:00",
			expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Fim de mês com fuso negativo não avança para o mês seguinte",
			input:    "2024-01-31T22:00:00-05:00",
			expected: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Início de mês com fuso positivo não recua para o mês anterior",
			input:    "2024-03-01T01:00:00+09:00",
			expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Data e hora separadas por espaço",
			input:    "2024-02-29 23:59:59",
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Barras como separador",
			input:    " 2023/12/31 ",
			expected: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Data vazia",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "Dia inexistente",
			input:   "2023-02-30",
			wantErr: true,
		},
		{
			name:    "Texto livre",
			input:   "ontem",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(result), "esperado %s, obtido %s", tt.expected, result)
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.13, RoundWithTwoDecimalPlace(10.125000001))
	assert.Equal(t, -1000.0, RoundWithTwoDecimalPlace(-999.999))
}
