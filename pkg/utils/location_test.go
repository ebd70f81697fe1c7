package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimScheme(t *testing.T) {
	tests := []struct {
		name     string
		location string
		scheme   string
		expected string
		ok       bool
	}{
		{name: "Esquema em minúsculas", location: "sqlite://out.db", scheme: "sqlite://", expected: "out.db", ok: true},
		{name: "Esquema em maiúsculas", location: "SQLITE://out.db", scheme: "sqlite://", expected: "out.db", ok: true},
		{name: "Esquema misto preserva o caminho", location: "Gs://Bucket/Ledger.csv", scheme: "gs://", expected: "Bucket/Ledger.csv", ok: true},
		{name: "Outro esquema", location: "sheets://abc", scheme: "sqlite://", expected: "sheets://abc", ok: false},
		{name: "Localização menor que o esquema", location: "sq", scheme: "sqlite://", expected: "sq", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, ok := TrimScheme(tt.location, tt.scheme)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, rest)
		})
	}
}
