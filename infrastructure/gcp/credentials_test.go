package gcp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-forecaster/internal/config"
)

func TestClientOptions(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sa.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"type":"service_account"}`), 0o600))

	tests := []struct {
		name     string
		cfg      config.Google
		scopes   []string
		expected int
		wantErr  bool
	}{
		{name: "Sem credenciais usa ADC", cfg: config.Google{}, expected: 0},
		{name: "JSON inline com escopo", cfg: config.Google{ServiceAccountJSON: `{"type":"service_account"}`}, scopes: []string{"scope"}, expected: 2},
		{name: "Arquivo de conta de serviço", cfg: config.Google{ServiceAccountFile: file}, expected: 1},
		{name: "Arquivo inexistente", cfg: config.Google{ServiceAccountFile: filepath.Join(dir, "nope.json")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ClientOptions(tt.cfg, tt.scopes...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, opts, tt.expected)
		})
	}
}
