package gcp

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/internal/config"
	"google.golang.org/api/option"
)

// ClientOptions monta as opções de autenticação dos clientes Google. Sem conta de serviço
// configurada, os clientes usam as Application Default Credentials.
func ClientOptions(cfg config.Google, scopes ...string) ([]option.ClientOption, error) {
	credentialsJSON, err := serviceAccountJSON(cfg)
	if err != nil {
		return nil, err
	}

	opts := make([]option.ClientOption, 0, 2)
	if len(credentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(credentialsJSON))
	} else {
		logrus.Debug("Nenhuma conta de serviço configurada, usando Application Default Credentials")
	}
	if len(scopes) > 0 {
		opts = append(opts, option.WithScopes(scopes...))
	}

	return opts, nil
}

func serviceAccountJSON(cfg config.Google) ([]byte, error) {
	if inline := strings.TrimSpace(cfg.ServiceAccountJSON); inline != "" {
		return []byte(inline), nil
	}

	if path := strings.TrimSpace(cfg.ServiceAccountFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return data, nil
	}

	return nil, nil
}
