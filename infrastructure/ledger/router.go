package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/budget-forecaster/internal/domain"
)

// Source é qualquer origem capaz de ler o livro-razão de uma localização
type Source interface {
	ReadLedger(ctx context.Context, location string) ([]domain.TransactionRecord, error)
}

// Router escolhe a origem pela localização: gs:// para Cloud Storage, postgres:// para o banco
// e qualquer outro valor como caminho de arquivo CSV.
type Router struct {
	file     Source
	gcs      Source
	postgres Source
}

type RouterOption func(*Router)

func WithGCS(source Source) RouterOption {
	return func(r *Router) {
		r.gcs = source
	}
}

func WithPostgres(source Source) RouterOption {
	return func(r *Router) {
		r.postgres = source
	}
}

func WithFile(source Source) RouterOption {
	return func(r *Router) {
		r.file = source
	}
}

func NewRouter(opts ...RouterOption) *Router {
	r := &Router{file: NewFileReader()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) ReadLedger(ctx context.Context, location string) ([]domain.TransactionRecord, error) {
	source, err := r.sourceFor(location)
	if err != nil {
		return nil, err
	}
	return source.ReadLedger(ctx, location)
}

func (r *Router) sourceFor(location string) (Source, error) {
	lower := strings.ToLower(location)

	switch {
	case strings.HasPrefix(lower, gcsScheme):
		if r.gcs == nil {
			return nil, fmt.Errorf("ledger source gs:// not configured")
		}
		return r.gcs, nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		if r.postgres == nil {
			return nil, fmt.Errorf("ledger source postgres:// not configured")
		}
		return r.postgres, nil
	case strings.Contains(lower, "://"):
		return nil, fmt.Errorf("unsupported ledger location %q", location)
	default:
		return r.file, nil
	}
}
