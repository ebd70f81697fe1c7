package report

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

// Sink é qualquer destino capaz de persistir o relatório
type Sink interface {
	WriteReport(ctx context.Context, location string, report domain.ForecastReport) error
}

// Router escolhe o destino pela localização e converte qualquer falha em *domain.SinkError
type Router struct {
	excel    Sink
	json     Sink
	sqlite   Sink
	postgres Sink
	sheets   Sink
}

type RouterOption func(*Router)

func WithSheets(sink Sink) RouterOption {
	return func(r *Router) {
		r.sheets = sink
	}
}

func WithPostgres(sink Sink) RouterOption {
	return func(r *Router) {
		r.postgres = sink
	}
}

func WithSQLite(sink Sink) RouterOption {
	return func(r *Router) {
		r.sqlite = sink
	}
}

func WithExcel(sink Sink) RouterOption {
	return func(r *Router) {
		r.excel = sink
	}
}

func WithJSON(sink Sink) RouterOption {
	return func(r *Router) {
		r.json = sink
	}
}

func NewRouter(opts ...RouterOption) *Router {
	r := &Router{
		excel:    NewExcelSink(),
		json:     NewJSONSink(),
		sqlite:   NewSQLiteSink(),
		postgres: NewPostgresSink(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) WriteReport(ctx context.Context, location string, report domain.ForecastReport) error {
	sink, err := r.sinkFor(location)
	if err != nil {
		return &domain.SinkError{Location: location, Err: err}
	}

	if err := sink.WriteReport(ctx, location, report); err != nil {
		var sinkErr *domain.SinkError
		if errors.As(err, &sinkErr) {
			return err
		}
		return &domain.SinkError{Location: location, Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"output": location,
		"run_id": report.RunID,
	}).Info("Relatório de previsão persistido")

	return nil
}

func (r *Router) sinkFor(location string) (Sink, error) {
	lower := strings.ToLower(location)

	var sink Sink
	switch {
	case strings.HasPrefix(lower, sqliteScheme):
		sink = r.sqlite
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		sink = r.postgres
	case strings.HasPrefix(lower, sheetsScheme):
		sink = r.sheets
	case strings.Contains(lower, "://"):
		return nil, fmt.Errorf("unsupported output location")
	case filepath.Ext(lower) == ".xlsx":
		sink = r.excel
	case filepath.Ext(lower) == ".json":
		sink = r.json
	default:
		return nil, fmt.Errorf("unsupported output extension %q (use .xlsx or .json)", filepath.Ext(location))
	}

	if sink == nil {
		return nil, fmt.Errorf("output destination not configured")
	}
	return sink, nil
}
