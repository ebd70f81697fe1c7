package report

import (
	"context"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONSink grava o relatório como documento JSON
type JSONSink struct{}

func NewJSONSink() *JSONSink {
	return &JSONSink{}
}

func (s *JSONSink) WriteReport(_ context.Context, location string, report domain.ForecastReport) error {
	data, err := json.MarshalIndent(NewDocument(report), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if err := os.WriteFile(location, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
