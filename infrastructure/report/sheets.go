package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/pkg/utils"
	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

const sheetsScheme = "sheets://"

// SheetsSink grava o relatório nas abas Actuals e Forecast de uma planilha Google (sheets://<id>)
type SheetsSink struct {
	opts []option.ClientOption
}

func NewSheetsSink(opts ...option.ClientOption) *SheetsSink {
	return &SheetsSink{opts: opts}
}

func (s *SheetsSink) WriteReport(ctx context.Context, location string, report domain.ForecastReport) error {
	rest, ok := utils.TrimScheme(location, sheetsScheme)
	spreadsheetID := strings.Trim(rest, "/")
	if !ok || spreadsheetID == "" {
		return fmt.Errorf("sheets location must be sheets://<spreadsheet-id>: %s", location)
	}

	svc, err := gsheet.NewService(ctx, s.opts...)
	if err != nil {
		return fmt.Errorf("create sheets service: %w", err)
	}

	if err := ensureTabs(ctx, svc, spreadsheetID, ActualsSheet, ForecastSheet); err != nil {
		return err
	}

	tabs := []struct {
		name string
		rows [][]interface{}
	}{
		{ActualsSheet, actualsRows(report, monthText)},
		{ForecastSheet, forecastRows(report, monthText)},
	}

	for _, tab := range tabs {
		if _, err := svc.Spreadsheets.Values.Clear(spreadsheetID, tab.name, &gsheet.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
			return fmt.Errorf("clear tab %s: %w", tab.name, err)
		}

		vr := &gsheet.ValueRange{Values: tab.rows}
		if _, err := svc.Spreadsheets.Values.Update(spreadsheetID, tab.name+"!A1", vr).ValueInputOption("RAW").Context(ctx).Do(); err != nil {
			return fmt.Errorf("update tab %s: %w", tab.name, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"spreadsheet_id": spreadsheetID,
		"actuals":        len(report.Actuals),
		"forecast":       len(report.Forecast),
	}).Debug("Relatório gravado no Google Sheets")

	return nil
}

func ensureTabs(ctx context.Context, svc *gsheet.Service, spreadsheetID string, names ...string) error {
	spreadsheet, err := svc.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet: %w", err)
	}

	existing := make(map[string]bool, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			existing[sheet.Properties.Title] = true
		}
	}

	var requests []*gsheet.Request
	for _, name := range names {
		if !existing[name] {
			requests = append(requests, &gsheet.Request{
				AddSheet: &gsheet.AddSheetRequest{Properties: &gsheet.SheetProperties{Title: name}},
			})
		}
	}
	if len(requests) == 0 {
		return nil
	}

	_, err = svc.Spreadsheets.BatchUpdate(spreadsheetID, &gsheet.BatchUpdateSpreadsheetRequest{Requests: requests}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("add tabs: %w", err)
	}

	return nil
}
