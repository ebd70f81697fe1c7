package report

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet = "Sheet1"
	monthFormat  = "yyyy-mm"
)

// ExcelSink grava o relatório em uma planilha com as abas Actuals e Forecast
type ExcelSink struct{}

func NewExcelSink() *ExcelSink {
	return &ExcelSink{}
}

func (s *ExcelSink) WriteReport(_ context.Context, location string, report domain.ForecastReport) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar a planilha")
		}
	}()

	if err := f.SetSheetName(defaultSheet, ActualsSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(ForecastSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	monthStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: stringPtr(monthFormat)})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{ActualsSheet, actualsRows(report, monthDate)},
		{ForecastSheet, forecastRows(report, monthDate)},
	}

	for _, sheet := range sheets {
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			return err
		}
		if err := f.SetColStyle(sheet.name, "C", amountStyle); err != nil {
			return fmt.Errorf("styling sheet %s: %w", sheet.name, err)
		}
		// células de data recebem um estilo padrão ao serem gravadas; o formato do mês é aplicado depois
		if len(sheet.rows) > 1 {
			last := fmt.Sprintf("A%d", len(sheet.rows))
			if err := f.SetCellStyle(sheet.name, "A2", last, monthStyle); err != nil {
				return fmt.Errorf("styling months on %s: %w", sheet.name, err)
			}
		}
		if err := f.SetColWidth(sheet.name, "A", "C", 16); err != nil {
			return fmt.Errorf("sizing sheet %s: %w", sheet.name, err)
		}
	}

	if err := f.SaveAs(location); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func stringPtr(s string) *string {
	return &s
}
