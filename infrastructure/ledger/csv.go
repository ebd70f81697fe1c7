package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/pkg/utils"
)

const (
	ColumnDate     = "Date"
	ColumnCategory = "Category"
	ColumnAmount   = "Amount"
)

var (
	errMissingColumn = errors.New("required column not found in header")
	errEmptyField    = errors.New("empty value")
)

// FileReader lê o livro-razão de um arquivo CSV local
type FileReader struct{}

func NewFileReader() *FileReader {
	return &FileReader{}
}

func (f *FileReader) ReadLedger(ctx context.Context, location string) ([]domain.TransactionRecord, error) {
	file, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("opening ledger file: %w", err)
	}
	defer file.Close()

	records, err := ParseCSV(file)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"input":   location,
		"records": len(records),
	}).Debug("Livro-razão carregado do arquivo")

	return records, nil
}

// ParseCSV lê lançamentos de um CSV com cabeçalho contendo Date, Category e Amount.
// Os nomes das colunas não diferenciam maiúsculas e colunas extras são ignoradas.
// O primeiro campo inválido interrompe a leitura com *domain.IngestError.
func ParseCSV(r io.Reader) ([]domain.TransactionRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &domain.IngestError{Row: 1, Field: ColumnDate, Err: errMissingColumn}
	}
	if err != nil {
		return nil, &domain.IngestError{Row: 1, Err: err}
	}

	columns, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.TransactionRecord, 0)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &domain.IngestError{Row: parseErr.Line, Err: parseErr.Err}
			}
			return nil, &domain.IngestError{Err: err}
		}
		row, _ := reader.FieldPos(0)

		record, err := parseRecord(fields, columns, row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

type columnIndex struct {
	date     int
	category int
	amount   int
}

func resolveColumns(header []string) (columnIndex, error) {
	idx := columnIndex{date: -1, category: -1, amount: -1}

	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		switch {
		case strings.EqualFold(name, ColumnDate):
			idx.date = i
		case strings.EqualFold(name, ColumnCategory):
			idx.category = i
		case strings.EqualFold(name, ColumnAmount):
			idx.amount = i
		}
	}

	required := []struct {
		name  string
		index int
	}{
		{ColumnDate, idx.date},
		{ColumnCategory, idx.category},
		{ColumnAmount, idx.amount},
	}
	for _, column := range required {
		if column.index < 0 {
			return idx, &domain.IngestError{Row: 1, Field: column.name, Err: errMissingColumn}
		}
	}

	return idx, nil
}

func parseRecord(fields []string, columns columnIndex, row int) (domain.TransactionRecord, error) {
	field := func(i int, name string) (string, error) {
		if i >= len(fields) {
			return "", &domain.IngestError{Row: row, Field: name, Err: errEmptyField}
		}
		value := strings.TrimSpace(fields[i])
		if value == "" {
			return "", &domain.IngestError{Row: row, Field: name, Err: errEmptyField}
		}
		return value, nil
	}

	rawDate, err := field(columns.date, ColumnDate)
	if err != nil {
		return domain.TransactionRecord{}, err
	}
	date, err := utils.ParseDate(rawDate)
	if err != nil {
		return domain.TransactionRecord{}, &domain.IngestError{Row: row, Field: ColumnDate, Value: rawDate, Err: err}
	}

	category, err := field(columns.category, ColumnCategory)
	if err != nil {
		return domain.TransactionRecord{}, err
	}

	rawAmount, err := field(columns.amount, ColumnAmount)
	if err != nil {
		return domain.TransactionRecord{}, err
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return domain.TransactionRecord{}, &domain.IngestError{Row: row, Field: ColumnAmount, Value: rawAmount, Err: err}
	}

	return domain.TransactionRecord{Date: date, Category: category, Amount: amount}, nil
}
