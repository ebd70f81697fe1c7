package forecasting

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

type bucketKey struct {
	month    domain.MonthKey
	category string
}

// Aggregate agrupa os lançamentos por (mês, categoria) e soma os valores.
// A saída é ordenada por mês e depois por categoria; entrada vazia gera saída vazia.
func Aggregate(records []domain.TransactionRecord) []domain.ActualsRow {
	totals := make(map[bucketKey]decimal.Decimal)
	for _, record := range records {
		key := bucketKey{month: record.Month(), category: record.Category}
		if current, ok := totals[key]; ok {
			totals[key] = current.Add(record.Amount)
		} else {
			totals[key] = record.Amount
		}
	}

	rows := make([]domain.ActualsRow, 0, len(totals))
	for key, total := range totals {
		rows = append(rows, domain.ActualsRow{
			Month:    key.month,
			Category: key.category,
			Total:    total,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month.Before(rows[j].Month)
		}
		return rows[i].Category < rows[j].Category
	})

	return rows
}
