package forecasting_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/budget-forecaster/internal/domain"
	"github.com/vfg2006/budget-forecaster/internal/usecases/forecasting"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.TransactionRecord
		expected []domain.ActualsRow
	}{
		{
			name:     "Entrada vazia gera saída vazia",
			records:  nil,
			expected: []domain.ActualsRow{},
		},
		{
			name: "Lançamentos do mesmo mês e categoria são somados",
			records: []domain.TransactionRecord{
				record(2024, time.January, 3, "Groceries", "-45.10"),
				record(2024, time.January, 28, "Groceries", "-54.90"),
				record(2024, time.January, 15, "Salary", "3000"),
			},
			expected: []domain.ActualsRow{
				{Month: month(2024, time.January), Category: "Groceries", Total: decimal.RequireFromString("-100")},
				{Month: month(2024, time.January), Category: "Salary", Total: decimal.RequireFromString("3000")},
			},
		},
		{
			name: "Saída ordenada por mês e depois por categoria",
			records: []domain.TransactionRecord{
				record(2024, time.March, 1, "B", "1"),
				record(2023, time.December, 31, "Z", "2"),
				record(2024, time.March, 2, "A", "3"),
				record(2024, time.January, 1, "B", "4"),
			},
			expected: []domain.ActualsRow{
				{Month: month(2023, time.December), Category: "Z", Total: decimal.RequireFromString("2")},
				{Month: month(2024, time.January), Category: "B", Total: decimal.RequireFromString("4")},
				{Month: month(2024, time.March), Category: "A", Total: decimal.RequireFromString("3")},
				{Month: month(2024, time.March), Category: "B", Total: decimal.RequireFromString("1")},
			},
		},
		{
			name: "Receita e despesa na mesma categoria se compensam",
			records: []domain.TransactionRecord{
				record(2024, time.May, 1, "Refunds", "-20"),
				record(2024, time.May, 20, "Refunds", "20"),
			},
			expected: []domain.ActualsRow{
				{Month: month(2024, time.May), Category: "Refunds", Total: decimal.Zero},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := forecasting.Aggregate(tt.records)
			require.Len(t, result, len(tt.expected))
			for i, row := range result {
				assert.Equal(t, tt.expected[i].Month, row.Month)
				assert.Equal(t, tt.expected[i].Category, row.Category)
				assert.True(t, tt.expected[i].Total.Equal(row.Total), "total esperado %s, obtido %s", tt.expected[i].Total, row.Total)
			}
		})
	}
}

func TestAggregate_ConservesTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	categories := []string{"Rent", "Sales", "Utilities", "Travel"}

	records := make([]domain.TransactionRecord, 0, 500)
	expected := decimal.Zero
	for i := 0; i < 500; i++ {
		amount := decimal.New(rng.Int63n(200000)-100000, -2)
		expected = expected.Add(amount)
		records = append(records, domain.TransactionRecord{
			Date:     time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(900)),
			Category: categories[rng.Intn(len(categories))],
			Amount:   amount,
		})
	}

	rows := forecasting.Aggregate(records)

	total := decimal.Zero
	seen := make(map[string]bool)
	for _, row := range rows {
		total = total.Add(row.Total)

		key := row.Month.String() + "|" + row.Category
		assert.False(t, seen[key], "par (mês, categoria) duplicado: %s", key)
		seen[key] = true
	}

	assert.True(t, expected.Equal(total), "soma esperada %s, obtida %s", expected, total)
}
