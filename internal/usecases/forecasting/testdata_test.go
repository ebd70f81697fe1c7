package forecasting_test

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

func record(year int, month time.Month, day int, category string, amount string) domain.TransactionRecord {
	return domain.TransactionRecord{
		Date:     time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}
}

func month(year int, m time.Month) domain.MonthKey {
	return domain.MonthKey{Year: year, Month: m}
}

func actuals(category string, totals map[domain.MonthKey]string) []domain.ActualsRow {
	rows := make([]domain.ActualsRow, 0, len(totals))
	for m, total := range totals {
		rows = append(rows, domain.ActualsRow{Month: m, Category: category, Total: decimal.RequireFromString(total)})
	}
	return rows
}

// rentLedger é o cenário do aluguel: janeiro e março, fevereiro ausente
func rentLedger() []domain.TransactionRecord {
	return []domain.TransactionRecord{
		record(2024, time.January, 5, "Rent", "-1000"),
		record(2024, time.March, 5, "Rent", "-1000"),
	}
}

// salesLedger tem oito meses consecutivos de receita, o bastante para o caminho estatístico
func salesLedger() []domain.TransactionRecord {
	amounts := []string{"100", "120", "90", "130", "110", "140", "125", "150"}
	records := make([]domain.TransactionRecord, 0, len(amounts))
	for i, amount := range amounts {
		records = append(records, record(2024, time.Month(i+1), 10, "Sales", amount))
	}
	return records
}
