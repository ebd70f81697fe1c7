package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord representa um lançamento normalizado do livro-razão.
// Valores positivos são receitas e negativos são despesas.
type TransactionRecord struct {
	Date     time.Time       `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Month retorna o bucket mensal do lançamento
func (t TransactionRecord) Month() MonthKey {
	return MonthOf(t.Date)
}
