package domain

import (
	"fmt"
	"time"
)

// MonthKeyLayout é o formato textual de um MonthKey (yyyy-mm)
const MonthKeyLayout = "2006-01"

// MonthKey identifica um mês do calendário (o bucket mensal de agregação).
// Dois lançamentos pertencem ao mesmo bucket se e somente se seus MonthKey são iguais.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthOf trunca a data para o mês correspondente
func MonthOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// NewMonthKey cria um MonthKey normalizando meses fora do intervalo 1-12
func NewMonthKey(year int, month time.Month) MonthKey {
	return MonthOf(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// ParseMonthKey converte uma string yyyy-mm em MonthKey
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse(MonthKeyLayout, s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("mês inválido %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// Time retorna o primeiro dia do mês em UTC
func (m MonthKey) Time() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths avança (ou recua, com n negativo) n meses
func (m MonthKey) AddMonths(n int) MonthKey {
	return MonthOf(m.Time().AddDate(0, n, 0))
}

// Next retorna o mês seguinte
func (m MonthKey) Next() MonthKey {
	return m.AddMonths(1)
}

func (m MonthKey) Before(other MonthKey) bool {
	return m.index() < other.index()
}

func (m MonthKey) After(other MonthKey) bool {
	return m.index() > other.index()
}

// MonthsUntil retorna quantos meses separam m de other (negativo se other vem antes)
func (m MonthKey) MonthsUntil(other MonthKey) int {
	return other.index() - m.index()
}

func (m MonthKey) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m MonthKey) index() int {
	return m.Year*12 + int(m.Month) - 1
}

// MarshalText permite serializar o MonthKey como yyyy-mm em JSON
func (m MonthKey) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *MonthKey) UnmarshalText(text []byte) error {
	parsed, err := ParseMonthKey(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
