package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayouts são os formatos de data aceitos na leitura do livro-razão, em ordem de tentativa
var DateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
}

// ParseDate interpreta a data em um dos layouts aceitos. Devolve a data de calendário
// como escrita (hora e fuso descartados) à meia-noite UTC.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range DateLayouts {
		date, err := time.Parse(layout, dateStr)
		if err == nil {
			return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("data %q fora dos formatos aceitos", dateStr)
}
