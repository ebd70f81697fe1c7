package forecasting

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

// CategoryGroup são os totais mensais de uma única categoria
type CategoryGroup struct {
	Category string
	Rows     []domain.ActualsRow
}

// SplitByCategory separa os totais por categoria, com as categorias em ordem alfabética
func SplitByCategory(actuals []domain.ActualsRow) []CategoryGroup {
	byCategory := make(map[string][]domain.ActualsRow)
	for _, row := range actuals {
		byCategory[row.Category] = append(byCategory[row.Category], row)
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for category, rows := range byCategory {
		groups = append(groups, CategoryGroup{Category: category, Rows: rows})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})

	return groups
}

// BuildSeries projeta os totais de uma categoria em uma série mensal contígua,
// do primeiro ao último mês observado, preenchendo os meses ausentes com zero.
func BuildSeries(category string, rows []domain.ActualsRow) (domain.CategorySeries, error) {
	if len(rows) == 0 {
		return domain.CategorySeries{}, &domain.EmptyCategoryError{Category: category}
	}

	totals := make(map[domain.MonthKey]decimal.Decimal, len(rows))
	first, last := rows[0].Month, rows[0].Month
	for _, row := range rows {
		if row.Category != category {
			return domain.CategorySeries{}, fmt.Errorf("total de %s (%s) não pertence à categoria %q", row.Month, row.Category, category)
		}
		if _, duplicated := totals[row.Month]; duplicated {
			return domain.CategorySeries{}, fmt.Errorf("mês %s duplicado na categoria %q", row.Month, category)
		}
		totals[row.Month] = row.Total

		if row.Month.Before(first) {
			first = row.Month
		}
		if row.Month.After(last) {
			last = row.Month
		}
	}

	length := first.MonthsUntil(last) + 1
	points := make([]domain.SeriesPoint, 0, length)
	for month := first; !month.After(last); month = month.Next() {
		total, ok := totals[month]
		if !ok {
			total = decimal.Zero
		}
		points = append(points, domain.SeriesPoint{Month: month, Total: total})
	}

	return domain.CategorySeries{Category: category, Points: points}, nil
}
