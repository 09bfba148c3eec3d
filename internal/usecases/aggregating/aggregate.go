// Package aggregating implementa o motor de agregação: agrupamento por uma
// ou mais dimensões, cálculo de estatísticas por grupo, ordenação e top-N.
package aggregating

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// accumulator acumula os valores de um grupo em precisão total; nenhum
// arredondamento acontece antes da camada de apresentação.
type accumulator struct {
	key      domain.GroupKey
	sum      float64
	count    int
	distinct map[string]struct{}
}

// Aggregate agrupa os registros pelas dimensões informadas e calcula a
// estatística pedida por grupo. Grupos sem registros nunca são emitidos: o
// universo de grupos são os valores distintos observados no subconjunto.
// A ordem do resultado segue a primeira ocorrência de cada grupo.
func Aggregate(
	records []domain.SalesRecord,
	groupBy []domain.Dimension,
	statistic domain.Statistic,
	field domain.Field,
) domain.AggregationResult {
	byLabel := make(map[string]int)
	groups := make([]*accumulator, 0)

	for _, r := range records {
		key := compositeKey(r, groupBy)

		pos, seen := byLabel[key.Label]
		if !seen {
			pos = len(groups)
			byLabel[key.Label] = pos
			groups = append(groups, &accumulator{
				key:      key,
				distinct: make(map[string]struct{}),
			})
		}

		acc := groups[pos]
		acc.count++
		if v, ok := field.NumericValue(r); ok {
			acc.sum += v
		}
		if statistic == domain.StatisticDistinctCount {
			acc.distinct[field.DistinctValue(r)] = struct{}{}
		}
	}

	result := make(domain.AggregationResult, 0, len(groups))
	for _, acc := range groups {
		result = append(result, domain.GroupValue{
			Key:   acc.key,
			Value: acc.value(statistic),
		})
	}
	return result
}

func (a *accumulator) value(statistic domain.Statistic) float64 {
	switch statistic {
	case domain.StatisticSum:
		return a.sum
	case domain.StatisticMean:
		if a.count == 0 {
			return 0
		}
		return a.sum / float64(a.count)
	case domain.StatisticCount:
		return float64(a.count)
	case domain.StatisticDistinctCount:
		return float64(len(a.distinct))
	}
	return 0
}

// compositeKey monta a chave de grupo de um registro. Chaves temporais
// carregam o primeiro dia do período para ordenação cronológica.
func compositeKey(r domain.SalesRecord, groupBy []domain.Dimension) domain.GroupKey {
	if len(groupBy) == 1 {
		return keyFor(r, groupBy[0])
	}

	labels := make([]string, 0, len(groupBy))
	var date time.Time
	for _, dim := range groupBy {
		key := keyFor(r, dim)
		labels = append(labels, key.Label)
		if date.IsZero() && key.Chronological() {
			date = key.Date
		}
	}
	return domain.GroupKey{Label: strings.Join(labels, " / "), Date: date}
}

func keyFor(r domain.SalesRecord, dim domain.Dimension) domain.GroupKey {
	switch dim {
	case domain.DimensionProductLine:
		return domain.GroupKey{Label: r.ProductLine}
	case domain.DimensionDealSize:
		return domain.GroupKey{Label: r.DealSize}
	case domain.DimensionCountry:
		return domain.GroupKey{Label: r.Country}
	case domain.DimensionCustomerName:
		return domain.GroupKey{Label: r.CustomerName}
	case domain.DimensionProductCode:
		return domain.GroupKey{Label: r.ProductCode}
	case domain.DimensionYearMonth:
		bucket := time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC)
		return domain.GroupKey{
			Label: fmt.Sprintf("%04d-%02d", r.Year, r.Month),
			Date:  bucket,
		}
	case domain.DimensionYearQuarter:
		firstMonth := time.Month((r.Quarter-1)*3 + 1)
		bucket := time.Date(r.Year, firstMonth, 1, 0, 0, 0, 0, time.UTC)
		return domain.GroupKey{
			Label: fmt.Sprintf("%04d-Q%d", r.Year, r.Quarter),
			Date:  bucket,
		}
	case domain.DimensionWeekday:
		return domain.GroupKey{Label: r.WeekdayName}
	}
	return domain.GroupKey{}
}

// TopN ordena o resultado por valor decrescente e trunca em n entradas.
// Desempate determinístico: valores iguais ordenados por chave ascendente,
// garantindo saída reproduzível entre execuções.
func TopN(result domain.AggregationResult, n int) domain.AggregationResult {
	ordered := make(domain.AggregationResult, len(result))
	copy(ordered, result)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Value != ordered[j].Value {
			return ordered[i].Value > ordered[j].Value
		}
		return ordered[i].Key.Label < ordered[j].Key.Label
	})

	if n >= 0 && len(ordered) > n {
		ordered = ordered[:n]
	}
	return ordered
}

// SortByValueDesc é TopN sem truncamento.
func SortByValueDesc(result domain.AggregationResult) domain.AggregationResult {
	return TopN(result, len(result))
}

// SortChronological ordena um resultado com chaves temporais pela data do
// período (nunca lexicograficamente), com desempate por rótulo.
func SortChronological(result domain.AggregationResult) domain.AggregationResult {
	ordered := make(domain.AggregationResult, len(result))
	copy(ordered, result)

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Key.Date.Equal(ordered[j].Key.Date) {
			return ordered[i].Key.Date.Before(ordered[j].Key.Date)
		}
		return ordered[i].Key.Label < ordered[j].Key.Label
	})
	return ordered
}

// weekdayOrder fixa a ordem de apresentação Monday..Sunday.
var weekdayOrder = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// OrderWeekdays reordena um resultado agrupado por dia da semana na ordem
// Monday..Sunday, omitindo dias sem registros.
func OrderWeekdays(result domain.AggregationResult) domain.AggregationResult {
	byLabel := make(map[string]domain.GroupValue, len(result))
	for _, g := range result {
		byLabel[g.Key.Label] = g
	}

	ordered := make(domain.AggregationResult, 0, len(result))
	for _, day := range weekdayOrder {
		if g, ok := byLabel[day]; ok {
			ordered = append(ordered, g)
		}
	}
	return ordered
}
