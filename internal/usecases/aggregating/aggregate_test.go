package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func record(orderNumber int, date time.Time, sales float64, productLine, customer string) domain.SalesRecord {
	r := domain.SalesRecord{
		OrderNumber:  orderNumber,
		OrderDate:    date,
		Sales:        sales,
		ProductLine:  productLine,
		CustomerName: customer,
	}
	r.DeriveCalendar()
	return r
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateSum(t *testing.T) {
	records := []domain.SalesRecord{
		record(1, day(2004, 3, 1), 100, "A", "c1"),
		record(1, day(2004, 3, 2), 200, "A", "c1"),
		record(2, day(2004, 3, 3), 50, "B", "c2"),
	}

	result := Aggregate(records, []domain.Dimension{domain.DimensionProductLine}, domain.StatisticSum, domain.FieldSales)

	require.Len(t, result, 2)
	assert.Equal(t, "A", result[0].Key.Label)
	assert.Equal(t, 300.0, result[0].Value)
	assert.Equal(t, "B", result[1].Key.Label)
	assert.Equal(t, 50.0, result[1].Value)
}

func TestAggregateStatistics(t *testing.T) {
	records := []domain.SalesRecord{
		record(1, day(2004, 3, 1), 100, "A", "c1"),
		record(2, day(2004, 3, 2), 200, "A", "c2"),
		record(2, day(2004, 3, 3), 300, "A", "c2"),
	}

	tests := []struct {
		name      string
		statistic domain.Statistic
		field     domain.Field
		expected  float64
	}{
		{
			name:      "Soma acumula todos os valores do grupo",
			statistic: domain.StatisticSum,
			field:     domain.FieldSales,
			expected:  600,
		},
		{
			name:      "Média divide a soma pela contagem de linhas",
			statistic: domain.StatisticMean,
			field:     domain.FieldSales,
			expected:  200,
		},
		{
			name:      "Contagem conta linhas, não pedidos",
			statistic: domain.StatisticCount,
			field:     domain.FieldSales,
			expected:  3,
		},
		{
			name:      "Contagem distinta de pedidos",
			statistic: domain.StatisticDistinctCount,
			field:     domain.FieldOrderNumber,
			expected:  2,
		},
		{
			name:      "Contagem distinta de clientes",
			statistic: domain.StatisticDistinctCount,
			field:     domain.FieldCustomerName,
			expected:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Aggregate(records, []domain.Dimension{domain.DimensionProductLine}, tt.statistic, tt.field)
			require.Len(t, result, 1)
			assert.Equal(t, tt.expected, result[0].Value)
		})
	}
}

// A soma dos grupos de uma partição deve igualar a soma global do subconjunto.
func TestAggregatePartitionSum(t *testing.T) {
	records := []domain.SalesRecord{
		record(1, day(2003, 1, 10), 120.5, "A", "c1"),
		record(2, day(2003, 5, 11), 80.25, "B", "c2"),
		record(3, day(2004, 7, 12), 310.75, "A", "c3"),
		record(4, day(2005, 11, 13), 45.5, "C", "c1"),
	}

	var total float64
	for _, r := range records {
		total += r.Sales
	}

	result := Aggregate(records, []domain.Dimension{domain.DimensionProductLine}, domain.StatisticSum, domain.FieldSales)
	assert.InDelta(t, total, result.Total(), 1e-9)
}

func TestAggregateEmptyInput(t *testing.T) {
	result := Aggregate(nil, []domain.Dimension{domain.DimensionProductLine}, domain.StatisticSum, domain.FieldSales)
	assert.Empty(t, result)
}

func TestAggregateTimeKeys(t *testing.T) {
	records := []domain.SalesRecord{
		record(1, day(2004, 11, 5), 100, "A", "c1"),
		record(2, day(2004, 2, 5), 200, "A", "c1"),
		record(3, day(2003, 12, 5), 50, "A", "c1"),
	}

	t.Run("Ano-mês carrega o primeiro dia do período", func(t *testing.T) {
		result := Aggregate(records, []domain.Dimension{domain.DimensionYearMonth}, domain.StatisticSum, domain.FieldSales)
		require.Len(t, result, 3)

		ordered := SortChronological(result)
		assert.Equal(t, "2003-12", ordered[0].Key.Label)
		assert.Equal(t, "2004-02", ordered[1].Key.Label)
		assert.Equal(t, "2004-11", ordered[2].Key.Label)
		assert.Equal(t, day(2004, 2, 1), ordered[1].Key.Date)
	})

	t.Run("Ano-trimestre agrupa pelo trimestre do pedido", func(t *testing.T) {
		result := Aggregate(records, []domain.Dimension{domain.DimensionYearQuarter}, domain.StatisticSum, domain.FieldSales)

		ordered := SortChronological(result)
		require.Len(t, ordered, 3)
		assert.Equal(t, "2003-Q4", ordered[0].Key.Label)
		assert.Equal(t, "2004-Q1", ordered[1].Key.Label)
		assert.Equal(t, "2004-Q4", ordered[2].Key.Label)
		assert.Equal(t, day(2004, 1, 1), ordered[1].Key.Date)
	})
}

// A ordenação cronológica nunca é lexicográfica: "2004-02" vem depois de
// "2003-12" mesmo que a comparação textual concorde, e meses de anos
// diferentes não se misturam.
func TestSortChronologicalAcrossYears(t *testing.T) {
	records := []domain.SalesRecord{
		record(1, day(2005, 1, 1), 10, "A", "c1"),
		record(2, day(2003, 10, 1), 20, "A", "c1"),
		record(3, day(2004, 6, 1), 30, "A", "c1"),
	}

	result := Aggregate(records, []domain.Dimension{domain.DimensionYearMonth}, domain.StatisticSum, domain.FieldSales)
	ordered := SortChronological(result)

	labels := make([]string, 0, len(ordered))
	for _, g := range ordered {
		labels = append(labels, g.Key.Label)
	}
	assert.Equal(t, []string{"2003-10", "2004-06", "2005-01"}, labels)
}

func TestTopN(t *testing.T) {
	result := domain.AggregationResult{
		{Key: domain.GroupKey{Label: "c"}, Value: 10},
		{Key: domain.GroupKey{Label: "a"}, Value: 30},
		{Key: domain.GroupKey{Label: "b"}, Value: 20},
		{Key: domain.GroupKey{Label: "d"}, Value: 20},
	}

	t.Run("Ordena por valor decrescente e trunca", func(t *testing.T) {
		top := TopN(result, 2)
		require.Len(t, top, 2)
		assert.Equal(t, "a", top[0].Key.Label)
		assert.Equal(t, "b", top[1].Key.Label)
	})

	t.Run("Desempate determinístico por chave ascendente", func(t *testing.T) {
		top := TopN(result, 4)
		assert.Equal(t, "a", top[0].Key.Label)
		assert.Equal(t, "b", top[1].Key.Label)
		assert.Equal(t, "d", top[2].Key.Label)
		assert.Equal(t, "c", top[3].Key.Label)
	})

	t.Run("N maior que o resultado retorna tudo ordenado", func(t *testing.T) {
		top := TopN(result, 100)
		assert.Len(t, top, 4)
	})

	t.Run("Não modifica o resultado original", func(t *testing.T) {
		TopN(result, 1)
		assert.Equal(t, "c", result[0].Key.Label)
	})
}

func TestOrderWeekdays(t *testing.T) {
	records := []domain.SalesRecord{
		record(1, day(2004, 3, 14), 10, "A", "c1"), // Sunday
		record(2, day(2004, 3, 15), 20, "A", "c1"), // Monday
		record(3, day(2004, 3, 17), 30, "A", "c1"), // Wednesday
	}

	result := Aggregate(records, []domain.Dimension{domain.DimensionWeekday}, domain.StatisticSum, domain.FieldSales)
	ordered := OrderWeekdays(result)

	require.Len(t, ordered, 3)
	assert.Equal(t, "Monday", ordered[0].Key.Label)
	assert.Equal(t, "Wednesday", ordered[1].Key.Label)
	assert.Equal(t, "Sunday", ordered[2].Key.Label)
}

func TestCompositeKey(t *testing.T) {
	r := record(1, day(2004, 5, 3), 10, "Planes", "c1")

	key := compositeKey(r, []domain.Dimension{domain.DimensionYearMonth, domain.DimensionProductLine})
	assert.Equal(t, "2004-05 / Planes", key.Label)
	assert.Equal(t, day(2004, 5, 1), key.Date)
}
