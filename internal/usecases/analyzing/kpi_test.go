package analyzing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func record(orderNumber int, date time.Time, sales float64, quantity int, productLine, productCode, customer string) domain.SalesRecord {
	r := domain.SalesRecord{
		OrderNumber:     orderNumber,
		OrderDate:       date,
		Sales:           sales,
		QuantityOrdered: quantity,
		ProductLine:     productLine,
		ProductCode:     productCode,
		CustomerName:    customer,
	}
	r.DeriveCalendar()
	return r
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeKPIs(t *testing.T) {
	t.Run("Entrada vazia produz indicadores zerados sem divisão por zero", func(t *testing.T) {
		kpis := ComputeKPIs(nil)

		assert.Equal(t, 0.0, kpis.TotalSales)
		assert.Equal(t, 0, kpis.TotalOrders)
		assert.Equal(t, 0.0, kpis.AvgOrderValue)
		assert.Equal(t, 0, kpis.TotalCustomers)
		assert.Equal(t, 0, kpis.TotalProducts)
	})

	t.Run("Grupo com uma linha tem ticket médio igual à venda", func(t *testing.T) {
		records := []domain.SalesRecord{
			record(2, day(2004, 1, 5), 50, 1, "B", "P2", "c2"),
		}

		kpis := ComputeKPIs(records)

		assert.Equal(t, 50.0, kpis.TotalSales)
		assert.Equal(t, 1, kpis.TotalOrders)
		assert.Equal(t, 50.0, kpis.AvgOrderValue)
		assert.Equal(t, 1, kpis.TotalCustomers)
		assert.Equal(t, 1, kpis.TotalProducts)
	})

	t.Run("Pedidos, clientes e produtos contados de forma distinta", func(t *testing.T) {
		records := []domain.SalesRecord{
			record(1, day(2004, 1, 5), 100, 2, "A", "P1", "c1"),
			record(1, day(2004, 1, 5), 200, 3, "A", "P2", "c1"),
			record(2, day(2004, 2, 5), 300, 1, "B", "P1", "c2"),
		}

		kpis := ComputeKPIs(records)

		assert.Equal(t, 600.0, kpis.TotalSales)
		assert.Equal(t, 2, kpis.TotalOrders)
		assert.InDelta(t, 200.0, kpis.AvgOrderValue, 1e-9)
		assert.Equal(t, 2, kpis.TotalCustomers)
		assert.Equal(t, 2, kpis.TotalProducts)
	})
}

func TestDatasetInfo(t *testing.T) {
	t.Run("Entrada vazia produz resumo zerado", func(t *testing.T) {
		info := DatasetInfo(nil)
		assert.Equal(t, 0, info.RecordCount)
		assert.True(t, info.DateMin.IsZero())
		assert.True(t, info.DateMax.IsZero())
	})

	t.Run("Resume contagem, intervalo de datas e total", func(t *testing.T) {
		records := []domain.SalesRecord{
			record(1, day(2004, 6, 1), 100, 1, "A", "P1", "c1"),
			record(2, day(2003, 1, 15), 50, 1, "A", "P1", "c1"),
			record(3, day(2005, 5, 31), 25, 1, "A", "P1", "c1"),
		}

		info := DatasetInfo(records)

		assert.Equal(t, 3, info.RecordCount)
		assert.Equal(t, day(2003, 1, 15), info.DateMin)
		assert.Equal(t, day(2005, 5, 31), info.DateMax)
		assert.Equal(t, 175.0, info.TotalSales)
	})
}

func TestSummarize(t *testing.T) {
	records := []domain.SalesRecord{
		record(1, day(2004, 1, 5), 100, 2, "A", "P1", "c1"),
		record(1, day(2004, 1, 5), 200, 3, "A", "P2", "c1"),
		record(2, day(2004, 2, 5), 50, 1, "B", "P1", "c2"),
	}

	table := Summarize(records, domain.DimensionProductLine)
	require.Len(t, table, 2)

	// Ordenação por total decrescente: A (300) antes de B (50)
	a := table[0]
	assert.Equal(t, "A", a.Key.Label)
	assert.Equal(t, 300.0, a.Total)
	assert.Equal(t, 150.0, a.Mean)
	assert.Equal(t, 2, a.Count)
	assert.Equal(t, 5, a.TotalQuantity)
	assert.Equal(t, 1, a.DistinctOrders)
	assert.Equal(t, 300.0, a.RevenuePerOrder)

	b := table[1]
	assert.Equal(t, "B", b.Key.Label)
	assert.Equal(t, 50.0, b.Total)
	assert.Equal(t, 50.0, b.Mean)
	assert.Equal(t, 1, b.Count)
	assert.Equal(t, 1, b.DistinctOrders)
	assert.Equal(t, 50.0, b.RevenuePerOrder)
}

func TestSummarizeRoundsDerivedValues(t *testing.T) {
	records := []domain.SalesRecord{
		record(1, day(2004, 1, 5), 100, 1, "A", "P1", "c1"),
		record(2, day(2004, 1, 6), 100.555, 1, "A", "P1", "c1"),
		record(3, day(2004, 1, 7), 100, 1, "A", "P1", "c1"),
	}

	table := Summarize(records, domain.DimensionProductLine)
	require.Len(t, table, 1)

	// Total mantém precisão; média e razão são arredondadas a 2 casas
	assert.InDelta(t, 300.555, table[0].Total, 1e-9)
	assert.Equal(t, 100.19, table[0].Mean)
	assert.Equal(t, 100.19, table[0].RevenuePerOrder)
}

func TestSummarizeTieBreak(t *testing.T) {
	records := []domain.SalesRecord{
		record(1, day(2004, 1, 5), 100, 1, "B", "P1", "c1"),
		record(2, day(2004, 1, 6), 100, 1, "A", "P1", "c1"),
	}

	table := Summarize(records, domain.DimensionProductLine)
	require.Len(t, table, 2)
	assert.Equal(t, "A", table[0].Key.Label)
	assert.Equal(t, "B", table[1].Key.Label)
}

func TestSummarizeEmpty(t *testing.T) {
	table := Summarize(nil, domain.DimensionCustomerName)
	assert.Empty(t, table)
}
