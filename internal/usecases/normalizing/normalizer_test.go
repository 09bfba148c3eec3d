package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func sampleColumns() []string {
	return []string{
		"ORDERNUMBER", "QUANTITYORDERED", "PRICEEACH", "SALES", "ORDERDATE",
		"PRODUCTLINE", "PRODUCTCODE", "CUSTOMERNAME", "COUNTRY", "DEALSIZE",
	}
}

func sampleRow() []string {
	return []string{
		"10107", "30", "95.70", "2871.00", "2/24/2003 0:00",
		"Motorcycles", "S10_1678", "Land of Toys Inc.", "USA", "Small",
	}
}

func TestNormalize(t *testing.T) {
	t.Run("Deve normalizar linha válida com campos de calendário derivados", func(t *testing.T) {
		table := domain.RawTable{
			Columns: sampleColumns(),
			Rows:    [][]string{sampleRow()},
		}

		records, err := Normalize(table)
		require.NoError(t, err)
		require.Len(t, records, 1)

		r := records[0]
		assert.Equal(t, 10107, r.OrderNumber)
		assert.Equal(t, 2871.00, r.Sales)
		assert.Equal(t, 30, r.QuantityOrdered)
		assert.Equal(t, 95.70, r.PriceEach)
		assert.Equal(t, "Motorcycles", r.ProductLine)
		assert.Equal(t, "S10_1678", r.ProductCode)
		assert.Equal(t, "Small", r.DealSize)
		assert.Equal(t, "USA", r.Country)
		assert.Equal(t, "Land of Toys Inc.", r.CustomerName)

		// 24/02/2003 é uma segunda-feira do primeiro trimestre
		assert.Equal(t, 2003, r.Year)
		assert.Equal(t, 2, r.Month)
		assert.Equal(t, "February", r.MonthName)
		assert.Equal(t, 1, r.Quarter)
		assert.Equal(t, "Monday", r.WeekdayName)
	})

	t.Run("Deve aceitar cabeçalho com caixa e espaços diferentes", func(t *testing.T) {
		table := domain.RawTable{
			Columns: []string{
				" ordernumber ", "quantityordered", "PriceEach", "sales", "OrderDate",
				"productline", "productcode", "customername", "country", "dealsize",
			},
			Rows: [][]string{sampleRow()},
		}

		records, err := Normalize(table)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("Deve falhar com SchemaError quando falta coluna obrigatória", func(t *testing.T) {
		columns := sampleColumns()[:9] // remove DEALSIZE
		table := domain.RawTable{
			Columns: columns,
			Rows:    [][]string{sampleRow()},
		}

		records, err := Normalize(table)
		assert.Nil(t, records)

		var schemaErr *domain.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "DEALSIZE", schemaErr.Column)
	})

	t.Run("Deve falhar com DateParseError em data malformada", func(t *testing.T) {
		row := sampleRow()
		row[4] = "not-a-date"
		table := domain.RawTable{
			Columns: sampleColumns(),
			Rows:    [][]string{sampleRow(), row},
		}

		records, err := Normalize(table)
		assert.Nil(t, records)

		var dateErr *domain.DateParseError
		require.ErrorAs(t, err, &dateErr)
		assert.Equal(t, "not-a-date", dateErr.Value)
		assert.Equal(t, 1, dateErr.Row)
	})

	t.Run("Deve falhar em valor numérico inválido sem resultado parcial", func(t *testing.T) {
		row := sampleRow()
		row[3] = "abc"
		table := domain.RawTable{
			Columns: sampleColumns(),
			Rows:    [][]string{row},
		}

		records, err := Normalize(table)
		assert.Nil(t, records)
		assert.Error(t, err)
	})

	t.Run("Deve ignorar colunas opcionais presentes", func(t *testing.T) {
		columns := append(sampleColumns(), "ADDRESSLINE2", "STATE", "TERRITORY")
		row := append(sampleRow(), "Suite 101", "NY", "NA")
		table := domain.RawTable{
			Columns: columns,
			Rows:    [][]string{row},
		}

		records, err := Normalize(table)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
		ok       bool
	}{
		{
			name:     "Formato da amostra com hora",
			value:    "2/24/2003 0:00",
			expected: time.Date(2003, 2, 24, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Formato americano sem hora",
			value:    "11/6/2004",
			expected: time.Date(2004, 11, 6, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "Formato ISO",
			value:    "2004-03-15",
			expected: time.Date(2004, 3, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:  "Valor vazio",
			value: "",
			ok:    false,
		},
		{
			name:  "Texto arbitrário",
			value: "tomorrow",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := parseDate(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, parsed)
			}
		})
	}
}
