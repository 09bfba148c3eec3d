package exporting

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func sampleRecords() []domain.SalesRecord {
	r1 := domain.SalesRecord{
		OrderNumber:     10107,
		OrderDate:       time.Date(2003, 2, 24, 0, 0, 0, 0, time.UTC),
		Sales:           2871,
		QuantityOrdered: 30,
		PriceEach:       95.70,
		ProductLine:     "Motorcycles",
		ProductCode:     "S10_1678",
		DealSize:        "Small",
		Country:         "USA",
		CustomerName:    "Land of Toys Inc.",
	}
	r1.DeriveCalendar()

	r2 := domain.SalesRecord{
		OrderNumber:     10121,
		OrderDate:       time.Date(2004, 7, 10, 0, 0, 0, 0, time.UTC),
		Sales:           2766,
		QuantityOrdered: 34,
		PriceEach:       81.35,
		ProductLine:     "Classic Cars",
		ProductCode:     "S18_3232",
		DealSize:        "Medium",
		Country:         "France",
		CustomerName:    "Reims Collectables",
	}
	r2.DeriveCalendar()

	return []domain.SalesRecord{r1, r2}
}

func TestBuildWorkbook(t *testing.T) {
	service := NewService()
	records := sampleRecords()

	kpis := domain.KPISnapshot{
		TotalSales:     5637,
		TotalOrders:    2,
		AvgOrderValue:  2818.5,
		TotalCustomers: 2,
		TotalProducts:  2,
	}

	workbook, err := service.BuildWorkbook(records, kpis)
	require.NoError(t, err)
	require.NotNil(t, workbook)

	assert.True(t, strings.HasPrefix(workbook.Name, "sales_analysis_"))
	require.Len(t, workbook.Sheets, 2)

	data := workbook.Sheets[0]
	assert.Equal(t, "Filtered Data", data.Name)
	assert.Equal(t, exportHeader, data.Header)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "10107", data.Rows[0][0])
	assert.Equal(t, "2003-02-24", data.Rows[0][1])
	assert.Equal(t, "Monday", data.Rows[0][14])

	summary := workbook.Sheets[1]
	assert.Equal(t, "Summary", summary.Name)
	assert.Equal(t, []string{"Metric", "Value"}, summary.Header)
	require.Len(t, summary.Rows, 5)
	assert.Equal(t, []string{"Total Sales", "5637"}, summary.Rows[0])
	assert.Equal(t, []string{"Avg Order Value", "2818.5"}, summary.Rows[2])
}

func TestBuildWorkbookEmptySubset(t *testing.T) {
	service := NewService()

	workbook, err := service.BuildWorkbook(nil, domain.KPISnapshot{})
	require.NoError(t, err)

	assert.Empty(t, workbook.Sheets[0].Rows)
	require.Len(t, workbook.Sheets[1].Rows, 5)
	assert.Equal(t, []string{"Total Orders", "0"}, workbook.Sheets[1].Rows[1])
}

func TestRenderCSV(t *testing.T) {
	service := NewService()
	records := sampleRecords()

	data, filename, err := service.RenderCSV(records)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "sales_analysis_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, "10121", rows[2][0])
	assert.Equal(t, "2766", rows[2][2])
	assert.Equal(t, "Classic Cars", rows[2][5])
	assert.Equal(t, "2004", rows[2][10])
	assert.Equal(t, "3", rows[2][13]) // julho pertence ao terceiro trimestre
}

func TestArtifactNamesAreUnique(t *testing.T) {
	first, err := artifactName()
	require.NoError(t, err)
	second, err := artifactName()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
