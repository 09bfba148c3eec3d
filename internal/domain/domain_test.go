package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCalendar(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		quarter int
		weekday string
	}{
		{
			name:    "Fevereiro pertence ao primeiro trimestre",
			date:    time.Date(2003, 2, 24, 0, 0, 0, 0, time.UTC),
			quarter: 1,
			weekday: "Monday",
		},
		{
			name:    "Março ainda é primeiro trimestre",
			date:    time.Date(2004, 3, 31, 0, 0, 0, 0, time.UTC),
			quarter: 1,
			weekday: "Wednesday",
		},
		{
			name:    "Abril abre o segundo trimestre",
			date:    time.Date(2004, 4, 1, 0, 0, 0, 0, time.UTC),
			quarter: 2,
			weekday: "Thursday",
		},
		{
			name:    "Dezembro fecha o quarto trimestre",
			date:    time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC),
			quarter: 4,
			weekday: "Saturday",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SalesRecord{OrderDate: tt.date}
			r.DeriveCalendar()

			assert.Equal(t, tt.date.Year(), r.Year)
			assert.Equal(t, int(tt.date.Month()), r.Month)
			assert.Equal(t, tt.date.Month().String(), r.MonthName)
			assert.Equal(t, tt.quarter, r.Quarter)
			assert.Equal(t, tt.weekday, r.WeekdayName)
		})
	}
}

func TestFilterSpecFingerprint(t *testing.T) {
	spec := FilterSpec{
		Years:        []int{2004, 2003},
		ProductLines: []string{"Planes", "Motorcycles"},
		DealSizes:    []string{"Small"},
		Countries:    []string{"USA", "France"},
	}

	reordered := FilterSpec{
		Years:        []int{2003, 2004},
		ProductLines: []string{"Motorcycles", "Planes"},
		DealSizes:    []string{"Small"},
		Countries:    []string{"France", "USA"},
	}

	assert.Equal(t, spec.Fingerprint(), reordered.Fingerprint())

	different := spec
	different.DealSizes = []string{"Large"}
	assert.NotEqual(t, spec.Fingerprint(), different.Fingerprint())
}

func TestFilterDomainsFullSelection(t *testing.T) {
	domains := FilterDomains{
		Years:            []int{2003, 2004},
		ProductLines:     []string{"Planes"},
		DealSizes:        []string{"Small", "Large"},
		Countries:        []string{"France", "USA"},
		DefaultCountries: []string{"France"},
	}

	spec := domains.FullSelection()

	// A seleção completa usa todos os países observados, não o corte padrão
	assert.Equal(t, domains.Years, spec.Years)
	assert.Equal(t, domains.Countries, spec.Countries)
}

func TestKPISnapshotNameValuePairs(t *testing.T) {
	kpis := KPISnapshot{
		TotalSales:     100,
		TotalOrders:    2,
		AvgOrderValue:  50,
		TotalCustomers: 3,
		TotalProducts:  4,
	}

	pairs := kpis.NameValuePairs()

	assert.Len(t, pairs, 5)
	assert.Equal(t, KPIPair{Name: "Total Sales", Value: 100}, pairs[0])
	assert.Equal(t, KPIPair{Name: "Total Orders", Value: 2}, pairs[1])
	assert.Equal(t, KPIPair{Name: "Avg Order Value", Value: 50}, pairs[2])
	assert.Equal(t, KPIPair{Name: "Total Customers", Value: 3}, pairs[3])
	assert.Equal(t, KPIPair{Name: "Total Products", Value: 4}, pairs[4])
}
