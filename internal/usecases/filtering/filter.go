// Package filtering aplica a especificação de filtro de quatro dimensões
// sobre o conjunto de registros normalizado.
package filtering

import (
	"sort"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// matcher pré-compila os conjuntos de pertinência de uma FilterSpec.
type matcher struct {
	years        map[int]struct{}
	productLines map[string]struct{}
	dealSizes    map[string]struct{}
	countries    map[string]struct{}
}

func newMatcher(spec domain.FilterSpec) matcher {
	return matcher{
		years:        intSet(spec.Years),
		productLines: stringSet(spec.ProductLines),
		dealSizes:    stringSet(spec.DealSizes),
		countries:    stringSet(spec.Countries),
	}
}

func (m matcher) matches(r domain.SalesRecord) bool {
	if _, ok := m.years[r.Year]; !ok {
		return false
	}
	if _, ok := m.productLines[r.ProductLine]; !ok {
		return false
	}
	if _, ok := m.dealSizes[r.DealSize]; !ok {
		return false
	}
	if _, ok := m.countries[r.Country]; !ok {
		return false
	}
	return true
}

// Apply retorna o subconjunto de registros que satisfaz todas as quatro
// dimensões da especificação, preservando a ordem relativa. Função pura:
// conjunto vazio em qualquer dimensão resulta em subconjunto vazio, que é
// um resultado válido e não um erro.
func Apply(records []domain.SalesRecord, spec domain.FilterSpec) []domain.SalesRecord {
	m := newMatcher(spec)

	subset := make([]domain.SalesRecord, 0, len(records))
	for _, r := range records {
		if m.matches(r) {
			subset = append(subset, r)
		}
	}
	return subset
}

// ObservedDomains enumera os valores distintos de cada dimensão filtrável
// presentes no conjunto de registros, em ordem crescente.
func ObservedDomains(records []domain.SalesRecord) domain.FilterDomains {
	years := make(map[int]struct{})
	productLines := make(map[string]struct{})
	dealSizes := make(map[string]struct{})
	countries := make(map[string]struct{})

	for _, r := range records {
		years[r.Year] = struct{}{}
		productLines[r.ProductLine] = struct{}{}
		dealSizes[r.DealSize] = struct{}{}
		countries[r.Country] = struct{}{}
	}

	domains := domain.FilterDomains{
		Years:        sortedInts(years),
		ProductLines: sortedStrings(productLines),
		DealSizes:    sortedStrings(dealSizes),
		Countries:    sortedStrings(countries),
	}

	// Padrão de apresentação herdado da origem: no máximo 10 países
	// pré-selecionados, em ordem alfabética.
	domains.DefaultCountries = domains.Countries
	if len(domains.Countries) > 10 {
		domains.DefaultCountries = domains.Countries[:10]
	}

	return domains
}

func intSet(values []int) map[int]struct{} {
	set := make(map[int]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
