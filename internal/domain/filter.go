package domain

import (
	"fmt"
	"sort"
	"strings"
)

// FilterSpec define os quatro conjuntos de seleção aplicados com AND lógico.
// Um registro passa somente se cada campo correspondente pertencer ao conjunto.
// Conjunto vazio significa que nenhum registro passa (pertinência em conjunto
// vazio é sempre falsa), não "sem restrição".
type FilterSpec struct {
	Years        []int    `json:"years"`
	ProductLines []string `json:"product_lines"`
	DealSizes    []string `json:"deal_sizes"`
	Countries    []string `json:"countries"`
}

// Fingerprint gera uma chave determinística da especificação, usada para
// memoização. A ordem dos valores informados não altera a chave.
func (f FilterSpec) Fingerprint() string {
	years := make([]int, len(f.Years))
	copy(years, f.Years)
	sort.Ints(years)

	var b strings.Builder
	b.WriteString("y:")
	for _, y := range years {
		fmt.Fprintf(&b, "%d,", y)
	}
	b.WriteString("|p:")
	b.WriteString(sortedJoin(f.ProductLines))
	b.WriteString("|d:")
	b.WriteString(sortedJoin(f.DealSizes))
	b.WriteString("|c:")
	b.WriteString(sortedJoin(f.Countries))
	return b.String()
}

func sortedJoin(values []string) string {
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// FilterDomains representa os valores distintos observados no dataset para
// cada dimensão filtrável, usados pela camada de apresentação para montar
// as opções de seleção.
type FilterDomains struct {
	Years        []int    `json:"years"`
	ProductLines []string `json:"product_lines"`
	DealSizes    []string `json:"deal_sizes"`
	Countries    []string `json:"countries"`

	// DefaultCountries reproduz o padrão da apresentação: os 10 primeiros
	// países em ordem alfabética quando há mais de 10 observados.
	DefaultCountries []string `json:"default_countries"`
}

// FullSelection retorna uma FilterSpec que seleciona todos os valores
// observados (o estado inicial da apresentação, sem o corte de países).
func (d FilterDomains) FullSelection() FilterSpec {
	return FilterSpec{
		Years:        d.Years,
		ProductLines: d.ProductLines,
		DealSizes:    d.DealSizes,
		Countries:    d.Countries,
	}
}
