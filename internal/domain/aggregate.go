package domain

import (
	"fmt"
	"time"
)

// Dimension enumera as dimensões de agrupamento suportadas. Enum fechado:
// o motor de agregação trata cada caso explicitamente, sem lookup por string.
type Dimension int

const (
	DimensionProductLine Dimension = iota
	DimensionDealSize
	DimensionCountry
	DimensionCustomerName
	DimensionProductCode
	DimensionYearMonth
	DimensionYearQuarter
	DimensionWeekday
)

func (d Dimension) String() string {
	switch d {
	case DimensionProductLine:
		return "product_line"
	case DimensionDealSize:
		return "deal_size"
	case DimensionCountry:
		return "country"
	case DimensionCustomerName:
		return "customer_name"
	case DimensionProductCode:
		return "product_code"
	case DimensionYearMonth:
		return "year_month"
	case DimensionYearQuarter:
		return "year_quarter"
	case DimensionWeekday:
		return "weekday"
	}
	return fmt.Sprintf("dimension(%d)", int(d))
}

// Statistic enumera as estatísticas de agregação suportadas.
type Statistic int

const (
	StatisticSum Statistic = iota
	StatisticMean
	StatisticCount
	StatisticDistinctCount
)

func (s Statistic) String() string {
	switch s {
	case StatisticSum:
		return "sum"
	case StatisticMean:
		return "mean"
	case StatisticCount:
		return "count"
	case StatisticDistinctCount:
		return "distinct_count"
	}
	return fmt.Sprintf("statistic(%d)", int(s))
}

// Field enumera os campos sobre os quais uma estatística pode ser calculada.
type Field int

const (
	FieldSales Field = iota
	FieldQuantityOrdered
	FieldPriceEach
	FieldOrderNumber
	FieldProductCode
	FieldCustomerName
)

// NumericValue retorna o valor numérico do campo em um registro.
// Apenas Sales, QuantityOrdered e PriceEach são numéricos.
func (f Field) NumericValue(r SalesRecord) (float64, bool) {
	switch f {
	case FieldSales:
		return r.Sales, true
	case FieldQuantityOrdered:
		return float64(r.QuantityOrdered), true
	case FieldPriceEach:
		return r.PriceEach, true
	}
	return 0, false
}

// DistinctValue retorna a representação usada para contagem de valores
// distintos do campo em um registro.
func (f Field) DistinctValue(r SalesRecord) string {
	switch f {
	case FieldOrderNumber:
		return fmt.Sprintf("%d", r.OrderNumber)
	case FieldProductCode:
		return r.ProductCode
	case FieldCustomerName:
		return r.CustomerName
	case FieldSales:
		return fmt.Sprintf("%v", r.Sales)
	case FieldQuantityOrdered:
		return fmt.Sprintf("%d", r.QuantityOrdered)
	case FieldPriceEach:
		return fmt.Sprintf("%v", r.PriceEach)
	}
	return ""
}

// GroupKey identifica um grupo de agregação. Para agrupamentos temporais
// (ano+mês, ano+trimestre) Date carrega o primeiro dia do período e é usada
// como chave de ordenação cronológica; nos demais casos Date é zero e a
// ordenação usa Label.
type GroupKey struct {
	Label string    `json:"label"`
	Date  time.Time `json:"date,omitempty"`
}

// Chronological indica se a chave carrega um período de calendário.
func (k GroupKey) Chronological() bool {
	return !k.Date.IsZero()
}

// GroupValue é uma entrada de resultado de agregação: chave do grupo e o
// valor da estatística calculada.
type GroupValue struct {
	Key   GroupKey `json:"key"`
	Value float64  `json:"value"`
}

// AggregationResult é um mapeamento ordenado chave de grupo -> valor.
// A ordem de inserção segue a produção do agrupamento; camadas de
// apresentação reordenam conforme necessário.
type AggregationResult []GroupValue

// Total soma os valores de todos os grupos do resultado.
func (r AggregationResult) Total() float64 {
	var total float64
	for _, g := range r {
		total += g.Value
	}
	return total
}
