package domain

// SummaryRow é uma linha de tabela-resumo multiestatística por grupo.
// RevenuePerOrder = Total / DistinctOrders, com guarda de divisão por zero.
type SummaryRow struct {
	Key             GroupKey `json:"key"`
	Total           float64  `json:"total"`
	Mean            float64  `json:"mean"`
	Count           int      `json:"count"`
	TotalQuantity   int      `json:"total_quantity"`
	DistinctOrders  int      `json:"distinct_orders"`
	RevenuePerOrder float64  `json:"revenue_per_order"`
}

// SummaryTable é uma sequência ordenada de linhas-resumo, ordenada por
// Total decrescente com desempate por chave ascendente.
type SummaryTable []SummaryRow
