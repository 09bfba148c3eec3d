package domain

import "time"

// Dataset é o conjunto de registros normalizados residente em memória.
// Imutável após a carga: recargas produzem um novo Dataset com Version
// incrementada, nunca mutação do atual.
type Dataset struct {
	Records  []SalesRecord
	Version  int64
	LoadedAt time.Time
}

// DatasetInfo resume um conjunto de registros (contagem, intervalo de datas,
// total de vendas), espelhando o painel "Data Info" da apresentação.
type DatasetInfo struct {
	RecordCount int       `json:"record_count"`
	DateMin     time.Time `json:"date_min"`
	DateMax     time.Time `json:"date_max"`
	TotalSales  float64   `json:"total_sales"`
}

// RawTable é a forma bruta entregue pelos coletores de dados (arquivo CSV ou
// banco): cabeçalho de colunas e linhas de células em texto. A decodificação
// de tipos acontece apenas na normalização.
type RawTable struct {
	Columns []string
	Rows    [][]string
}
