package domain

// KPISnapshot agrega os cinco indicadores globais calculados sobre o
// subconjunto filtrado. Todos os campos são zero para entrada vazia;
// AvgOrderValue é 0 (nunca NaN) quando não há registros.
type KPISnapshot struct {
	TotalSales     float64 `json:"total_sales"`
	TotalOrders    int     `json:"total_orders"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	TotalCustomers int     `json:"total_customers"`
	TotalProducts  int     `json:"total_products"`
}

// NameValuePairs retorna os indicadores como pares nome/valor na ordem fixa
// usada pela aba "Summary" das exportações.
func (k KPISnapshot) NameValuePairs() []KPIPair {
	return []KPIPair{
		{Name: "Total Sales", Value: k.TotalSales},
		{Name: "Total Orders", Value: float64(k.TotalOrders)},
		{Name: "Avg Order Value", Value: k.AvgOrderValue},
		{Name: "Total Customers", Value: float64(k.TotalCustomers)},
		{Name: "Total Products", Value: float64(k.TotalProducts)},
	}
}

// KPIPair é um par nome/valor de indicador.
type KPIPair struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
