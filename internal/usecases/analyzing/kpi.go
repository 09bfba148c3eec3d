package analyzing

import (
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// ComputeKPIs calcula os cinco indicadores globais sobre um conjunto de
// registros. Entrada vazia produz snapshot todo zerado; o ticket médio tem
// guarda explícita de divisão por zero (0, nunca NaN nem erro).
func ComputeKPIs(records []domain.SalesRecord) domain.KPISnapshot {
	if len(records) == 0 {
		return domain.KPISnapshot{}
	}

	var totalSales float64
	orders := make(map[int]struct{})
	customers := make(map[string]struct{})
	products := make(map[string]struct{})

	for _, r := range records {
		totalSales += r.Sales
		orders[r.OrderNumber] = struct{}{}
		customers[r.CustomerName] = struct{}{}
		products[r.ProductCode] = struct{}{}
	}

	return domain.KPISnapshot{
		TotalSales:     totalSales,
		TotalOrders:    len(orders),
		AvgOrderValue:  totalSales / float64(len(records)),
		TotalCustomers: len(customers),
		TotalProducts:  len(products),
	}
}

// DatasetInfo resume o conjunto informado: contagem, intervalo de datas e
// total de vendas.
func DatasetInfo(records []domain.SalesRecord) domain.DatasetInfo {
	info := domain.DatasetInfo{RecordCount: len(records)}
	if len(records) == 0 {
		return info
	}

	info.DateMin = records[0].OrderDate
	info.DateMax = records[0].OrderDate
	for _, r := range records {
		info.TotalSales += r.Sales
		if r.OrderDate.Before(info.DateMin) {
			info.DateMin = r.OrderDate
		}
		if r.OrderDate.After(info.DateMax) {
			info.DateMax = r.OrderDate
		}
	}
	return info
}
