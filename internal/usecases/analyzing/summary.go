package analyzing

import (
	"sort"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Summarize produz a tabela multiestatística por grupo: total, média e
// contagem de vendas, quantidade total e pedidos distintos, mais a razão
// derivada receita-por-pedido (0 quando o denominador é 0). Linhas ordenadas
// por total decrescente, desempate por chave ascendente. Média e razão são
// arredondadas a 2 casas aqui, na borda de apresentação; a acumulação
// interna mantém precisão total.
func Summarize(records []domain.SalesRecord, groupBy domain.Dimension) domain.SummaryTable {
	type summaryAcc struct {
		key            domain.GroupKey
		total          float64
		count          int
		totalQuantity  int
		distinctOrders map[int]struct{}
	}

	byLabel := make(map[string]int)
	groups := make([]*summaryAcc, 0)

	totals := aggregating.Aggregate(records, []domain.Dimension{groupBy}, domain.StatisticSum, domain.FieldSales)
	for _, g := range totals {
		byLabel[g.Key.Label] = len(groups)
		groups = append(groups, &summaryAcc{
			key:            g.Key,
			total:          g.Value,
			distinctOrders: make(map[int]struct{}),
		})
	}

	for _, r := range records {
		key := keyLabel(r, groupBy)
		acc := groups[byLabel[key]]
		acc.count++
		acc.totalQuantity += r.QuantityOrdered
		acc.distinctOrders[r.OrderNumber] = struct{}{}
	}

	table := make(domain.SummaryTable, 0, len(groups))
	for _, acc := range groups {
		row := domain.SummaryRow{
			Key:            acc.key,
			Total:          acc.total,
			Count:          acc.count,
			TotalQuantity:  acc.totalQuantity,
			DistinctOrders: len(acc.distinctOrders),
		}
		if acc.count > 0 {
			row.Mean = utils.RoundWithTwoDecimalPlace(acc.total / float64(acc.count))
		}
		if row.DistinctOrders > 0 {
			row.RevenuePerOrder = utils.RoundWithTwoDecimalPlace(acc.total / float64(row.DistinctOrders))
		}
		table = append(table, row)
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Total != table[j].Total {
			return table[i].Total > table[j].Total
		}
		return table[i].Key.Label < table[j].Key.Label
	})

	return table
}

func keyLabel(r domain.SalesRecord, groupBy domain.Dimension) string {
	switch groupBy {
	case domain.DimensionProductLine:
		return r.ProductLine
	case domain.DimensionDealSize:
		return r.DealSize
	case domain.DimensionCountry:
		return r.Country
	case domain.DimensionCustomerName:
		return r.CustomerName
	case domain.DimensionProductCode:
		return r.ProductCode
	}
	return ""
}
