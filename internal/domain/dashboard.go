package domain

import "time"

// DashboardSnapshot é a resposta completa de uma recomputação: KPIs e todas
// as visões agregadas que a camada de apresentação renderiza. Montado de uma
// vez por recomputação; nunca publicado parcialmente.
type DashboardSnapshot struct {
	Filters     FilterSpec  `json:"filters"`
	KPIs        KPISnapshot `json:"kpis"`
	EmptyResult bool        `json:"empty_result"`

	SalesByProductLine   AggregationResult `json:"sales_by_product_line"`
	SalesByDealSize      AggregationResult `json:"sales_by_deal_size"`
	TopCountries         AggregationResult `json:"top_countries"`
	TopProducts          AggregationResult `json:"top_products"`
	TopCustomersBySales  AggregationResult `json:"top_customers_by_sales"`
	TopCustomersByOrders AggregationResult `json:"top_customers_by_orders"`
	MonthlySales         AggregationResult `json:"monthly_sales"`
	QuarterlySales       AggregationResult `json:"quarterly_sales"`
	WeekdaySales         AggregationResult `json:"weekday_sales"`

	ProductLineSummary SummaryTable `json:"product_line_summary"`
	CustomerSummary    SummaryTable `json:"customer_summary"`

	DatasetInfo DatasetInfo `json:"dataset_info"`
	ComputedAt  time.Time   `json:"computed_at"`
}
