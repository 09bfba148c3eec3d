// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// SalesRecord representa uma linha de transação de venda já normalizada.
// Um pedido (OrderNumber) pode ter várias linhas, uma por item.
type SalesRecord struct {
	OrderNumber     int       `json:"order_number"`
	OrderDate       time.Time `json:"order_date"`
	Sales           float64   `json:"sales"`
	QuantityOrdered int       `json:"quantity_ordered"`
	PriceEach       float64   `json:"price_each"`
	ProductLine     string    `json:"product_line"`
	ProductCode     string    `json:"product_code"`
	DealSize        string    `json:"deal_size"`
	Country         string    `json:"country"`
	CustomerName    string    `json:"customer_name"`

	// Campos derivados de OrderDate, calculados uma única vez na normalização
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	MonthName   string `json:"month_name"`
	Quarter     int    `json:"quarter"`
	WeekdayName string `json:"weekday_name"`
}

// DeriveCalendar preenche os campos de calendário a partir de OrderDate.
// Quarter = ceil(mês/3); WeekdayName em inglês (Monday..Sunday), como na origem dos dados.
func (r *SalesRecord) DeriveCalendar() {
	r.Year = r.OrderDate.Year()
	r.Month = int(r.OrderDate.Month())
	r.MonthName = r.OrderDate.Month().String()
	r.Quarter = (r.Month-1)/3 + 1
	r.WeekdayName = r.OrderDate.Weekday().String()
}
