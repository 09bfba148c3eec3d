package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const salesRecordsTable = "sales_records sr"

// Cabeçalho canônico entregue ao normalizador; a mesma tabela bruta sai
// daqui e da origem CSV.
var rawColumns = []string{
	"ORDERNUMBER", "ORDERDATE", "SALES", "QUANTITYORDERED", "PRICEEACH",
	"PRODUCTLINE", "PRODUCTCODE", "DEALSIZE", "COUNTRY", "CUSTOMERNAME",
}

// SalesRecordRepository carrega a tabela bruta de vendas do banco,
// como origem alternativa ao arquivo CSV.
type SalesRecordRepository interface {
	FetchRawTable(ctx context.Context) (domain.RawTable, error)
}

type salesRecordRepository struct {
	conn *postgres.Connection
}

func NewSalesRecordRepository(conn *postgres.Connection) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

func (r *salesRecordRepository) FetchRawTable(ctx context.Context) (domain.RawTable, error) {
	query, args, err := squirrel.
		Select(
			"sr.order_number", "sr.order_date", "sr.sales", "sr.quantity_ordered",
			"sr.price_each", "sr.product_line", "sr.product_code", "sr.deal_size",
			"sr.country", "sr.customer_name",
		).
		From(salesRecordsTable).
		OrderBy("sr.order_date ASC", "sr.order_number ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.RawTable{}, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return domain.RawTable{}, errors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return domain.RawTable{}, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	table := domain.RawTable{Columns: rawColumns}
	for rows.Next() {
		var (
			orderNumber  int
			orderDate    time.Time
			sales        float64
			quantity     int
			priceEach    float64
			productLine  string
			productCode  string
			dealSize     string
			country      string
			customerName string
		)

		err := rows.Scan(
			&orderNumber,
			&orderDate,
			&sales,
			&quantity,
			&priceEach,
			&productLine,
			&productCode,
			&dealSize,
			&country,
			&customerName,
		)
		if err != nil {
			return domain.RawTable{}, errors.Wrap(err, "erro ao escanear registro de venda")
		}

		table.Rows = append(table.Rows, []string{
			strconv.Itoa(orderNumber),
			orderDate.Format("2006-01-02"),
			strconv.FormatFloat(sales, 'f', -1, 64),
			strconv.Itoa(quantity),
			strconv.FormatFloat(priceEach, 'f', -1, 64),
			productLine,
			productCode,
			dealSize,
			country,
			customerName,
		})
	}

	if err = rows.Err(); err != nil {
		return domain.RawTable{}, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return table, nil
}
