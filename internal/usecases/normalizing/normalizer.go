// Package normalizing transforma linhas brutas da origem de dados em
// registros de venda tipados, com os campos de calendário derivados.
package normalizing

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Colunas obrigatórias do esquema da origem (casamento case-insensitive).
var requiredColumns = []string{
	"ORDERNUMBER",
	"ORDERDATE",
	"SALES",
	"QUANTITYORDERED",
	"PRICEEACH",
	"PRODUCTLINE",
	"PRODUCTCODE",
	"DEALSIZE",
	"COUNTRY",
	"CUSTOMERNAME",
}

// Colunas opcionais presentes em algumas variantes da origem; descartadas
// quando presentes, ignoradas quando ausentes.
var optionalColumns = []string{
	"ADDRESSLINE2",
	"STATE",
	"TERRITORY",
}

// Layouts de data aceitos. O primeiro é o formato da amostra original
// (ex.: "2/24/2003 0:00").
var dateLayouts = []string{
	"1/2/2006 15:04",
	"1/2/2006",
	"2006-01-02",
}

// Normalize converte uma tabela bruta em registros tipados. Falha com
// *domain.SchemaError se faltar coluna obrigatória e com
// *domain.DateParseError em data malformada; em ambos os casos nenhum
// resultado parcial é produzido.
func Normalize(table domain.RawTable) ([]domain.SalesRecord, error) {
	idx, err := resolveColumns(table.Columns)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		record, err := normalizeRow(row, idx, i)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	logrus.WithFields(logrus.Fields{
		"linhas":    len(table.Rows),
		"colunas":   len(table.Columns),
		"ignoradas": countOptional(table.Columns),
	}).Debug("Normalização do dataset concluída")

	return records, nil
}

// columnIndex mapeia cada coluna obrigatória para sua posição na tabela.
type columnIndex map[string]int

func resolveColumns(columns []string) (columnIndex, error) {
	byName := make(map[string]int, len(columns))
	for i, col := range columns {
		byName[strings.ToUpper(strings.TrimSpace(col))] = i
	}

	idx := make(columnIndex, len(requiredColumns))
	for _, required := range requiredColumns {
		pos, ok := byName[required]
		if !ok {
			return nil, &domain.SchemaError{Column: required}
		}
		idx[required] = pos
	}

	return idx, nil
}

func countOptional(columns []string) int {
	count := 0
	for _, col := range columns {
		name := strings.ToUpper(strings.TrimSpace(col))
		for _, optional := range optionalColumns {
			if name == optional {
				count++
			}
		}
	}
	return count
}

func normalizeRow(row []string, idx columnIndex, rowNumber int) (domain.SalesRecord, error) {
	cell := func(column string) string {
		pos := idx[column]
		if pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}

	orderDate, ok := parseDate(cell("ORDERDATE"))
	if !ok {
		return domain.SalesRecord{}, &domain.DateParseError{Value: cell("ORDERDATE"), Row: rowNumber}
	}

	orderNumber, err := strconv.Atoi(cell("ORDERNUMBER"))
	if err != nil {
		return domain.SalesRecord{}, errors.Wrapf(err, "número de pedido inválido na linha %d", rowNumber)
	}

	sales, err := strconv.ParseFloat(cell("SALES"), 64)
	if err != nil {
		return domain.SalesRecord{}, errors.Wrapf(err, "valor de venda inválido na linha %d", rowNumber)
	}

	quantity, err := strconv.Atoi(cell("QUANTITYORDERED"))
	if err != nil {
		return domain.SalesRecord{}, errors.Wrapf(err, "quantidade inválida na linha %d", rowNumber)
	}

	priceEach, err := strconv.ParseFloat(cell("PRICEEACH"), 64)
	if err != nil {
		return domain.SalesRecord{}, errors.Wrapf(err, "preço unitário inválido na linha %d", rowNumber)
	}

	record := domain.SalesRecord{
		OrderNumber:     orderNumber,
		OrderDate:       orderDate,
		Sales:           sales,
		QuantityOrdered: quantity,
		PriceEach:       priceEach,
		ProductLine:     cell("PRODUCTLINE"),
		ProductCode:     cell("PRODUCTCODE"),
		DealSize:        cell("DEALSIZE"),
		Country:         cell("COUNTRY"),
		CustomerName:    cell("CUSTOMERNAME"),
	}
	record.DeriveCalendar()

	return record, nil
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
