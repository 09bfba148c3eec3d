// Package exporting produz os artefatos de exportação consumidos pela
// camada de download: uma pasta de trabalho com as abas "Filtered Data" e
// "Summary", e o equivalente em texto delimitado do subconjunto filtrado.
package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// Workbook é o modelo estruturado de planilha. A codificação binária de
// planilha fica fora do núcleo; consumidores serializam as abas como
// preferirem (a API entrega cada aba renderizada em CSV).
type Workbook struct {
	Name   string  `json:"name"`
	Sheets []Sheet `json:"sheets"`
}

// Sheet é uma aba da pasta de trabalho.
type Sheet struct {
	Name   string     `json:"name"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Exporter define a interface da camada de exportação.
type Exporter interface {
	// BuildWorkbook monta a pasta com o subconjunto filtrado e o resumo
	// de KPIs (cinco pares nome/valor).
	BuildWorkbook(records []domain.SalesRecord, kpis domain.KPISnapshot) (*Workbook, error)

	// RenderCSV serializa o subconjunto filtrado em texto delimitado.
	RenderCSV(records []domain.SalesRecord) ([]byte, string, error)
}

// Service implementa Exporter.
type Service struct{}

// NewService cria o serviço de exportação.
func NewService() *Service {
	return &Service{}
}

var exportHeader = []string{
	"ORDERNUMBER", "ORDERDATE", "SALES", "QUANTITYORDERED", "PRICEEACH",
	"PRODUCTLINE", "PRODUCTCODE", "DEALSIZE", "COUNTRY", "CUSTOMERNAME",
	"YEAR", "MONTH", "MONTHNAME", "QUARTER", "WEEKDAY",
}

func recordRow(r domain.SalesRecord) []string {
	return []string{
		strconv.Itoa(r.OrderNumber),
		r.OrderDate.Format("2006-01-02"),
		strconv.FormatFloat(r.Sales, 'f', -1, 64),
		strconv.Itoa(r.QuantityOrdered),
		strconv.FormatFloat(r.PriceEach, 'f', -1, 64),
		r.ProductLine,
		r.ProductCode,
		r.DealSize,
		r.Country,
		r.CustomerName,
		strconv.Itoa(r.Year),
		strconv.Itoa(r.Month),
		r.MonthName,
		strconv.Itoa(r.Quarter),
		r.WeekdayName,
	}
}

// BuildWorkbook monta a pasta de trabalho com as duas abas.
func (s *Service) BuildWorkbook(records []domain.SalesRecord, kpis domain.KPISnapshot) (*Workbook, error) {
	name, err := artifactName()
	if err != nil {
		return nil, err
	}

	dataRows := make([][]string, 0, len(records))
	for _, r := range records {
		dataRows = append(dataRows, recordRow(r))
	}

	summaryRows := make([][]string, 0, 5)
	for _, pair := range kpis.NameValuePairs() {
		summaryRows = append(summaryRows, []string{
			pair.Name,
			strconv.FormatFloat(pair.Value, 'f', -1, 64),
		})
	}

	return &Workbook{
		Name: name,
		Sheets: []Sheet{
			{Name: "Filtered Data", Header: exportHeader, Rows: dataRows},
			{Name: "Summary", Header: []string{"Metric", "Value"}, Rows: summaryRows},
		},
	}, nil
}

// RenderCSV serializa o subconjunto filtrado. Retorna o conteúdo e o nome
// sugerido do arquivo.
func (s *Service) RenderCSV(records []domain.SalesRecord) ([]byte, string, error) {
	name, err := artifactName()
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, "", errors.Wrap(err, "erro ao escrever cabeçalho do CSV")
	}
	for _, r := range records {
		if err := w.Write(recordRow(r)); err != nil {
			return nil, "", errors.Wrap(err, "erro ao escrever linha do CSV")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", errors.Wrap(err, "erro ao finalizar o CSV")
	}

	return buf.Bytes(), name + ".csv", nil
}

// artifactName gera o nome do artefato com timestamp e sufixo aleatório,
// ex.: sales_analysis_20240115_093000_aB3xYz.
func artifactName() (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar identificador de exportação")
	}
	return fmt.Sprintf("sales_analysis_%s_%s", time.Now().Format("20060102_150405"), id), nil
}
