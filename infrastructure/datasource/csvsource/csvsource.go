// Package csvsource implementa a origem de dados baseada em arquivo CSV.
package csvsource

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Source lê a tabela bruta de um arquivo CSV com cabeçalho.
type Source struct {
	path string
}

// New cria a origem CSV para o caminho informado.
func New(path string) *Source {
	return &Source{path: path}
}

// Load lê o arquivo inteiro. A primeira linha é o cabeçalho de colunas.
func (s *Source) Load(ctx context.Context) (domain.RawTable, error) {
	if err := ctx.Err(); err != nil {
		return domain.RawTable{}, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		return domain.RawTable{}, errors.Wrapf(err, "erro ao abrir arquivo de dados %s", s.path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // linhas curtas são tratadas na normalização

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.RawTable{}, errors.Wrapf(err, "erro ao ler CSV %s", s.path)
	}
	if len(rows) == 0 {
		return domain.RawTable{}, errors.Errorf("arquivo de dados vazio: %s", s.path)
	}

	table := domain.RawTable{
		Columns: rows[0],
		Rows:    rows[1:],
	}

	logrus.WithFields(logrus.Fields{
		"arquivo": s.path,
		"linhas":  len(table.Rows),
	}).Info("Arquivo CSV de vendas carregado")

	return table, nil
}

// Describe identifica a origem para logs e status.
func (s *Source) Describe() string {
	return fmt.Sprintf("csv:%s", s.path)
}
