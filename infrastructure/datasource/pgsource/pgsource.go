// Package pgsource adapta o repositório Postgres ao contrato de origem de
// dados brutos.
package pgsource

import (
	"context"

	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

type Source struct {
	repo repository.SalesRecordRepository
}

func New(repo repository.SalesRecordRepository) *Source {
	return &Source{repo: repo}
}

func (s *Source) Load(ctx context.Context) (domain.RawTable, error) {
	return s.repo.FetchRawTable(ctx)
}

func (s *Source) Describe() string {
	return "postgres:sales_records"
}
