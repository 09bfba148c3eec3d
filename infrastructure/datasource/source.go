// Package datasource define o contrato dos coletores de dados brutos.
// A origem (arquivo, banco) é responsável por localização e codificação;
// o núcleo recebe apenas a tabela bruta.
package datasource

import (
	"context"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

//go:generate mockgen -source=source.go -destination=mocks/source_mock.go -package=mocks

// Source entrega a tabela bruta de vendas a ser normalizada.
type Source interface {
	Load(ctx context.Context) (domain.RawTable, error)
	Describe() string
}
