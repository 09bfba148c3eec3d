package analyzing

import (
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Analyzer define a interface do núcleo de análise consumida pela API.
type Analyzer interface {
	// Snapshot computa (ou recupera da memoização) o painel completo para
	// uma especificação de filtro.
	Snapshot(spec domain.FilterSpec) *domain.DashboardSnapshot

	// Recompute computa o painel e o publica como resultado corrente,
	// com a garantia de que apenas a requisição mais recente prevalece.
	Recompute(spec domain.FilterSpec) *domain.DashboardSnapshot

	// Current retorna o último painel publicado, ou nil se nenhum.
	Current() *domain.DashboardSnapshot

	// Domains retorna os valores observados de cada dimensão filtrável.
	Domains() domain.FilterDomains

	// FilteredRecords aplica o filtro e retorna o subconjunto, para uso da
	// camada de exportação.
	FilteredRecords(spec domain.FilterSpec) []domain.SalesRecord

	// Info resume o dataset corrente completo.
	Info() domain.DatasetInfo
}

// DatasetReplacer é implementada pelo serviço de análise para receber um
// dataset recarregado.
type DatasetReplacer interface {
	ReplaceDataset(dataset *domain.Dataset)
}
