package analyzing

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/filtering"
)

// Limites de truncamento das visões top-N, herdados da apresentação original.
const (
	topCountries        = 15
	topProducts         = 10
	topCustomersSales   = 15
	topCustomersOrders  = 15
	topCustomersSummary = 20
)

// Service implementa Analyzer sobre um dataset imutável em memória.
// O dataset só muda por substituição completa (ReplaceDataset), nunca por
// mutação; recomputações concorrentes leem o mesmo snapshot de dados.
type Service struct {
	mu      sync.RWMutex
	dataset *domain.Dataset
	domains domain.FilterDomains

	// memo guarda snapshots por (versão do dataset, fingerprint do filtro).
	// A troca de dataset descarta a tabela inteira.
	memo map[string]*domain.DashboardSnapshot

	// Controle last-request-wins: current só recebe o resultado da
	// requisição emitida mais recentemente, mesmo que uma anterior
	// termine depois.
	current   *domain.DashboardSnapshot
	issuedSeq uint64
}

// NewService cria o serviço de análise para um dataset já normalizado.
func NewService(dataset *domain.Dataset) *Service {
	return &Service{
		dataset: dataset,
		domains: filtering.ObservedDomains(dataset.Records),
		memo:    make(map[string]*domain.DashboardSnapshot),
	}
}

// ReplaceDataset troca o dataset corrente e descarta memoização e resultado
// publicado, que se referem à versão anterior.
func (s *Service) ReplaceDataset(dataset *domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dataset = dataset
	s.domains = filtering.ObservedDomains(dataset.Records)
	s.memo = make(map[string]*domain.DashboardSnapshot)
	s.current = nil

	logrus.WithFields(logrus.Fields{
		"versao":    dataset.Version,
		"registros": len(dataset.Records),
	}).Info("Dataset substituído no serviço de análise")
}

// Domains retorna os valores observados de cada dimensão filtrável.
func (s *Service) Domains() domain.FilterDomains {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.domains
}

// Info resume o dataset corrente completo.
func (s *Service) Info() domain.DatasetInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return DatasetInfo(s.dataset.Records)
}

// FilteredRecords aplica o filtro sobre o dataset corrente.
func (s *Service) FilteredRecords(spec domain.FilterSpec) []domain.SalesRecord {
	s.mu.RLock()
	records := s.dataset.Records
	s.mu.RUnlock()

	return filtering.Apply(records, spec)
}

// Snapshot computa o painel completo para a especificação, memoizando por
// (versão do dataset, fingerprint do filtro).
func (s *Service) Snapshot(spec domain.FilterSpec) *domain.DashboardSnapshot {
	s.mu.RLock()
	dataset := s.dataset
	key := memoKey(dataset.Version, spec)
	if cached, ok := s.memo[key]; ok {
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	snapshot := buildSnapshot(dataset.Records, spec)

	s.mu.Lock()
	// A recarga pode ter trocado o dataset durante o cálculo; só memoiza
	// se o resultado ainda corresponde à versão corrente.
	if s.dataset.Version == dataset.Version {
		s.memo[key] = snapshot
	}
	s.mu.Unlock()

	return snapshot
}

// Recompute computa o painel e tenta publicá-lo como resultado corrente.
// Cada chamada recebe um número de sequência; a publicação é atômica e só
// acontece se nenhuma requisição mais nova foi emitida nesse meio-tempo.
func (s *Service) Recompute(spec domain.FilterSpec) *domain.DashboardSnapshot {
	s.mu.Lock()
	s.issuedSeq++
	seq := s.issuedSeq
	s.mu.Unlock()

	snapshot := s.Snapshot(spec)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq == s.issuedSeq {
		s.current = snapshot
	} else {
		logrus.WithFields(logrus.Fields{
			"sequencia": seq,
			"emitida":   s.issuedSeq,
		}).Debug("Resultado obsoleto descartado (last-request-wins)")
	}

	return snapshot
}

// Current retorna o último painel publicado.
func (s *Service) Current() *domain.DashboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func memoKey(version int64, spec domain.FilterSpec) string {
	return fmt.Sprintf("v%d|%s", version, spec.Fingerprint())
}

// buildSnapshot monta todas as visões do painel a partir do subconjunto
// filtrado. Subconjunto vazio é um resultado válido: agregados vazios e
// KPIs zerados, com EmptyResult sinalizado para a apresentação decidir
// se avisa o usuário.
func buildSnapshot(records []domain.SalesRecord, spec domain.FilterSpec) *domain.DashboardSnapshot {
	subset := filtering.Apply(records, spec)

	productLineSales := aggregating.Aggregate(
		subset, []domain.Dimension{domain.DimensionProductLine}, domain.StatisticSum, domain.FieldSales)
	dealSizeSales := aggregating.Aggregate(
		subset, []domain.Dimension{domain.DimensionDealSize}, domain.StatisticSum, domain.FieldSales)
	countrySales := aggregating.Aggregate(
		subset, []domain.Dimension{domain.DimensionCountry}, domain.StatisticSum, domain.FieldSales)
	productSales := aggregating.Aggregate(
		subset, []domain.Dimension{domain.DimensionProductCode}, domain.StatisticSum, domain.FieldSales)
	customerSales := aggregating.Aggregate(
		subset, []domain.Dimension{domain.DimensionCustomerName}, domain.StatisticSum, domain.FieldSales)
	customerOrders := aggregating.Aggregate(
		subset, []domain.Dimension{domain.DimensionCustomerName}, domain.StatisticDistinctCount, domain.FieldOrderNumber)
	monthlySales := aggregating.Aggregate(
		subset, []domain.Dimension{domain.DimensionYearMonth}, domain.StatisticSum, domain.FieldSales)
	quarterlySales := aggregating.Aggregate(
		subset, []domain.Dimension{domain.DimensionYearQuarter}, domain.StatisticSum, domain.FieldSales)
	weekdaySales := aggregating.Aggregate(
		subset, []domain.Dimension{domain.DimensionWeekday}, domain.StatisticSum, domain.FieldSales)

	customerSummary := Summarize(subset, domain.DimensionCustomerName)
	if len(customerSummary) > topCustomersSummary {
		customerSummary = customerSummary[:topCustomersSummary]
	}

	return &domain.DashboardSnapshot{
		Filters:     spec,
		KPIs:        ComputeKPIs(subset),
		EmptyResult: len(subset) == 0,

		SalesByProductLine:   aggregating.SortByValueDesc(productLineSales),
		SalesByDealSize:      dealSizeSales,
		TopCountries:         aggregating.TopN(countrySales, topCountries),
		TopProducts:          aggregating.TopN(productSales, topProducts),
		TopCustomersBySales:  aggregating.TopN(customerSales, topCustomersSales),
		TopCustomersByOrders: aggregating.TopN(customerOrders, topCustomersOrders),
		MonthlySales:         aggregating.SortChronological(monthlySales),
		QuarterlySales:       aggregating.SortChronological(quarterlySales),
		WeekdaySales:         aggregating.OrderWeekdays(weekdaySales),

		ProductLineSummary: Summarize(subset, domain.DimensionProductLine),
		CustomerSummary:    customerSummary,

		DatasetInfo: DatasetInfo(subset),
		ComputedAt:  time.Now(),
	}
}
