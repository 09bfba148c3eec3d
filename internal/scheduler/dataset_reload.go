// Package scheduler contém os serviços de agendamento para recarga de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/normalizing"
)

type DatasetReloadConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetReloadService recarrega a origem de dados em um cron e entrega o
// dataset normalizado ao serviço de análise, que descarta memoização e
// resultado publicado da versão anterior.
type DatasetReloadService struct {
	scheduler *gocron.Scheduler
	source    datasource.Source
	analyzer  analyzing.DatasetReplacer
	config    DatasetReloadConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	version             int64
}

// NewDatasetReloadService cria o serviço de recarga. initialVersion é a
// versão do dataset carregado na inicialização; recargas produzem versões
// subsequentes.
func NewDatasetReloadService(
	source datasource.Source,
	analyzer analyzing.DatasetReplacer,
	cfg *config.Config,
	initialVersion int64,
) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: cfg.DatasetReload.CronSchedule,
		Enabled:      cfg.DatasetReload.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"origem":        source.Describe(),
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetReloadService{
		scheduler: scheduler,
		source:    source,
		analyzer:  analyzer,
		config:    reloadConfig,
		version:   initialVersion,
	}
}

func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de recarga do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.ReloadDataset(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// ReloadDataset lê a origem, normaliza e substitui o dataset no serviço de
// análise. Erros estruturais da origem (SchemaError, DateParseError) abortam
// a recarga inteira e mantêm o dataset anterior intacto.
func (s *DatasetReloadService) ReloadDataset(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Recarga do dataset já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.WithField("origem", s.source.Describe()).Info("Iniciando recarga do dataset")

	dataset, err := s.loadDataset(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao recarregar o dataset; versão anterior mantida")
		return err
	}

	s.analyzer.ReplaceDataset(dataset)

	logrus.WithFields(logrus.Fields{
		"versao":    dataset.Version,
		"registros": len(dataset.Records),
	}).Info("Recarga do dataset concluída")

	return nil
}

func (s *DatasetReloadService) loadDataset(ctx context.Context) (*domain.Dataset, error) {
	table, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	records, err := normalizing.Normalize(table)
	if err != nil {
		return nil, err
	}

	s.version++
	return &domain.Dataset{
		Records:  records,
		Version:  s.version,
		LoadedAt: time.Now(),
	}, nil
}

// Status expõe o estado do agendador para o endpoint de status.
func (s *DatasetReloadService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron_schedule":          s.config.CronSchedule,
		"source":                 s.source.Describe(),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"dataset_version":        s.version,
	}
}
