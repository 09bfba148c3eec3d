package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/datasource"
	"github.com/vfg2006/sales-analytics-api/infrastructure/datasource/csvsource"
	"github.com/vfg2006/sales-analytics-api/infrastructure/datasource/pgsource"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/normalizing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource := datasetSource(ctx, cfg)
	defer closeSource()

	// Carga inicial do dataset; sem ela a aplicação não tem o que servir
	dataset, err := loadInitialDataset(ctx, source)
	if err != nil {
		logrus.WithError(err).Fatal("Erro na carga inicial do dataset")
	}

	logrus.WithFields(logrus.Fields{
		"origem":    source.Describe(),
		"registros": len(dataset.Records),
	}).Info("Dataset inicial carregado")

	analyzer := analyzing.NewService(dataset)
	exporter := exporting.NewService()
	authenticator := authenticating.NewService(cfg)

	// Inicializa o agendador de recarga do dataset
	datasetReloadService := scheduler.NewDatasetReloadService(
		source,
		analyzer,
		cfg,
		dataset.Version,
	)

	if err := datasetReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyzer,
		exporter,
		authenticator,
		datasetReloadService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// datasetSource cria a origem de dados conforme a configuração. Retorna
// também a função de liberação de recursos da origem.
func datasetSource(ctx context.Context, cfg *config.Config) (datasource.Source, func()) {
	switch cfg.Dataset.Source {
	case "postgres":
		conn := pgconn(ctx, cfg.Database)
		repo := repository.NewSalesRecordRepository(conn)
		return pgsource.New(repo), func() { conn.Close() }

	case "csv":
		return csvsource.New(cfg.Dataset.CSVPath), func() {}

	default:
		logrus.Fatalf("Origem de dados desconhecida: %s (valores aceitos: csv, postgres)", cfg.Dataset.Source)
		return nil, nil
	}
}

// loadInitialDataset lê e normaliza a primeira versão do dataset
func loadInitialDataset(ctx context.Context, source datasource.Source) (*domain.Dataset, error) {
	table, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	records, err := normalizing.Normalize(table)
	if err != nil {
		return nil, err
	}

	return &domain.Dataset{
		Records:  records,
		Version:  1,
		LoadedAt: time.Now(),
	}, nil
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
