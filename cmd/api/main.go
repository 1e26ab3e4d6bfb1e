package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-metrics-api/infrastructure/ingestion"
	"github.com/vfg2006/seller-metrics-api/internal/api"
	"github.com/vfg2006/seller-metrics-api/internal/config"
	"github.com/vfg2006/seller-metrics-api/internal/scheduler"
	"github.com/vfg2006/seller-metrics-api/internal/usecases/metrics"
	"github.com/vfg2006/seller-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-metrics-api/pkg/log"
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	engine := metrics.NewEngine(metrics.Settings{
		Columns:    cfg.Columns.Mapping(),
		Thresholds: cfg.Efficiency.Thresholds(),
	})

	logrus.WithFields(logrus.Fields{
		"seller_id_column":          cfg.Columns.SellerID,
		"gmv_column":                cfg.Columns.GMV,
		"clicks_column":             cfg.Columns.Clicks,
		"low_efficiency_threshold":  cfg.Efficiency.LowThreshold,
		"high_efficiency_threshold": cfg.Efficiency.HighThreshold,
	}).Info("Engine de métricas configurado")

	reportingService := reporting.NewService(engine)
	reader := ingestion.New(cfg.Server.MaxUploadSize())

	datasetReloadSyncService := scheduler.NewDatasetReloadSyncService(reader, reportingService, cfg)

	// Carga inicial a partir dos arquivos configurados
	if cfg.Datasets.Configured() {
		if err := datasetReloadSyncService.ReloadDatasets(); err != nil {
			logrus.WithError(err).Error("Erro na carga inicial dos conjuntos de dados")
		}
	} else {
		logrus.Info("Nenhum arquivo configurado; aguardando upload em /v1/datasets")
	}

	if err := datasetReloadSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de arquivos")
	} else {
		logrus.Info("Agendador de recarga de arquivos iniciado com sucesso")
	}

	server, err := api.New(cfg, reportingService, reader, datasetReloadSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
