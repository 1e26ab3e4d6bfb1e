package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-metrics-api/infrastructure/ingestion"
	"github.com/vfg2006/seller-metrics-api/internal/config"
	"github.com/vfg2006/seller-metrics-api/internal/domain"
	"github.com/vfg2006/seller-metrics-api/internal/usecases/reporting"
	"golang.org/x/sync/errgroup"
)

// ErrDatasetsNotConfigured indica que os caminhos dos arquivos não foram informados
var ErrDatasetsNotConfigured = errors.New("caminhos EARLIER_DATASET_PATH e LATER_DATASET_PATH não configurados")

// DatasetReloadSyncConfig representa a configuração do agendador de recarga dos arquivos
type DatasetReloadSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	EarlierPath  string
	LaterPath    string
}

// DatasetReloadSyncService relê periodicamente os dois arquivos configurados e
// publica o novo par no serviço de relatórios
type DatasetReloadSyncService struct {
	scheduler           *gocron.Scheduler
	config              DatasetReloadSyncConfig
	reader              ingestion.TableReader
	loader              reporting.DatasetLoader
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastError           string
}

// NewDatasetReloadSyncService cria uma nova instância do serviço de recarga
func NewDatasetReloadSyncService(
	reader ingestion.TableReader,
	loader reporting.DatasetLoader,
	appConfig *config.Config,
) *DatasetReloadSyncService {
	reloadConfig := DatasetReloadSyncConfig{
		CronSchedule: appConfig.DatasetReloadSync.CronSchedule,
		SyncEnabled:  appConfig.DatasetReloadSync.Enabled,
		EarlierPath:  appConfig.Datasets.EarlierPath,
		LaterPath:    appConfig.Datasets.LaterPath,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"sync_enabled":  reloadConfig.SyncEnabled,
		"earlier_path":  reloadConfig.EarlierPath,
		"later_path":    reloadConfig.LaterPath,
	}).Info("Configuração do agendador de recarga de arquivos carregada")

	return &DatasetReloadSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reloadConfig,
		reader:    reader,
		loader:    loader,
	}
}

// Start inicia o agendador
func (s *DatasetReloadSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada de arquivos desabilitada por configuração")
		return nil
	}

	if s.config.EarlierPath == "" || s.config.LaterPath == "" {
		return ErrDatasetsNotConfigured
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga de arquivos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.ReloadDatasets(); err != nil {
			logrus.WithError(err).Error("Erro na recarga agendada de arquivos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de arquivos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga de arquivos")
		s.scheduler.Stop()
	}()

	return nil
}

// ReloadDatasets lê os dois arquivos e troca o snapshot atual.
// Execuções concorrentes são ignoradas; um erro mantém o snapshot anterior.
func (s *DatasetReloadSyncService) ReloadDatasets() error {
	if s.config.EarlierPath == "" || s.config.LaterPath == "" {
		return ErrDatasetsNotConfigured
	}

	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga de arquivos já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	info, err := s.reload()

	s.syncMutex.Lock()
	s.syncRunning = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastSnapshotID = info.ID
		s.lastSyncCompletedAt = time.Now()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"snapshot_id": info.ID,
	}).Info("Recarga de arquivos concluída")

	return nil
}

func (s *DatasetReloadSyncService) reload() (*domain.SnapshotInfo, error) {
	var earlier, later *domain.Table

	// Os dois arquivos são independentes; lê em paralelo
	var g errgroup.Group
	g.Go(func() error {
		table, err := s.reader.ReadFile(s.config.EarlierPath, domain.PeriodEarlier)
		if err != nil {
			return fmt.Errorf("erro ao ler arquivo do período anterior: %w", err)
		}
		earlier = table
		return nil
	})
	g.Go(func() error {
		table, err := s.reader.ReadFile(s.config.LaterPath, domain.PeriodLater)
		if err != nil {
			return fmt.Errorf("erro ao ler arquivo do período posterior: %w", err)
		}
		later = table
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.loader.Load("scheduler", earlier, later)
}

// TriggerManualSync inicia manualmente uma recarga dos arquivos
func (s *DatasetReloadSyncService) TriggerManualSync() error {
	if s.config.EarlierPath == "" || s.config.LaterPath == "" {
		return ErrDatasetsNotConfigured
	}

	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Recarga de arquivos já em andamento, ignorando solicitação manual")
		return nil
	}

	logrus.Info("Iniciando recarga manual de arquivos")
	go func() {
		if err := s.ReloadDatasets(); err != nil {
			logrus.WithError(err).Error("Erro na recarga manual de arquivos")
		}
	}()

	return nil
}

// IsRunning indica se existe uma recarga em andamento
func (s *DatasetReloadSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"earlier_path":           s.config.EarlierPath,
		"later_path":             s.config.LaterPath,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_error":             s.lastError,
	}
}
