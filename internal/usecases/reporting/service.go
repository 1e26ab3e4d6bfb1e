// Package reporting mantém o snapshot atual e calcula os relatórios sobre ele
package reporting

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-metrics-api/internal/domain"
	"github.com/vfg2006/seller-metrics-api/internal/usecases/metrics"
	observability "github.com/vfg2006/seller-metrics-api/pkg/metrics"
	"github.com/vfg2006/seller-metrics-api/pkg/utils"
)

// snapshot é imutável depois de publicado; trocas substituem o ponteiro inteiro
type snapshot struct {
	info    domain.SnapshotInfo
	earlier *domain.Table
	later   *domain.Table
}

// Service implementa SnapshotService
type Service struct {
	calculator metrics.Calculator
	generateID func() (string, error)
	now        func() time.Time

	mu      sync.RWMutex
	current *snapshot
}

// NewService cria o serviço de relatórios sem nenhum snapshot carregado
func NewService(calculator metrics.Calculator) *Service {
	return &Service{
		calculator: calculator,
		generateID: utils.GenerateSnapshotID,
		now:        time.Now,
	}
}

// Load valida as duas tabelas e só então publica o novo snapshot.
// Em caso de erro o snapshot anterior continua em uso.
func (s *Service) Load(source string, earlier, later *domain.Table) (*domain.SnapshotInfo, error) {
	info, err := s.prepare(earlier, later)
	if err != nil {
		observability.SnapshotLoads.WithLabelValues(source, observability.StatusError).Inc()
		return nil, err
	}

	next := &snapshot{
		info:    *info,
		earlier: earlier,
		later:   later,
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	observability.SnapshotLoads.WithLabelValues(source, observability.StatusSuccess).Inc()
	observability.LoadedSellers.WithLabelValues(string(domain.PeriodEarlier)).Set(float64(info.Earlier.SellerCount))
	observability.LoadedSellers.WithLabelValues(string(domain.PeriodLater)).Set(float64(info.Later.SellerCount))

	logrus.WithFields(logrus.Fields{
		"snapshot_id":     info.ID,
		"source":          source,
		"earlier_file":    info.Earlier.FileName,
		"earlier_sellers": info.Earlier.SellerCount,
		"later_file":      info.Later.FileName,
		"later_sellers":   info.Later.SellerCount,
	}).Info("Novo snapshot de vendedores carregado")

	return info, nil
}

func (s *Service) prepare(earlier, later *domain.Table) (*domain.SnapshotInfo, error) {
	if earlier == nil || later == nil {
		return nil, metrics.ErrMissingDataset
	}

	// Garante o período de cada tabela independentemente de quem a leu
	earlier.Label = domain.PeriodEarlier
	later.Label = domain.PeriodLater

	// Valida o esquema das duas tabelas antes de interpretar qualquer valor
	if err := s.calculator.Validate(earlier, false); err != nil {
		return nil, err
	}
	if err := s.calculator.Validate(later, false); err != nil {
		return nil, err
	}

	earlierInfo, err := s.describe(earlier)
	if err != nil {
		return nil, err
	}
	laterInfo, err := s.describe(later)
	if err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	return &domain.SnapshotInfo{
		ID:       id,
		LoadedAt: s.now(),
		Earlier:  *earlierInfo,
		Later:    *laterInfo,
	}, nil
}

func (s *Service) describe(table *domain.Table) (*domain.DatasetInfo, error) {
	records, err := s.calculator.Aggregate(table, false)
	if err != nil {
		return nil, err
	}

	return &domain.DatasetInfo{
		Label:       table.Label,
		FileName:    table.FileName,
		RowCount:    len(table.Rows),
		SellerCount: len(records),
	}, nil
}

func (s *Service) snapshot() (*snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNoSnapshot
	}
	return s.current, nil
}

func (s *Service) Snapshot() (*domain.SnapshotInfo, error) {
	current, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	info := current.info
	return &info, nil
}

func (s *Service) Attrition() (*domain.AttritionReport, error) {
	current, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	report, err := s.calculator.Attrition(current.earlier, current.later)
	observability.ObserveReport("attrition", err)
	return report, err
}

func (s *Service) Efficiency(period domain.Period) (*domain.EfficiencyReport, error) {
	current, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	var table *domain.Table
	switch period {
	case domain.PeriodEarlier:
		table = current.earlier
	case domain.PeriodLater:
		table = current.later
	default:
		return nil, ErrInvalidPeriod
	}

	report, err := s.calculator.Efficiency(table)
	observability.ObserveReport("efficiency", err)
	return report, err
}

func (s *Service) Delta() (*domain.DeltaReport, error) {
	current, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	report, err := s.calculator.Delta(current.earlier, current.later)
	observability.ObserveReport("delta", err)
	return report, err
}

func (s *Service) Drag() (*domain.DragSummary, error) {
	current, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	summary, err := s.calculator.Drag(current.earlier, current.later)
	observability.ObserveReport("drag", err)
	return summary, err
}

var _ SnapshotService = (*Service)(nil)
