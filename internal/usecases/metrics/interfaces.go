package metrics

import "github.com/vfg2006/seller-metrics-api/internal/domain"

// Calculator define as operações de cálculo sobre as tabelas dos dois períodos
type Calculator interface {
	Validate(table *domain.Table, withClicks bool) error
	Aggregate(table *domain.Table, withClicks bool) ([]domain.SellerPeriodRecord, error)
	Attrition(earlier, later *domain.Table) (*domain.AttritionReport, error)
	Efficiency(table *domain.Table) (*domain.EfficiencyReport, error)
	Delta(earlier, later *domain.Table) (*domain.DeltaReport, error)
	Drag(earlier, later *domain.Table) (*domain.DragSummary, error)
}

var _ Calculator = (*Engine)(nil)
