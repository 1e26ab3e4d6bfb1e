package metrics

import (
	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

// Drag soma a perda por churn (negativa) com a variação dos vendedores ativos
func (e *Engine) Drag(earlier, later *domain.Table) (*domain.DragSummary, error) {
	attrition, err := e.Attrition(earlier, later)
	if err != nil {
		return nil, err
	}

	delta, err := e.Delta(earlier, later)
	if err != nil {
		return nil, err
	}

	lost := attrition.TotalLostGMV.Neg()

	return &domain.DragSummary{
		Components: []domain.DragComponent{
			{Component: domain.DragComponentLostSellers, GMVImpact: lost},
			{Component: domain.DragComponentActiveSellers, GMVImpact: delta.TotalChange},
		},
		TotalDrag: lost.Add(delta.TotalChange),
	}, nil
}
