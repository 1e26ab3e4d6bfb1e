package metrics

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

// Efficiency classifica cada vendedor pelo GMV por clique.
// Vendedores sem cliques ficam com razão indefinida e fora da classificação.
func (e *Engine) Efficiency(table *domain.Table) (*domain.EfficiencyReport, error) {
	agg, err := e.aggregate(table, true)
	if err != nil {
		return nil, err
	}

	thresholds := e.settings.Thresholds
	report := &domain.EfficiencyReport{
		Period:                  table.Label,
		Thresholds:              thresholds,
		Entries:                 make([]domain.EfficiencyEntry, 0, len(agg.records)),
		HighClicksLowEfficiency: make([]domain.EfficiencyEntry, 0),
		LowClicksHighEfficiency: make([]domain.EfficiencyEntry, 0),
		Undefined:               make([]domain.EfficiencyEntry, 0),
	}

	for _, record := range agg.records {
		entry := classify(record, thresholds)
		report.Entries = append(report.Entries, entry)

		switch entry.Category {
		case domain.HighClicksLowEfficiency:
			report.HighClicksLowEfficiency = append(report.HighClicksLowEfficiency, entry)
			report.Counts.HighClicksLowEfficiency++
		case domain.LowClicksHighEfficiency:
			report.LowClicksHighEfficiency = append(report.LowClicksHighEfficiency, entry)
			report.Counts.LowClicksHighEfficiency++
		case domain.EfficiencyNormal:
			report.Counts.Normal++
		default:
			report.Undefined = append(report.Undefined, entry)
			report.Counts.Undefined++
		}
	}

	return report, nil
}

// classify compara GMV com limite × cliques para não depender da precisão da divisão
func classify(record domain.SellerPeriodRecord, thresholds domain.EfficiencyThresholds) domain.EfficiencyEntry {
	entry := domain.EfficiencyEntry{
		SellerID: record.SellerID,
		Clicks:   record.Clicks,
		GMV:      record.GMV,
	}

	if record.Clicks == 0 {
		entry.GMVPerClick = domain.UndefinedRatio()
		entry.Category = domain.EfficiencyUndefined
		return entry
	}

	clicks := decimal.NewFromInt(record.Clicks)
	entry.GMVPerClick = domain.NewRatio(record.GMV.Div(clicks))

	switch {
	case record.GMV.LessThan(thresholds.Low.Mul(clicks)):
		entry.Category = domain.HighClicksLowEfficiency
	case record.GMV.GreaterThan(thresholds.High.Mul(clicks)):
		entry.Category = domain.LowClicksHighEfficiency
	default:
		entry.Category = domain.EfficiencyNormal
	}

	return entry
}
