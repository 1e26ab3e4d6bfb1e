package metrics

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

// Attrition faz o left join do período anterior sobre o posterior.
// Um vendedor é perdido quando o GMV agregado no período posterior é exatamente zero,
// o que inclui vendedores ausentes e vendedores que já estavam zerados antes.
func (e *Engine) Attrition(earlier, later *domain.Table) (*domain.AttritionReport, error) {
	earlierAgg, laterAgg, err := e.aggregatePair(earlier, later)
	if err != nil {
		return nil, err
	}

	report := &domain.AttritionReport{
		Entries:            make([]domain.AttritionEntry, 0, len(earlierAgg.records)),
		Lost:               make([]domain.AttritionEntry, 0),
		TotalLostGMV:       decimal.Zero,
		EarlierSellerCount: len(earlierAgg.records),
		LaterSellerCount:   len(laterAgg.records),
	}

	for _, record := range earlierAgg.records {
		laterGMV := decimal.Zero
		if laterRecord, ok := laterAgg.get(record.SellerID); ok {
			laterGMV = laterRecord.GMV
		}

		entry := domain.AttritionEntry{
			SellerID:   record.SellerID,
			EarlierGMV: record.GMV,
			LaterGMV:   laterGMV,
			Lost:       laterGMV.IsZero(),
		}
		report.Entries = append(report.Entries, entry)

		if entry.Lost {
			report.Lost = append(report.Lost, entry)
			report.TotalLostGMV = report.TotalLostGMV.Add(entry.EarlierGMV)
		}
	}

	report.LostSellerCount = len(report.Lost)

	return report, nil
}
