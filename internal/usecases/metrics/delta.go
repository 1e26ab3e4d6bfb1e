package metrics

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Delta faz o inner join dos dois períodos e calcula a variação de GMV por vendedor.
// Diferente de Attrition, vendedores ausentes em qualquer lado ficam de fora.
func (e *Engine) Delta(earlier, later *domain.Table) (*domain.DeltaReport, error) {
	earlierAgg, laterAgg, err := e.aggregatePair(earlier, later)
	if err != nil {
		return nil, err
	}

	report := &domain.DeltaReport{
		Entries:     make([]domain.DeltaEntry, 0),
		TotalChange: decimal.Zero,
	}

	percentSum := decimal.Zero
	percentCount := 0

	for _, record := range earlierAgg.records {
		laterRecord, ok := laterAgg.get(record.SellerID)
		if !ok {
			continue
		}

		change := laterRecord.GMV.Sub(record.GMV)
		entry := domain.DeltaEntry{
			SellerID:      record.SellerID,
			EarlierGMV:    record.GMV,
			LaterGMV:      laterRecord.GMV,
			Change:        change,
			PercentChange: domain.UndefinedRatio(),
		}

		if record.GMV.IsPositive() {
			percent := change.Div(record.GMV).Mul(hundred)
			entry.PercentChange = domain.NewRatio(percent.Round(1))
			percentSum = percentSum.Add(percent)
			percentCount++
		}

		switch {
		case change.IsNegative():
			report.DecliningCount++
		case change.IsPositive():
			report.GrowingCount++
		}

		report.TotalChange = report.TotalChange.Add(change)
		report.Entries = append(report.Entries, entry)
	}

	report.MeanPercentChange = domain.UndefinedRatio()
	if percentCount > 0 {
		mean := percentSum.Div(decimal.NewFromInt(int64(percentCount)))
		report.MeanPercentChange = domain.NewRatio(mean.Round(1))
	}

	return report, nil
}
