package metrics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

var testHeader = []string{"Seller", "GMV", "Clicks"}

func newTestEngine() *Engine {
	return NewEngine(Settings{
		Columns: domain.ColumnMapping{SellerID: "Seller", GMV: "GMV", Clicks: "Clicks"},
		Thresholds: domain.EfficiencyThresholds{
			Low:  decimal.NewFromInt(7),
			High: decimal.NewFromInt(50),
		},
	})
}

func newTable(label domain.Period, rows ...[]string) *domain.Table {
	return &domain.Table{
		Label:    label,
		FileName: string(label) + ".csv",
		Header:   testHeader,
		Rows:     rows,
	}
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(t, expected).Equal(actual), "esperado %s, obtido %s %v", expected, actual.String(), msgAndArgs)
}

func sellerIDs[T any](entries []T, id func(T) string) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, id(e))
	}
	return ids
}
