package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-metrics-api/internal/domain"
)

func TestEngine_Efficiency(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name     string
		rows     [][]string
		expected map[string]domain.EfficiencyCategory
		validate func(t *testing.T, report *domain.EfficiencyReport)
	}{
		{
			name:     "Muitos cliques e pouco GMV - razão abaixo de 7",
			rows:     [][]string{{"X", "36132", "16247"}},
			expected: map[string]domain.EfficiencyCategory{"X": domain.HighClicksLowEfficiency},
			validate: func(t *testing.T, report *domain.EfficiencyReport) {
				ratio := report.Entries[0].GMVPerClick
				require.True(t, ratio.Valid)
				assertDecimal(t, "2.22", ratio.Value.Round(2))
				assert.Equal(t, 1, report.Counts.HighClicksLowEfficiency)
				require.Len(t, report.HighClicksLowEfficiency, 1)
			},
		},
		{
			name:     "Poucos cliques e GMV muito alto - razão acima de 50",
			rows:     [][]string{{"Y", "466928", "2712"}},
			expected: map[string]domain.EfficiencyCategory{"Y": domain.LowClicksHighEfficiency},
			validate: func(t *testing.T, report *domain.EfficiencyReport) {
				assertDecimal(t, "172.2", report.Entries[0].GMVPerClick.Value.Round(1))
				require.Len(t, report.LowClicksHighEfficiency, 1)
			},
		},
		{
			name: "Limites exatos são classificados como normais",
			rows: [][]string{
				{"L", "70", "10"},
				{"H", "500", "10"},
				{"M", "200", "10"},
			},
			expected: map[string]domain.EfficiencyCategory{
				"L": domain.EfficiencyNormal,
				"H": domain.EfficiencyNormal,
				"M": domain.EfficiencyNormal,
			},
			validate: func(t *testing.T, report *domain.EfficiencyReport) {
				assert.Equal(t, 3, report.Counts.Normal)
				assert.Empty(t, report.HighClicksLowEfficiency)
				assert.Empty(t, report.LowClicksHighEfficiency)
			},
		},
		{
			name: "Sem cliques - razão indefinida e fora das três categorias",
			rows: [][]string{
				{"Z", "1000", "0"},
				{"E", "", ""},
			},
			expected: map[string]domain.EfficiencyCategory{
				"Z": domain.EfficiencyUndefined,
				"E": domain.EfficiencyUndefined,
			},
			validate: func(t *testing.T, report *domain.EfficiencyReport) {
				for _, entry := range report.Entries {
					assert.False(t, entry.GMVPerClick.Valid)
				}
				assert.Equal(t, 2, report.Counts.Undefined)
				assert.Zero(t, report.Counts.Normal+report.Counts.HighClicksLowEfficiency+report.Counts.LowClicksHighEfficiency)
				assert.Len(t, report.Undefined, 2)
			},
		},
		{
			name: "Cliques são somados por vendedor antes da razão",
			rows: [][]string{
				{"A", "300", "50"},
				{"A", "300", "50"},
			},
			expected: map[string]domain.EfficiencyCategory{"A": domain.HighClicksLowEfficiency},
			validate: func(t *testing.T, report *domain.EfficiencyReport) {
				require.Len(t, report.Entries, 1)
				assert.Equal(t, int64(100), report.Entries[0].Clicks)
				assertDecimal(t, "6", report.Entries[0].GMVPerClick.Value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := engine.Efficiency(newTable(domain.PeriodEarlier, tt.rows...))
			require.NoError(t, err)

			assert.Equal(t, domain.PeriodEarlier, report.Period)
			require.Len(t, report.Entries, len(tt.expected))
			for _, entry := range report.Entries {
				assert.Equal(t, tt.expected[entry.SellerID], entry.Category, entry.SellerID)
			}
			tt.validate(t, report)
		})
	}
}

func TestEngine_Efficiency_PartitionsRowsWithClicks(t *testing.T) {
	engine := newTestEngine()
	table := newTable(domain.PeriodLater,
		[]string{"A", "1", "100"},
		[]string{"B", "1000", "10"},
		[]string{"C", "100", "10"},
		[]string{"D", "100", "0"},
		[]string{"E", "6.99", "1"},
	)

	report, err := engine.Efficiency(table)
	require.NoError(t, err)

	counts := report.Counts
	assert.Equal(t, 4, counts.HighClicksLowEfficiency+counts.LowClicksHighEfficiency+counts.Normal)
	assert.Equal(t, 1, counts.Undefined)
	assert.Equal(t, []string{"A", "E"}, sellerIDs(report.HighClicksLowEfficiency, func(e domain.EfficiencyEntry) string { return e.SellerID }))
	assert.Equal(t, []string{"B"}, sellerIDs(report.LowClicksHighEfficiency, func(e domain.EfficiencyEntry) string { return e.SellerID }))
	assertDecimal(t, "7", report.Thresholds.Low)
	assertDecimal(t, "50", report.Thresholds.High)
}
