package domain

import "github.com/shopspring/decimal"

// EfficiencyCategory classifica o GMV por clique de um vendedor
type EfficiencyCategory string

const (
	// HighClicksLowEfficiency indica muitos cliques para pouco GMV (conversões não atribuídas)
	HighClicksLowEfficiency EfficiencyCategory = "high-clicks-low-efficiency"
	// LowClicksHighEfficiency indica GMV alto demais para os cliques registrados (cliques perdidos)
	LowClicksHighEfficiency EfficiencyCategory = "low-clicks-high-efficiency"
	EfficiencyNormal        EfficiencyCategory = "normal"
	// EfficiencyUndefined é atribuído a vendedores sem cliques
	EfficiencyUndefined EfficiencyCategory = "undefined"
)

// EfficiencyThresholds são limites de política, não derivados dos dados
type EfficiencyThresholds struct {
	Low  decimal.Decimal `json:"low"`
	High decimal.Decimal `json:"high"`
}

type EfficiencyEntry struct {
	SellerID    string             `json:"seller_id"`
	Clicks      int64              `json:"clicks"`
	GMV         decimal.Decimal    `json:"gmv"`
	GMVPerClick Ratio              `json:"gmv_per_click"`
	Category    EfficiencyCategory `json:"category"`
}

type EfficiencyCounts struct {
	HighClicksLowEfficiency int `json:"high_clicks_low_efficiency"`
	LowClicksHighEfficiency int `json:"low_clicks_high_efficiency"`
	Normal                  int `json:"normal"`
	Undefined               int `json:"undefined"`
}

type EfficiencyReport struct {
	Period                  Period               `json:"period"`
	Thresholds              EfficiencyThresholds `json:"thresholds"`
	Entries                 []EfficiencyEntry    `json:"entries"`
	HighClicksLowEfficiency []EfficiencyEntry    `json:"high_clicks_low_efficiency"`
	LowClicksHighEfficiency []EfficiencyEntry    `json:"low_clicks_high_efficiency"`
	Undefined               []EfficiencyEntry    `json:"undefined"`
	Counts                  EfficiencyCounts     `json:"counts"`
}
