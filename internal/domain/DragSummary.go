package domain

import "github.com/shopspring/decimal"

const (
	DragComponentLostSellers   = "Lost sellers (churn)"
	DragComponentActiveSellers = "Active sellers GMV change"
)

type DragComponent struct {
	Component string          `json:"component"`
	GMVImpact decimal.Decimal `json:"gmv_impact"`
}

// DragSummary combina a perda por churn com a variação dos vendedores ativos
type DragSummary struct {
	Components []DragComponent `json:"components"`
	TotalDrag  decimal.Decimal `json:"total_drag"`
}
