package domain

import "github.com/shopspring/decimal"

// DeltaEntry representa um vendedor ativo nos dois períodos
type DeltaEntry struct {
	SellerID      string          `json:"seller_id"`
	EarlierGMV    decimal.Decimal `json:"earlier_gmv"`
	LaterGMV      decimal.Decimal `json:"later_gmv"`
	Change        decimal.Decimal `json:"change"`
	PercentChange Ratio           `json:"percent_change"`
}

type DeltaReport struct {
	Entries           []DeltaEntry    `json:"entries"`
	TotalChange       decimal.Decimal `json:"total_change"`
	DecliningCount    int             `json:"declining_count"`
	GrowingCount      int             `json:"growing_count"`
	MeanPercentChange Ratio           `json:"mean_percent_change"`
}
