package domain

import "github.com/shopspring/decimal"

// AttritionEntry representa um vendedor do período anterior e seu GMV no período seguinte
type AttritionEntry struct {
	SellerID   string          `json:"seller_id"`
	EarlierGMV decimal.Decimal `json:"earlier_gmv"`
	LaterGMV   decimal.Decimal `json:"later_gmv"`
	Lost       bool            `json:"lost"`
}

type AttritionReport struct {
	Entries            []AttritionEntry `json:"entries"`
	Lost               []AttritionEntry `json:"lost"`
	TotalLostGMV       decimal.Decimal  `json:"total_lost_gmv"`
	EarlierSellerCount int              `json:"earlier_seller_count"`
	LaterSellerCount   int              `json:"later_seller_count"`
	LostSellerCount    int              `json:"lost_seller_count"`
}
