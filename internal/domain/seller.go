package domain

import "github.com/shopspring/decimal"

// SellerPeriodRecord representa um vendedor em um período, já agregado
type SellerPeriodRecord struct {
	SellerID string          `json:"seller_id"`
	GMV      decimal.Decimal `json:"gmv"`
	Clicks   int64           `json:"clicks"`
}
