package response

import (
	"crane_fmv/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PriceResponse struct {
	Type  string `json:"type"`
	Price string `json:"price"`
}

type PricingResponse struct {
	Currency string          `json:"currency"`
	Prices   []PriceResponse `json:"prices"`
}

// FromPrices lists the tiers in their catalogue order.
func FromPrices(prices map[entities.ReportType]decimal.Decimal) PricingResponse {
	res := PricingResponse{Currency: "USD", Prices: make([]PriceResponse, 0, len(prices))}
	for _, rt := range entities.ReportTypes {
		p, ok := prices[rt]
		if !ok {
			continue
		}
		res.Prices = append(res.Prices, PriceResponse{Type: string(rt), Price: money(p)})
	}
	return res
}
