package request

import "github.com/shopspring/decimal"

type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"995.00"`
}
