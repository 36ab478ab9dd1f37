package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConfidenceBand brackets an estimate: Low <= EstimatedValue <= High.
type ConfidenceBand struct {
	Low  decimal.Decimal `json:"low"`
	High decimal.Decimal `json:"high"`
}

// ValuationResult is produced once per asset by the evaluator and never edited.
// A re-evaluation yields a new result with a higher Revision; old ones stay in
// the valuation history.
type ValuationResult struct {
	ID               string          `json:"id"`
	ReportID         string          `json:"report_id"`
	AssetPosition    int             `json:"asset_position"`
	AssetFingerprint string          `json:"asset_fingerprint"`
	Asset            AssetDescriptor `json:"asset"`
	Tier             ReportType      `json:"tier"`
	Revision         int             `json:"revision"`
	EstimatedValue   decimal.Decimal `json:"estimated_value"`
	Band             ConfidenceBand  `json:"confidence_band"`
	MarketSnapshot   string          `json:"market_snapshot"`
	ComputedAt       time.Time       `json:"computed_at"`
}

// Brackets reports whether the band contains the estimate.
func (r ValuationResult) Brackets() bool {
	return r.Band.Low.LessThanOrEqual(r.EstimatedValue) && r.EstimatedValue.LessThanOrEqual(r.Band.High)
}
