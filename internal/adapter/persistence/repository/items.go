package repository

import (
	"crane_fmv/internal/domain/entities"
)

type assetItem struct {
	Manufacturer string  `dynamodbav:"manufacturer"`
	Model        string  `dynamodbav:"model"`
	Year         int     `dynamodbav:"year"`
	CapacityTons float64 `dynamodbav:"capacity_tons"`
	Hours        int     `dynamodbav:"hours"`
	Condition    string  `dynamodbav:"condition"`
	Location     string  `dynamodbav:"location"`
	SerialNumber string  `dynamodbav:"serial_number,omitempty"`
}

type valuationItem struct {
	ID               string    `dynamodbav:"id"`
	ReportID         string    `dynamodbav:"report_id"`
	AssetPosition    int       `dynamodbav:"asset_position"`
	AssetFingerprint string    `dynamodbav:"asset_fingerprint"`
	Asset            assetItem `dynamodbav:"asset"`
	Tier             string    `dynamodbav:"tier"`
	Revision         int       `dynamodbav:"revision"`
	EstimatedValue   string    `dynamodbav:"estimated_value"`
	BandLow          string    `dynamodbav:"band_low"`
	BandHigh         string    `dynamodbav:"band_high"`
	MarketSnapshot   string    `dynamodbav:"market_snapshot"`
	ComputedAt       string    `dynamodbav:"computed_at"`
}

type artifactItem struct {
	Key         string `dynamodbav:"key"`
	ContentType string `dynamodbav:"content_type"`
	SHA256      string `dynamodbav:"sha256"`
	Size        int64  `dynamodbav:"size"`
}

func toAssetItem(a entities.AssetDescriptor) assetItem {
	return assetItem{
		Manufacturer: a.Manufacturer,
		Model:        a.Model,
		Year:         a.Year,
		CapacityTons: a.CapacityTons,
		Hours:        a.Hours,
		Condition:    string(a.Condition),
		Location:     a.Location,
		SerialNumber: a.SerialNumber,
	}
}

func fromAssetItem(it assetItem) entities.AssetDescriptor {
	return entities.AssetDescriptor{
		Manufacturer: it.Manufacturer,
		Model:        it.Model,
		Year:         it.Year,
		CapacityTons: it.CapacityTons,
		Hours:        it.Hours,
		Condition:    entities.AssetCondition(it.Condition),
		Location:     it.Location,
		SerialNumber: it.SerialNumber,
	}
}

func toValuationItem(v entities.ValuationResult) valuationItem {
	return valuationItem{
		ID:               v.ID,
		ReportID:         v.ReportID,
		AssetPosition:    v.AssetPosition,
		AssetFingerprint: v.AssetFingerprint,
		Asset:            toAssetItem(v.Asset),
		Tier:             string(v.Tier),
		Revision:         v.Revision,
		EstimatedValue:   v.EstimatedValue.String(),
		BandLow:          v.Band.Low.String(),
		BandHigh:         v.Band.High.String(),
		MarketSnapshot:   v.MarketSnapshot,
		ComputedAt:       formatTime(v.ComputedAt),
	}
}

func fromValuationItem(it valuationItem) entities.ValuationResult {
	return entities.ValuationResult{
		ID:               it.ID,
		ReportID:         it.ReportID,
		AssetPosition:    it.AssetPosition,
		AssetFingerprint: it.AssetFingerprint,
		Asset:            fromAssetItem(it.Asset),
		Tier:             entities.ReportType(it.Tier),
		Revision:         it.Revision,
		EstimatedValue:   parseDecimal(it.EstimatedValue),
		Band: entities.ConfidenceBand{
			Low:  parseDecimal(it.BandLow),
			High: parseDecimal(it.BandHigh),
		},
		MarketSnapshot: it.MarketSnapshot,
		ComputedAt:     parseTime(it.ComputedAt),
	}
}
