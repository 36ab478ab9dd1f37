package response

import (
	"time"

	"crane_fmv/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type AssetResponse struct {
	Position     int     `json:"position"`
	Manufacturer string  `json:"manufacturer"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	CapacityTons float64 `json:"capacity_tons"`
	Hours        int     `json:"hours"`
	Condition    string  `json:"condition"`
	Location     string  `json:"location"`
	SerialNumber string  `json:"serial_number,omitempty"`
}

type ValuationResponse struct {
	ID               string    `json:"id"`
	AssetPosition    int       `json:"asset_position"`
	AssetFingerprint string    `json:"asset_fingerprint"`
	Tier             string    `json:"tier"`
	Revision         int       `json:"revision"`
	EstimatedValue   string    `json:"estimated_value"`
	BandLow          string    `json:"confidence_low"`
	BandHigh         string    `json:"confidence_high"`
	MarketSnapshot   string    `json:"market_snapshot"`
	ComputedAt       time.Time `json:"computed_at"`
}

type ArtifactResponse struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	SHA256      string `json:"sha256"`
	Size        int64  `json:"size"`
}

type ReportResponse struct {
	ID                   string              `json:"id"`
	Type                 string              `json:"type"`
	Price                string              `json:"price"`
	Status               string              `json:"status"`
	Owner                string              `json:"owner"`
	Assets               []AssetResponse     `json:"assets"`
	Results              []ValuationResponse `json:"results,omitempty"`
	TotalEstimatedValue  string              `json:"total_estimated_value,omitempty"`
	ValuationRevision    int                 `json:"valuation_revision"`
	PaymentTransactionID string              `json:"payment_transaction_id,omitempty"`
	RefundRequested      bool                `json:"refund_requested"`
	Artifact             *ArtifactResponse   `json:"artifact,omitempty"`

	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	PaymentRequestedAt *time.Time `json:"payment_requested_at,omitempty"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`
	GeneratedAt        *time.Time `json:"generated_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty"`
}

type ArtifactURLResponse struct {
	ReportID string `json:"report_id"`
	URL      string `json:"url"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func FromAsset(position int, a entities.AssetDescriptor) AssetResponse {
	return AssetResponse{
		Position:     position,
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

func FromValuation(v entities.ValuationResult) ValuationResponse {
	return ValuationResponse{
		ID:               v.ID,
		AssetPosition:    v.AssetPosition,
		AssetFingerprint: v.AssetFingerprint,
		Tier:             string(v.Tier),
		Revision:         v.Revision,
		EstimatedValue:   money(v.EstimatedValue),
		BandLow:          money(v.Band.Low),
		BandHigh:         money(v.Band.High),
		MarketSnapshot:   v.MarketSnapshot,
		ComputedAt:       v.ComputedAt,
	}
}

func FromValuations(in []entities.ValuationResult) []ValuationResponse {
	out := make([]ValuationResponse, 0, len(in))
	for _, v := range in {
		out = append(out, FromValuation(v))
	}
	return out
}

func FromReport(r entities.Report) ReportResponse {
	res := ReportResponse{
		ID:                   r.ID,
		Type:                 string(r.Type),
		Price:                money(r.Price),
		Status:               string(r.Status),
		Owner:                r.Owner,
		Assets:               make([]AssetResponse, 0, len(r.Assets)),
		ValuationRevision:    r.ValuationRevision,
		PaymentTransactionID: r.PaymentTransactionID,
		RefundRequested:      r.RefundRequested,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
		PaymentRequestedAt:   r.PaymentRequestedAt,
		PaidAt:               r.PaidAt,
		GeneratedAt:          r.GeneratedAt,
		DeliveredAt:          r.DeliveredAt,
		DeletedAt:            r.DeletedAt,
	}
	for i, a := range r.Assets {
		res.Assets = append(res.Assets, FromAsset(i+1, a))
	}
	if len(r.Results) > 0 {
		res.Results = FromValuations(r.Results)
		total := decimal.Zero
		for _, v := range r.Results {
			total = total.Add(v.EstimatedValue)
		}
		res.TotalEstimatedValue = money(total)
	}
	if r.Artifact != nil {
		res.Artifact = &ArtifactResponse{
			Key:         r.Artifact.Key,
			ContentType: r.Artifact.ContentType,
			SHA256:      r.Artifact.SHA256,
			Size:        r.Artifact.Size,
		}
	}
	return res
}
