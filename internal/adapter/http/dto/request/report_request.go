package request

import (
	"strings"

	"crane_fmv/internal/domain/entities"
)

// AssetRequest is one crane as submitted by the client. Field rules are
// checked by the lifecycle so that every problem is reported at once.
type AssetRequest struct {
	Manufacturer string  `json:"manufacturer" example:"Liebherr"`
	Model        string  `json:"model" example:"LTM 1100-4.2"`
	Year         int     `json:"year" example:"2015"`
	CapacityTons float64 `json:"capacity_tons" example:"100"`
	Hours        int     `json:"hours" example:"12000"`
	Condition    string  `json:"condition" example:"good"`
	Location     string  `json:"location" example:"US-TX"`
	SerialNumber string  `json:"serial_number,omitempty" example:"WLT1100-4512"`
}

func (a AssetRequest) ToDescriptor() entities.AssetDescriptor {
	return entities.AssetDescriptor{
		Manufacturer: a.Manufacturer,
		Model:        a.Model,
		Year:         a.Year,
		CapacityTons: a.CapacityTons,
		Hours:        a.Hours,
		Condition:    entities.AssetCondition(a.Condition),
		Location:     a.Location,
		SerialNumber: a.SerialNumber,
	}
}

func toDescriptors(in []AssetRequest) []entities.AssetDescriptor {
	out := make([]entities.AssetDescriptor, len(in))
	for i, a := range in {
		out[i] = a.ToDescriptor()
	}
	return out
}

type CreateReportRequest struct {
	Type   string         `json:"type" binding:"required" example:"spot_check"`
	Assets []AssetRequest `json:"assets"`
}

// ResolveType accepts the canonical tier names plus the usual spellings
// ("Spot-Check", "spotcheck"). Unknown names are passed through unchanged so
// the lifecycle can reject them with a field issue.
func (r CreateReportRequest) ResolveType() entities.ReportType {
	if t, ok := entities.ParseReportType(r.Type); ok {
		return t
	}
	return entities.ReportType(strings.TrimSpace(r.Type))
}

func (r CreateReportRequest) ResolveAssets() []entities.AssetDescriptor {
	return toDescriptors(r.Assets)
}

type UpdateAssetsRequest struct {
	Assets []AssetRequest `json:"assets"`
}

func (r UpdateAssetsRequest) ResolveAssets() []entities.AssetDescriptor {
	return toDescriptors(r.Assets)
}

// ConfirmPaymentRequest carries the payment provider receipt. For Mercado Pago
// this is the payment id.
type ConfirmPaymentRequest struct {
	Receipt string `json:"receipt" binding:"required" example:"1319283741"`
}
