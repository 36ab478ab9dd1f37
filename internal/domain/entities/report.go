package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReportType is the product tier of a valuation report.
type ReportType string

const (
	ReportTypeSpotCheck    ReportType = "spot_check"
	ReportTypeProfessional ReportType = "professional"
	ReportTypeFleet        ReportType = "fleet"
)

var ReportTypes = []ReportType{ReportTypeSpotCheck, ReportTypeProfessional, ReportTypeFleet}

func ParseReportType(raw string) (ReportType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	switch ReportType(normalized) {
	case ReportTypeSpotCheck, "spotcheck":
		return ReportTypeSpotCheck, true
	case ReportTypeProfessional:
		return ReportTypeProfessional, true
	case ReportTypeFleet:
		return ReportTypeFleet, true
	}
	return "", false
}

// RequiresSerialNumber tells whether assets of this tier must carry a serial.
func (t ReportType) RequiresSerialNumber() bool {
	return t == ReportTypeProfessional || t == ReportTypeFleet
}

// ReportStatus represents the lifecycle of a valuation report.
//
//	draft -> payment_pending -> paid -> generated -> delivered
//
// deleted is reachable from every other status.
type ReportStatus string

const (
	ReportStatusDraft          ReportStatus = "draft"
	ReportStatusPaymentPending ReportStatus = "payment_pending"
	ReportStatusPaid           ReportStatus = "paid"
	ReportStatusGenerated      ReportStatus = "generated"
	ReportStatusDelivered      ReportStatus = "delivered"
	ReportStatusDeleted        ReportStatus = "deleted"
)

// HasResults reports whether a report in this status must carry a full result set.
func (s ReportStatus) HasResults() bool {
	switch s {
	case ReportStatusPaid, ReportStatusGenerated, ReportStatusDelivered:
		return true
	}
	return false
}

// ArtifactHandle points to a rendered report document.
type ArtifactHandle struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	SHA256      string `json:"sha256"`
	Size        int64  `json:"size"`
}

// Report is the priced valuation report persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Price is snapshotted from the pricing table at creation and never rewritten.
// Results is aligned with Assets (Results[i] values Assets[i]) and is only
// populated while the status is paid, generated or delivered.
type Report struct {
	ID                string            `json:"id"`
	Type              ReportType        `json:"type"`
	Price             decimal.Decimal   `json:"price"`
	Status            ReportStatus      `json:"status"`
	Owner             string            `json:"owner"`
	Assets            []AssetDescriptor `json:"assets,omitempty"`
	Results           []ValuationResult `json:"results,omitempty"`
	ValuationRevision int               `json:"valuation_revision"`

	PaymentReceipt       string `json:"payment_receipt,omitempty"`
	PaymentTransactionID string `json:"payment_transaction_id,omitempty"`
	RefundRequested      bool   `json:"refund_requested"`

	Artifact *ArtifactHandle `json:"artifact,omitempty"`

	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	PaymentRequestedAt *time.Time `json:"payment_requested_at,omitempty"`
	PaidAt             *time.Time `json:"paid_at,omitempty"`
	GeneratedAt        *time.Time `json:"generated_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty"`
}

// Clone returns a copy that shares no slices or pointers with r.
func (r Report) Clone() Report {
	out := r
	if r.Assets != nil {
		out.Assets = append([]AssetDescriptor(nil), r.Assets...)
	}
	if r.Results != nil {
		out.Results = append([]ValuationResult(nil), r.Results...)
	}
	if r.Artifact != nil {
		a := *r.Artifact
		out.Artifact = &a
	}
	out.PaymentRequestedAt = cloneTime(r.PaymentRequestedAt)
	out.PaidAt = cloneTime(r.PaidAt)
	out.GeneratedAt = cloneTime(r.GeneratedAt)
	out.DeliveredAt = cloneTime(r.DeliveredAt)
	out.DeletedAt = cloneTime(r.DeletedAt)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
