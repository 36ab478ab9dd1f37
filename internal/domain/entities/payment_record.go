package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentOutcome is the result of asking the payment gate to authorize a receipt.
type PaymentOutcome string

const (
	PaymentOutcomeApproved PaymentOutcome = "approved"
	PaymentOutcomeRejected PaymentOutcome = "rejected"
)

// PaymentRecord keeps every payment gate answer for audit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (report_id-index): report_id
//
// ProviderPayloadRaw keeps the provider body (JSON) exactly as returned.
type PaymentRecord struct {
	ID            string          `json:"id"`
	ReportID      string          `json:"report_id"`
	Receipt       string          `json:"receipt"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Outcome       PaymentOutcome  `json:"outcome"`
	Reason        string          `json:"reason,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
