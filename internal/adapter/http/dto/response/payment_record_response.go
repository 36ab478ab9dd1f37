package response

import (
	"encoding/json"
	"time"

	"crane_fmv/internal/domain/entities"
)

type PaymentRecordResponse struct {
	ID            string    `json:"id"`
	ReportID      string    `json:"report_id"`
	Receipt       string    `json:"receipt"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Outcome       string    `json:"outcome"`
	Reason        string    `json:"reason,omitempty"`
	Amount        string    `json:"amount"`
	Date          time.Time `json:"date"`

	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	res := PaymentRecordResponse{
		ID:            p.ID,
		ReportID:      p.ReportID,
		Receipt:       p.Receipt,
		TransactionID: p.TransactionID,
		Outcome:       string(p.Outcome),
		Reason:        p.Reason,
		Amount:        money(p.Amount),
		Date:          p.Date,
	}
	if len(p.ProviderPayloadRaw) > 0 {
		var payload map[string]interface{}
		if err := json.Unmarshal(p.ProviderPayloadRaw, &payload); err == nil {
			res.ProviderPayload = payload
		}
	}
	return res
}

func FromPaymentRecords(in []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromPaymentRecord(p))
	}
	return out
}
