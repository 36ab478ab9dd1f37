package interfaces

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// PaymentAuthorization is the gate's answer for one receipt. A declined
// receipt is Approved=false with a Reason; transport or provider failures are
// returned as errors instead.
type PaymentAuthorization struct {
	Approved         bool
	TransactionID    string
	Reason           string
	ProviderResponse json.RawMessage
}

// IPaymentGate abstracts external payment providers (e.g. Mercado Pago).
//
// Authorize verifies that receipt settles price for reportID.
type IPaymentGate interface {
	Authorize(ctx context.Context, reportID string, price decimal.Decimal, receipt string) (PaymentAuthorization, error)
}
