package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"crane_fmv/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const statusApproved = "approved"

// paymentReader is the part of payment.Client the gate needs.
type paymentReader interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway verifies that a receipt (a Mercado Pago payment id) is an
// approved payment covering the report price.
type MercadoPagoGateway struct {
	client   paymentReader
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IPaymentGate = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	log := zap.L().Named("payments.gateway")
	if mock {
		log.Info("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if strings.TrimSpace(accessToken) == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), log: log}, nil
}

func (g *MercadoPagoGateway) Authorize(ctx context.Context, reportID string, price decimal.Decimal, receipt string) (interfaces.PaymentAuthorization, error) {
	if g != nil && g.mockMode {
		return g.authorizeMock(reportID, price, receipt)
	}
	if g == nil || g.client == nil {
		return interfaces.PaymentAuthorization{}, ErrMercadoPagoGatewayNotConfigured
	}

	g.log.Info("authorize start", zap.String("report_id", reportID), zap.String("receipt", receipt))

	paymentID, err := strconv.Atoi(strings.TrimSpace(receipt))
	if err != nil || paymentID <= 0 {
		return declined("receipt is not a Mercado Pago payment id", nil), nil
	}

	resp, err := g.client.Get(ctx, paymentID)
	if err != nil {
		if isGatewayNotFound(err) {
			g.log.Info("authorize payment not found", zap.String("report_id", reportID), zap.Int("payment_id", paymentID))
			return declined("payment not found", nil), nil
		}
		g.log.Warn("authorize sdk get failed", zap.String("report_id", reportID), zap.Error(err))
		return interfaces.PaymentAuthorization{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PaymentAuthorization{}, err
	}

	if reason := checkPayment(resp, reportID, price); reason != "" {
		g.log.Info("authorize declined", zap.String("report_id", reportID), zap.Int("payment_id", resp.ID), zap.String("reason", reason))
		return declined(reason, raw), nil
	}

	g.log.Info("authorize success", zap.String("report_id", reportID), zap.Int("payment_id", resp.ID))
	return interfaces.PaymentAuthorization{
		Approved:         true,
		TransactionID:    strconv.Itoa(resp.ID),
		ProviderResponse: raw,
	}, nil
}

// checkPayment returns why resp does not settle price for reportID, or "".
func checkPayment(resp *payment.Response, reportID string, price decimal.Decimal) string {
	if resp == nil {
		return "empty payment response"
	}
	if !strings.EqualFold(resp.Status, statusApproved) {
		if resp.StatusDetail != "" {
			return fmt.Sprintf("payment status %s (%s)", resp.Status, resp.StatusDetail)
		}
		return fmt.Sprintf("payment status %s", resp.Status)
	}
	// The reference binds a payment to exactly one report.
	ref := strings.TrimSpace(resp.ExternalReference)
	if ref == "" {
		return "payment carries no report reference"
	}
	if ref != reportID {
		return fmt.Sprintf("payment references %s, not this report", ref)
	}
	paid := decimal.NewFromFloat(resp.TransactionAmount)
	if paid.LessThan(price) {
		return fmt.Sprintf("payment amount %s does not cover price %s", paid.StringFixed(2), price.StringFixed(2))
	}
	return ""
}

func (g *MercadoPagoGateway) authorizeMock(reportID string, price decimal.Decimal, receipt string) (interfaces.PaymentAuthorization, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{
		"id":                 "mock-" + receipt,
		"external_reference": reportID,
		"transaction_amount": price.String(),
		"date_created":       now,
	}

	if strings.HasPrefix(strings.ToLower(receipt), "reject") {
		resp["status"] = "rejected"
		resp["status_detail"] = "cc_rejected_other_reason"
		b, err := json.Marshal(resp)
		if err != nil {
			return interfaces.PaymentAuthorization{}, err
		}
		g.log.Info("mock authorize declined", zap.String("report_id", reportID), zap.String("receipt", receipt))
		return declined("payment status rejected (cc_rejected_other_reason)", b), nil
	}

	resp["status"] = statusApproved
	resp["status_detail"] = "accredited"
	resp["date_approved"] = now
	b, err := json.Marshal(resp)
	if err != nil {
		return interfaces.PaymentAuthorization{}, err
	}
	g.log.Info("mock authorize success", zap.String("report_id", reportID), zap.String("receipt", receipt))
	return interfaces.PaymentAuthorization{Approved: true, TransactionID: "mock-" + receipt, ProviderResponse: b}, nil
}

func declined(reason string, raw json.RawMessage) interfaces.PaymentAuthorization {
	return interfaces.PaymentAuthorization{Approved: false, Reason: reason, ProviderResponse: raw}
}

func isGatewayNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"status\":404") || strings.Contains(msg, "not_found")
}
