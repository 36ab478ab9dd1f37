package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crane_fmv/internal/adapter/http/handlers/mocks"
	"crane_fmv/internal/domain"
	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const testAdminToken = "s3cret"

func newReportRouter(t *testing.T) (*gin.Engine, *mocks.MockIReportUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc, testAdminToken, time.Second)

	r := gin.New()
	reports := r.Group("/v1/reports")
	reports.POST("", h.CreateReport)
	reports.GET("/:id", h.GetReport)
	reports.PUT("/:id/assets", h.UpdateAssets)
	reports.POST("/:id/payment-intent", h.RequestPayment)
	reports.POST("/:id/payment", h.ConfirmPayment)
	reports.POST("/:id/revalue", h.Revalue)
	reports.POST("/:id/generate", h.Generate)
	reports.POST("/:id/deliver", h.Deliver)
	reports.GET("/:id/artifact", h.GetArtifactURL)
	reports.DELETE("/:id", h.DeleteReport)
	reports.GET("/:id/valuations", h.ListValuations)
	reports.GET("/:id/payments", h.ListPayments)
	return r, uc
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func draftReport() entities.Report {
	return entities.Report{
		ID:     "rep-1",
		Type:   entities.ReportTypeSpotCheck,
		Price:  decimal.NewFromInt(250),
		Status: entities.ReportStatusDraft,
		Owner:  "acct-1",
		Assets: []entities.AssetDescriptor{{Manufacturer: "Liebherr", Model: "LTM 1100-4.2", Year: 2015, CapacityTons: 100, Hours: 12000, Condition: entities.ConditionGood, Location: "US-TX"}},
	}
}

const createBody = `{"type":"Spot-Check","assets":[{"manufacturer":"Liebherr","model":"LTM 1100-4.2","year":2015,"capacity_tons":100,"hours":12000,"condition":"good","location":"US-TX"}]}`

func TestReportHandler_CreateReport(t *testing.T) {
	t.Run("missing account", func(t *testing.T) {
		r, _ := newReportRouter(t)
		w := do(r, http.MethodPost, "/v1/reports", createBody, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newReportRouter(t)
		w := do(r, http.MethodPost, "/v1/reports", "{", map[string]string{HeaderAccountID: "acct-1"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing type", func(t *testing.T) {
		r, _ := newReportRouter(t)
		w := do(r, http.MethodPost, "/v1/reports", `{"assets":[]}`, map[string]string{HeaderAccountID: "acct-1"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error carries issues", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().Create(gomock.Any(), entities.ReportTypeFleet, gomock.Any(), "acct-1").
			Return(entities.Report{}, domain.NewValidationError(domain.FieldIssue{Field: "assets", Reason: "fleet reports take 1 to 250 assets, got 0"}))

		w := do(r, http.MethodPost, "/v1/reports", `{"type":"fleet","assets":[]}`, map[string]string{HeaderAccountID: "acct-1"})
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		body := decodeBody(t, w)
		details, ok := body["details"].([]any)
		if body["code"] != "VALIDATION_FAILED" || !ok || len(details) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().Create(gomock.Any(), entities.ReportTypeSpotCheck, gomock.Any(), "acct-1").
			DoAndReturn(func(_ context.Context, _ entities.ReportType, assets []entities.AssetDescriptor, _ string) (entities.Report, error) {
				if len(assets) != 1 || assets[0].Manufacturer != "Liebherr" {
					t.Fatalf("unexpected assets: %+v", assets)
				}
				return draftReport(), nil
			})

		w := do(r, http.MethodPost, "/v1/reports", createBody, map[string]string{HeaderAccountID: "acct-1"})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["id"] != "rep-1" || body["status"] != "draft" || body["price"] != "250.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReportHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", &domain.NotFoundError{ReportID: "rep-1"}, http.StatusNotFound, "REPORT_NOT_FOUND"},
		{"invalid state", &domain.InvalidStateError{ReportID: "rep-1", Operation: "deliver", Expected: []entities.ReportStatus{entities.ReportStatusGenerated}, Actual: entities.ReportStatusPaid}, http.StatusConflict, "INVALID_STATE"},
		{"forbidden", fmt.Errorf("%w: nope", domain.ErrForbidden), http.StatusForbidden, "FORBIDDEN"},
		{"payment rejected", &domain.PaymentRejectedError{ReportID: "rep-1", Reason: "cc_rejected_insufficient_amount"}, http.StatusPaymentRequired, "PAYMENT_REJECTED"},
		{"gate unavailable", fmt.Errorf("%w: %w", domain.ErrPaymentGateUnavailable, context.DeadlineExceeded), http.StatusBadGateway, "PAYMENT_GATE_UNAVAILABLE"},
		{"valuation", &domain.ValuationError{ReportID: "rep-1", Failures: []domain.AssetFailure{{Position: 1, Err: errors.New("no market")}}}, http.StatusServiceUnavailable, "VALUATION_FAILED"},
		{"generation", &domain.GenerationError{ReportID: "rep-1", Err: errors.New("s3 down")}, http.StatusBadGateway, "GENERATION_FAILED"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newReportRouter(t)
			uc.EXPECT().Deliver(gomock.Any(), "rep-1").Return(entities.Report{}, tc.err)

			w := do(r, http.MethodPost, "/v1/reports/rep-1/deliver", "", nil)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			body := decodeBody(t, w)
			if body["code"] != tc.code {
				t.Fatalf("expected code %s, got %v", tc.code, body["code"])
			}
			if tc.name == "internal" && bytes.Contains(w.Body.Bytes(), []byte("boom")) {
				t.Fatalf("internal error leaked: %s", w.Body.String())
			}
		})
	}
}

func TestReportHandler_InvalidStateDetails(t *testing.T) {
	r, uc := newReportRouter(t)
	uc.EXPECT().Generate(gomock.Any(), "rep-1").Return(entities.Report{}, &domain.InvalidStateError{
		ReportID: "rep-1", Operation: "generate",
		Expected: []entities.ReportStatus{entities.ReportStatusPaid, entities.ReportStatusGenerated},
		Actual:   entities.ReportStatusDraft,
	})

	w := do(r, http.MethodPost, "/v1/reports/rep-1/generate", "", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	details, _ := decodeBody(t, w)["details"].(map[string]any)
	if details["actual"] != "draft" || details["operation"] != "generate" {
		t.Fatalf("unexpected details: %s", w.Body.String())
	}
}

func TestReportHandler_ConfirmPayment(t *testing.T) {
	t.Run("receipt required", func(t *testing.T) {
		r, _ := newReportRouter(t)
		w := do(r, http.MethodPost, "/v1/reports/rep-1/payment", `{}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("applies call timeout", func(t *testing.T) {
		r, uc := newReportRouter(t)
		paid := draftReport()
		paid.Status = entities.ReportStatusPaid
		paid.Results = []entities.ValuationResult{{ID: "v1", AssetPosition: 1, EstimatedValue: decimal.NewFromInt(100)}}

		uc.EXPECT().ConfirmPayment(gomock.Any(), "rep-1", "rcpt-1").
			DoAndReturn(func(ctx context.Context, _ string, _ string) (entities.Report, error) {
				if _, ok := ctx.Deadline(); !ok {
					t.Fatalf("expected a deadline on the context")
				}
				return paid, nil
			})

		w := do(r, http.MethodPost, "/v1/reports/rep-1/payment", `{"receipt":"rcpt-1"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "paid" || body["total_estimated_value"] != "100.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestReportHandler_Transitions(t *testing.T) {
	report := draftReport()

	t.Run("payment intent", func(t *testing.T) {
		r, uc := newReportRouter(t)
		pending := report
		pending.Status = entities.ReportStatusPaymentPending
		uc.EXPECT().RequestPayment(gomock.Any(), "rep-1").Return(pending, nil)
		w := do(r, http.MethodPost, "/v1/reports/rep-1/payment-intent", "", nil)
		if w.Code != http.StatusOK || decodeBody(t, w)["status"] != "payment_pending" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("revalue", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().Revalue(gomock.Any(), "rep-1").Return(report, nil)
		if w := do(r, http.MethodPost, "/v1/reports/rep-1/revalue", "", nil); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "rep-1").Return(report, nil)
		w := do(r, http.MethodGet, "/v1/reports/rep-1", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		assets, _ := decodeBody(t, w)["assets"].([]any)
		if len(assets) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("update assets passes actor", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().UpdateAssets(gomock.Any(), "rep-1", usecase.Actor{AccountID: "acct-1"}, gomock.Len(2)).Return(report, nil)
		body := `{"assets":[{"manufacturer":"A"},{"manufacturer":"B"}]}`
		if w := do(r, http.MethodPut, "/v1/reports/rep-1/assets", body, map[string]string{HeaderAccountID: "acct-1"}); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReportHandler_DeleteActor(t *testing.T) {
	t.Run("admin token", func(t *testing.T) {
		r, uc := newReportRouter(t)
		deleted := draftReport()
		deleted.Status = entities.ReportStatusDeleted
		deleted.RefundRequested = true
		uc.EXPECT().Delete(gomock.Any(), "rep-1", usecase.Actor{Admin: true}).Return(deleted, nil)

		w := do(r, http.MethodDelete, "/v1/reports/rep-1", "", map[string]string{HeaderAdminToken: testAdminToken})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if decodeBody(t, w)["refund_requested"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("wrong admin token is an ordinary caller", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().Delete(gomock.Any(), "rep-1", usecase.Actor{AccountID: "acct-2"}).
			Return(entities.Report{}, fmt.Errorf("%w: not owner", domain.ErrForbidden))

		w := do(r, http.MethodDelete, "/v1/reports/rep-1", "", map[string]string{HeaderAdminToken: "guess", HeaderAccountID: "acct-2"})
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestReportHandler_Listings(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valuations", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().ListValuations(gomock.Any(), "rep-1").Return([]entities.ValuationResult{
			{ID: "v1", Revision: 1, AssetPosition: 1, EstimatedValue: decimal.NewFromInt(10)},
			{ID: "v2", Revision: 2, AssetPosition: 1, EstimatedValue: decimal.NewFromInt(11)},
		}, nil)
		w := do(r, http.MethodGet, "/v1/reports/rep-1/valuations", "", nil)
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 2 || body[1]["revision"] != float64(2) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("payments", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().ListPayments(gomock.Any(), "rep-1").Return([]entities.PaymentRecord{
			{ID: "p1", ReportID: "rep-1", Outcome: entities.PaymentOutcomeRejected, Reason: "declined", Amount: decimal.NewFromInt(250), Date: now},
		}, nil)
		w := do(r, http.MethodGet, "/v1/reports/rep-1/payments", "", nil)
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 1 || body[0]["outcome"] != "rejected" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("artifact url", func(t *testing.T) {
		r, uc := newReportRouter(t)
		uc.EXPECT().ArtifactURL(gomock.Any(), "rep-1").Return("https://artifacts.local/reports/rep-1/x.html", nil)
		w := do(r, http.MethodGet, "/v1/reports/rep-1/artifact", "", nil)
		if w.Code != http.StatusOK || decodeBody(t, w)["url"] != "https://artifacts.local/reports/rep-1/x.html" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})
}
