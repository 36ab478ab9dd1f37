package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"crane_fmv/internal/adapter/http/handlers/mocks"
	"crane_fmv/internal/domain"
	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPricingRouter(t *testing.T) (*gin.Engine, *mocks.MockIPricingUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	uc := mocks.NewMockIPricingUseCase(gomock.NewController(t))
	h := NewPricingHandler(uc, testAdminToken)

	r := gin.New()
	r.GET("/v1/pricing", h.GetPricing)
	r.PUT("/v1/pricing/:type", h.UpdatePrice)
	return r, uc
}

func TestPricingHandler_GetPricing(t *testing.T) {
	r, uc := newPricingRouter(t)
	uc.EXPECT().Prices(gomock.Any()).Return(map[entities.ReportType]decimal.Decimal{
		entities.ReportTypeSpotCheck:    decimal.NewFromInt(250),
		entities.ReportTypeProfessional: decimal.NewFromInt(995),
		entities.ReportTypeFleet:        decimal.NewFromInt(1495),
	})

	w := do(r, http.MethodGet, "/v1/pricing", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	prices, _ := decodeBody(t, w)["prices"].([]any)
	if len(prices) != 3 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPricingHandler_UpdatePrice(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPricingRouter(t)
		w := do(r, http.MethodPut, "/v1/pricing/fleet", `{"price":`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non admin", func(t *testing.T) {
		r, uc := newPricingRouter(t)
		uc.EXPECT().UpdatePrice(gomock.Any(), usecase.Actor{}, entities.ReportTypeFleet, gomock.Any()).
			Return(nil, fmt.Errorf("%w: admin only", domain.ErrForbidden))
		w := do(r, http.MethodPut, "/v1/pricing/fleet", `{"price":"1600"}`, nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		r, uc := newPricingRouter(t)
		uc.EXPECT().UpdatePrice(gomock.Any(), usecase.Actor{Admin: true}, entities.ReportType("gold"), gomock.Any()).
			Return(nil, domain.NewValidationError(domain.FieldIssue{Field: "type", Reason: "unknown report type"}))
		w := do(r, http.MethodPut, "/v1/pricing/gold", `{"price":10}`, map[string]string{HeaderAdminToken: testAdminToken})
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPricingRouter(t)
		uc.EXPECT().UpdatePrice(gomock.Any(), usecase.Actor{Admin: true}, entities.ReportTypeSpotCheck, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ usecase.Actor, _ entities.ReportType, price decimal.Decimal) (map[entities.ReportType]decimal.Decimal, error) {
				if !price.Equal(decimal.RequireFromString("299.99")) {
					t.Fatalf("unexpected price %s", price)
				}
				return map[entities.ReportType]decimal.Decimal{entities.ReportTypeSpotCheck: price}, nil
			})
		w := do(r, http.MethodPut, "/v1/pricing/Spot-Check", `{"price":"299.99"}`, map[string]string{HeaderAdminToken: testAdminToken})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
