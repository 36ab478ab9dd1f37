package usecase

import (
	"context"
	"errors"
	"testing"

	"crane_fmv/internal/domain"
	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/domain/pricing"
	mock_interfaces "crane_fmv/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newMockedUseCase(t *testing.T, ctrl *gomock.Controller) (*ReportUseCase, *mock_interfaces.MockIReportRepository, *mock_interfaces.MockIValuationEvaluator, *mock_interfaces.MockILifecycleMetrics) {
	t.Helper()
	table, err := pricing.NewTable(nil)
	if err != nil {
		t.Fatalf("pricing table: %v", err)
	}
	repo := mock_interfaces.NewMockIReportRepository(ctrl)
	evaluator := mock_interfaces.NewMockIValuationEvaluator(ctrl)
	metrics := mock_interfaces.NewMockILifecycleMetrics(ctrl)
	uc := NewReportUseCase(ReportDeps{
		Reports:    repo,
		Valuations: mock_interfaces.NewMockIValuationRepository(ctrl),
		Payments:   mock_interfaces.NewMockIPaymentRecordRepository(ctrl),
		Gate:       mock_interfaces.NewMockIPaymentGate(ctrl),
		Generator:  mock_interfaces.NewMockIArtifactGenerator(ctrl),
		Evaluator:  evaluator,
		Pricing:    table,
		Metrics:    metrics,
	})
	return uc, repo, evaluator, metrics
}

func TestReportUseCase_Create_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, _, _ := newMockedUseCase(t, ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Report{}, errors.New("db"))

	_, err := uc.Create(context.Background(), entities.ReportTypeSpotCheck, []entities.AssetDescriptor{liebherr()}, "acct-1")
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestReportUseCase_Create_SnapshotsPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, _, metrics := newMockedUseCase(t, ctrl)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Report) (entities.Report, error) {
		if !r.Price.Equal(decimal.NewFromInt(995)) {
			t.Fatalf("expected price 995, got %s", r.Price)
		}
		if r.Status != entities.ReportStatusDraft || r.ID == "" {
			t.Fatalf("unexpected report: %+v", r)
		}
		return r, nil
	})
	metrics.EXPECT().ObserveTransition("create", "", "draft", "ok")

	if _, err := uc.Create(context.Background(), entities.ReportTypeProfessional, []entities.AssetDescriptor{liebherr()}, "acct-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReportUseCase_GetByID_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, _, _ := newMockedUseCase(t, ctrl)

	repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Report{}, errors.New("db"))

	_, err := uc.Deliver(context.Background(), "rep-1")
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestReportUseCase_SaveLosesRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, _, _ := newMockedUseCase(t, ctrl)

	stored := entities.Report{ID: "rep-1", Type: entities.ReportTypeSpotCheck, Status: entities.ReportStatusGenerated, Owner: "acct-1"}
	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(stored, nil),
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.ReportStatusGenerated).Return(entities.Report{}, nil),
		repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Report{ID: "rep-1", Status: entities.ReportStatusDeleted}, nil),
	)

	_, err := uc.Deliver(context.Background(), "rep-1")
	var stateErr *domain.InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
	if stateErr.Actual != entities.ReportStatusDeleted {
		t.Fatalf("expected actual status deleted, got %s", stateErr.Actual)
	}
}

func TestReportUseCase_RequestPayment_ValidationKeepsDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, evaluator, metrics := newMockedUseCase(t, ctrl)

	stored := entities.Report{
		ID:     "rep-1",
		Type:   entities.ReportTypeFleet,
		Status: entities.ReportStatusDraft,
		Owner:  "acct-1",
		Assets: []entities.AssetDescriptor{fleetAsset(1), fleetAsset(2)},
	}
	verr := domain.NewValidationError(domain.FieldIssue{Position: 2, Field: "serial_number", Reason: "required for fleet reports"})

	repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(stored, nil)
	evaluator.EXPECT().ValidateAll(gomock.Any(), entities.ReportTypeFleet).Return(verr)
	metrics.EXPECT().ObserveTransition("request_payment", "draft", "draft", "validation_error")

	_, err := uc.RequestPayment(context.Background(), "rep-1")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestReportUseCase_ConfirmPayment_EvaluatorResultCountMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	table, _ := pricing.NewTable(nil)
	repo := mock_interfaces.NewMockIReportRepository(ctrl)
	evaluator := mock_interfaces.NewMockIValuationEvaluator(ctrl)
	payments := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
	gate := &fakeGate{}
	uc := NewReportUseCase(ReportDeps{
		Reports:   repo,
		Payments:  payments,
		Gate:      gate,
		Evaluator: evaluator,
		Pricing:   table,
	})

	stored := entities.Report{
		ID:     "rep-1",
		Type:   entities.ReportTypeFleet,
		Price:  decimal.NewFromInt(1495),
		Status: entities.ReportStatusPaymentPending,
		Owner:  "acct-1",
		Assets: []entities.AssetDescriptor{fleetAsset(1), fleetAsset(2)},
	}
	repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(stored, nil)
	payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{}, errors.New("db"))
	repo.EXPECT().Save(gomock.Any(), gomock.Any(), entities.ReportStatusPaymentPending).DoAndReturn(
		func(_ context.Context, r entities.Report, _ entities.ReportStatus) (entities.Report, error) {
			if r.PaymentTransactionID != "tx-rcpt-1" || r.Status != entities.ReportStatusPaymentPending {
				t.Fatalf("unexpected intermediate save: %+v", r)
			}
			return r, nil
		})
	evaluator.EXPECT().EvaluateAll(gomock.Any(), "rep-1", 1, gomock.Any(), entities.ReportTypeFleet).
		Return([]entities.ValuationResult{{ID: "v1", AssetPosition: 1}}, nil)

	_, err := uc.ConfirmPayment(context.Background(), "rep-1", "rcpt-1")
	if !errors.Is(err, domain.ErrValuation) {
		t.Fatalf("expected ErrValuation, got %v", err)
	}
	if gate.calls.Load() != 1 {
		t.Fatalf("expected a single gate call, got %d", gate.calls.Load())
	}
}

func TestReportUseCase_ConfirmPayment_NoGate(t *testing.T) {
	table, _ := pricing.NewTable(nil)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIReportRepository(ctrl)
	uc := NewReportUseCase(ReportDeps{Reports: repo, Pricing: table})

	repo.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.Report{ID: "rep-1", Status: entities.ReportStatusPaymentPending}, nil)

	_, err := uc.ConfirmPayment(context.Background(), "rep-1", "rcpt-1")
	if !errors.Is(err, domain.ErrPaymentGateUnavailable) {
		t.Fatalf("expected ErrPaymentGateUnavailable, got %v", err)
	}
}
