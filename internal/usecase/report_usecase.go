package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"crane_fmv/internal/domain"
	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/domain/pricing"
	"crane_fmv/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultFleetMaxAssets = 250
	DefaultArtifactURLTTL = 15 * time.Minute
)

var allLiveStatuses = []entities.ReportStatus{
	entities.ReportStatusDraft,
	entities.ReportStatusPaymentPending,
	entities.ReportStatusPaid,
	entities.ReportStatusGenerated,
	entities.ReportStatusDelivered,
}

// Actor is the caller identity as handed over by the session layer. The
// account id is opaque and never authenticated here.
type Actor struct {
	AccountID string
	Admin     bool
}

// IReportUseCase is the report lifecycle:
//
//	Create -> RequestPayment -> ConfirmPayment -> Generate -> Deliver
//
// with Delete allowed from every non-deleted status.
type IReportUseCase interface {
	Create(ctx context.Context, reportType entities.ReportType, assets []entities.AssetDescriptor, owner string) (entities.Report, error)
	UpdateAssets(ctx context.Context, id string, actor Actor, assets []entities.AssetDescriptor) (entities.Report, error)
	RequestPayment(ctx context.Context, id string) (entities.Report, error)
	ConfirmPayment(ctx context.Context, id string, receipt string) (entities.Report, error)
	Revalue(ctx context.Context, id string) (entities.Report, error)
	Generate(ctx context.Context, id string) (entities.Report, error)
	Deliver(ctx context.Context, id string) (entities.Report, error)
	Delete(ctx context.Context, id string, actor Actor) (entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)
	ListValuations(ctx context.Context, id string) ([]entities.ValuationResult, error)
	ListPayments(ctx context.Context, id string) ([]entities.PaymentRecord, error)
	ArtifactURL(ctx context.Context, id string) (string, error)
}

// ReportDeps groups the collaborators of ReportUseCase.
type ReportDeps struct {
	Reports    interfaces.IReportRepository
	Valuations interfaces.IValuationRepository
	Payments   interfaces.IPaymentRecordRepository
	Gate       interfaces.IPaymentGate
	Generator  interfaces.IArtifactGenerator
	Evaluator  interfaces.IValuationEvaluator
	Pricing    *pricing.Table
	Metrics    interfaces.ILifecycleMetrics

	FleetMaxAssets int
	ArtifactURLTTL time.Duration
	Now            func() time.Time
}

type ReportUseCase struct {
	reports    interfaces.IReportRepository
	valuations interfaces.IValuationRepository
	payments   interfaces.IPaymentRecordRepository
	gate       interfaces.IPaymentGate
	generator  interfaces.IArtifactGenerator
	evaluator  interfaces.IValuationEvaluator
	pricing    *pricing.Table
	metrics    interfaces.ILifecycleMetrics

	fleetMaxAssets int
	urlTTL         time.Duration
	now            func() time.Time
	locks          *reportLocks
	log            *zap.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(deps ReportDeps) *ReportUseCase {
	u := &ReportUseCase{
		reports:        deps.Reports,
		valuations:     deps.Valuations,
		payments:       deps.Payments,
		gate:           deps.Gate,
		generator:      deps.Generator,
		evaluator:      deps.Evaluator,
		pricing:        deps.Pricing,
		metrics:        deps.Metrics,
		fleetMaxAssets: deps.FleetMaxAssets,
		urlTTL:         deps.ArtifactURLTTL,
		now:            deps.Now,
		locks:          newReportLocks(),
		log:            zap.L().Named("report.usecase"),
	}
	if u.metrics == nil {
		u.metrics = nopMetrics{}
	}
	if u.fleetMaxAssets <= 0 {
		u.fleetMaxAssets = DefaultFleetMaxAssets
	}
	if u.urlTTL <= 0 {
		u.urlTTL = DefaultArtifactURLTTL
	}
	if u.now == nil {
		u.now = time.Now
	}
	return u
}

func (u *ReportUseCase) Create(ctx context.Context, reportType entities.ReportType, assets []entities.AssetDescriptor, owner string) (entities.Report, error) {
	owner = strings.TrimSpace(owner)
	u.log.Info("create start", zap.String("type", string(reportType)), zap.Int("assets", len(assets)), zap.String("owner", owner))

	var issues []domain.FieldIssue
	if owner == "" {
		issues = append(issues, domain.FieldIssue{Field: "owner", Reason: "required"})
	}
	issues = append(issues, u.cardinalityIssues(reportType, assets)...)
	if len(issues) > 0 {
		err := domain.NewValidationError(issues...)
		u.log.Info("create rejected", zap.Error(err))
		return entities.Report{}, err
	}

	price, err := u.pricing.Lookup(reportType)
	if err != nil {
		return entities.Report{}, domain.NewValidationError(domain.FieldIssue{Field: "type", Reason: err.Error()})
	}

	now := u.now().UTC()
	r := entities.Report{
		ID:        uuid.NewString(),
		Type:      reportType,
		Price:     price,
		Status:    entities.ReportStatusDraft,
		Owner:     owner,
		Assets:    normalizeAssets(assets),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.reports.Create(ctx, r)
	if err != nil {
		u.log.Error("create failed", zap.String("report_id", r.ID), zap.Error(err))
		return entities.Report{}, err
	}
	u.metrics.ObserveTransition("create", "", string(entities.ReportStatusDraft), "ok")
	u.log.Info("create success", zap.String("report_id", created.ID), zap.String("price", created.Price.String()))
	return created, nil
}

func (u *ReportUseCase) UpdateAssets(ctx context.Context, id string, actor Actor, assets []entities.AssetDescriptor) (entities.Report, error) {
	return u.transition(ctx, id, "update_assets", func(ctx context.Context, r entities.Report) (entities.Report, bool, error) {
		if r.Status != entities.ReportStatusDraft {
			return r, false, invalidState(r, "update_assets", entities.ReportStatusDraft)
		}
		if err := authorize(r, actor); err != nil {
			return r, false, err
		}
		if issues := u.cardinalityIssues(r.Type, assets); len(issues) > 0 {
			return r, false, domain.NewValidationError(issues...)
		}
		r.Assets = normalizeAssets(assets)
		return r, true, nil
	})
}

func (u *ReportUseCase) RequestPayment(ctx context.Context, id string) (entities.Report, error) {
	return u.transition(ctx, id, "request_payment", func(ctx context.Context, r entities.Report) (entities.Report, bool, error) {
		switch r.Status {
		case entities.ReportStatusPaymentPending:
			u.log.Info("request_payment already pending", zap.String("report_id", r.ID))
			return r, false, nil
		case entities.ReportStatusDraft:
		default:
			return r, false, invalidState(r, "request_payment", entities.ReportStatusDraft, entities.ReportStatusPaymentPending)
		}

		assets := normalizeAssets(r.Assets)
		if err := u.evaluator.ValidateAll(assets, r.Type); err != nil {
			return r, false, err
		}

		now := u.now().UTC()
		r.Assets = assets
		r.Status = entities.ReportStatusPaymentPending
		r.PaymentRequestedAt = &now
		return r, true, nil
	})
}

// ConfirmPayment verifies receipt with the payment gate and values every
// asset. Only one caller performs the paid transition; callers arriving
// after it with the same receipt get the stored results back.
func (u *ReportUseCase) ConfirmPayment(ctx context.Context, id string, receipt string) (entities.Report, error) {
	receipt = strings.TrimSpace(receipt)
	if receipt == "" {
		return entities.Report{}, domain.NewValidationError(domain.FieldIssue{Field: "receipt", Reason: "required"})
	}

	return u.transition(ctx, id, "confirm_payment", func(ctx context.Context, r entities.Report) (entities.Report, bool, error) {
		if r.Status.HasResults() && r.PaymentReceipt == receipt {
			u.log.Info("confirm_payment already paid", zap.String("report_id", r.ID), zap.String("status", string(r.Status)))
			return r, false, nil
		}
		if r.Status != entities.ReportStatusPaymentPending {
			return r, false, invalidState(r, "confirm_payment", entities.ReportStatusPaymentPending)
		}

		if r.PaymentTransactionID != "" && r.PaymentReceipt != receipt {
			return r, false, domain.NewValidationError(domain.FieldIssue{
				Field:  "receipt",
				Reason: "report already has an approved payment under a different receipt",
			})
		}

		if r.PaymentTransactionID == "" {
			approved, err := u.authorizePayment(ctx, r, receipt)
			if err != nil {
				return r, false, err
			}
			saved, err := u.save(context.WithoutCancel(ctx), approved, entities.ReportStatusPaymentPending, "confirm_payment")
			if err != nil {
				return r, false, err
			}
			r = saved
		} else {
			u.log.Info("confirm_payment retrying valuation for approved payment",
				zap.String("report_id", r.ID), zap.String("transaction_id", r.PaymentTransactionID))
		}

		results, err := u.evaluate(ctx, r, r.ValuationRevision+1)
		if err != nil {
			return r, false, err
		}

		now := u.now().UTC()
		r.Results = results
		r.ValuationRevision++
		r.Status = entities.ReportStatusPaid
		r.PaidAt = &now
		return r, true, nil
	})
}

// Revalue replaces the result set of a paid report with a fresh valuation.
// The previous results stay in the valuation history.
func (u *ReportUseCase) Revalue(ctx context.Context, id string) (entities.Report, error) {
	return u.transition(ctx, id, "revalue", func(ctx context.Context, r entities.Report) (entities.Report, bool, error) {
		if r.Status != entities.ReportStatusPaid {
			return r, false, invalidState(r, "revalue", entities.ReportStatusPaid)
		}
		results, err := u.evaluate(ctx, r, r.ValuationRevision+1)
		if err != nil {
			return r, false, err
		}
		r.Results = results
		r.ValuationRevision++
		return r, true, nil
	})
}

func (u *ReportUseCase) Generate(ctx context.Context, id string) (entities.Report, error) {
	return u.transition(ctx, id, "generate", func(ctx context.Context, r entities.Report) (entities.Report, bool, error) {
		if r.Status != entities.ReportStatusPaid && r.Status != entities.ReportStatusGenerated {
			return r, false, invalidState(r, "generate", entities.ReportStatusPaid, entities.ReportStatusGenerated)
		}
		if u.generator == nil {
			return r, false, &domain.GenerationError{ReportID: r.ID, Err: errors.New("artifact generator not configured")}
		}

		handle, err := u.generator.Render(ctx, r.ID, r.Type, r.Results)
		if err != nil {
			u.log.Warn("generate render failed", zap.String("report_id", r.ID), zap.Error(err))
			return r, false, &domain.GenerationError{ReportID: r.ID, Err: err}
		}

		if r.Status == entities.ReportStatusGenerated {
			if r.Artifact != nil && *r.Artifact != handle {
				u.log.Warn("generate produced a different artifact for unchanged results",
					zap.String("report_id", r.ID), zap.String("stored", r.Artifact.SHA256), zap.String("rendered", handle.SHA256))
			}
			return r, false, nil
		}

		now := u.now().UTC()
		r.Artifact = &handle
		r.Status = entities.ReportStatusGenerated
		r.GeneratedAt = &now
		return r, true, nil
	})
}

func (u *ReportUseCase) Deliver(ctx context.Context, id string) (entities.Report, error) {
	return u.transition(ctx, id, "deliver", func(ctx context.Context, r entities.Report) (entities.Report, bool, error) {
		if r.Status != entities.ReportStatusGenerated {
			return r, false, invalidState(r, "deliver", entities.ReportStatusGenerated)
		}
		now := u.now().UTC()
		r.Status = entities.ReportStatusDelivered
		r.DeliveredAt = &now
		return r, true, nil
	})
}

// Delete hides a report's assets, results and artifact and keeps the audit
// shell. A report whose payment was approved but never delivered is flagged
// with RefundRequested; the refund itself happens elsewhere.
func (u *ReportUseCase) Delete(ctx context.Context, id string, actor Actor) (entities.Report, error) {
	return u.transition(ctx, id, "delete", func(ctx context.Context, r entities.Report) (entities.Report, bool, error) {
		if r.Status == entities.ReportStatusDeleted {
			return r, false, invalidState(r, "delete", allLiveStatuses...)
		}
		if err := authorize(r, actor); err != nil {
			return r, false, err
		}

		switch r.Status {
		case entities.ReportStatusPaymentPending, entities.ReportStatusPaid, entities.ReportStatusGenerated:
			if r.PaymentTransactionID != "" {
				r.RefundRequested = true
			}
		}

		now := u.now().UTC()
		r.Assets = nil
		r.Results = nil
		r.Artifact = nil
		r.Status = entities.ReportStatusDeleted
		r.DeletedAt = &now

		if r.RefundRequested {
			u.metrics.RefundSignaled(string(r.Type))
			u.log.Warn("delete refund requested",
				zap.String("report_id", r.ID),
				zap.String("transaction_id", r.PaymentTransactionID),
				zap.String("price", r.Price.String()))
		}
		return r, true, nil
	})
}

func (u *ReportUseCase) GetByID(ctx context.Context, id string) (entities.Report, error) {
	return u.load(ctx, id)
}

func (u *ReportUseCase) ListValuations(ctx context.Context, id string) ([]entities.ValuationResult, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status == entities.ReportStatusDeleted {
		return nil, invalidState(r, "list_valuations", allLiveStatuses...)
	}
	return u.valuations.ListByReportID(ctx, r.ID)
}

func (u *ReportUseCase) ListPayments(ctx context.Context, id string) ([]entities.PaymentRecord, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.payments.ListByReportID(ctx, r.ID)
}

func (u *ReportUseCase) ArtifactURL(ctx context.Context, id string) (string, error) {
	r, err := u.load(ctx, id)
	if err != nil {
		return "", err
	}
	if r.Status != entities.ReportStatusGenerated && r.Status != entities.ReportStatusDelivered || r.Artifact == nil {
		return "", invalidState(r, "artifact_url", entities.ReportStatusGenerated, entities.ReportStatusDelivered)
	}
	if u.generator == nil {
		return "", &domain.GenerationError{ReportID: r.ID, Err: errors.New("artifact generator not configured")}
	}
	url, err := u.generator.DownloadURL(ctx, *r.Artifact, u.urlTTL)
	if err != nil {
		return "", &domain.GenerationError{ReportID: r.ID, Err: err}
	}
	return url, nil
}

// transition runs step inside the report's critical section. step returns the
// report to persist and whether it changed; unchanged reports are returned as
// loaded without a write.
func (u *ReportUseCase) transition(
	ctx context.Context,
	id string,
	operation string,
	step func(ctx context.Context, r entities.Report) (entities.Report, bool, error),
) (entities.Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Report{}, domain.NewValidationError(domain.FieldIssue{Field: "id", Reason: "required"})
	}

	release, err := u.locks.acquire(ctx, id)
	if err != nil {
		return entities.Report{}, err
	}
	defer release()

	u.log.Info(operation+" start", zap.String("report_id", id))
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Report{}, err
	}
	from := current.Status

	next, changed, err := step(ctx, current.Clone())
	if err != nil {
		u.metrics.ObserveTransition(operation, string(from), string(from), outcomeOf(err))
		u.log.Info(operation+" failed", zap.String("report_id", id), zap.String("status", string(from)), zap.Error(err))
		return entities.Report{}, err
	}
	if !changed {
		u.metrics.ObserveTransition(operation, string(from), string(from), "noop")
		return next, nil
	}

	// Once the guard has passed the write is not abandoned because the caller
	// went away.
	persistCtx := context.WithoutCancel(ctx)

	if next.Status.HasResults() && len(next.Results) > 0 && next.ValuationRevision != current.ValuationRevision {
		if err := u.valuations.Append(persistCtx, next.Results); err != nil {
			u.log.Error(operation+" valuation history append failed", zap.String("report_id", id), zap.Error(err))
			return entities.Report{}, err
		}
	}

	saved, err := u.save(persistCtx, next, from, operation)
	if err != nil {
		return entities.Report{}, err
	}
	u.metrics.ObserveTransition(operation, string(from), string(saved.Status), "ok")
	u.log.Info(operation+" success", zap.String("report_id", id), zap.String("from", string(from)), zap.String("status", string(saved.Status)))
	return saved, nil
}

func (u *ReportUseCase) load(ctx context.Context, id string) (entities.Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Report{}, domain.NewValidationError(domain.FieldIssue{Field: "id", Reason: "required"})
	}
	r, err := u.reports.GetByID(ctx, id)
	if err != nil {
		return entities.Report{}, err
	}
	if r.ID == "" {
		return entities.Report{}, &domain.NotFoundError{ReportID: id}
	}
	return r, nil
}

func (u *ReportUseCase) save(ctx context.Context, r entities.Report, expected entities.ReportStatus, operation string) (entities.Report, error) {
	r.UpdatedAt = u.now().UTC()
	saved, err := u.reports.Save(ctx, r, expected)
	if err != nil {
		u.log.Error(operation+" save failed", zap.String("report_id", r.ID), zap.Error(err))
		return entities.Report{}, err
	}
	if saved.ID != "" {
		return saved, nil
	}

	// Lost a race with another process writing the same report.
	actual, err := u.load(ctx, r.ID)
	if err != nil {
		return entities.Report{}, err
	}
	return entities.Report{}, invalidState(actual, operation, expected)
}

// authorizePayment asks the gate about receipt and records the answer. On
// approval it returns r carrying the receipt and transaction id, still
// payment_pending.
func (u *ReportUseCase) authorizePayment(ctx context.Context, r entities.Report, receipt string) (entities.Report, error) {
	if u.gate == nil {
		return r, fmt.Errorf("%w: payment gate not configured", domain.ErrPaymentGateUnavailable)
	}

	u.log.Info("confirm_payment calling payment gate", zap.String("report_id", r.ID), zap.String("price", r.Price.String()))
	auth, err := u.gate.Authorize(ctx, r.ID, r.Price, receipt)
	if err != nil {
		u.log.Warn("confirm_payment payment gate failed", zap.String("report_id", r.ID), zap.Error(err))
		return r, fmt.Errorf("%w: %w", domain.ErrPaymentGateUnavailable, err)
	}

	record := entities.PaymentRecord{
		ID:                 uuid.NewString(),
		ReportID:           r.ID,
		Receipt:            receipt,
		TransactionID:      auth.TransactionID,
		Amount:             r.Price,
		Date:               u.now().UTC(),
		ProviderPayloadRaw: auth.ProviderResponse,
	}
	if auth.Approved {
		record.Outcome = entities.PaymentOutcomeApproved
	} else {
		record.Outcome = entities.PaymentOutcomeRejected
		record.Reason = auth.Reason
	}
	if _, err := u.payments.Create(context.WithoutCancel(ctx), record); err != nil {
		u.log.Error("confirm_payment payment record failed", zap.String("report_id", r.ID), zap.String("outcome", string(record.Outcome)), zap.Error(err))
	}

	if !auth.Approved {
		reason := auth.Reason
		if reason == "" {
			reason = "declined by payment gate"
		}
		return r, &domain.PaymentRejectedError{ReportID: r.ID, Reason: reason}
	}

	r.PaymentReceipt = receipt
	r.PaymentTransactionID = auth.TransactionID
	if r.PaymentTransactionID == "" {
		r.PaymentTransactionID = receipt
	}
	u.log.Info("confirm_payment payment approved", zap.String("report_id", r.ID), zap.String("transaction_id", r.PaymentTransactionID))
	return r, nil
}

func (u *ReportUseCase) evaluate(ctx context.Context, r entities.Report, revision int) ([]entities.ValuationResult, error) {
	started := time.Now()
	results, err := u.evaluator.EvaluateAll(ctx, r.ID, revision, r.Assets, r.Type)
	u.metrics.ObserveValuation(string(r.Type), len(r.Assets), time.Since(started), err)
	if err != nil {
		u.log.Warn("valuation failed", zap.String("report_id", r.ID), zap.Int("revision", revision), zap.Error(err))
		var verr *domain.ValuationError
		if errors.As(err, &verr) || errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, &domain.ValuationError{ReportID: r.ID, Failures: []domain.AssetFailure{{Err: err}}}
	}
	if len(results) != len(r.Assets) {
		return nil, &domain.ValuationError{ReportID: r.ID, Failures: []domain.AssetFailure{{
			Err: fmt.Errorf("evaluator returned %d results for %d assets", len(results), len(r.Assets)),
		}}}
	}
	return results, nil
}

func (u *ReportUseCase) cardinalityIssues(reportType entities.ReportType, assets []entities.AssetDescriptor) []domain.FieldIssue {
	switch reportType {
	case entities.ReportTypeSpotCheck, entities.ReportTypeProfessional:
		if len(assets) != 1 {
			return []domain.FieldIssue{{Field: "assets", Reason: fmt.Sprintf("%s reports take exactly one asset, got %d", reportType, len(assets))}}
		}
	case entities.ReportTypeFleet:
		if len(assets) < 1 || len(assets) > u.fleetMaxAssets {
			return []domain.FieldIssue{{Field: "assets", Reason: fmt.Sprintf("fleet reports take 1 to %d assets, got %d", u.fleetMaxAssets, len(assets))}}
		}
	default:
		return []domain.FieldIssue{{Field: "type", Reason: fmt.Sprintf("unknown report type %q", reportType)}}
	}
	return nil
}

func normalizeAssets(assets []entities.AssetDescriptor) []entities.AssetDescriptor {
	out := make([]entities.AssetDescriptor, len(assets))
	for i, a := range assets {
		out[i] = a.Normalize()
	}
	return out
}

func authorize(r entities.Report, actor Actor) error {
	if actor.Admin {
		return nil
	}
	if strings.TrimSpace(actor.AccountID) != "" && strings.TrimSpace(actor.AccountID) == r.Owner {
		return nil
	}
	return fmt.Errorf("%w: account %q does not own report %s", domain.ErrForbidden, actor.AccountID, r.ID)
}

func invalidState(r entities.Report, operation string, expected ...entities.ReportStatus) error {
	return &domain.InvalidStateError{ReportID: r.ID, Operation: operation, Expected: expected, Actual: r.Status}
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation_error"
	case errors.Is(err, domain.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, domain.ErrPaymentRejected):
		return "payment_rejected"
	case errors.Is(err, domain.ErrPaymentGateUnavailable):
		return "gate_error"
	case errors.Is(err, domain.ErrValuation):
		return "valuation_error"
	case errors.Is(err, domain.ErrGeneration):
		return "generation_error"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveTransition(string, string, string, string)   {}
func (nopMetrics) ObserveValuation(string, int, time.Duration, error) {}
func (nopMetrics) RefundSignaled(string)                              {}
