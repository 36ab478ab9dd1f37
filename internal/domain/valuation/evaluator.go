package valuation

import (
	"context"
	"fmt"
	"math"
	"time"

	"crane_fmv/internal/domain"
	"crane_fmv/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	annualDepreciation = 0.92
	minResidualFactor  = 0.15
	expectedHoursYear  = 1200
	hoursSensitivity   = 0.00002
	minHoursFactor     = 0.70
	maxHoursFactor     = 1.10
	defaultConcurrency = 8
)

var conditionFactors = map[entities.AssetCondition]float64{
	entities.ConditionExcellent: 1.10,
	entities.ConditionGood:      1.00,
	entities.ConditionFair:      0.85,
	entities.ConditionPoor:      0.65,
}

// Confidence half-width per tier, as a fraction of the estimate.
var tierBandWidth = map[entities.ReportType]float64{
	entities.ReportTypeSpotCheck:    0.15,
	entities.ReportTypeProfessional: 0.08,
	entities.ReportTypeFleet:        0.10,
}

// Evaluator prices crane assets against a market snapshot. It holds no
// per-call state and is safe for concurrent use.
type Evaluator struct {
	market      MarketData
	validate    *validator.Validate
	now         func() time.Time
	concurrency int
}

type Option func(*Evaluator)

func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) { e.now = now }
}

// WithConcurrency bounds how many assets of a fleet are scored at once.
func WithConcurrency(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

func NewEvaluator(market MarketData, opts ...Option) *Evaluator {
	e := &Evaluator{
		market:      market,
		validate:    newValidator(),
		now:         time.Now,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate values a single asset.
func (e *Evaluator) Evaluate(ctx context.Context, asset entities.AssetDescriptor, tier entities.ReportType) (entities.ValuationResult, error) {
	results, err := e.EvaluateAll(ctx, "", 1, []entities.AssetDescriptor{asset}, tier)
	if err != nil {
		return entities.ValuationResult{}, err
	}
	return results[0], nil
}

// EvaluateAll values every asset independently. Invalid input fails the whole
// batch with a ValidationError listing every invalid position; scoring
// failures are aggregated into a ValuationError. No asset is dropped.
func (e *Evaluator) EvaluateAll(ctx context.Context, reportID string, revision int, assets []entities.AssetDescriptor, tier entities.ReportType) ([]entities.ValuationResult, error) {
	if _, ok := tierBandWidth[tier]; !ok {
		return nil, domain.NewValidationError(domain.FieldIssue{Field: "type", Reason: fmt.Sprintf("unknown report type %q", tier)})
	}
	if len(assets) == 0 {
		return nil, domain.NewValidationError(domain.FieldIssue{Field: "assets", Reason: "at least one asset is required"})
	}

	normalized := append([]entities.AssetDescriptor(nil), assets...)
	if err := e.ValidateAll(normalized, tier); err != nil {
		return nil, err
	}

	snapshot, err := e.market.Snapshot(ctx)
	if err != nil {
		return nil, &domain.ValuationError{ReportID: reportID, Failures: []domain.AssetFailure{{Err: fmt.Errorf("market snapshot: %w", err)}}}
	}

	computedAt := e.now().UTC()
	results := make([]entities.ValuationResult, len(normalized))
	failures := make([]error, len(normalized))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i := range normalized {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				failures[i] = err
				return nil
			}
			res, err := e.score(snapshot, normalized[i], tier, computedAt)
			if err != nil {
				failures[i] = err
				return nil
			}
			res.ReportID = reportID
			res.AssetPosition = i + 1
			res.Revision = revision
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	var agg []domain.AssetFailure
	for i, ferr := range failures {
		if ferr != nil {
			agg = append(agg, domain.AssetFailure{Position: i + 1, Err: ferr})
		}
	}
	if len(agg) > 0 {
		return nil, &domain.ValuationError{ReportID: reportID, Failures: agg}
	}
	return results, nil
}

func (e *Evaluator) score(snapshot MarketSnapshot, asset entities.AssetDescriptor, tier entities.ReportType, computedAt time.Time) (entities.ValuationResult, error) {
	perTon, known := snapshot.valuePerTon(asset.Manufacturer)
	if !perTon.IsPositive() {
		return entities.ValuationResult{}, fmt.Errorf("no market value for manufacturer %q", asset.Manufacturer)
	}

	age := computedAt.Year() - asset.Year
	if age < 0 {
		age = 0
	}
	ageFactor := math.Max(minResidualFactor, math.Pow(annualDepreciation, float64(age)))

	expectedHours := float64(age) * expectedHoursYear
	if age == 0 {
		expectedHours = expectedHoursYear / 2
	}
	hoursFactor := 1 - (float64(asset.Hours)-expectedHours)*hoursSensitivity
	hoursFactor = math.Min(maxHoursFactor, math.Max(minHoursFactor, hoursFactor))

	conditionFactor, ok := conditionFactors[asset.Condition]
	if !ok {
		return entities.ValuationResult{}, fmt.Errorf("unknown condition %q", asset.Condition)
	}

	factor := ageFactor * hoursFactor * conditionFactor * snapshot.regionFactor(asset.Location)
	estimate := perTon.
		Mul(decimal.NewFromFloat(asset.CapacityTons)).
		Mul(decimal.NewFromFloat(factor)).
		Round(2)
	if estimate.LessThan(decimal.NewFromInt(1)) {
		estimate = decimal.NewFromInt(1)
	}

	width := tierBandWidth[tier]
	if !known {
		width += 0.05
	}
	if age > 20 {
		width += 0.03
	}
	if float64(asset.Hours) > 2*expectedHours {
		width += 0.02
	}
	w := decimal.NewFromFloat(width)
	one := decimal.NewFromInt(1)

	return entities.ValuationResult{
		ID:               uuid.NewString(),
		AssetFingerprint: asset.Fingerprint(),
		Asset:            asset,
		Tier:             tier,
		EstimatedValue:   estimate,
		Band: entities.ConfidenceBand{
			Low:  estimate.Mul(one.Sub(w)).RoundFloor(2),
			High: estimate.Mul(one.Add(w)).RoundCeil(2),
		},
		MarketSnapshot: snapshot.ID,
		ComputedAt:     computedAt,
	}, nil
}
