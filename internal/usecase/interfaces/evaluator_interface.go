package interfaces

import (
	"context"

	"crane_fmv/internal/domain/entities"
)

// IValuationEvaluator is the scoring capability used by the lifecycle.
type IValuationEvaluator interface {
	ValidateAll(assets []entities.AssetDescriptor, tier entities.ReportType) error
	EvaluateAll(ctx context.Context, reportID string, revision int, assets []entities.AssetDescriptor, tier entities.ReportType) ([]entities.ValuationResult, error)
}
