package interfaces

import (
	"context"

	"crane_fmv/internal/domain/entities"
)

// IValuationRepository keeps every ValuationResult ever produced. Results are
// appended, never updated, so superseded valuations remain available for audit.
type IValuationRepository interface {
	Append(ctx context.Context, results []entities.ValuationResult) error
	ListByReportID(ctx context.Context, reportID string) ([]entities.ValuationResult, error)
}
