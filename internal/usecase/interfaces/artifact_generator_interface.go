package interfaces

import (
	"context"
	"time"

	"crane_fmv/internal/domain/entities"
)

// IArtifactGenerator renders a paid report into a deliverable document.
//
// Render must be idempotent: the same results always produce the same handle.
type IArtifactGenerator interface {
	Render(ctx context.Context, reportID string, reportType entities.ReportType, results []entities.ValuationResult) (entities.ArtifactHandle, error)
	DownloadURL(ctx context.Context, handle entities.ArtifactHandle, ttl time.Duration) (string, error)
}
