package interfaces

import (
	"context"

	"crane_fmv/internal/domain/entities"
)

// IReportRepository abstracts persistence for Report.
//
// Lookups return a zero Report (empty ID) when nothing matches. Save is a
// compare-and-set on the status: it writes r only when the stored report is
// still in expected, and returns a zero Report when another writer got there
// first.
type IReportRepository interface {
	Create(ctx context.Context, r entities.Report) (entities.Report, error)
	GetByID(ctx context.Context, id string) (entities.Report, error)
	Save(ctx context.Context, r entities.Report, expected entities.ReportStatus) (entities.Report, error)
}
