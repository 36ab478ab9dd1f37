package memory

import (
	"context"
	"sort"
	"sync"

	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
)

// ValuationMemoryRepository is an append-only valuation history keyed by report.
type ValuationMemoryRepository struct {
	mu    sync.Mutex
	items *cache.Cache
}

var _ interfaces.IValuationRepository = (*ValuationMemoryRepository)(nil)

func NewValuationMemoryRepository() *ValuationMemoryRepository {
	return &ValuationMemoryRepository{items: cache.New(cache.NoExpiration, 0)}
}

func (r *ValuationMemoryRepository) Append(_ context.Context, results []entities.ValuationResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range results {
		var list []entities.ValuationResult
		if v, ok := r.items.Get(res.ReportID); ok {
			list = v.([]entities.ValuationResult)
		}
		list = append(append([]entities.ValuationResult(nil), list...), res)
		r.items.Set(res.ReportID, list, cache.NoExpiration)
	}
	return nil
}

// ListByReportID returns results ordered by revision, then asset position.
func (r *ValuationMemoryRepository) ListByReportID(_ context.Context, reportID string) ([]entities.ValuationResult, error) {
	v, ok := r.items.Get(reportID)
	if !ok {
		return []entities.ValuationResult{}, nil
	}
	out := append([]entities.ValuationResult(nil), v.([]entities.ValuationResult)...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Revision != out[j].Revision {
			return out[i].Revision < out[j].Revision
		}
		return out[i].AssetPosition < out[j].AssetPosition
	})
	return out, nil
}
