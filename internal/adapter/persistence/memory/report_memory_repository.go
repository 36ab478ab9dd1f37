package memory

import (
	"context"
	"errors"
	"sync"

	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
)

var ErrReportAlreadyExists = errors.New("report already exists")

// ReportMemoryRepository keeps reports in process memory. Values are cloned
// on the way in and out so callers never share slices with the store.
type ReportMemoryRepository struct {
	mu    sync.Mutex
	items *cache.Cache
}

var _ interfaces.IReportRepository = (*ReportMemoryRepository)(nil)

func NewReportMemoryRepository() *ReportMemoryRepository {
	return &ReportMemoryRepository{items: cache.New(cache.NoExpiration, 0)}
}

func (r *ReportMemoryRepository) Create(_ context.Context, rep entities.Report) (entities.Report, error) {
	if err := r.items.Add(rep.ID, rep.Clone(), cache.NoExpiration); err != nil {
		return entities.Report{}, ErrReportAlreadyExists
	}
	return rep.Clone(), nil
}

func (r *ReportMemoryRepository) GetByID(_ context.Context, id string) (entities.Report, error) {
	v, ok := r.items.Get(id)
	if !ok {
		return entities.Report{}, nil
	}
	return v.(entities.Report).Clone(), nil
}

func (r *ReportMemoryRepository) Save(_ context.Context, rep entities.Report, expected entities.ReportStatus) (entities.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.items.Get(rep.ID)
	if !ok || v.(entities.Report).Status != expected {
		return entities.Report{}, nil
	}
	r.items.Set(rep.ID, rep.Clone(), cache.NoExpiration)
	return rep.Clone(), nil
}
