package memory

import (
	"context"
	"sort"
	"sync"

	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
)

type PaymentRecordMemoryRepository struct {
	mu    sync.Mutex
	items *cache.Cache
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordMemoryRepository)(nil)

func NewPaymentRecordMemoryRepository() *PaymentRecordMemoryRepository {
	return &PaymentRecordMemoryRepository{items: cache.New(cache.NoExpiration, 0)}
}

func (r *PaymentRecordMemoryRepository) Create(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []entities.PaymentRecord
	if v, ok := r.items.Get(p.ReportID); ok {
		list = v.([]entities.PaymentRecord)
	}
	list = append(append([]entities.PaymentRecord(nil), list...), p)
	r.items.Set(p.ReportID, list, cache.NoExpiration)
	return p, nil
}

func (r *PaymentRecordMemoryRepository) ListByReportID(_ context.Context, reportID string) ([]entities.PaymentRecord, error) {
	v, ok := r.items.Get(reportID)
	if !ok {
		return []entities.PaymentRecord{}, nil
	}
	out := append([]entities.PaymentRecord(nil), v.([]entities.PaymentRecord)...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
