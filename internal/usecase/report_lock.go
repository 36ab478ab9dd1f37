package usecase

import (
	"context"
	"sync"
)

// reportLocks serializes transitions per report id. Waiting for a busy report
// honours ctx; ids that nobody holds are dropped from the map.
type reportLocks struct {
	mu    sync.Mutex
	locks map[string]*reportLock
}

type reportLock struct {
	sem  chan struct{}
	refs int
}

func newReportLocks() *reportLocks {
	return &reportLocks{locks: map[string]*reportLock{}}
}

func (l *reportLocks) acquire(ctx context.Context, id string) (func(), error) {
	l.mu.Lock()
	lk, ok := l.locks[id]
	if !ok {
		lk = &reportLock{sem: make(chan struct{}, 1)}
		l.locks[id] = lk
	}
	lk.refs++
	l.mu.Unlock()

	select {
	case lk.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(id, lk)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lk.sem
			l.unref(id, lk)
		})
	}, nil
}

func (l *reportLocks) unref(id string, lk *reportLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lk.refs--
	if lk.refs == 0 {
		delete(l.locks, id)
	}
}

func (l *reportLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
