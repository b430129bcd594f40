package navigation

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds the pool when no limit is configured.
const DefaultWorkers = 4

// Pool runs searches on a bounded set of goroutines.
type Pool struct {
	group    errgroup.Group
	limit    int
	inFlight atomic.Int64
	started  atomic.Uint64
}

// NewPool creates a pool running at most workers searches at once.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	p := &Pool{limit: workers}
	p.group.SetLimit(workers)
	return p
}

// TryGo starts fn if a worker is free and reports whether it did.
func (p *Pool) TryGo(fn func()) bool {
	p.inFlight.Add(1)
	ok := p.group.TryGo(func() error {
		defer p.inFlight.Add(-1)
		fn()
		return nil
	})
	if !ok {
		p.inFlight.Add(-1)
		return false
	}
	p.started.Add(1)
	return true
}

// Wait blocks until every started search has finished.
func (p *Pool) Wait() {
	_ = p.group.Wait()
}

// InFlight returns the number of running searches.
func (p *Pool) InFlight() int {
	return int(p.inFlight.Load())
}

// Started returns how many searches the pool has ever started.
func (p *Pool) Started() uint64 {
	return p.started.Load()
}

func (p *Pool) Limit() int {
	return p.limit
}
