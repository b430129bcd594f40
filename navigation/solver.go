package navigation

import (
	"time"
)

// DefaultBudget is how long one dispatch cycle may spend starting searches.
const DefaultBudget = time.Millisecond

// Solver starts searches on its pool, one dispatch cycle at a time.
type Solver struct {
	pool     *Pool
	budget   time.Duration
	tieBreak uint32
	now      func() time.Time
}

type SolverOption func(*Solver)

// WithBudget sets the per-cycle dispatch budget.
func WithBudget(d time.Duration) SolverOption {
	return func(s *Solver) {
		if d > 0 {
			s.budget = d
		}
	}
}

// WithTieBreak sets the maximum tie-breaker perturbation. Zero disables it.
func WithTieBreak(max uint32) SolverOption {
	return func(s *Solver) { s.tieBreak = max }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) SolverOption {
	return func(s *Solver) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSolver(pool *Pool, opts ...SolverOption) *Solver {
	if pool == nil {
		pool = NewPool(DefaultWorkers)
	}
	s := &Solver{
		pool:     pool,
		budget:   DefaultBudget,
		tieBreak: DefaultTieBreak,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply changes solver settings in place. Searches already running keep the
// settings they started with.
func (s *Solver) Apply(opts ...SolverOption) {
	for _, opt := range opts {
		opt(s)
	}
}

// Start launches one search on the pool. It returns false when every worker is busy.
func (s *Solver) Start(g Graph, req Request) (*Search, bool) {
	search := newSearch(req)
	opts := SearchOptions{TieBreak: s.tieBreak}
	if !s.pool.TryGo(func() { search.run(g, opts) }) {
		return nil, false
	}
	return search, true
}

// Wait blocks until every started search has finished.
func (s *Solver) Wait() {
	s.pool.Wait()
}

func (s *Solver) Pool() *Pool {
	return s.pool
}

func (s *Solver) Budget() time.Duration {
	return s.budget
}

func (s *Solver) TieBreak() uint32 {
	return s.tieBreak
}

// Dispatched pairs a started search with the key it belongs to.
type Dispatched[K comparable] struct {
	Key    K
	Search *Search
}

// Dispatch drains q and starts one search per request in queue order. The
// first request always starts if a worker is free. Once the budget measured
// from the start of the batch is spent, or the pool is full, the remaining
// requests go back to the front of q for the next cycle. It returns the
// started searches and how many requests were deferred.
func Dispatch[K comparable](s *Solver, g Graph, q *RequestQueue[K]) ([]Dispatched[K], int) {
	pending := q.Drain()
	if len(pending) == 0 {
		return nil, 0
	}
	start := s.now()
	started := make([]Dispatched[K], 0, len(pending))
	for i, p := range pending {
		if i > 0 && s.now().Sub(start) > s.budget {
			q.Requeue(pending[i:])
			return started, len(pending) - i
		}
		search, ok := s.Start(g, p.Request)
		if !ok {
			q.Requeue(pending[i:])
			return started, len(pending) - i
		}
		started = append(started, Dispatched[K]{Key: p.Key, Search: search})
	}
	return started, 0
}
