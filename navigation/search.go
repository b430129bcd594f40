package navigation

import "context"

// Search is the handle of one in-flight search. The result is written once by
// the worker and read by whoever polls after done is closed.
type Search struct {
	req    Request
	done   chan struct{}
	result Result
}

func newSearch(req Request) *Search {
	return &Search{req: req, done: make(chan struct{})}
}

// Request returns the request this search is solving.
func (s *Search) Request() Request {
	return s.req
}

// Poll returns the result if the search has finished. It never blocks.
func (s *Search) Poll() (Result, bool) {
	select {
	case <-s.done:
		return s.result, true
	default:
		return Result{}, false
	}
}

// Wait blocks until the search finishes or ctx is done.
func (s *Search) Wait(ctx context.Context) (Result, error) {
	select {
	case <-s.done:
		return s.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

func (s *Search) run(g Graph, opts SearchOptions) {
	defer close(s.done)
	s.result = FindPath(g, s.req, opts)
}

// Resolved returns a finished search holding res. Used for requests that are
// answered without running A*.
func Resolved(req Request, res Result) *Search {
	s := newSearch(req)
	res.Generation = req.Generation
	s.result = res
	close(s.done)
	return s
}
