package navigation

import "container/heap"

// Request asks for a path between two cells. Seed drives the tie-breaker;
// Generation is carried through untouched so callers can spot superseded results.
type Request struct {
	From       Cell
	To         Cell
	Seed       uint64
	Generation uint64
}

// Result is the outcome of one search. Cost is the unperturbed cost of Path.
type Result struct {
	Path       []Cell
	Cost       uint32
	Found      bool
	Expanded   int
	Generation uint64
}

// SearchOptions tune one search. TieBreak is the maximum perturbation added
// to each edge; zero makes the search return a true minimum-cost path.
type SearchOptions struct {
	TieBreak uint32
}

type openItem struct {
	cell  Cell
	g     uint32
	h     uint32
	seq   uint64
	index int
}

type openSet []*openItem

func (o openSet) Len() int { return len(o) }

// Less orders by f, then by h so nodes closer to the goal win, then by push
// order. The last key keeps the search deterministic for a given request.
func (o openSet) Less(i, j int) bool {
	fi, fj := o[i].g+o[i].h, o[j].g+o[j].h
	if fi != fj {
		return fi < fj
	}
	if o[i].h != o[j].h {
		return o[i].h < o[j].h
	}
	return o[i].seq < o[j].seq
}

func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}

func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}

func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*o = old[:n-1]
	return item
}

type visit struct {
	g      uint32
	cost   uint32
	parent Cell
	root   bool
	closed bool
}

// FindPath runs A* over g. The search always runs to the goal or until the
// reachable graph is exhausted.
func FindPath(g Graph, req Request, opts SearchOptions) Result {
	res := Result{Generation: req.Generation}
	if req.From == req.To {
		res.Path = []Cell{req.From}
		res.Found = true
		return res
	}

	// An edge into a cell exists only if the cell has one back out, so a goal
	// without neighbours can never be entered.
	if len(g.Neighbors(req.To)) == 0 {
		return res
	}

	visits := map[Cell]*visit{req.From: {root: true}}
	open := &openSet{}
	heap.Init(open)
	var seq uint64
	heap.Push(open, &openItem{cell: req.From, h: Octile(req.From, req.To), seq: seq})

	for open.Len() > 0 {
		cur := heap.Pop(open).(*openItem)
		cv := visits[cur.cell]
		if cv.closed || cur.g > cv.g {
			continue
		}
		cv.closed = true
		res.Expanded++

		if cur.cell == req.To {
			res.Path, res.Cost = reconstruct(visits, req.To)
			res.Found = true
			return res
		}

		for _, mv := range g.Neighbors(cur.cell) {
			weight := mv.Cost + TieBreaker(mv.Destination, req.Seed, opts.TieBreak)
			tentative := cur.g + weight
			nv, seen := visits[mv.Destination]
			if seen && (nv.closed || tentative >= nv.g) {
				continue
			}
			if !seen {
				nv = &visit{}
				visits[mv.Destination] = nv
			}
			nv.g = tentative
			nv.cost = mv.Cost
			nv.parent = cur.cell
			seq++
			heap.Push(open, &openItem{
				cell: mv.Destination,
				g:    tentative,
				h:    Octile(mv.Destination, req.To),
				seq:  seq,
			})
		}
	}
	return res
}

func reconstruct(visits map[Cell]*visit, goal Cell) ([]Cell, uint32) {
	path := make([]Cell, 0, 32)
	var cost uint32
	cur := goal
	for {
		v := visits[cur]
		path = append(path, cur)
		if v.root {
			break
		}
		cost += v.cost
		cur = v.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, cost
}
