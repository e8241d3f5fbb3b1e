package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/internal/logging"
	"github.com/sirupsen/logrus"
)

// FindPath searches the cheapest path from start to goal.
//
// Implementation:
//   - Stage 1: Validate graph, start and goal.
//   - Stage 2: Seed the open heap with start (g=0, f=h(start)).
//   - Stage 3: Pop the lowest f; equal f goes to the entry pushed first.
//     Stale entries (superseded by a cheaper push) are skipped.
//   - Stage 4: On popping goal, rebuild the path from the connection records.
//   - Stage 5: Otherwise close the node and relax its outgoing connections. A
//     strictly cheaper g reopens a closed node.
//
// Behavior highlights:
//   - start == goal returns a single-node path with cost 0.
//   - With an admissible heuristic the path is optimal; reopening keeps it
//     optimal for inconsistent ones too. Graphs implementing Scaler supply the
//     world-to-cost scale that keeps the built-in heuristics admissible.
//   - Exhausting the open set yields ErrNoPath, never a partial path.
//
// Complexity:
//   - Time O((V + E) log E), Space O(V + E) (lazy decrease-key).
func FindPath(g Graph, start, goal int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.IsNodeValid(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	if !g.IsNodeValid(goal) {
		return nil, fmt.Errorf("%w: %d", ErrGoalNotFound, goal)
	}
	if sc, ok := g.(Scaler); ok && !cfg.scaleSet {
		if v := sc.HeuristicScale(); v >= 0 && !math.IsInf(v, 0) {
			cfg.HeuristicScale = v
		}
	}

	s := &search{g: g, opts: cfg, goal: goal, records: make(map[int]*record)}
	res, err := s.run(start)

	log := logging.Logger(cfg.Ctx).WithFields(logrus.Fields{
		"start":    start,
		"goal":     goal,
		"expanded": s.expanded,
	})
	if err != nil {
		log.WithError(err).Debug("astar: search failed")
		return nil, err
	}
	log.WithField("cost", res.Cost).Debug("astar: path found")

	return res, nil
}

// record is the best known way to reach a node.
type record struct {
	g   float64
	via *core.Connection // nil for start
	seq uint64           // seq of the heap entry that is still current
}

// search holds the mutable state of one FindPath call.
type search struct {
	g        Graph
	opts     Options
	goal     int
	records  map[int]*record
	open     openHeap
	seq      uint64
	expanded int
}

func (s *search) heuristic(idx int) float64 {
	p, q := s.g.NodePos(idx), s.g.NodePos(s.goal)

	return s.opts.HeuristicScale * s.opts.Heuristic(math.Abs(q[0]-p[0]), math.Abs(q[1]-p[1]))
}

// push records g/via for idx and queues a fresh heap entry.
func (s *search) push(idx int, g float64, via *core.Connection) {
	s.seq++
	s.records[idx] = &record{g: g, via: via, seq: s.seq}
	heap.Push(&s.open, &entry{node: idx, g: g, f: g + s.heuristic(idx), seq: s.seq})
}

func (s *search) run(start int) (*Result, error) {
	s.push(start, 0, nil)

	for s.open.Len() > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return nil, s.opts.Ctx.Err()
		default:
		}

		cur := heap.Pop(&s.open).(*entry)
		rec := s.records[cur.node]
		if rec.seq != cur.seq {
			continue // superseded by a cheaper push
		}
		if cur.node == s.goal {
			return s.reconstruct(rec), nil
		}

		// Closed: the record's entry is consumed; only a cheaper g reopens it.
		rec.seq = 0
		s.expanded++
		s.opts.OnExpand(cur.node, rec.g)

		for _, c := range s.g.NodeConnections(cur.node) {
			ng := rec.g + c.Cost()
			if prev, seen := s.records[c.To()]; seen && ng >= prev.g {
				continue
			}
			s.push(c.To(), ng, c)
		}
	}

	return nil, ErrNoPath
}

// reconstruct walks connection records back from goal to start.
func (s *search) reconstruct(goal *record) *Result {
	res := &Result{Cost: goal.g, Expanded: s.expanded}
	nodes := []int{s.goal}
	for rec := goal; rec.via != nil; rec = s.records[rec.via.From()] {
		res.Connections = append(res.Connections, rec.via)
		nodes = append(nodes, rec.via.From())
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(res.Connections)-1; i < j; i, j = i+1, j-1 {
		res.Connections[i], res.Connections[j] = res.Connections[j], res.Connections[i]
	}
	res.Nodes = nodes

	return res
}

// entry is one open-set item. seq orders equal-f entries first-pushed-first.
type entry struct {
	node int
	g, f float64
	seq  uint64
}

// openHeap is a min-heap of *entry ordered by (f, seq).
type openHeap []*entry

// Len returns the number of items in the heap.
func (h openHeap) Len() int { return len(h) }

// Less orders by f, then by push order.
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(*entry)) }

// Pop removes and returns the last element.
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
