// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with an optional visit hook, depth limiting, neighbor filtering and a
// direction-blind mode for weak connectivity.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/navgraph/core"
)

// queueItem pairs a node index with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N any] struct {
	graph   *core.Graph[N]
	opts    BFSOptions
	ctx     context.Context
	reverse [][]int // incoming neighbors, only with IgnoreDirection on directed graphs
	queue   []queueItem
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Connection costs are ignored.
func BFS[N any](g *core.Graph[N], start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.IsNodeValid(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[N]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	if o.IgnoreDirection && g.Directed() {
		w.reverse = make([][]int, g.NodeSlots())
		for _, c := range g.Connections() {
			w.reverse[c.To()] = append(w.reverse[c.To()], c.From())
		}
	}

	// Seed queue with start node (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{idx: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.idx)
		if err := w.opts.OnVisit(item.idx, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.idx, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor: outgoing connections first, then incoming ones if direction is ignored.
func (w *walker[N]) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	try := func(nbr int) {
		if w.res.Reached(nbr) || !w.opts.FilterNeighbor(item.idx, nbr) {
			return
		}
		w.res.Depth[nbr] = nextDepth
		w.res.Parent[nbr] = item.idx
		w.queue = append(w.queue, queueItem{idx: nbr, depth: nextDepth})
	}

	for _, c := range w.graph.NodeConnections(item.idx) {
		try(c.To())
	}
	if w.reverse != nil {
		for _, from := range w.reverse[item.idx] {
			try(from)
		}
	}
}
