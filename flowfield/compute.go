package flowfield

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/internal/logging"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/sirupsen/logrus"
)

// Compute rebuilds the integration and flow fields for goal.
//
// Implementation:
//   - Stage 1: Validate goal (in range, passable).
//   - Stage 2: Reset every integration cell to Unreached.
//   - Stage 3: Propagate from goal (cost 0) along cost-grid connections:
//     candidate = current + connection cost, whose grid construction already
//     folds both cells' traversal costs in. Impassable cells have no
//     connections and are never entered.
//   - Stage 4: DeriveVectors.
//
// ctx is checked once per expanded cell. On cancellation the fields are left
// partially computed and ctx.Err() is returned. A goal that fails validation
// returns before Stage 2, so the last result and Goal() stay intact.
//
// Complexity: BreadthFirst O(V·d) per improvement wave; Dijkstra O(V·d·log V).
func (f *Field) Compute(ctx context.Context, goal int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !f.costs.IsNodeValid(goal) {
		return fmt.Errorf("%w: %d", ErrInvalidGoal, goal)
	}
	if !f.costs.IsPassable(goal) {
		return fmt.Errorf("%w: %d", ErrGoalImpassable, goal)
	}

	f.Reset()
	f.goal = goal
	_ = f.integ.SetNode(goal, IntegrationCell{Cost: 0})

	var (
		expanded int
		err      error
	)
	if f.strategy == Dijkstra {
		expanded, err = f.propagateDijkstra(ctx, goal)
	} else {
		expanded, err = f.propagateBFS(ctx, goal)
	}
	if err != nil {
		return err
	}
	f.DeriveVectors()

	reached := 0
	for i := 0; i < f.integ.NodeSlots(); i++ {
		if f.Reached(i) {
			reached++
		}
	}
	logging.Logger(ctx).WithFields(logrus.Fields{
		"goal":     goal,
		"strategy": f.strategy.String(),
		"expanded": expanded,
		"reached":  reached,
	}).Debug("flowfield: computed")

	return nil
}

// Reset marks every integration cell Unreached and clears every flow vector.
func (f *Field) Reset() {
	for i := 0; i < f.integ.NodeSlots(); i++ {
		_ = f.integ.SetNode(i, IntegrationCell{Cost: Unreached})
		if c, ok := f.costs.Node(i); ok && c.Direction != (orb.Point{}) {
			c.Direction = orb.Point{}
			_ = f.costs.SetNode(i, c)
		}
	}
	for i := range f.via {
		f.via[i] = core.InvalidNodeIndex
	}
	f.goal = core.InvalidNodeIndex
}

// relax lowers the integration cost of every neighbor of idx that idx improves,
// calling improved for each one.
func (f *Field) relax(idx int, improved func(to int, cost float64)) {
	cur := f.IntegrationCost(idx)
	for _, c := range f.costs.NodeConnections(idx) {
		cand := cur + c.Cost()
		if cand < f.IntegrationCost(c.To()) {
			_ = f.integ.SetNode(c.To(), IntegrationCell{Cost: cand})
			f.via[c.To()] = idx
			improved(c.To(), cand)
		}
	}
}

func (f *Field) propagateBFS(ctx context.Context, goal int) (int, error) {
	queued := make([]bool, f.costs.NodeSlots())
	queue := []int{goal}
	queued[goal] = true
	expanded := 0

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return expanded, ctx.Err()
		default:
		}

		idx := queue[0]
		queue = queue[1:]
		queued[idx] = false
		expanded++

		f.relax(idx, func(to int, _ float64) {
			if !queued[to] {
				queued[to] = true
				queue = append(queue, to)
			}
		})
	}

	return expanded, nil
}

func (f *Field) propagateDijkstra(ctx context.Context, goal int) (int, error) {
	pq := &frontier{{idx: goal, cost: 0}}
	expanded := 0

	for pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return expanded, ctx.Err()
		default:
		}

		it := heap.Pop(pq).(item)
		if it.cost > f.IntegrationCost(it.idx) {
			continue // stale
		}
		expanded++

		f.relax(it.idx, func(to int, cost float64) {
			heap.Push(pq, item{idx: to, cost: cost})
		})
	}

	return expanded, nil
}

// DeriveVectors points each reached, passable, non-goal cell at its neighbor
// with the lowest integration cost. Ties keep the first neighbor in clockwise
// order from north. Impassable neighbors are Unreached and never win. When no
// neighbor is strictly cheaper than the cell itself, which zero-cost steps
// allow, the cell points at the neighbor that reached it during propagation,
// so descent never cycles. Every other cell gets the zero vector.
func (f *Field) DeriveVectors() {
	for idx := 0; idx < f.costs.NodeSlots(); idx++ {
		cell, ok := f.costs.Node(idx)
		if !ok {
			continue
		}
		cell.Direction = orb.Point{}

		if idx != f.goal && f.costs.IsPassable(idx) && f.Reached(idx) {
			best, bestCost := -1, math.Inf(1)
			for _, n := range f.costs.Neighbors(idx) {
				if ic := f.IntegrationCost(n); ic < bestCost {
					best, bestCost = n, ic
				}
			}
			if bestCost >= f.IntegrationCost(idx) && f.via[idx] != core.InvalidNodeIndex {
				best, bestCost = f.via[idx], f.IntegrationCost(f.via[idx])
			}
			if best >= 0 && bestCost != Unreached {
				cell.Direction = unit(f.costs.NodePos(idx), f.costs.NodePos(best))
			}
		}

		_ = f.costs.SetNode(idx, cell)
	}
}

// unit returns the normalized vector from a to b, or zero if they coincide.
func unit(a, b orb.Point) orb.Point {
	l := planar.Distance(a, b)
	if l == 0 {
		return orb.Point{}
	}

	return orb.Point{(b[0] - a[0]) / l, (b[1] - a[1]) / l}
}

// item is one frontier entry.
type item struct {
	idx  int
	cost float64
}

// frontier is a min-heap of items ordered by cost, then index.
type frontier []item

// Len returns the number of items in the heap.
func (h frontier) Len() int { return len(h) }

// Less orders by cost, then index for determinism.
func (h frontier) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}

	return h[i].idx < h[j].idx
}

// Swap swaps two elements in the heap.
func (h frontier) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
func (h *frontier) Push(x interface{}) { *h = append(*h, x.(item)) }

// Pop removes and returns the last element.
func (h *frontier) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
