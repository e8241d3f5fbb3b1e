package eulerian

import (
	"fmt"

	"github.com/katalvlaran/navgraph/bfs"
	"github.com/katalvlaran/navgraph/core"
	"github.com/katalvlaran/navgraph/internal/logging"
	"github.com/sirupsen/logrus"
)

// IsEulerian classifies g.
//
// Implementation:
//   - Stage 1: Connectivity. A BFS from the first live node must reach every live
//     node; directed graphs are walked ignoring direction (weak connectivity).
//     An isolated node (or an empty graph) makes g NotEulerian.
//   - Stage 2 (undirected): count odd-degree nodes; 0 → Eulerian, 2 → SemiEulerian.
//   - Stage 2 (directed): all nodes balanced → Eulerian; exactly one node with
//     out-in = +1 and one with in-out = +1 → SemiEulerian.
//
// A self-loop adds 2 to the degree of its node.
//
// Complexity: O(V + E).
func IsEulerian[N any](g *core.Graph[N]) Eulerianity {
	if g == nil || !isConnected(g) {
		return NotEulerian
	}
	if g.Directed() {
		return classifyDirected(g)
	}

	odd := 0
	for _, idx := range g.ActiveNodes() {
		if degree(g, idx)%2 == 1 {
			odd++
		}
	}
	switch odd {
	case 0:
		return Eulerian
	case 2:
		return SemiEulerian
	default:
		return NotEulerian
	}
}

// degree counts the connection endpoints at idx; a self-loop counts twice.
func degree[N any](g *core.Graph[N], idx int) int {
	d := 0
	for _, c := range g.NodeConnections(idx) {
		d++
		if c.To() == idx && !g.Directed() {
			d++
		}
	}

	return d
}

// balance returns out-degree minus in-degree per node slot.
func balance[N any](g *core.Graph[N]) []int {
	b := make([]int, g.NodeSlots())
	for _, c := range g.Connections() {
		b[c.From()]++
		b[c.To()]--
	}

	return b
}

func classifyDirected[N any](g *core.Graph[N]) Eulerianity {
	b := balance(g)
	plus, minus := 0, 0
	for _, idx := range g.ActiveNodes() {
		switch b[idx] {
		case 0:
		case 1:
			plus++
		case -1:
			minus++
		default:
			return NotEulerian
		}
	}
	switch {
	case plus == 0 && minus == 0:
		return Eulerian
	case plus == 1 && minus == 1:
		return SemiEulerian
	default:
		return NotEulerian
	}
}

// isConnected reports whether every live node is reachable from the first one,
// walking connections in both directions. A first node without connections
// fails the check even if it is the only node.
func isConnected[N any](g *core.Graph[N]) bool {
	nodes := g.ActiveNodes()
	if len(nodes) == 0 {
		return false
	}
	first := nodes[0]
	if g.Degree(first) == 0 && g.InDegree(first) == 0 {
		return false
	}
	res, err := bfs.BFS(g, first, bfs.WithIgnoreDirection())
	if err != nil {
		return false
	}

	return len(res.Order) == len(nodes)
}

// FindTrail returns the node indices of an Eulerian trail (SemiEulerian) or
// circuit (Eulerian), in traversal order; its length is ConnectionCount()+1.
//
// e is the caller's classification, normally the result of IsEulerian(g).
// Returns ErrNotEulerian for NotEulerian and ErrEulerianityMismatch when e
// does not describe g.
//
// Implementation:
//   - Stage 1: Pick the start: the first live node (Eulerian), or the first
//     odd-degree / out-surplus node (SemiEulerian).
//   - Stage 2: Hierholzer on g.Clone(): follow the first remaining connection of
//     the stack top, deleting it; pop to the output when a node runs dry.
//   - Stage 3: Reverse the popped sequence.
//
// g itself is never modified.
//
// Complexity: O(V + E·d) where d is the maximum degree (connection removal is linear in degree).
func FindTrail[N any](g *core.Graph[N], e Eulerianity, opts ...Option) ([]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if e == NotEulerian {
		return nil, ErrNotEulerian
	}
	if actual := IsEulerian(g); actual != e {
		return nil, fmt.Errorf("%w: got %s, graph is %s", ErrEulerianityMismatch, e, actual)
	}

	start := startNode(g, e)
	work := g.Clone()
	trail := make([]int, 0, work.ConnectionCount()+1)
	stack := []int{start}
	for len(stack) > 0 {
		select {
		case <-cfg.Ctx.Done():
			return nil, cfg.Ctx.Err()
		default:
		}

		u := stack[len(stack)-1]
		conns := work.NodeConnections(u)
		if len(conns) == 0 {
			trail = append(trail, u)
			stack = stack[:len(stack)-1]
			continue
		}
		c := conns[0]
		if err := work.RemoveConnectionRef(c); err != nil {
			return nil, err
		}
		stack = append(stack, c.To())
	}
	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}

	logging.Logger(cfg.Ctx).WithFields(logrus.Fields{
		"eulerianity": e.String(),
		"start":       start,
		"length":      len(trail),
	}).Debug("eulerian: trail built")

	return trail, nil
}

// startNode picks where the trail begins for a verified classification.
func startNode[N any](g *core.Graph[N], e Eulerianity) int {
	nodes := g.ActiveNodes()
	if e == SemiEulerian {
		if g.Directed() {
			b := balance(g)
			for _, idx := range nodes {
				if b[idx] == 1 {
					return idx
				}
			}
		} else {
			for _, idx := range nodes {
				if degree(g, idx)%2 == 1 {
					return idx
				}
			}
		}
	}

	return nodes[0]
}
