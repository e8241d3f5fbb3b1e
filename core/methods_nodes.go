// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - AddNode reuses the lowest freed index first, then appends.
//   - ActiveNodes() returns indices in ascending order.
package core

// AddNode stores n in a free slot and returns its index.
//
// Implementation:
//   - Stage 1: If the free-list is non-empty, take its lowest index.
//   - Stage 2: Otherwise append a new slot at the end of storage.
//   - Stage 3: Mark the slot live and bump Version.
//
// Returns:
//   - int: the assigned index (never InvalidNodeIndex).
//
// Complexity:
//   - Time O(F) where F is the free-list length, Space O(1) amortized.
func (g *Graph[N]) AddNode(n N) int {
	idx := g.NextFreeNodeIndex()
	if idx == len(g.nodes) {
		g.nodes = append(g.nodes, n)
		g.live = append(g.live, true)
		g.conns = append(g.conns, nil)
	} else {
		g.takeFree(idx)
		g.nodes[idx] = n
		g.live[idx] = true
	}
	g.version++

	return idx
}

// NextFreeNodeIndex returns the index the next AddNode call will assign.
func (g *Graph[N]) NextFreeNodeIndex() int {
	if len(g.free) == 0 {
		return len(g.nodes)
	}
	lowest := g.free[0]
	for _, idx := range g.free[1:] {
		if idx < lowest {
			lowest = idx
		}
	}

	return lowest
}

// takeFree drops idx from the free-list.
func (g *Graph[N]) takeFree(idx int) {
	for i, f := range g.free {
		if f == idx {
			g.free = append(g.free[:i], g.free[i+1:]...)
			return
		}
	}
}

// IsNodeValid reports whether idx addresses a live node.
// Out-of-range and freed indices are invalid.
func (g *Graph[N]) IsNodeValid(idx int) bool {
	return idx >= 0 && idx < len(g.live) && g.live[idx]
}

// Node returns the payload stored at idx.
// For invalid indices it returns the zero value and false.
func (g *Graph[N]) Node(idx int) (N, bool) {
	if !g.IsNodeValid(idx) {
		var zero N
		return zero, false
	}

	return g.nodes[idx], true
}

// SetNode replaces the payload at idx. Connections are left untouched.
// Returns ErrInvalidNode if idx is not live.
func (g *Graph[N]) SetNode(idx int, n N) error {
	if !g.IsNodeValid(idx) {
		return ErrInvalidNode
	}
	g.nodes[idx] = n
	g.version++

	return nil
}

// RemoveNode deletes the node at idx and every connection touching it.
//
// Implementation:
//   - Stage 1: Validate idx (ErrInvalidNode).
//   - Stage 2: Drop all outgoing and incoming connections (mirrors included).
//   - Stage 3: Reset the slot to the zero payload, mark it dead, push it on the free-list.
//
// Behavior highlights:
//   - Other node indices are never compacted.
//   - The slot is clean before it can be reused.
//
// Complexity:
//   - Time O(V + E) for the incoming scan, Space O(1).
func (g *Graph[N]) RemoveNode(idx int) error {
	if err := g.RemoveNodeConnections(idx); err != nil {
		return err
	}

	var zero N
	g.nodes[idx] = zero
	g.live[idx] = false
	g.conns[idx] = nil
	g.free = append(g.free, idx)
	g.version++

	return nil
}

// NodeSlots returns the size of node storage, freed slots included.
// Valid indices are always < NodeSlots().
func (g *Graph[N]) NodeSlots() int { return len(g.nodes) }

// NodeCount returns the number of live nodes.
func (g *Graph[N]) NodeCount() int { return len(g.nodes) - len(g.free) }

// ActiveNodes returns the indices of all live nodes in ascending order.
// Complexity: O(V).
func (g *Graph[N]) ActiveNodes() []int {
	out := make([]int, 0, g.NodeCount())
	for i, ok := range g.live {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// Degree returns the number of outgoing connections of idx.
// In an undirected graph mirrors are stored explicitly, so this is the degree.
// Invalid indices report 0.
func (g *Graph[N]) Degree(idx int) int {
	if !g.IsNodeValid(idx) {
		return 0
	}

	return len(g.conns[idx])
}

// InDegree returns the number of connections ending at idx.
// Complexity: O(E).
func (g *Graph[N]) InDegree(idx int) int {
	if !g.IsNodeValid(idx) {
		return 0
	}
	in := 0
	for _, list := range g.conns {
		for _, c := range list {
			if c.to == idx {
				in++
			}
		}
	}

	return in
}

// Clear drops every node and connection but keeps the options.
func (g *Graph[N]) Clear() {
	g.nodes = nil
	g.live = nil
	g.free = nil
	g.conns = nil
	g.connCount = 0
	g.version++
}
