package gridgraph

import (
	"container/list"
)

// Bridge finds the cheapest chain of impassable cells whose clearing would
// join component srcComp to component dstComp, as identified by
// ConnectedComponents(). Each blocked cell on the chain costs 1.
// Returns the sequence of cell indices (row-major) representing the path,
// including the start and end passable cells, and the number of blocked cells on it.
//
// Behavior:
//  1. Validate component indices (ErrComponentIndex).
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • Moving into a passable cell   → cost 0
//     • Moving into a blocked cell    → cost 1
//  3. Stop when any dstComp cell is popped.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph[N]) Bridge(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	total := gg.cols * gg.rows
	const inf = int(^uint(0) >> 1)
	dist := make([]int, total)
	prev := make([]int, total)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		for _, v := range gg.Neighbors(u) {
			step := 0
			if !gg.IsPassable(v) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append([]int{at}, path...)
	}

	return path, dist[target], nil
}
