// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (connection count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - OnVisit hook; returning an error aborts the search.
//   - Filtering of individual steps via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - WithIgnoreDirection walks directed graphs both ways (weak connectivity).
//
// Why
//
//   - Reachability and connectivity checks (eulerian uses it for weak connectivity).
//   - Unweighted hop counts for editor tooling and tests.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order, then (direction
//	ignored) in incoming-connection order, so the visit sequence is fully
//	reproducible.
//
// Complexity (V = live nodes, E = connections)
//
//   - Time:   O(V + E)
//   - Memory: O(V), plus O(E) for the reverse lists in direction-blind mode.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartNodeNotFound    if the start index is not a live node.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
