// Package gridgraph lays a core.Graph over a rectangular grid of cells.
//
// What:
//
//   - GridGraph[N] embeds *core.Graph[N]; node index == row*cols + col.
//   - Connections follow adjacency ∩ passability. A cell is impassable when its
//     payload's TraversalCost() ≥ GridOptions.ImpassableCost; it keeps its node
//     but has no connections.
//   - Connection cost = step × (cost(a)+cost(b))/2, symmetric by construction.
//   - Identifies connected components of passable cells.
//   - Bridge computes the fewest blocked cells (0-1 BFS) separating two components.
//
// Why:
//
//   - Tile maps for A* and flow fields share one representation.
//   - Terrain edits relink a single cell (RefreshCell) instead of the whole grid.
//
// Complexity:
//
//   - NewGridGraph / RegenerateConnections: O(W×H×d), Memory: O(W×H×d)  (d = 4 or 8).
//   - RefreshCell:                           O(V + E) for the incoming scan.
//   - ConnectedComponents, Bridge:           O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.StraightCost / DiagonalCost: step multipliers.
//   - GridOptions.ImpassableCost: blocking threshold (default 255).
//   - GridOptions.Origin: world position of the top-left corner.
//   - GridOptions.Unconnected: allocate cells only.
//
// Errors:
//
//   - ErrEmptyGrid, ErrBadCellSize, ErrNilNodeFactory, ErrBadMoveCost, ErrBadImpassable.
//   - ErrComponentIndex, ErrNoPath from Bridge.
package gridgraph
