// Package flowfield computes many-agents-to-one-goal guidance on a grid.
//
// A Field pairs a cost grid (gridgraph.GridGraph[Cell]) with an integration
// grid of the same shape. Compute(ctx, goal) resets the integration grid,
// propagates accumulated cost outward from goal, then stores in every cell a
// unit vector toward its cheapest neighbor. Agents sample Direction or
// DirectionAtWorldPos each tick and step along it.
//
// Two propagation strategies are available:
//
//   - BreadthFirst: FIFO queue; a cell is queued once at a time but can be
//     improved and re-queued. Fast on uniform terrain.
//   - Dijkstra: cheapest-first heap; every cell settles once.
//
// Both yield the same integration costs. Unreached cells hold Unreached and a
// zero vector, as do the goal and impassable cells.
//
// Direction ties pick the first neighbor in clockwise order from north, which
// shows up as slight diagonal bias on open ground.
package flowfield
