// Package astar implements A* shortest-path search over any graph exposing
// live-node checks, outgoing connections and node positions.
//
// The open set is a binary heap ordered by f = g + h, then by push order, so
// among equal-f candidates the one encountered first is expanded first. A
// node is reopened whenever a strictly cheaper g is found for it, which keeps
// results optimal under admissible but inconsistent heuristics.
//
// Heuristics receive the absolute axis deltas to the goal. Built-ins:
// Manhattan, Euclidean, SquaredEuclidean, Octile and Chebyshev (default).
//
// Complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E)
//
// Errors (sentinel):
//
//	– ErrNilGraph, ErrStartNotFound, ErrGoalNotFound, ErrNoPath.
//	– ctx.Err() when the WithContext context is done.
package astar
