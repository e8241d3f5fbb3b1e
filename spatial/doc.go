// Package spatial adds world-space queries to a core.Graph whose payloads
// implement core.Positioned.
//
// Hit tests (NodeIdxAtWorldPos, NearestNode, ConnectionAtPosition) are served by
// rtreego R-trees over node positions and connection segments. The trees are
// rebuilt lazily from Graph.Version(), so any number of mutations between two
// queries costs a single O((V+E) log(V+E)) rebuild.
//
// Distances and point-to-segment tests use orb/planar.
package spatial
