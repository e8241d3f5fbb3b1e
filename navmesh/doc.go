// Package navmesh builds a portal graph over an already triangulated walkable
// area and answers point-to-point path queries on it.
//
// Every line shared by two or more triangles becomes a node at its midpoint.
// Nodes on the same triangle are connected, costed by Euclidean distance.
// FindPath drops the two endpoints into a clone of the graph, links each to
// the portals of its containing triangle and runs A*.
//
// Triangles are located through an R-tree of their bounding boxes refined by
// an exact ring containment test. Triangulation itself is the caller's job.
package navmesh
