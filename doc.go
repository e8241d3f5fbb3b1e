// Package navgraph is an in-memory toolkit for game-style navigation:
// index-addressed graphs, path search, Eulerian routes and crowd flow fields.
//
// 🚀 What is navgraph?
//
//	A small set of packages built around one generic graph type:
//		• core       – Graph[N]: arena of node payloads with a free-list, mirrored undirected connections
//		• gridgraph  – grid overlay with terrain costs, components and island bridging
//		• spatial    – positioned graphs with R-tree hit tests (rtreego)
//		• astar      – A* with pluggable heuristics, reopening and cancellation
//		• eulerian   – Eulerian classification and Hierholzer trails
//		• flowfield  – integration + steepest-descent vector fields (BFS or Dijkstra)
//		• navmesh    – portal graphs over triangulated walkable areas
//		• editor     – click-command graph editing
//		• render     – primitive emission to a caller-supplied Drawer
//		• bfs        – breadth-first traversal, also direction-blind
//		• builder    – deterministic topology fixtures
//
// ✨ Design notes
//
//   - Node identity is an int index; removed slots are reused lowest-first.
//   - Payloads opt into capabilities (Positioned, Coster, Colored) instead of
//     inheriting from a base node.
//   - Algorithms take a context.Context for cancellation and log debug
//     summaries through the logrus logger carried on it.
//   - Single-owner, synchronous: no graph is safe for concurrent mutation.
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	a 4-node spatial graph; A* from 0 to 2 takes the diagonal.
//
// See the runnable scenarios under examples/.
package navgraph
