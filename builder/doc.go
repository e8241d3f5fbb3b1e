// Package builder assembles core.Graph topologies for tests, benchmarks and
// demos from composable Constructors.
//
// The package offers the following components:
//
//   - Orchestrator:
//     BuildGraph(newNode, gopts, bopts, cons...) creates a graph, resolves the
//     builder options once and applies every constructor in order.
//   - Constructors (each appends fresh nodes):
//     Cycle, Path, Star, Wheel, Complete, RandomSparse.
//   - Options:
//     WithSeed and WithRand install the RNG used by RandomSparse and weight
//     functions. WithWeightFn, WithConstantWeight and WithUniformWeight set
//     connection costs.
//   - Sentinel errors:
//     ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
//
// Guarantees:
//
//   - Determinism: identical inputs and seed produce identical graphs.
//   - Option constructors panic on invalid arguments; constructors return
//     wrapped sentinel errors and never panic.
//   - The graph's direction, loop and uniqueness options are honored.
package builder
