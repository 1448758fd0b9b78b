// Package builder provides deterministic, functional-options constructors for
// core.Graph fixtures: explicit structures, classic topologies and seeded
// random multigraphs.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...): single orchestrator; constructors run
//     in order and append to the same graph.
//   - Topologies: Path, Cycle, Star, Complete.
//   - Explicit: Structure / NewStructure / MustStructure from labels + EdgeSpec.
//   - Random: RandomSparse(n, p), RandomEdges(n, m), Random(name, n, m, directed, seed).
//   - Options: WithSeed, WithRand, WithLabelScheme, WithEdgeLabelScheme,
//     WithNodeAlphabet, WithEdgeAlphabet, WithSelfLoops.
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Runtime validation returns sentinel errors (ErrTooFewVertices, ...);
//     option constructors panic on nil/empty arguments.
package builder
