// Package graphedit measures how far apart two labeled multigraphs are by
// graph edit distance (GED): the cheapest sequence of node and edge
// insertions, deletions and relabelings that turns one graph into the other,
// together with that sequence.
//
// What is in the box?
//
//   - Core primitives: thread-safe Graph with dense node/edge indices,
//     parallel edges, self-loops and an explicit consistency check
//   - Edit operations: immutable operations, costed lists and Apply
//   - Cost models: per-kind cost tables validated at construction
//   - Isomorphism: an exact multigraph isomorphism test and generator
//   - Engines: exact A* plus Simple, Bipartite, Hausdorff and LowerBound
//     approximations behind one Engine interface
//   - Documents: YAML/JSON graph files and a `ged` command line tool
//
// Packages:
//
//	core/       - Graph, Node, Edge and thread-safe primitives
//	builder/    - deterministic constructors (path, cycle, star, random, structure)
//	matrix/     - dense float64 matrices for assignment cost tables
//	assignment/ - Hungarian minimum-cost assignment
//	edit/       - Kind, Operation, List and Apply
//	costmodel/  - cost tables and their validation
//	iso/        - isomorphism test, matcher and random isomorphic copies
//	ged/        - the GED engines
//	graphio/    - YAML/JSON graph documents
//	cmd/ged     - command line front end
//
// Quick example: a path a─b─c against the triangle on a, b, c costs one
// ADD_EDGE.
//
//	    a───b            a───b
//	        │     →       \  │
//	        c               c
//
//	go get github.com/katalvlaran/graphedit
package graphedit
