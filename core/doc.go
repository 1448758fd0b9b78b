// Package core provides the compact, thread-safe in-memory multigraph used by
// the graph edit distance engines.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges and self-loops, always permitted
//   - Labeled nodes and edges with auxiliary Weight/Type (and node Age) fields
//   - Dense integer indices: nodes are 0..V-1 and edges 0..E-1 at all times;
//     RemoveNode/RemoveEdge renumber survivors preserving relative order
//   - Derived per-node incident edge lists (outgoing + incoming for directed
//     graphs) kept in sync by every mutator
//
// Consistency:
//
//	The adjacency lists must mirror the edge list exactly. Mutators maintain
//	this incrementally but never re-verify it; CheckConsistency performs the
//	full O(V+E log E) verification on demand.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(label string, opts ...NodeOption) int     // O(1)
//	RemoveNode(idx int) error                          // O(V+E), renumbers
//	RelabelNode(idx int, label string) error           // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int, label string, opts ...EdgeOption) (int, error) // O(1)
//	RemoveEdge(idx int) error                          // O(V+E), renumbers
//
//	// Query
//	Neighbors / Successors / Predecessors(idx)         // O(d log d)
//	Degree / InDegree / OutDegree(idx)                 // O(d)
//	EdgesBetween(u, v) []int, Multiplicity(u, v) int   // O(deg(u))
//	Nodes() []Node, Edges() []Edge                     // copies, index order
//
//	// Cloning & validation
//	Clone() *Graph, CloneEmpty() *Graph                // O(V+E), no shared storage
//	CheckConsistency() error                           // O(V+E log E)
//
// Concurrency:
//
//	A single sync.RWMutex guards each Graph. Queries return copies, so values
//	obtained from one graph never alias another graph's storage.
package core
