// Package ged computes graph edit distance (GED) between labeled, directed or
// undirected multigraphs.
//
// Engines (all implement Engine):
//
//   - Exact: optimal A* search over partial node mappings with an admissible
//     bound, a Bipartite-seeded incumbent and isomorphism short-circuiting.
//   - Simple: degree-sorted rank pairing; upper bound, applicable witness.
//   - Bipartite: Riesen-Bunke assignment; upper bound, applicable witness.
//   - Hausdorff: one-sided nearest-match estimate; asymmetric, no bound guarantee.
//   - LowerBound: counting estimate; never above the exact distance here.
//
// Every engine validates its cost map at construction (see costmodel) and
// reports the cost of its edit list as the distance, so
// EditList().Cost() == Similarity(g1, g2) always holds.
//
// Witness lists of Exact, Simple and Bipartite use the id policy of
// edit.List.Apply and turn g1 into a graph isomorphic to g2 (node labels
// compared iff Options.Relabel).
//
// Example:
//
//	costs := costmodel.CostMap{edit.DeleteNode: 2, edit.AddNode: 3, edit.DeleteEdge: 4, edit.AddEdge: 5}
//	x, err := ged.NewExact(costs, ged.DefaultOptions())
//	if err != nil { ... }
//	d, err := x.Similarity(g1, g2)
//	edited, err := x.EditList().Apply(g1)
//
// Engines are not safe for concurrent use; create one per goroutine.
package ged
