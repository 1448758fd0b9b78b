// Package iso decides graph isomorphism for labeled multigraphs and extends
// partial node mappings to exact ones.
//
// Isomorphic and Mapping answer the whole-graph question. Matcher.Extend is
// the building block the exact edit-distance search uses: given a partial
// mapping (some source nodes fixed, some Deleted), it completes the rest so
// every pair touching a completed node matches exactly.
//
// The matcher is a VF2-style backtracking search. Nodes are first filtered
// by (out-degree, in-degree, self-loops, label) signatures, then assigned in
// a connectivity-first order so feasibility checks fail early.
//
// GenerateRandomIsomorphicGraph produces seeded, permuted copies for tests.
package iso
