// Package graphio reads and writes graphs as YAML or JSON documents.
//
//	name: triangle
//	directed: false
//	nodes:
//	  - label: a
//	  - label: b
//	  - label: c
//	edges:
//	  - {from: 0, to: 1}
//	  - {from: 1, to: 2}
//	  - {from: 2, to: 0, label: back}
//
// Node indices are positions in the nodes list. Decoded graphs are checked
// with core.Graph.CheckConsistency before they are returned.
package graphio
