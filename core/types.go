// Package core defines the central Graph, Node, and Edge types used by the
// graph edit distance engines, and provides thread-safe primitives for
// building, querying, cloning, and validating graphs.
//
// Nodes and edges are identified by dense integer indices assigned at
// insertion time. Removing a node or an edge renumbers the survivors so that
// indices always stay in [0, NodeCount()) and [0, EdgeCount()).
//
// This file declares Node, Edge, Graph, GraphOption, NodeOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNilGraph          - graph pointer is nil.
//	ErrNodeNotFound      - requested node index does not exist.
//	ErrEdgeNotFound      - requested edge index does not exist.
//	ErrDanglingEdge      - an edge endpoint does not refer to a node of the graph.
//	ErrAdjacencyMismatch - derived adjacency lists disagree with the edge list.
//	ErrIndexMismatch     - a stored Index field disagrees with the slice position.
package core

import (
	"sync"

	"github.com/pkg/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNodeNotFound indicates an operation referenced a non-existent node index.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge index.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDanglingEdge indicates an edge endpoint outside the node list.
	ErrDanglingEdge = errors.New("core: edge endpoint refers to a missing node")

	// ErrAdjacencyMismatch indicates the incident-edge lists do not mirror the edge list.
	ErrAdjacencyMismatch = errors.New("core: adjacency does not mirror edge list")

	// ErrIndexMismatch indicates a node or edge Index field disagrees with its position.
	ErrIndexMismatch = errors.New("core: index does not match position")
)

// Node represents a labeled node of a Graph.
//
// Index is dense and owned by the Graph; callers receive Node values, never
// pointers into graph storage.
type Node struct {
	// Index is the position of this node in the owning graph.
	Index int

	// Label is the node label compared by relabel-aware algorithms.
	Label string

	// Weight is an auxiliary numeric attribute.
	Weight float64

	// Type is a small integer classification (not a shared registry).
	Type int

	// Age is an auxiliary tag carried through clones and edits.
	Age int
}

// Edge represents a labeled connection between two nodes.
//
// From==To denotes a self-loop. Directedness is a graph-wide property.
type Edge struct {
	// Index is the position of this edge in the owning graph.
	Index int

	// Label is the edge label.
	Label string

	// Weight is an auxiliary numeric attribute.
	Weight float64

	// Type is a small integer classification.
	Type int

	// From is the first endpoint (source for directed graphs).
	From int

	// To is the second endpoint (target for directed graphs).
	To int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are directed (true) or undirected (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithName sets the human-readable graph name.
func WithName(name string) GraphOption {
	return func(g *Graph) { g.name = name }
}

// NodeOption configures a node when added.
type NodeOption func(*Node)

// WithNodeWeight sets the node weight.
func WithNodeWeight(w float64) NodeOption {
	return func(n *Node) { n.Weight = w }
}

// WithNodeType sets the node type.
func WithNodeType(t int) NodeOption {
	return func(n *Node) { n.Type = t }
}

// WithNodeAge sets the auxiliary age tag.
func WithNodeAge(age int) NodeOption {
	return func(n *Node) { n.Age = age }
}

// EdgeOption configures an edge when added.
type EdgeOption func(*Edge)

// WithEdgeWeight sets the edge weight.
func WithEdgeWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// WithEdgeType sets the edge type.
func WithEdgeType(t int) EdgeOption {
	return func(e *Edge) { e.Type = t }
}

// Graph is the compact in-memory multigraph used by the GED engines.
//
// Parallel edges and self-loops are always permitted. The adjacency lists
// (out, in) are derived from the edge list and must mirror it exactly; that
// invariant is verified on demand by CheckConsistency rather than on every
// mutation.
//
// For undirected graphs out[v] holds every incident edge of v (a self-loop
// once) and in is unused. For directed graphs out[v] holds edges leaving v and
// in[v] edges entering v (a self-loop appears in both).
type Graph struct {
	mu sync.RWMutex // guards everything below

	name     string
	directed bool

	nodes []*Node
	edges []*Edge

	out [][]int // incident (undirected) or outgoing (directed) edge indices per node
	in  [][]int // incoming edge indices per node; directed graphs only
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is undirected and unnamed.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of graph shape.
type GraphStats struct {
	Name          string
	Directed      bool
	NodeCount     int
	EdgeCount     int
	SelfLoops     int // edges with From==To
	ParallelEdges int // edges beyond the first between the same endpoint pair
	MaxDegree     int
}
