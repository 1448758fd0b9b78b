// Package edit defines the atomic edit operations of graph edit distance and
// the ordered, costed List that engines return as a witness.
//
// An Operation is an immutable value: a Kind, a cost, and the ids or label the
// kind needs. A List accumulates operations and their summed cost, and can be
// replayed against a source graph with Apply to materialize the edited graph.
//
// Ids in a List refer to one extended id space fixed before replay starts, so
// deleting node 0 never changes what id 2 means. See List.Apply.
package edit
